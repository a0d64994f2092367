// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Motel Bela Vista

package models

import "time"

// SiteConfig is the singleton row of editor-managed site content: contact
// details and branding shown on every public page.
type SiteConfig struct {
	ID           int64     `json:"id"`
	SiteName     string    `json:"site_name,omitempty"`
	Tagline      string    `json:"tagline,omitempty"`
	Address      string    `json:"address,omitempty"`
	WhatsApp     string    `json:"whatsapp,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	Email        string    `json:"email,omitempty"`
	PrimaryColor string    `json:"primary_color,omitempty"`
	MapsEmbedURL string    `json:"maps_embed_url,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}
