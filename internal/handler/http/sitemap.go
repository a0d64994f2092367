// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Motel Bela Vista

package http

import (
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/motelbelavista/website/internal/logger"
)

// sitemapURLSet is the <urlset> document of the XML sitemap protocol.
type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// sitemap serves /sitemap.xml: the fixed public pages plus one entry per
// active suite.
func (h *Handler) sitemap(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	base := h.app.CanonicalSiteURL()

	urlSet := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []sitemapURL{
			{Loc: base + "/"},
			{Loc: base + "/apartamentos"},
			{Loc: base + "/galeria"},
			{Loc: base + "/contato"},
		},
	}

	// a database outage must not take the sitemap down with it: the fixed
	// page set is still served, only the suite entries are skipped
	slugs, err := h.services.CatalogService.PublicSuiteSlugs(r.Context())
	if err != nil {
		log.Err(err).Msg("listing suites for sitemap failed, serving fixed pages only")
		slugs = nil
	}
	for _, slug := range slugs {
		urlSet.URLs = append(urlSet.URLs, sitemapURL{Loc: base + "/apartamentos/" + slug})
	}

	body, err := xml.MarshalIndent(urlSet, "", "  ")
	if err != nil {
		log.Err(err).Msg("marshaling sitemap failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, xml.Header)
	w.Write(body) //nolint:errcheck
}

// robots serves /robots.txt. The back office is kept out of crawlers; the
// sitemap is advertised at its canonical location.
func (h *Handler) robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "User-agent: *\nDisallow: /api/\nDisallow: /admin/\n\nSitemap: %s/sitemap.xml\n", h.app.CanonicalSiteURL())
}
