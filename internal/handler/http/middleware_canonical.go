// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Motel Bela Vista

package http

import (
	"net"
	"net/http"
	"strings"
)

// withCanonicalHost issues a permanent redirect from any alias host (the bare
// apex, an old domain still pointing here) to the configured canonical host,
// preserving path and query. Local development hosts are exempt so the site
// works on localhost without config changes.
func (h *Handler) withCanonicalHost(next http.Handler) http.Handler {
	canonical := h.app.CanonicalHost()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host := requestHost(r)

		if canonical == "" || host == canonical || isLocalHost(host) {
			next.ServeHTTP(w, r)
			return
		}

		target := h.app.CanonicalSiteURL() + r.URL.RequestURI()
		http.Redirect(w, r, target, http.StatusMovedPermanently)
	})
}

func requestHost(r *http.Request) string {
	host := r.Host
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(host)
}

func isLocalHost(host string) bool {
	if host == "localhost" || strings.HasSuffix(host, ".localhost") {
		return true
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return true
	}
	return false
}
