package http

import "net/http"

// photoCacheControl is one year: published photos never change under the same
// name, re-exports get a new filename.
const photoCacheControl = "public, max-age=31536000, immutable"

func withImageCache(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", photoCacheControl)
		next.ServeHTTP(w, r)
	})
}
