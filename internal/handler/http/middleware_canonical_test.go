package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/motelbelavista/website/internal/service"
)

func TestWithCanonicalHost(t *testing.T) {
	h := newTestHandler(t, &service.Services{CatalogService: &fakeCatalogService{}})
	router := h.Init()

	tests := []struct {
		name         string
		host         string
		wantStatus   int
		wantLocation string
	}{
		{
			name:       "canonical host passes through",
			host:       "example.com",
			wantStatus: http.StatusOK,
		},
		{
			name:         "www alias redirects",
			host:         "www.example.com",
			wantStatus:   http.StatusMovedPermanently,
			wantLocation: "http://example.com/api/suites?featured=true",
		},
		{
			name:         "old domain redirects",
			host:         "motelbelavista.com",
			wantStatus:   http.StatusMovedPermanently,
			wantLocation: "http://example.com/api/suites?featured=true",
		},
		{
			name:       "localhost exempt",
			host:       "localhost:8080",
			wantStatus: http.StatusOK,
		},
		{
			name:       "loopback exempt",
			host:       "127.0.0.1:8080",
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/suites?featured=true", nil)
			req.Host = tt.host

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
		})
	}
}
