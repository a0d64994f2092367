package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/internal/utils"
	"github.com/motelbelavista/website/models"
)

// sitePayload is the public /api/site response: editor-managed content plus
// the configuration-derived identity fields the frontend needs to render.
type sitePayload struct {
	models.SiteConfig
	CanonicalURL     string `json:"canonical_url"`
	GA4MeasurementID string `json:"ga4_measurement_id,omitempty"`
	Version          string `json:"version,omitempty"`
}

func (h *Handler) publicSuites(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	suites, err := h.services.CatalogService.PublicSuites(r.Context())
	if err != nil {
		log.Err(err).Msg("listing public suites failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, suites, http.StatusOK) //nolint:errcheck
}

func (h *Handler) publicSuiteBySlug(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	slug := chi.URLParam(r, "slug")

	suite, err := h.services.CatalogService.PublicSuiteBySlug(r.Context(), slug)
	if err != nil {
		log.Debug().Err(err).Str("slug", slug).Msg("public suite lookup failed")
		utils.WriteError(w, "suite not found", statusFromError(err))
		return
	}

	utils.WriteJSON(w, suite, http.StatusOK) //nolint:errcheck
}

func (h *Handler) siteInfo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cfg, err := h.services.SiteService.SiteConfig(r.Context())
	if err != nil {
		log.Err(err).Msg("loading site config failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	payload := sitePayload{
		SiteConfig:       cfg,
		CanonicalURL:     h.app.CanonicalSiteURL(),
		GA4MeasurementID: h.app.GA4MeasurementID,
		Version:          h.app.Version,
	}

	utils.WriteJSON(w, payload, http.StatusOK) //nolint:errcheck
}

func (h *Handler) publicStaff(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	staff, err := h.services.SiteService.PublicStaff(r.Context())
	if err != nil {
		log.Err(err).Msg("listing public staff failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, staff, http.StatusOK) //nolint:errcheck
}

func (h *Handler) gallery(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	images, err := h.services.GalleryService.GalleryImages(r.Context())
	if err != nil {
		log.Err(err).Msg("listing gallery failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, images, http.StatusOK) //nolint:errcheck
}
