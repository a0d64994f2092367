package http

import (
	"encoding/json"
	"net/http"

	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/internal/utils"
	"github.com/motelbelavista/website/models"
)

func (h *Handler) getSiteConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	cfg, err := h.services.SiteService.SiteConfig(r.Context())
	if err != nil {
		log.Err(err).Msg("loading site config failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, cfg, http.StatusOK) //nolint:errcheck
}

func (h *Handler) updateSiteConfig(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var cfg models.SiteConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	saved, err := h.services.SiteService.UpdateSiteConfig(r.Context(), cfg)
	if err != nil {
		log.Err(err).Msg("site config update failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK) //nolint:errcheck
}

func (h *Handler) listStaff(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	staff, err := h.services.SiteService.ListStaff(r.Context())
	if err != nil {
		log.Err(err).Msg("listing staff failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, staff, http.StatusOK) //nolint:errcheck
}

func (h *Handler) createStaff(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var member models.StaffMember
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.SiteService.CreateStaff(r.Context(), member)
	if err != nil {
		log.Err(err).Msg("staff creation failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) updateStaff(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := idParam(r)
	if !ok {
		utils.WriteError(w, "invalid id", http.StatusBadRequest)
		return
	}

	var member models.StaffMember
	if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	member.ID = id

	updated, err := h.services.SiteService.UpdateStaff(r.Context(), member)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("staff update failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteStaff(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := idParam(r)
	if !ok {
		utils.WriteError(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.services.SiteService.DeleteStaff(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("staff deletion failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
