package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/internal/utils"
	"github.com/motelbelavista/website/models"
)

// idParam parses the {id} route parameter as a positive int64.
func idParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		log.Err(err).Msg("listing users failed")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK) //nolint:errcheck
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var newUser models.NewUser
	if err := json.NewDecoder(r.Body).Decode(&newUser); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), newUser)
	if err != nil {
		log.Err(err).Msg("user creation failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated) //nolint:errcheck
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := idParam(r)
	if !ok {
		utils.WriteError(w, "invalid id", http.StatusBadRequest)
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	update.ID = id

	updated, err := h.services.UserService.UpdateUser(r.Context(), update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user update failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK) //nolint:errcheck
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, ok := idParam(r)
	if !ok {
		utils.WriteError(w, "invalid id", http.StatusBadRequest)
		return
	}

	// deleting your own account would strand the session mid-request
	if current, ok := utils.GetUserFromContext(r.Context()); ok && current.ID == id {
		utils.WriteError(w, "cannot delete own account", http.StatusConflict)
		return
	}

	if err := h.services.UserService.DeleteUser(r.Context(), id); err != nil {
		log.Err(err).Int64("id", id).Msg("user deletion failed")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
