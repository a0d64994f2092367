// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Motel Bela Vista

package http

import (
	"encoding/json"
	"net/http"

	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/internal/utils"
	"github.com/motelbelavista/website/models"
)

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "bv_session"

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		log.Err(err).Msg("login failed")
		utils.WriteError(w, "invalid username/password", statusFromError(err))
		return
	}

	http.SetCookie(w, h.sessionCookie(r, token, 0))

	log.Debug().Int64("id", user.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, user, http.StatusOK) //nolint:errcheck
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie(r, "", -1))
	w.WriteHeader(http.StatusNoContent)
}

// me returns the account resolved by the auth middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		// requireRole always stores the user; reaching here means a wiring bug
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK) //nolint:errcheck
}

// sessionCookie builds the session cookie. maxAge < 0 clears it. The cookie is
// host-only and HttpOnly; Secure follows the request scheme so local HTTP
// development keeps working.
func (h *Handler) sessionCookie(r *http.Request, token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   requestIsHTTPS(r),
	}
}

func requestIsHTTPS(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}
