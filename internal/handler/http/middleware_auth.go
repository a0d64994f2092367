// Package http implements the HTTP transport layer of the site: middleware,
// route handlers and request/response utilities for the public pages, the
// JSON API and the back office. Authentication, logging, tracing, compression
// and canonical-host concerns are all handled here before requests reach the
// service layer.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/motelbelavista/website/internal/auth"
	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/internal/utils"
	"github.com/motelbelavista/website/models"
)

// requireRole is an HTTP middleware that enforces cookie-session
// authentication and role membership.
//
// It reads the session cookie, resolves it through [auth.Guard.Require] and —
// on success — stores the authenticated user in the request context under
// [utils.CurrentUserCtxKey] before delegating to the next handler. An empty
// role list admits any authenticated active account.
//
// Requests are rejected with 401 when no active user resolves from the cookie
// (absent cookie, tampered token, deleted or deactivated account) and with
// 403 when the account's role is not in the allowed set.
func (h *Handler) requireRole(allowedRoles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)
			ctx := r.Context()

			user, err := h.guard.Require(ctx, sessionTokenFromRequest(r), allowedRoles...)
			if err != nil {
				switch {
				case errors.Is(err, auth.ErrUnauthorized):
					log.Debug().Msg("access denied")
					utils.WriteError(w, auth.ErrUnauthorized.Error(), http.StatusForbidden)
				default:
					log.Debug().Err(err).Msg("authentication required")
					utils.WriteError(w, auth.ErrUnauthenticated.Error(), http.StatusUnauthorized)
				}
				return
			}

			// Store the authenticated user in the context so that downstream
			// handlers can retrieve it without re-resolving the session.
			ctx = context.WithValue(ctx, utils.CurrentUserCtxKey, user)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionTokenFromRequest extracts the signed session token from the cookie.
// An absent cookie yields the empty string, which the guard rejects.
func sessionTokenFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
