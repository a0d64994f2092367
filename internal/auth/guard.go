// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Motel Bela Vista

package auth

import (
	"context"

	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/models"
)

// UserDirectory is the read contract the Guard needs from the user store.
// The postgres user repository satisfies it in production; tests substitute an
// in-memory fake.
type UserDirectory interface {
	FindUserByID(ctx context.Context, id int64) (models.User, error)
}

// Guard resolves a request's bearer token to an authenticated, active user and
// enforces coarse role-based authorization. Each request is evaluated
// independently from its token; no state persists between calls and the only
// side effect is the directory read.
type Guard struct {
	signer    *Signer
	directory UserDirectory
}

// NewGuard constructs a Guard wired to the given signer and user directory.
func NewGuard(signer *Signer, directory UserDirectory) *Guard {
	return &Guard{
		signer:    signer,
		directory: directory,
	}
}

// CurrentUser resolves a session token to its user record.
//
// Returns ok == false for an absent or invalid token, for a subject that no
// longer exists, and for a subject whose status is not active — an
// authenticated-but-deactivated account is treated identically to "not logged
// in". Directory lookup failures also resolve to false: access fails closed.
func (g *Guard) CurrentUser(ctx context.Context, token string) (models.User, bool) {
	if token == "" {
		return models.User{}, false
	}

	userID, ok := g.signer.Unsign(token)
	if !ok {
		return models.User{}, false
	}

	user, err := g.directory.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Int64("user_id", userID).Msg("session subject lookup failed")
		return models.User{}, false
	}

	if !user.IsActive() {
		return models.User{}, false
	}

	return user, true
}

// Require resolves the token and enforces role membership.
//
// Returns [ErrUnauthenticated] when no active user resolves from the token,
// and [ErrUnauthorized] when one does but its role is not in allowedRoles.
// An empty allowedRoles set admits any authenticated active user. Unknown
// role values fail closed: membership is the only check, there is no default
// grant.
func (g *Guard) Require(ctx context.Context, token string, allowedRoles ...models.Role) (models.User, error) {
	user, ok := g.CurrentUser(ctx, token)
	if !ok {
		return models.User{}, ErrUnauthenticated
	}

	if len(allowedRoles) == 0 {
		return user, nil
	}

	for _, role := range allowedRoles {
		if user.Role == role {
			return user, nil
		}
	}

	return models.User{}, ErrUnauthorized
}
