// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Motel Bela Vista

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/motelbelavista/website/internal/auth"
	"github.com/motelbelavista/website/internal/config"
	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/internal/store"
	"github.com/motelbelavista/website/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against the stored PBKDF2 hashes, issues signed
// session tokens, and creates the bootstrap administrator on first run.
type authService struct {
	// userRepository is the data-access layer used to look up and create accounts.
	userRepository store.UserRepository

	// signer issues HMAC session tokens after a successful verification.
	signer *auth.Signer

	// adminUser and adminPass are the optional bootstrap credentials from
	// configuration. Both must be set for the bootstrap step to run.
	adminUser string
	adminPass string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and session signer, with bootstrap credentials from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, signer *auth.Signer, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		signer:         signer,
		adminUser:      cfg.AdminUser,
		adminPass:      cfg.AdminPass,
		logger:         logger,
	}
}

// Login authenticates an account and issues a session token.
//
// Unknown usernames, disabled accounts and wrong passwords all collapse into
// [ErrInvalidCredentials]: the caller learns nothing about which check
// failed. Details land in the log at debug level only.
//
// Returns the authenticated user and the signed token, or:
//   - ErrInvalidDataProvided if Username or Password is empty.
//   - ErrInvalidCredentials on any verification failure.
//   - A wrapped error if token signing fails (misconfigured secret).
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, string, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		return models.User{}, "", ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		log.Debug().Err(err).Str("username", creds.Username).Msg("login: user lookup failed")
		return models.User{}, "", ErrInvalidCredentials
	}

	if !foundUser.IsActive() {
		log.Debug().Int64("id", foundUser.ID).Msg("login: account is inactive")
		return models.User{}, "", ErrInvalidCredentials
	}

	if !auth.VerifyPassword(creds.Password, foundUser.PasswordHash) {
		log.Debug().Int64("id", foundUser.ID).Msg("login: wrong password")
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := a.signer.Sign(foundUser.ID)
	if err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("login: failed to sign session token")
		return models.User{}, "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return foundUser, token, nil
}

// BootstrapAdmin creates the initial administrator account from the
// configured credentials when no admin account exists yet.
//
// The step is skipped (without error) when bootstrap credentials are absent,
// when an admin already exists, or when the configured username is taken.
func (a *authService) BootstrapAdmin(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if a.adminUser == "" || a.adminPass == "" {
		log.Info().Msg("bootstrap admin credentials not configured, skipping")
		return nil
	}

	count, err := a.userRepository.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("bootstrap admin: counting admins failed: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(a.adminPass)
	if err != nil {
		return fmt.Errorf("bootstrap admin: hashing password failed: %w", err)
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     a.adminUser,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Status:       models.StatusActive,
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			// a concurrent start or a demoted admin holds the name; not fatal
			log.Warn().Str("username", a.adminUser).Msg("bootstrap admin: username already exists")
			return nil
		}
		return fmt.Errorf("bootstrap admin: creating account failed: %w", err)
	}

	log.Info().Int64("id", created.ID).Str("username", created.Username).Msg("bootstrap admin account created")
	return nil
}
