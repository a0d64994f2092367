package service

import (
	"context"
	"fmt"

	"github.com/motelbelavista/website/internal/auth"
	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/internal/store"
	"github.com/motelbelavista/website/models"
)

// userService is the concrete implementation of UserService. All methods are
// reachable only through the admin-gated HTTP surface.
type userService struct {
	userRepository store.UserRepository
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// ListUsers returns every account.
func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return u.userRepository.ListUsers(ctx)
}

// CreateUser hashes the plaintext password and persists a new account.
// Role defaults to staff, status to active.
//
// Returns ErrInvalidDataProvided when username or password is empty, or a
// wrapped storage error (see store.ErrUsernameAlreadyExists).
func (u *userService) CreateUser(ctx context.Context, newUser models.NewUser) (models.User, error) {
	log := logger.FromContext(ctx)

	if newUser.Username == "" || newUser.Password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	role := newUser.Role
	if role == "" {
		role = models.RoleStaff
	}
	status := newUser.Status
	if status == "" {
		status = models.StatusActive
	}

	hash, err := auth.HashPassword(newUser.Password)
	if err != nil {
		log.Err(err).Msg("hashing password failed")
		return models.User{}, fmt.Errorf("hashing password failed: %w", err)
	}

	created, err := u.userRepository.CreateUser(ctx, models.User{
		Username:     newUser.Username,
		PasswordHash: hash,
		Role:         role,
		Status:       status,
	})
	if err != nil {
		log.Err(err).Str("username", newUser.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// UpdateUser applies a partial account update. A plaintext Password in the
// request is hashed here; the store only ever sees the hash.
//
// Returns ErrInvalidDataProvided when the update carries nothing to change.
func (u *userService) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.Password != nil {
		if *update.Password == "" {
			return models.User{}, ErrInvalidDataProvided
		}
		hash, err := auth.HashPassword(*update.Password)
		if err != nil {
			log.Err(err).Msg("hashing password failed")
			return models.User{}, fmt.Errorf("hashing password failed: %w", err)
		}
		update.PasswordHash = &hash
		update.Password = nil
	}

	if update.Username == nil && update.PasswordHash == nil && update.Role == nil && update.Status == nil {
		return models.User{}, ErrInvalidDataProvided
	}

	updated, err := u.userRepository.UpdateUser(ctx, update)
	if err != nil {
		log.Err(err).Int64("user_id", update.ID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteUser removes an account by ID.
func (u *userService) DeleteUser(ctx context.Context, id int64) error {
	return u.userRepository.DeleteUser(ctx, id)
}
