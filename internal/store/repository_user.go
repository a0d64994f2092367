package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles back-office account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account and returns the fully populated
// [models.User] with the server-assigned ID.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.PasswordHash, user.Role, user.Status)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Role, &user.Status); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByID retrieves an account by its primary key.
//
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, findUserByID, id)
}

// FindUserByUsername retrieves an account by its unique username.
//
// Returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, findUserByUsername, username)
}

func (r *userRepository) findUser(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&found.ID, &found.Username, &found.PasswordHash, &found.Role, &found.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return found, nil
}

// ListUsers returns every account ordered by username.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.ListUsers").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute query for listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 10)

	for rows.Next() {
		var u models.User
		if scanErr := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.Status); scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, u)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*userRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// UpdateUser applies a partial update and returns the fresh row.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Zero affected rows → [ErrUserNotFound].
func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpdateUser").
			Int64("user_id", update.ID).
			Msg("failed to build update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.UpdateUser").
			Int64("user_id", update.ID).
			Msg("failed to execute update query")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUsernameAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.User{}, ErrUserNotFound
	}

	return r.FindUserByID(ctx, update.ID)
}

// DeleteUser removes an account by ID.
//
// Returns [ErrUserNotFound] when nothing was deleted.
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteUser, id)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.DeleteUser").
			Int64("user_id", id).
			Msg("failed to execute delete query")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// CountAdmins reports how many accounts carry the admin role. Used by the
// bootstrap step to decide whether the initial administrator must be created.
func (r *userRepository) CountAdmins(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := r.db.QueryRowContext(ctx, countAdmins, models.RoleAdmin)
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*userRepository.CountAdmins").Msg("failed to count admin accounts")
		return 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	return count, nil
}
