package store

import (
	"context"
	"fmt"

	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/models"
)

// staffRepository is the PostgreSQL-backed implementation of
// [StaffRepository].
type staffRepository struct {
	*DB
	logger *logger.Logger
}

// NewStaffRepository constructs a [StaffRepository] backed by the provided
// database connection and logger.
func NewStaffRepository(db *DB, logger *logger.Logger) StaffRepository {
	return &staffRepository{
		DB:     db,
		logger: logger,
	}
}

// ListStaff returns team member entries ordered by position, then name.
// When activeOnly is set, only published entries are returned — this is the
// public read path.
func (s *staffRepository) ListStaff(ctx context.Context, activeOnly bool) ([]models.StaffMember, error) {
	log := logger.FromContext(ctx)

	query := listStaff
	if activeOnly {
		query = listActiveStaff
	}

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "staffRepository.ListStaff").Msg("failed to execute query for listing staff")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	members := make([]models.StaffMember, 0, 10)

	for rows.Next() {
		var m models.StaffMember
		if scanErr := rows.Scan(&m.ID, &m.Name, &m.JobTitle, &m.Phone, &m.WhatsApp, &m.Email, &m.Status, &m.Position); scanErr != nil {
			log.Err(scanErr).Str("func", "staffRepository.ListStaff").Msg("failed to scan staff row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		members = append(members, m)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "staffRepository.ListStaff").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return members, nil
}

// CreateStaff persists a new team member entry and returns it with the
// server-assigned ID.
func (s *staffRepository) CreateStaff(ctx context.Context, m models.StaffMember) (models.StaffMember, error) {
	log := logger.FromContext(ctx)

	row := s.DB.QueryRowContext(ctx, createStaff, m.Name, m.JobTitle, m.Phone, m.WhatsApp, m.Email, m.Status, m.Position)
	if err := row.Scan(&m.ID); err != nil {
		log.Err(err).Str("func", "staffRepository.CreateStaff").Msg("failed to insert staff member")
		return models.StaffMember{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return m, nil
}

// UpdateStaff overwrites all editable fields of a team member entry.
//
// Returns [ErrStaffNotFound] when no row matches.
func (s *staffRepository) UpdateStaff(ctx context.Context, m models.StaffMember) (models.StaffMember, error) {
	log := logger.FromContext(ctx)

	result, err := s.DB.ExecContext(ctx, updateStaff, m.Name, m.JobTitle, m.Phone, m.WhatsApp, m.Email, m.Status, m.Position, m.ID)
	if err != nil {
		log.Err(err).
			Str("func", "staffRepository.UpdateStaff").
			Int64("staff_id", m.ID).
			Msg("failed to execute update query")
		return models.StaffMember{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.StaffMember{}, ErrStaffNotFound
	}

	return m, nil
}

// DeleteStaff removes a team member entry by ID.
//
// Returns [ErrStaffNotFound] when nothing was deleted.
func (s *staffRepository) DeleteStaff(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := s.DB.ExecContext(ctx, deleteStaff, id)
	if err != nil {
		log.Err(err).
			Str("func", "staffRepository.DeleteStaff").
			Int64("staff_id", id).
			Msg("failed to execute delete query")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrStaffNotFound
	}

	return nil
}
