package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/models"
)

// catalogRepository is the PostgreSQL-backed implementation of
// [CatalogRepository]: suite types and amenities.
type catalogRepository struct {
	*DB
	logger *logger.Logger
}

// NewCatalogRepository constructs a [CatalogRepository] backed by the
// provided database connection and logger.
func NewCatalogRepository(db *DB, logger *logger.Logger) CatalogRepository {
	return &catalogRepository{
		DB:     db,
		logger: logger,
	}
}

// ListSuiteTypes returns every suite type ordered by position, then name.
func (c *catalogRepository) ListSuiteTypes(ctx context.Context) ([]models.SuiteType, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, listSuiteTypes)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.ListSuiteTypes").Msg("failed to execute query for listing suite types")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	types := make([]models.SuiteType, 0, 10)

	for rows.Next() {
		var st models.SuiteType
		if scanErr := rows.Scan(&st.ID, &st.Name, &st.Description, &st.Position); scanErr != nil {
			log.Err(scanErr).Str("func", "catalogRepository.ListSuiteTypes").Msg("failed to scan suite type row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		types = append(types, st)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "catalogRepository.ListSuiteTypes").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return types, nil
}

// CreateSuiteType persists a new suite type and returns it with the
// server-assigned ID.
func (c *catalogRepository) CreateSuiteType(ctx context.Context, st models.SuiteType) (models.SuiteType, error) {
	log := logger.FromContext(ctx)

	row := c.DB.QueryRowContext(ctx, createSuiteType, st.Name, st.Description, st.Position)
	if err := row.Scan(&st.ID); err != nil {
		log.Err(err).Str("func", "catalogRepository.CreateSuiteType").Msg("failed to insert suite type")
		return models.SuiteType{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return st, nil
}

// UpdateSuiteType overwrites all editable fields of a suite type.
//
// Returns [ErrSuiteTypeNotFound] when no row matches.
func (c *catalogRepository) UpdateSuiteType(ctx context.Context, st models.SuiteType) (models.SuiteType, error) {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, updateSuiteType, st.Name, st.Description, st.Position, st.ID)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.UpdateSuiteType").
			Int64("type_id", st.ID).
			Msg("failed to execute update query")
		return models.SuiteType{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.SuiteType{}, ErrSuiteTypeNotFound
	}

	return st, nil
}

// DeleteSuiteType removes a suite type. Suites referencing it keep their rows
// with the type detached (ON DELETE SET NULL).
//
// Returns [ErrSuiteTypeNotFound] when nothing was deleted.
func (c *catalogRepository) DeleteSuiteType(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, deleteSuiteType, id)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.DeleteSuiteType").
			Int64("type_id", id).
			Msg("failed to execute delete query")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrSuiteTypeNotFound
	}

	return nil
}

// ListAmenities returns every amenity ordered by name.
func (c *catalogRepository) ListAmenities(ctx context.Context) ([]models.Amenity, error) {
	log := logger.FromContext(ctx)

	rows, err := c.DB.QueryContext(ctx, listAmenities)
	if err != nil {
		log.Err(err).Str("func", "catalogRepository.ListAmenities").Msg("failed to execute query for listing amenities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	amenities := make([]models.Amenity, 0, 10)

	for rows.Next() {
		var a models.Amenity
		if scanErr := rows.Scan(&a.ID, &a.Name, &a.Icon); scanErr != nil {
			log.Err(scanErr).Str("func", "catalogRepository.ListAmenities").Msg("failed to scan amenity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		amenities = append(amenities, a)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "catalogRepository.ListAmenities").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return amenities, nil
}

// CreateAmenity persists a new amenity and returns it with the
// server-assigned ID.
func (c *catalogRepository) CreateAmenity(ctx context.Context, a models.Amenity) (models.Amenity, error) {
	log := logger.FromContext(ctx)

	row := c.DB.QueryRowContext(ctx, createAmenity, a.Name, a.Icon)
	if err := row.Scan(&a.ID); err != nil {
		log.Err(err).Str("func", "catalogRepository.CreateAmenity").Msg("failed to insert amenity")
		return models.Amenity{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return a, nil
}

// UpdateAmenity overwrites all editable fields of an amenity.
//
// Returns [ErrAmenityNotFound] when no row matches.
func (c *catalogRepository) UpdateAmenity(ctx context.Context, a models.Amenity) (models.Amenity, error) {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, updateAmenity, a.Name, a.Icon, a.ID)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.UpdateAmenity").
			Int64("amenity_id", a.ID).
			Msg("failed to execute update query")
		return models.Amenity{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.Amenity{}, ErrAmenityNotFound
	}

	return a, nil
}

// DeleteAmenity removes an amenity and, via ON DELETE CASCADE, all suite
// links to it.
//
// Returns [ErrAmenityNotFound] when nothing was deleted. A foreign-key
// violation is mapped the same way since links cascade; any other driver
// error is wrapped.
func (c *catalogRepository) DeleteAmenity(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := c.DB.ExecContext(ctx, deleteAmenity, id)
	if err != nil {
		log.Err(err).
			Str("func", "catalogRepository.DeleteAmenity").
			Int64("amenity_id", id).
			Msg("failed to execute delete query")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return ErrAmenityNotFound
		default:
			return fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrAmenityNotFound
	}

	return nil
}
