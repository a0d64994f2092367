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

// suiteRepository is the PostgreSQL-backed implementation of
// [SuiteRepository]. It executes all suite, amenity-link and photo operations
// against the "suites", "suite_amenities" and "photos" tables using the
// embedded [*DB] connection.
type suiteRepository struct {
	*DB
	logger *logger.Logger
}

// NewSuiteRepository constructs a [SuiteRepository] backed by the provided
// database connection and logger.
func NewSuiteRepository(db *DB, logger *logger.Logger) SuiteRepository {
	return &suiteRepository{
		DB:     db,
		logger: logger,
	}
}

// ListSuites retrieves catalog rows matching the filter, ordered featured
// first, then position, then title. Amenities and photos are not attached;
// the service layer decides when to hydrate them.
func (p *suiteRepository) ListSuites(ctx context.Context, filter models.SuiteFilter) ([]models.Suite, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListSuitesQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "suiteRepository.ListSuites").
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "suiteRepository.ListSuites").
			Bool("retryable", p.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute query for listing suites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Suite, 0, 20)

	for rows.Next() {
		var item models.Suite

		scanErr := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Slug,
			&item.TypeID,
			&item.TypeName,
			&item.Description,
			&item.HourlyPrice,
			&item.OvernightPrice,
			&item.Featured,
			&item.Position,
			&item.Status,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "suiteRepository.ListSuites").
				Msg("failed to scan suite row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "suiteRepository.ListSuites").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// FindSuiteByID retrieves a single suite row by primary key.
//
// Returns [ErrSuiteNotFound] when no row matches.
func (p *suiteRepository) FindSuiteByID(ctx context.Context, id int64) (models.Suite, error) {
	return p.findSuite(ctx, findSuiteByID, id)
}

// FindSuiteBySlug retrieves a single suite row by its public URL slug.
//
// Returns [ErrSuiteNotFound] when no row matches.
func (p *suiteRepository) FindSuiteBySlug(ctx context.Context, slug string) (models.Suite, error) {
	return p.findSuite(ctx, findSuiteBySlug, slug)
}

func (p *suiteRepository) findSuite(ctx context.Context, query string, arg any) (models.Suite, error) {
	log := logger.FromContext(ctx)

	var suite models.Suite
	row := p.DB.QueryRowContext(ctx, query, arg)

	err := row.Scan(
		&suite.ID,
		&suite.Title,
		&suite.Slug,
		&suite.TypeID,
		&suite.TypeName,
		&suite.Description,
		&suite.HourlyPrice,
		&suite.OvernightPrice,
		&suite.Featured,
		&suite.Position,
		&suite.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Suite{}, ErrSuiteNotFound
		}
		log.Err(err).Str("func", "suiteRepository.findSuite").Msg("failed to scan suite row")
		return models.Suite{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return suite, nil
}

// CreateSuite persists a new suite row and returns it with the
// server-assigned ID.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrSlugAlreadyExists].
func (p *suiteRepository) CreateSuite(ctx context.Context, suite models.Suite) (models.Suite, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, createSuite,
		suite.Title, suite.Slug, nullableID(suite.TypeID), suite.Description,
		suite.HourlyPrice, suite.OvernightPrice, suite.Featured, suite.Position, suite.Status,
	)

	if err := row.Scan(&suite.ID); err != nil {
		log.Err(err).
			Str("func", "suiteRepository.CreateSuite").
			Str("slug", suite.Slug).
			Msg("failed to insert suite")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Suite{}, ErrSlugAlreadyExists
		default:
			return models.Suite{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return suite, nil
}

// UpdateSuite applies a partial update and returns the fresh row. A request
// carrying only AmenityIDs skips the UPDATE entirely; the caller replaces the
// amenity links through [ReplaceSuiteAmenities].
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrSlugAlreadyExists].
//   - Zero affected rows → [ErrSuiteNotFound].
func (p *suiteRepository) UpdateSuite(ctx context.Context, update models.SuiteUpdate) (models.Suite, error) {
	log := logger.FromContext(ctx)

	if !suiteUpdateHasColumns(update) {
		return p.FindSuiteByID(ctx, update.ID)
	}

	query, args, err := buildUpdateSuiteQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "suiteRepository.UpdateSuite").
			Int64("suite_id", update.ID).
			Msg("failed to build update query")
		return models.Suite{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "suiteRepository.UpdateSuite").
			Int64("suite_id", update.ID).
			Msg("failed to execute update query")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Suite{}, ErrSlugAlreadyExists
		default:
			return models.Suite{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return models.Suite{}, ErrSuiteNotFound
	}

	return p.FindSuiteByID(ctx, update.ID)
}

// DeleteSuite removes a suite row. Amenity links and photos go with it via
// ON DELETE CASCADE.
//
// Returns [ErrSuiteNotFound] when nothing was deleted.
func (p *suiteRepository) DeleteSuite(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deleteSuite, id)
	if err != nil {
		log.Err(err).
			Str("func", "suiteRepository.DeleteSuite").
			Int64("suite_id", id).
			Msg("failed to execute delete query")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrSuiteNotFound
	}

	return nil
}

// ReplaceSuiteAmenities swaps the full amenity link set of a suite inside a
// single transaction: delete everything, re-insert the new set.
func (p *suiteRepository) ReplaceSuiteAmenities(ctx context.Context, suiteID int64, amenityIDs []int64) error {
	log := logger.FromContext(ctx)

	// begin transaction
	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "suiteRepository.ReplaceSuiteAmenities").Msg("error during opening transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteSuiteAmenities, suiteID); err != nil {
		log.Err(err).Str("func", "suiteRepository.ReplaceSuiteAmenities").Msg("failed to delete existing amenity links")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if len(amenityIDs) > 0 {
		stmt, err := tx.PrepareContext(ctx, insertSuiteAmenity)
		if err != nil {
			log.Err(err).Str("func", "suiteRepository.ReplaceSuiteAmenities").Msg("error during preparing statement")
			return err
		}
		defer stmt.Close()

		for idx, amenityID := range amenityIDs {
			log.Debug().
				Str("func", "suiteRepository.ReplaceSuiteAmenities").
				Int("iteration", idx).
				Int64("amenity_id", amenityID).
				Msg("linking amenity to suite")

			if _, execErr := stmt.ExecContext(ctx, suiteID, amenityID); execErr != nil {
				log.Err(execErr).Str("func", "suiteRepository.ReplaceSuiteAmenities").Msg("error executing prepared statement for amenity link")
				return execErr
			}
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

// ListSuiteAmenities returns the amenities linked to a suite, ordered by name.
func (p *suiteRepository) ListSuiteAmenities(ctx context.Context, suiteID int64) ([]models.Amenity, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, listSuiteAmenities, suiteID)
	if err != nil {
		log.Err(err).
			Str("func", "suiteRepository.ListSuiteAmenities").
			Int64("suite_id", suiteID).
			Msg("failed to execute query for listing suite amenities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	amenities := make([]models.Amenity, 0, 10)

	for rows.Next() {
		var a models.Amenity
		if scanErr := rows.Scan(&a.ID, &a.Name, &a.Icon); scanErr != nil {
			log.Err(scanErr).Str("func", "suiteRepository.ListSuiteAmenities").Msg("failed to scan amenity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		amenities = append(amenities, a)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "suiteRepository.ListSuiteAmenities").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return amenities, nil
}

// ListPhotos returns a suite's photos, cover first, then editor position.
func (p *suiteRepository) ListPhotos(ctx context.Context, suiteID int64) ([]models.Photo, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, listPhotos, suiteID)
	if err != nil {
		log.Err(err).
			Str("func", "suiteRepository.ListPhotos").
			Int64("suite_id", suiteID).
			Msg("failed to execute query for listing photos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	photos := make([]models.Photo, 0, 10)

	for rows.Next() {
		var photo models.Photo
		if scanErr := rows.Scan(&photo.ID, &photo.SuiteID, &photo.URL, &photo.Caption, &photo.Position, &photo.Cover); scanErr != nil {
			log.Err(scanErr).Str("func", "suiteRepository.ListPhotos").Msg("failed to scan photo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		photos = append(photos, photo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "suiteRepository.ListPhotos").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return photos, nil
}

// CreatePhoto attaches a photo to a suite and returns it with the
// server-assigned ID.
func (p *suiteRepository) CreatePhoto(ctx context.Context, photo models.Photo) (models.Photo, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, createPhoto, photo.SuiteID, photo.URL, photo.Caption, photo.Position, photo.Cover)
	if err := row.Scan(&photo.ID); err != nil {
		log.Err(err).
			Str("func", "suiteRepository.CreatePhoto").
			Int64("suite_id", photo.SuiteID).
			Msg("failed to insert photo")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Photo{}, ErrSuiteNotFound
		default:
			return models.Photo{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return photo, nil
}

// DeletePhoto removes a photo by ID.
//
// Returns [ErrPhotoNotFound] when nothing was deleted.
func (p *suiteRepository) DeletePhoto(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deletePhoto, id)
	if err != nil {
		log.Err(err).
			Str("func", "suiteRepository.DeletePhoto").
			Int64("photo_id", id).
			Msg("failed to execute delete query")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrPhotoNotFound
	}

	return nil
}

// suiteUpdateHasColumns reports whether the update touches any suites column.
func suiteUpdateHasColumns(update models.SuiteUpdate) bool {
	return update.Title != nil ||
		update.Slug != nil ||
		update.TypeID != nil ||
		update.Description != nil ||
		update.HourlyPrice != nil ||
		update.OvernightPrice != nil ||
		update.Featured != nil ||
		update.Position != nil ||
		update.Status != nil
}

// nullableID maps a zero id to SQL NULL so optional foreign keys stay unset.
func nullableID(id int64) any {
	if id == 0 {
		return nil
	}
	return id
}
