package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/models"
)

// siteConfigRepository is the PostgreSQL-backed implementation of
// [SiteConfigRepository]. The site_config table holds a single row with
// id = 1; writes go through an upsert so the row materializes on first save.
type siteConfigRepository struct {
	*DB
	logger *logger.Logger
}

// NewSiteConfigRepository constructs a [SiteConfigRepository] backed by the
// provided database connection and logger.
func NewSiteConfigRepository(db *DB, logger *logger.Logger) SiteConfigRepository {
	return &siteConfigRepository{
		DB:     db,
		logger: logger,
	}
}

// GetSiteConfig retrieves the singleton site content row.
//
// Returns [ErrSiteConfigNotFound] when the row has never been saved.
func (s *siteConfigRepository) GetSiteConfig(ctx context.Context) (models.SiteConfig, error) {
	log := logger.FromContext(ctx)

	var cfg models.SiteConfig
	row := s.DB.QueryRowContext(ctx, getSiteConfig)

	err := row.Scan(
		&cfg.ID,
		&cfg.SiteName,
		&cfg.Tagline,
		&cfg.Address,
		&cfg.WhatsApp,
		&cfg.Phone,
		&cfg.Email,
		&cfg.PrimaryColor,
		&cfg.MapsEmbedURL,
		&cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SiteConfig{}, ErrSiteConfigNotFound
		}
		log.Err(err).Str("func", "siteConfigRepository.GetSiteConfig").Msg("failed to scan site config row")
		return models.SiteConfig{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return cfg, nil
}

// UpsertSiteConfig saves the singleton row and returns the canonical stored
// version including the refreshed UpdatedAt.
func (s *siteConfigRepository) UpsertSiteConfig(ctx context.Context, cfg models.SiteConfig) (models.SiteConfig, error) {
	log := logger.FromContext(ctx)

	var saved models.SiteConfig
	row := s.DB.QueryRowContext(ctx, upsertSiteConfig,
		cfg.SiteName, cfg.Tagline, cfg.Address, cfg.WhatsApp,
		cfg.Phone, cfg.Email, cfg.PrimaryColor, cfg.MapsEmbedURL,
	)

	err := row.Scan(
		&saved.ID,
		&saved.SiteName,
		&saved.Tagline,
		&saved.Address,
		&saved.WhatsApp,
		&saved.Phone,
		&saved.Email,
		&saved.PrimaryColor,
		&saved.MapsEmbedURL,
		&saved.UpdatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "siteConfigRepository.UpsertSiteConfig").Msg("failed to upsert site config")
		return models.SiteConfig{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return saved, nil
}
