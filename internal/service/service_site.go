package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/internal/store"
	"github.com/motelbelavista/website/models"
)

// siteService is the concrete implementation of SiteService.
type siteService struct {
	siteConfigRepository store.SiteConfigRepository
	staffRepository      store.StaffRepository
	logger               *logger.Logger
}

// NewSiteService constructs a SiteService wired to the site config and staff
// repositories.
func NewSiteService(siteConfigRepository store.SiteConfigRepository, staffRepository store.StaffRepository, logger *logger.Logger) SiteService {
	return &siteService{
		siteConfigRepository: siteConfigRepository,
		staffRepository:      staffRepository,
		logger:               logger,
	}
}

// SiteConfig returns the stored site content. A missing row is not an error:
// the public site renders with empty contact fields until the editor saves.
func (s *siteService) SiteConfig(ctx context.Context) (models.SiteConfig, error) {
	cfg, err := s.siteConfigRepository.GetSiteConfig(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSiteConfigNotFound) {
			return models.SiteConfig{}, nil
		}
		return models.SiteConfig{}, err
	}
	return cfg, nil
}

// UpdateSiteConfig overwrites the singleton site content row.
func (s *siteService) UpdateSiteConfig(ctx context.Context, cfg models.SiteConfig) (models.SiteConfig, error) {
	log := logger.FromContext(ctx)

	saved, err := s.siteConfigRepository.UpsertSiteConfig(ctx, cfg)
	if err != nil {
		log.Err(err).Msg("site config update ended with error")
		return models.SiteConfig{}, fmt.Errorf("site config update ended with error: %w", err)
	}

	return saved, nil
}

// PublicStaff returns only active team entries, in display order.
func (s *siteService) PublicStaff(ctx context.Context) ([]models.StaffMember, error) {
	return s.staffRepository.ListStaff(ctx, true)
}

// ListStaff is the admin listing: every entry regardless of status.
func (s *siteService) ListStaff(ctx context.Context) ([]models.StaffMember, error) {
	return s.staffRepository.ListStaff(ctx, false)
}

// CreateStaff persists a new team entry. Status defaults to active.
func (s *siteService) CreateStaff(ctx context.Context, m models.StaffMember) (models.StaffMember, error) {
	if m.Name == "" {
		return models.StaffMember{}, ErrInvalidDataProvided
	}
	if m.Status == "" {
		m.Status = models.StatusActive
	}
	return s.staffRepository.CreateStaff(ctx, m)
}

// UpdateStaff overwrites a team entry.
func (s *siteService) UpdateStaff(ctx context.Context, m models.StaffMember) (models.StaffMember, error) {
	if m.Name == "" {
		return models.StaffMember{}, ErrInvalidDataProvided
	}
	return s.staffRepository.UpdateStaff(ctx, m)
}

// DeleteStaff removes a team entry by ID.
func (s *siteService) DeleteStaff(ctx context.Context, id int64) error {
	return s.staffRepository.DeleteStaff(ctx, id)
}
