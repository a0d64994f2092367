package store

import (
	"context"

	"github.com/motelbelavista/website/models"
)

// UserRepository persists back-office accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
	CountAdmins(ctx context.Context) (int64, error)
}

// SuiteRepository persists the suite catalog: suites, their amenity links and
// their photos.
type SuiteRepository interface {
	ListSuites(ctx context.Context, filter models.SuiteFilter) ([]models.Suite, error)
	FindSuiteByID(ctx context.Context, id int64) (models.Suite, error)
	FindSuiteBySlug(ctx context.Context, slug string) (models.Suite, error)
	CreateSuite(ctx context.Context, suite models.Suite) (models.Suite, error)
	UpdateSuite(ctx context.Context, update models.SuiteUpdate) (models.Suite, error)
	DeleteSuite(ctx context.Context, id int64) error

	ReplaceSuiteAmenities(ctx context.Context, suiteID int64, amenityIDs []int64) error
	ListSuiteAmenities(ctx context.Context, suiteID int64) ([]models.Amenity, error)

	ListPhotos(ctx context.Context, suiteID int64) ([]models.Photo, error)
	CreatePhoto(ctx context.Context, photo models.Photo) (models.Photo, error)
	DeletePhoto(ctx context.Context, id int64) error
}

// CatalogRepository persists the catalog reference data: suite types and
// amenities.
type CatalogRepository interface {
	ListSuiteTypes(ctx context.Context) ([]models.SuiteType, error)
	CreateSuiteType(ctx context.Context, st models.SuiteType) (models.SuiteType, error)
	UpdateSuiteType(ctx context.Context, st models.SuiteType) (models.SuiteType, error)
	DeleteSuiteType(ctx context.Context, id int64) error

	ListAmenities(ctx context.Context) ([]models.Amenity, error)
	CreateAmenity(ctx context.Context, a models.Amenity) (models.Amenity, error)
	UpdateAmenity(ctx context.Context, a models.Amenity) (models.Amenity, error)
	DeleteAmenity(ctx context.Context, id int64) error
}

// StaffRepository persists the published team member entries.
type StaffRepository interface {
	ListStaff(ctx context.Context, activeOnly bool) ([]models.StaffMember, error)
	CreateStaff(ctx context.Context, m models.StaffMember) (models.StaffMember, error)
	UpdateStaff(ctx context.Context, m models.StaffMember) (models.StaffMember, error)
	DeleteStaff(ctx context.Context, id int64) error
}

// SiteConfigRepository persists the singleton site content row.
type SiteConfigRepository interface {
	GetSiteConfig(ctx context.Context) (models.SiteConfig, error)
	UpsertSiteConfig(ctx context.Context, cfg models.SiteConfig) (models.SiteConfig, error)
}
