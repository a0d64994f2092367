package service

import (
	"context"

	"github.com/motelbelavista/website/models"
)

// AuthService handles credential verification, session issuing and the
// first-run administrator bootstrap.
type AuthService interface {
	// Login verifies the credentials and returns the account together with a
	// signed session token. All failure modes surface as
	// [ErrInvalidCredentials].
	Login(ctx context.Context, creds models.Credentials) (models.User, string, error)

	// BootstrapAdmin creates the initial administrator account from
	// configuration when no admin exists yet. A no-op when bootstrap
	// credentials are absent or an admin is already present.
	BootstrapAdmin(ctx context.Context) error
}

// UserService is the admin-facing account management surface.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, newUser models.NewUser) (models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// CatalogService covers both the public catalog reads and the admin-facing
// catalog management operations.
type CatalogService interface {
	// PublicSuites returns active suites hydrated with amenities and photos.
	PublicSuites(ctx context.Context) ([]models.Suite, error)

	// PublicSuiteBySlug returns a single active suite hydrated with amenities
	// and photos. Inactive suites are reported as not found.
	PublicSuiteBySlug(ctx context.Context, slug string) (models.Suite, error)

	// PublicSuiteSlugs returns the slugs of all active suites, without
	// hydration. Used by the sitemap.
	PublicSuiteSlugs(ctx context.Context) ([]string, error)

	ListSuites(ctx context.Context, filter models.SuiteFilter) ([]models.Suite, error)
	CreateSuite(ctx context.Context, suite models.Suite, amenityIDs []int64) (models.Suite, error)
	UpdateSuite(ctx context.Context, update models.SuiteUpdate) (models.Suite, error)
	DeleteSuite(ctx context.Context, id int64) error

	AddPhoto(ctx context.Context, photo models.Photo) (models.Photo, error)
	RemovePhoto(ctx context.Context, id int64) error

	ListSuiteTypes(ctx context.Context) ([]models.SuiteType, error)
	CreateSuiteType(ctx context.Context, st models.SuiteType) (models.SuiteType, error)
	UpdateSuiteType(ctx context.Context, st models.SuiteType) (models.SuiteType, error)
	DeleteSuiteType(ctx context.Context, id int64) error

	ListAmenities(ctx context.Context) ([]models.Amenity, error)
	CreateAmenity(ctx context.Context, a models.Amenity) (models.Amenity, error)
	UpdateAmenity(ctx context.Context, a models.Amenity) (models.Amenity, error)
	DeleteAmenity(ctx context.Context, id int64) error
}

// SiteService covers the editor-managed site content: the singleton config
// row and the published team entries.
type SiteService interface {
	// SiteConfig returns the stored site content, or a zero-value config when
	// none has been saved yet.
	SiteConfig(ctx context.Context) (models.SiteConfig, error)
	UpdateSiteConfig(ctx context.Context, cfg models.SiteConfig) (models.SiteConfig, error)

	// PublicStaff returns only published team entries.
	PublicStaff(ctx context.Context) ([]models.StaffMember, error)
	ListStaff(ctx context.Context) ([]models.StaffMember, error)
	CreateStaff(ctx context.Context, m models.StaffMember) (models.StaffMember, error)
	UpdateStaff(ctx context.Context, m models.StaffMember) (models.StaffMember, error)
	DeleteStaff(ctx context.Context, id int64) error
}

// GalleryService lists the on-disk apartment photo gallery.
type GalleryService interface {
	GalleryImages(ctx context.Context) ([]models.GalleryImage, error)
}
