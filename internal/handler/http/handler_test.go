package http

import (
	"context"
	"testing"

	"github.com/motelbelavista/website/internal/auth"
	"github.com/motelbelavista/website/internal/config"
	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/internal/service"
	"github.com/motelbelavista/website/internal/store"
	"github.com/motelbelavista/website/models"
)

const testSessionSecret = "test-session-secret"

// ─────────────────────────────────────────────
// Fakes: service layer
// ─────────────────────────────────────────────

type fakeAuthService struct {
	loginFn func(ctx context.Context, creds models.Credentials) (models.User, string, error)
}

func (f *fakeAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, string, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, creds)
	}
	return models.User{}, "", service.ErrInvalidCredentials
}

func (f *fakeAuthService) BootstrapAdmin(context.Context) error { return nil }

type fakeCatalogService struct {
	service.CatalogService

	publicSuitesFn func(ctx context.Context) ([]models.Suite, error)
	publicBySlugFn func(ctx context.Context, slug string) (models.Suite, error)
	publicSlugsFn  func(ctx context.Context) ([]string, error)
	listSuitesFn   func(ctx context.Context, filter models.SuiteFilter) ([]models.Suite, error)
	createSuiteFn  func(ctx context.Context, suite models.Suite, amenityIDs []int64) (models.Suite, error)
	updateSuiteFn  func(ctx context.Context, update models.SuiteUpdate) (models.Suite, error)
	deleteSuiteFn  func(ctx context.Context, id int64) error
}

func (f *fakeCatalogService) PublicSuites(ctx context.Context) ([]models.Suite, error) {
	if f.publicSuitesFn != nil {
		return f.publicSuitesFn(ctx)
	}
	return nil, nil
}

func (f *fakeCatalogService) PublicSuiteBySlug(ctx context.Context, slug string) (models.Suite, error) {
	if f.publicBySlugFn != nil {
		return f.publicBySlugFn(ctx, slug)
	}
	return models.Suite{}, store.ErrSuiteNotFound
}

func (f *fakeCatalogService) PublicSuiteSlugs(ctx context.Context) ([]string, error) {
	if f.publicSlugsFn != nil {
		return f.publicSlugsFn(ctx)
	}
	return nil, nil
}

func (f *fakeCatalogService) ListSuites(ctx context.Context, filter models.SuiteFilter) ([]models.Suite, error) {
	if f.listSuitesFn != nil {
		return f.listSuitesFn(ctx, filter)
	}
	return nil, nil
}

func (f *fakeCatalogService) CreateSuite(ctx context.Context, suite models.Suite, amenityIDs []int64) (models.Suite, error) {
	if f.createSuiteFn != nil {
		return f.createSuiteFn(ctx, suite, amenityIDs)
	}
	return suite, nil
}

func (f *fakeCatalogService) UpdateSuite(ctx context.Context, update models.SuiteUpdate) (models.Suite, error) {
	if f.updateSuiteFn != nil {
		return f.updateSuiteFn(ctx, update)
	}
	return models.Suite{ID: update.ID}, nil
}

func (f *fakeCatalogService) DeleteSuite(ctx context.Context, id int64) error {
	if f.deleteSuiteFn != nil {
		return f.deleteSuiteFn(ctx, id)
	}
	return nil
}

type fakeSiteService struct {
	service.SiteService

	siteConfigFn func(ctx context.Context) (models.SiteConfig, error)
}

func (f *fakeSiteService) SiteConfig(ctx context.Context) (models.SiteConfig, error) {
	if f.siteConfigFn != nil {
		return f.siteConfigFn(ctx)
	}
	return models.SiteConfig{}, nil
}

type fakeGalleryService struct {
	imagesFn func(ctx context.Context) ([]models.GalleryImage, error)
}

func (f *fakeGalleryService) GalleryImages(ctx context.Context) ([]models.GalleryImage, error) {
	if f.imagesFn != nil {
		return f.imagesFn(ctx)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Fakes: guard directory
// ─────────────────────────────────────────────

// fakeDirectory is an in-memory auth.UserDirectory.
type fakeDirectory struct {
	users map[int64]models.User
}

func (d *fakeDirectory) FindUserByID(_ context.Context, id int64) (models.User, error) {
	user, ok := d.users[id]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return user, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestHandler(t *testing.T, services *service.Services, users ...models.User) *Handler {
	t.Helper()

	directory := &fakeDirectory{users: make(map[int64]models.User, len(users))}
	for _, u := range users {
		directory.users[u.ID] = u
	}

	signer := auth.NewSigner(testSessionSecret)
	guard := auth.NewGuard(signer, directory)

	if services == nil {
		services = &service.Services{}
	}

	// example.com matches the host httptest.NewRequest fabricates, so the
	// canonical-host middleware passes test requests through.
	cfg := &config.StructuredConfig{
		App: config.App{SiteURL: "http://example.com"},
	}

	return NewHandler(services, guard, cfg, logger.Nop())
}

// sessionTokenFor signs a session token the way the login endpoint would.
func sessionTokenFor(t *testing.T, userID int64) string {
	t.Helper()
	token, err := auth.NewSigner(testSessionSecret).Sign(userID)
	if err != nil {
		t.Fatalf("signing test token: %v", err)
	}
	return token
}
