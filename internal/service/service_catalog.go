package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/internal/store"
	"github.com/motelbelavista/website/models"
)

// catalogService is the concrete implementation of CatalogService. Public
// reads hydrate suites with their amenities and photos; admin writes keep the
// amenity link set in sync.
type catalogService struct {
	suiteRepository   store.SuiteRepository
	catalogRepository store.CatalogRepository
	logger            *logger.Logger
}

// NewCatalogService constructs a CatalogService wired to the suite and
// catalog repositories.
func NewCatalogService(suiteRepository store.SuiteRepository, catalogRepository store.CatalogRepository, logger *logger.Logger) CatalogService {
	return &catalogService{
		suiteRepository:   suiteRepository,
		catalogRepository: catalogRepository,
		logger:            logger,
	}
}

// PublicSuites returns every active suite with amenities and photos attached,
// in catalog order (featured first, then position, then title).
func (c *catalogService) PublicSuites(ctx context.Context) ([]models.Suite, error) {
	suites, err := c.suiteRepository.ListSuites(ctx, models.SuiteFilter{Status: models.SuiteActive})
	if err != nil {
		return nil, err
	}

	for i := range suites {
		if err := c.hydrate(ctx, &suites[i]); err != nil {
			return nil, err
		}
	}

	return suites, nil
}

// PublicSuiteBySlug returns a single active suite with amenities and photos
// attached. An inactive suite is indistinguishable from a missing one.
func (c *catalogService) PublicSuiteBySlug(ctx context.Context, slug string) (models.Suite, error) {
	suite, err := c.suiteRepository.FindSuiteBySlug(ctx, slug)
	if err != nil {
		return models.Suite{}, err
	}

	if suite.Status != models.SuiteActive {
		return models.Suite{}, store.ErrSuiteNotFound
	}

	if err := c.hydrate(ctx, &suite); err != nil {
		return models.Suite{}, err
	}

	return suite, nil
}

// PublicSuiteSlugs returns the slugs of all active suites in catalog order.
// Bare rows are enough here, so the per-suite hydration is skipped.
func (c *catalogService) PublicSuiteSlugs(ctx context.Context) ([]string, error) {
	suites, err := c.suiteRepository.ListSuites(ctx, models.SuiteFilter{Status: models.SuiteActive})
	if err != nil {
		return nil, err
	}

	slugs := make([]string, 0, len(suites))
	for _, suite := range suites {
		slugs = append(slugs, suite.Slug)
	}

	return slugs, nil
}

// ListSuites is the admin listing: any status, hydrated.
func (c *catalogService) ListSuites(ctx context.Context, filter models.SuiteFilter) ([]models.Suite, error) {
	suites, err := c.suiteRepository.ListSuites(ctx, filter)
	if err != nil {
		return nil, err
	}

	for i := range suites {
		if err := c.hydrate(ctx, &suites[i]); err != nil {
			return nil, err
		}
	}

	return suites, nil
}

// CreateSuite persists a new suite. The slug is derived from the title when
// absent; status defaults to active. A non-empty amenityIDs set is linked in
// the same call.
func (c *catalogService) CreateSuite(ctx context.Context, suite models.Suite, amenityIDs []int64) (models.Suite, error) {
	log := logger.FromContext(ctx)

	if suite.Title == "" {
		return models.Suite{}, ErrInvalidDataProvided
	}
	if suite.Slug == "" {
		suite.Slug = Slugify(suite.Title)
	}
	if suite.Status == "" {
		suite.Status = models.SuiteActive
	}

	created, err := c.suiteRepository.CreateSuite(ctx, suite)
	if err != nil {
		log.Err(err).Str("slug", suite.Slug).Msg("suite creation ended with error")
		return models.Suite{}, fmt.Errorf("suite creation ended with error: %w", err)
	}

	if len(amenityIDs) > 0 {
		if err := c.suiteRepository.ReplaceSuiteAmenities(ctx, created.ID, amenityIDs); err != nil {
			log.Err(err).Int64("suite_id", created.ID).Msg("linking amenities ended with error")
			return models.Suite{}, fmt.Errorf("linking amenities ended with error: %w", err)
		}
	}

	if err := c.hydrate(ctx, &created); err != nil {
		return models.Suite{}, err
	}

	return created, nil
}

// UpdateSuite applies a partial suite update. A non-nil AmenityIDs replaces
// the full amenity link set, an empty non-nil slice clears it.
func (c *catalogService) UpdateSuite(ctx context.Context, update models.SuiteUpdate) (models.Suite, error) {
	log := logger.FromContext(ctx)

	updated, err := c.suiteRepository.UpdateSuite(ctx, update)
	if err != nil {
		log.Err(err).Int64("suite_id", update.ID).Msg("suite update ended with error")
		return models.Suite{}, fmt.Errorf("suite update ended with error: %w", err)
	}

	if update.AmenityIDs != nil {
		if err := c.suiteRepository.ReplaceSuiteAmenities(ctx, update.ID, update.AmenityIDs); err != nil {
			log.Err(err).Int64("suite_id", update.ID).Msg("replacing amenities ended with error")
			return models.Suite{}, fmt.Errorf("replacing amenities ended with error: %w", err)
		}
	}

	if err := c.hydrate(ctx, &updated); err != nil {
		return models.Suite{}, err
	}

	return updated, nil
}

// DeleteSuite removes a suite with its photos and amenity links.
func (c *catalogService) DeleteSuite(ctx context.Context, id int64) error {
	return c.suiteRepository.DeleteSuite(ctx, id)
}

// AddPhoto attaches a photo to a suite.
func (c *catalogService) AddPhoto(ctx context.Context, photo models.Photo) (models.Photo, error) {
	if photo.SuiteID == 0 || photo.URL == "" {
		return models.Photo{}, ErrInvalidDataProvided
	}
	return c.suiteRepository.CreatePhoto(ctx, photo)
}

// RemovePhoto deletes a photo by ID.
func (c *catalogService) RemovePhoto(ctx context.Context, id int64) error {
	return c.suiteRepository.DeletePhoto(ctx, id)
}

// ListSuiteTypes returns all suite types in editor order.
func (c *catalogService) ListSuiteTypes(ctx context.Context) ([]models.SuiteType, error) {
	return c.catalogRepository.ListSuiteTypes(ctx)
}

// CreateSuiteType persists a new suite type.
func (c *catalogService) CreateSuiteType(ctx context.Context, st models.SuiteType) (models.SuiteType, error) {
	if st.Name == "" {
		return models.SuiteType{}, ErrInvalidDataProvided
	}
	return c.catalogRepository.CreateSuiteType(ctx, st)
}

// UpdateSuiteType overwrites a suite type.
func (c *catalogService) UpdateSuiteType(ctx context.Context, st models.SuiteType) (models.SuiteType, error) {
	if st.Name == "" {
		return models.SuiteType{}, ErrInvalidDataProvided
	}
	return c.catalogRepository.UpdateSuiteType(ctx, st)
}

// DeleteSuiteType removes a suite type; suites referencing it are detached.
func (c *catalogService) DeleteSuiteType(ctx context.Context, id int64) error {
	return c.catalogRepository.DeleteSuiteType(ctx, id)
}

// ListAmenities returns all amenities ordered by name.
func (c *catalogService) ListAmenities(ctx context.Context) ([]models.Amenity, error) {
	return c.catalogRepository.ListAmenities(ctx)
}

// CreateAmenity persists a new amenity.
func (c *catalogService) CreateAmenity(ctx context.Context, a models.Amenity) (models.Amenity, error) {
	if a.Name == "" {
		return models.Amenity{}, ErrInvalidDataProvided
	}
	return c.catalogRepository.CreateAmenity(ctx, a)
}

// UpdateAmenity overwrites an amenity.
func (c *catalogService) UpdateAmenity(ctx context.Context, a models.Amenity) (models.Amenity, error) {
	if a.Name == "" {
		return models.Amenity{}, ErrInvalidDataProvided
	}
	return c.catalogRepository.UpdateAmenity(ctx, a)
}

// DeleteAmenity removes an amenity and its suite links.
func (c *catalogService) DeleteAmenity(ctx context.Context, id int64) error {
	return c.catalogRepository.DeleteAmenity(ctx, id)
}

// hydrate attaches amenities and photos to a bare suite row.
func (c *catalogService) hydrate(ctx context.Context, suite *models.Suite) error {
	amenities, err := c.suiteRepository.ListSuiteAmenities(ctx, suite.ID)
	if err != nil {
		return err
	}
	suite.Amenities = amenities

	photos, err := c.suiteRepository.ListPhotos(ctx, suite.ID)
	if err != nil {
		return err
	}
	suite.Photos = photos

	return nil
}

// Slugify turns a suite title into a URL slug: lowercase ASCII with hyphens,
// accents folded ("Suíte Luxo" → "suite-luxo").
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		r = foldAccent(r)
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '/':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// foldAccent maps the accented letters that appear in Portuguese titles to
// their ASCII base.
func foldAccent(r rune) rune {
	switch r {
	case 'á', 'à', 'â', 'ã', 'ä':
		return 'a'
	case 'é', 'è', 'ê', 'ë':
		return 'e'
	case 'í', 'ì', 'î', 'ï':
		return 'i'
	case 'ó', 'ò', 'ô', 'õ', 'ö':
		return 'o'
	case 'ú', 'ù', 'û', 'ü':
		return 'u'
	case 'ç':
		return 'c'
	case 'ñ':
		return 'n'
	}
	return r
}
