package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/internal/mock"
	"github.com/motelbelavista/website/internal/service"
	"github.com/motelbelavista/website/internal/store"
	"github.com/motelbelavista/website/models"
)

func newCatalogService(t *testing.T) (service.CatalogService, *mock.MockSuiteRepository, *mock.MockCatalogRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	suites := mock.NewMockSuiteRepository(ctrl)
	catalog := mock.NewMockCatalogRepository(ctrl)
	return service.NewCatalogService(suites, catalog, logger.Nop()), suites, catalog
}

func TestCatalogService_PublicSuites_Hydrates(t *testing.T) {
	svc, suites, _ := newCatalogService(t)

	amenities := []models.Amenity{{ID: 1, Name: "Hidro"}}
	photos := []models.Photo{{ID: 10, SuiteID: 5, URL: "/fotos/luxo-1.jpg", Cover: true}}

	suites.EXPECT().ListSuites(gomock.Any(), models.SuiteFilter{Status: models.SuiteActive}).
		Return([]models.Suite{{ID: 5, Title: "Suíte Luxo", Slug: "suite-luxo", Status: models.SuiteActive}}, nil)
	suites.EXPECT().ListSuiteAmenities(gomock.Any(), int64(5)).Return(amenities, nil)
	suites.EXPECT().ListPhotos(gomock.Any(), int64(5)).Return(photos, nil)

	got, err := svc.PublicSuites(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, amenities, got[0].Amenities)
	assert.Equal(t, photos, got[0].Photos)
}

func TestCatalogService_PublicSuiteSlugs_SkipsHydration(t *testing.T) {
	svc, suites, _ := newCatalogService(t)

	// no ListSuiteAmenities/ListPhotos expectations: a slug listing must not
	// fan out into per-suite reads
	suites.EXPECT().ListSuites(gomock.Any(), models.SuiteFilter{Status: models.SuiteActive}).
		Return([]models.Suite{
			{ID: 5, Slug: "suite-luxo", Status: models.SuiteActive},
			{ID: 6, Slug: "suite-master-hidro", Status: models.SuiteActive},
		}, nil)

	slugs, err := svc.PublicSuiteSlugs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"suite-luxo", "suite-master-hidro"}, slugs)
}

func TestCatalogService_PublicSuiteBySlug_InactiveIsNotFound(t *testing.T) {
	svc, suites, _ := newCatalogService(t)

	suites.EXPECT().FindSuiteBySlug(gomock.Any(), "suite-luxo").
		Return(models.Suite{ID: 5, Slug: "suite-luxo", Status: models.SuiteInactive}, nil)

	_, err := svc.PublicSuiteBySlug(context.Background(), "suite-luxo")
	assert.ErrorIs(t, err, store.ErrSuiteNotFound)
}

func TestCatalogService_CreateSuite_DerivesSlugAndLinksAmenities(t *testing.T) {
	svc, suites, _ := newCatalogService(t)

	gomock.InOrder(
		suites.EXPECT().CreateSuite(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s models.Suite) (models.Suite, error) {
				assert.Equal(t, "suite-master-hidro", s.Slug)
				assert.Equal(t, models.SuiteActive, s.Status)
				s.ID = 9
				return s, nil
			},
		),
		suites.EXPECT().ReplaceSuiteAmenities(gomock.Any(), int64(9), []int64{1, 2}).Return(nil),
		suites.EXPECT().ListSuiteAmenities(gomock.Any(), int64(9)).Return([]models.Amenity{{ID: 1}, {ID: 2}}, nil),
		suites.EXPECT().ListPhotos(gomock.Any(), int64(9)).Return(nil, nil),
	)

	created, err := svc.CreateSuite(context.Background(), models.Suite{Title: "Suíte Master Hidro"}, []int64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, int64(9), created.ID)
	assert.Len(t, created.Amenities, 2)
}

func TestCatalogService_CreateSuite_EmptyTitle(t *testing.T) {
	svc, _, _ := newCatalogService(t)

	_, err := svc.CreateSuite(context.Background(), models.Suite{}, nil)
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestCatalogService_UpdateSuite_ReplacesAmenitiesOnlyWhenProvided(t *testing.T) {
	t.Run("amenities provided", func(t *testing.T) {
		svc, suites, _ := newCatalogService(t)

		gomock.InOrder(
			suites.EXPECT().UpdateSuite(gomock.Any(), gomock.Any()).Return(models.Suite{ID: 5}, nil),
			suites.EXPECT().ReplaceSuiteAmenities(gomock.Any(), int64(5), []int64{}).Return(nil),
			suites.EXPECT().ListSuiteAmenities(gomock.Any(), int64(5)).Return(nil, nil),
			suites.EXPECT().ListPhotos(gomock.Any(), int64(5)).Return(nil, nil),
		)

		// empty non-nil slice clears the link set
		_, err := svc.UpdateSuite(context.Background(), models.SuiteUpdate{ID: 5, AmenityIDs: []int64{}})
		require.NoError(t, err)
	})

	t.Run("amenities omitted", func(t *testing.T) {
		svc, suites, _ := newCatalogService(t)

		title := "Suíte Luxo"
		gomock.InOrder(
			suites.EXPECT().UpdateSuite(gomock.Any(), gomock.Any()).Return(models.Suite{ID: 5, Title: title}, nil),
			suites.EXPECT().ListSuiteAmenities(gomock.Any(), int64(5)).Return(nil, nil),
			suites.EXPECT().ListPhotos(gomock.Any(), int64(5)).Return(nil, nil),
		)

		_, err := svc.UpdateSuite(context.Background(), models.SuiteUpdate{ID: 5, Title: &title})
		require.NoError(t, err)
	})
}

func TestCatalogService_AddPhoto_InvalidInput(t *testing.T) {
	svc, _, _ := newCatalogService(t)

	_, err := svc.AddPhoto(context.Background(), models.Photo{URL: "/fotos/x.jpg"})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	_, err = svc.AddPhoto(context.Background(), models.Photo{SuiteID: 5})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestCatalogService_CatalogCRUD_ValidatesNames(t *testing.T) {
	svc, _, catalog := newCatalogService(t)

	_, err := svc.CreateSuiteType(context.Background(), models.SuiteType{})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	_, err = svc.CreateAmenity(context.Background(), models.Amenity{})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	catalog.EXPECT().CreateAmenity(gomock.Any(), models.Amenity{Name: "Hidro"}).
		Return(models.Amenity{ID: 1, Name: "Hidro"}, nil)

	created, err := svc.CreateAmenity(context.Background(), models.Amenity{Name: "Hidro"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "Suíte Luxo", want: "suite-luxo"},
		{title: "Suíte Master c/ Hidro", want: "suite-master-c-hidro"},
		{title: "  Apartamento  Econômico  ", want: "apartamento-economico"},
		{title: "Número 10", want: "numero-10"},
		{title: "Ação & Emoção", want: "acao-emocao"},
		{title: "---", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Slugify(tt.title))
		})
	}
}
