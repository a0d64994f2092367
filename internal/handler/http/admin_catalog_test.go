package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/motelbelavista/website/internal/service"
	"github.com/motelbelavista/website/internal/store"
	"github.com/motelbelavista/website/models"
)

func adminRequest(t *testing.T, method, target, body string) *http.Request {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionTokenFor(t, 1)})
	return req
}

func adminUser() models.User {
	return models.User{ID: 1, Username: "admin", Role: models.RoleAdmin, Status: models.StatusActive}
}

func TestCreateSuite_PassesAmenityIDs(t *testing.T) {
	var gotAmenityIDs []int64

	h := newTestHandler(t, &service.Services{
		CatalogService: &fakeCatalogService{
			createSuiteFn: func(_ context.Context, suite models.Suite, amenityIDs []int64) (models.Suite, error) {
				gotAmenityIDs = amenityIDs
				suite.ID = 9
				return suite, nil
			},
		},
	}, adminUser())
	router := h.Init()

	body := `{"title":"Suíte Luxo","hourly_price":"110.00","amenity_ids":[1,2,3]}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(t, http.MethodPost, "/api/admin/suites", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, []int64{1, 2, 3}, gotAmenityIDs)
	assert.Contains(t, rec.Body.String(), `"id":9`)
}

func TestCreateSuite_SlugConflict(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		CatalogService: &fakeCatalogService{
			createSuiteFn: func(context.Context, models.Suite, []int64) (models.Suite, error) {
				return models.Suite{}, store.ErrSlugAlreadyExists
			},
		},
	}, adminUser())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(t, http.MethodPost, "/api/admin/suites", `{"title":"Suíte Luxo"}`))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUpdateSuite_TakesIDFromPath(t *testing.T) {
	var gotUpdate models.SuiteUpdate

	h := newTestHandler(t, &service.Services{
		CatalogService: &fakeCatalogService{
			updateSuiteFn: func(_ context.Context, update models.SuiteUpdate) (models.Suite, error) {
				gotUpdate = update
				return models.Suite{ID: update.ID}, nil
			},
		},
	}, adminUser())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(t, http.MethodPut, "/api/admin/suites/5", `{"id":999,"featured":true}`))

	require.Equal(t, http.StatusOK, rec.Code)
	// the path parameter wins over any id smuggled into the body
	assert.Equal(t, int64(5), gotUpdate.ID)
	require.NotNil(t, gotUpdate.Featured)
	assert.True(t, *gotUpdate.Featured)
}

func TestUpdateSuite_InvalidID(t *testing.T) {
	h := newTestHandler(t, &service.Services{CatalogService: &fakeCatalogService{}}, adminUser())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(t, http.MethodPut, "/api/admin/suites/abc", `{}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteSuite_NotFound(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		CatalogService: &fakeCatalogService{
			deleteSuiteFn: func(context.Context, int64) error {
				return store.ErrSuiteNotFound
			},
		},
	}, adminUser())
	router := h.Init()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, adminRequest(t, http.MethodDelete, "/api/admin/suites/5", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSuiteFilterFromQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/admin/suites?status=inactive&type_id=3&featured=true", nil)

	filter := suiteFilterFromQuery(r)
	assert.Equal(t, models.SuiteInactive, filter.Status)
	assert.Equal(t, int64(3), filter.TypeID)
	assert.True(t, filter.FeaturedOnly)

	empty := suiteFilterFromQuery(httptest.NewRequest(http.MethodGet, "/api/admin/suites", nil))
	assert.Equal(t, models.SuiteFilter{}, empty)
}
