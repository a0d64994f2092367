package service_test

import (
	"context"
	"errors"
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

func newSiteService(t *testing.T) (service.SiteService, *mock.MockSiteConfigRepository, *mock.MockStaffRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	siteConfig := mock.NewMockSiteConfigRepository(ctrl)
	staff := mock.NewMockStaffRepository(ctrl)
	return service.NewSiteService(siteConfig, staff, logger.Nop()), siteConfig, staff
}

func TestSiteService_SiteConfig_MissingRowIsZeroValue(t *testing.T) {
	svc, siteConfig, _ := newSiteService(t)

	siteConfig.EXPECT().GetSiteConfig(gomock.Any()).Return(models.SiteConfig{}, store.ErrSiteConfigNotFound)

	cfg, err := svc.SiteConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.SiteConfig{}, cfg)
}

func TestSiteService_SiteConfig_StorageErrorPropagates(t *testing.T) {
	svc, siteConfig, _ := newSiteService(t)

	boom := errors.New("connection refused")
	siteConfig.EXPECT().GetSiteConfig(gomock.Any()).Return(models.SiteConfig{}, boom)

	_, err := svc.SiteConfig(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestSiteService_UpdateSiteConfig(t *testing.T) {
	svc, siteConfig, _ := newSiteService(t)

	in := models.SiteConfig{SiteName: "Motel Bela Vista", WhatsApp: "+55 11 99999-0000"}
	saved := in
	saved.ID = 1

	siteConfig.EXPECT().UpsertSiteConfig(gomock.Any(), in).Return(saved, nil)

	got, err := svc.UpdateSiteConfig(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestSiteService_StaffListings(t *testing.T) {
	svc, _, staff := newSiteService(t)

	published := []models.StaffMember{{ID: 1, Name: "Ana", Status: models.StatusActive}}
	all := append(published, models.StaffMember{ID: 2, Name: "Bruno", Status: models.StatusInactive})

	staff.EXPECT().ListStaff(gomock.Any(), true).Return(published, nil)
	staff.EXPECT().ListStaff(gomock.Any(), false).Return(all, nil)

	got, err := svc.PublicStaff(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = svc.ListStaff(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSiteService_CreateStaff_DefaultsStatus(t *testing.T) {
	svc, _, staff := newSiteService(t)

	staff.EXPECT().CreateStaff(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.StaffMember) (models.StaffMember, error) {
			assert.Equal(t, models.StatusActive, m.Status)
			m.ID = 3
			return m, nil
		},
	)

	created, err := svc.CreateStaff(context.Background(), models.StaffMember{Name: "Carla"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), created.ID)
}

func TestSiteService_StaffValidation(t *testing.T) {
	svc, _, _ := newSiteService(t)

	_, err := svc.CreateStaff(context.Background(), models.StaffMember{})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	_, err = svc.UpdateStaff(context.Background(), models.StaffMember{ID: 1})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}
