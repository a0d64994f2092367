package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/motelbelavista/website/internal/auth"
	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/internal/mock"
	"github.com/motelbelavista/website/internal/service"
	"github.com/motelbelavista/website/models"
)

func TestUserService_CreateUser_DefaultsAndHashing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "porter", u.Username)
			assert.Equal(t, models.RoleStaff, u.Role)
			assert.Equal(t, models.StatusActive, u.Status)
			assert.True(t, auth.VerifyPassword("s3cr3t", u.PasswordHash))
			u.ID = 2
			return u, nil
		},
	)

	svc := service.NewUserService(repo, logger.Nop())

	created, err := svc.CreateUser(context.Background(), models.NewUser{Username: "porter", Password: "s3cr3t"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
}

func TestUserService_CreateUser_InvalidInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	svc := service.NewUserService(repo, logger.Nop())

	_, err := svc.CreateUser(context.Background(), models.NewUser{Username: "porter"})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	_, err = svc.CreateUser(context.Background(), models.NewUser{Password: "s3cr3t"})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestUserService_UpdateUser_HashesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, update models.UserUpdate) (models.User, error) {
			// plaintext never reaches the store
			assert.Nil(t, update.Password)
			require.NotNil(t, update.PasswordHash)
			assert.True(t, auth.VerifyPassword("new-pass", *update.PasswordHash))
			return models.User{ID: update.ID}, nil
		},
	)

	svc := service.NewUserService(repo, logger.Nop())

	pass := "new-pass"
	_, err := svc.UpdateUser(context.Background(), models.UserUpdate{ID: 3, Password: &pass})
	require.NoError(t, err)
}

func TestUserService_UpdateUser_NothingToChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockUserRepository(ctrl)
	svc := service.NewUserService(repo, logger.Nop())

	_, err := svc.UpdateUser(context.Background(), models.UserUpdate{ID: 3})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	empty := ""
	_, err = svc.UpdateUser(context.Background(), models.UserUpdate{ID: 3, Password: &empty})
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}
