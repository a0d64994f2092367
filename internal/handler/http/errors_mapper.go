package http

import (
	"errors"
	"net/http"

	"github.com/motelbelavista/website/internal/auth"
	"github.com/motelbelavista/website/internal/service"
	"github.com/motelbelavista/website/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	auth.ErrUnauthenticated: http.StatusUnauthorized,
	auth.ErrUnauthorized:    http.StatusForbidden,

	store.ErrUserNotFound:          http.StatusNotFound,
	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrSuiteNotFound:         http.StatusNotFound,
	store.ErrSlugAlreadyExists:     http.StatusConflict,
	store.ErrSuiteTypeNotFound:     http.StatusNotFound,
	store.ErrAmenityNotFound:       http.StatusNotFound,
	store.ErrPhotoNotFound:         http.StatusNotFound,
	store.ErrStaffNotFound:         http.StatusNotFound,
	store.ErrSiteConfigNotFound:    http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
