// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Motel Bela Vista

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
	"github.com/motelbelavista/website/models"
)

func sessionCookieFrom(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == sessionCookieName {
			return c
		}
	}
	return nil
}

func TestLogin_Success_SetsSessionCookie(t *testing.T) {
	user := models.User{ID: 7, Username: "reception", Role: models.RoleStaff, Status: models.StatusActive}

	h := newTestHandler(t, &service.Services{
		AuthService: &fakeAuthService{
			loginFn: func(_ context.Context, creds models.Credentials) (models.User, string, error) {
				assert.Equal(t, "reception", creds.Username)
				return user, "signed-token", nil
			},
		},
	})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"reception","password":"pass"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookieFrom(t, resp)
	require.NotNil(t, cookie, "session cookie must be set")
	assert.Equal(t, "signed-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.False(t, cookie.Secure, "plain HTTP test request must not mark the cookie Secure")

	// the password hash must never appear in the response body
	assert.NotContains(t, rec.Body.String(), "password_hash")
	assert.Contains(t, rec.Body.String(), `"username":"reception"`)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h := newTestHandler(t, &service.Services{
		AuthService: &fakeAuthService{}, // always rejects
	})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"reception","password":"wrong"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, sessionCookieFrom(t, resp))
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &fakeAuthService{}})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout_ClearsSessionCookie(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &fakeAuthService{}})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "whatever"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	resp := rec.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	cookie := sessionCookieFrom(t, resp)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestMe_ReturnsAuthenticatedUser(t *testing.T) {
	user := models.User{ID: 7, Username: "reception", Role: models.RoleStaff, Status: models.StatusActive}

	h := newTestHandler(t, &service.Services{}, user)
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: sessionTokenFor(t, user.ID)})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"reception"`)
	assert.NotContains(t, rec.Body.String(), "password_hash")
}

func TestMe_WithoutSession(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
