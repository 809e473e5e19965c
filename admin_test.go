package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/snackashi/portfolio/internal/config"
)

func TestAdminRequiresLogin(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/admin/dashboard", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/admin/login", rec.Header().Get("Location"))
}

func TestAdminLogin(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPost, "/admin/login", url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "Invalid credentials")

	rec = env.do(t, http.MethodPost, "/admin/login", url.Values{
		"username": {"admin"},
		"password": {"secret"},
	})
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	var token *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == adminCookie {
			token = c
		}
	}
	require.NotNil(t, token)

	for _, path := range []string{"/admin/dashboard", "/admin/api/stats", "/admin/export/stats"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(token)
		rec = httptest.NewRecorder()
		env.engine.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
	require.True(t, strings.Contains(rec.Header().Get("Content-Disposition"), "portfolio-stats.json"))
}

func TestAdminAuthDisabledWithoutPassword(t *testing.T) {
	require.Equal(t, gin.TestMode, gin.Mode())

	a, err := newAdminAuth(config.AdminConfig{}, nil)
	require.NoError(t, err)
	require.False(t, a.enabled())
	require.False(t, a.check("", ""))
	require.False(t, a.check("admin", "admin123"))
}

func TestPrivacyPage(t *testing.T) {
	env := newTestEnv(t, nil)
	rec := env.do(t, http.MethodGet, "/privacy", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "Privacy Policy")
}
