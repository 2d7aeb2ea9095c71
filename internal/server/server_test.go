package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomas/portfolio-cms/internal/config"
)

func testAuthConfig() *config.AuthConfig {
	return &config.AuthConfig{
		AdminPassword: "correct-horse",
		SessionTTL:    24 * time.Hour,
	}
}

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret:          strings.Repeat("s", 32),
		ExpirationHours: 24,
	}
}

func testServer(t *testing.T) *Server {
	t.Helper()
	s, err := newServer(Config{Port: 8080, DataDir: t.TempDir()}, testAuthConfig(), testJWTConfig())
	require.NoError(t, err)
	return s
}

// doJSON runs one request through the full handler chain. A non-empty token
// is carried as a bearer credential.
func doJSON(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

// login authenticates against the server and returns the bearer token.
func login(t *testing.T, s *Server) string {
	t.Helper()

	rec := doJSON(t, s, http.MethodPost, "/api/admin/login", "", map[string]string{"password": "correct-horse"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"status": "ok"}, decodeBody[map[string]string](t, rec))
}

func TestCORSPreflight(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/portfolio", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestAdminRoutes_RequireAuth(t *testing.T) {
	s := testServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/content"},
		{http.MethodPut, "/api/admin/content/hero"},
		{http.MethodPost, "/api/admin/content/experience"},
		{http.MethodPost, "/api/admin/content/reset"},
		{http.MethodGet, "/api/admin/content/export"},
	}

	for _, p := range paths {
		rec := doJSON(t, s, p.method, p.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", p.method, p.path)
	}
}

func TestAdminRoutes_TokenAloneIsNotEnough(t *testing.T) {
	s := testServer(t)
	token := login(t, s)

	// Ending the session invalidates every outstanding token.
	rec := doJSON(t, s, http.MethodPost, "/api/admin/logout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/admin/content", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminNavigation_RedirectsToLogin(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/content", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin/login?from=%2Fapi%2Fadmin%2Fcontent", rec.Header().Get("Location"))
}
