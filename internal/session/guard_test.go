package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/thomas/portfolio-cms/internal/config"
)

func testGuard(t *testing.T, cfg *config.AuthConfig) *Guard {
	t.Helper()
	if cfg == nil {
		cfg = &config.AuthConfig{
			AdminPassword: "correct-horse",
			SessionTTL:    24 * time.Hour,
		}
	}
	g, err := NewGuard(cfg, t.TempDir())
	require.NoError(t, err)
	return g
}

func TestLogin_CorrectPassword(t *testing.T) {
	g := testGuard(t, nil)

	before := time.Now()
	result := g.Login("correct-horse")
	require.True(t, result.Success)
	assert.NoError(t, result.Err)

	state := g.State()
	assert.True(t, state.IsAuthenticated)
	require.NotNil(t, state.User)
	assert.Equal(t, "admin", state.User.Username)
	assert.Equal(t, "administrator", state.User.Role)
	assert.WithinDuration(t, before.Add(24*time.Hour), state.ExpiresAt, 2*time.Second)
	assert.WithinDuration(t, before, state.LastLoginAt, 2*time.Second)
}

func TestLogin_WrongPassword(t *testing.T) {
	g := testGuard(t, nil)

	result := g.Login("wrong")
	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Err, ErrInvalidCredentials)

	state := g.State()
	assert.False(t, state.IsAuthenticated)
	assert.Nil(t, state.User)
}

func TestLogin_NoSecretConfigured(t *testing.T) {
	g := testGuard(t, &config.AuthConfig{SessionTTL: 24 * time.Hour})

	result := g.Login("anything")
	assert.False(t, result.Success)
	assert.ErrorIs(t, result.Err, ErrNotConfigured)
}

func TestLogin_BcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	g := testGuard(t, &config.AuthConfig{
		AdminPasswordHash: string(hash),
		SessionTTL:        24 * time.Hour,
	})

	assert.False(t, g.Login("wrong").Success)
	assert.True(t, g.Login("correct-horse").Success)
}

func TestLogin_PersistsOnSuccessOnly(t *testing.T) {
	cfg := &config.AuthConfig{AdminPassword: "correct-horse", SessionTTL: 24 * time.Hour}
	dir := t.TempDir()

	g, err := NewGuard(cfg, dir)
	require.NoError(t, err)

	g.Login("wrong")
	_, statErr := os.Stat(filepath.Join(dir, SliceName+".json"))
	assert.True(t, os.IsNotExist(statErr), "failed login must not persist")

	g.Login("correct-horse")
	reopened, err := NewGuard(cfg, dir)
	require.NoError(t, err)
	assert.True(t, reopened.Check())
}

func TestLogout_ResetsState(t *testing.T) {
	g := testGuard(t, nil)
	require.True(t, g.Login("correct-horse").Success)

	g.Logout()

	state := g.State()
	assert.Equal(t, State{}, state)
	assert.False(t, g.Check())
}

func TestCheck_ExpiredSession_LogsOutAndIsIdempotent(t *testing.T) {
	g := testGuard(t, nil)
	require.True(t, g.Login("correct-horse").Success)

	// Move the clock past the expiry.
	g.now = func() time.Time { return time.Now().Add(25 * time.Hour) }

	assert.False(t, g.Check())
	assert.Equal(t, State{}, g.State(), "expired check must log out as a side effect")
	assert.False(t, g.Check(), "repeated check stays false")
}

func TestExtend_LoggedOut_IsNoOp(t *testing.T) {
	g := testGuard(t, nil)

	g.Extend()

	assert.Equal(t, State{}, g.State())
}

func TestExtend_PushesExpiry(t *testing.T) {
	g := testGuard(t, nil)
	require.True(t, g.Login("correct-horse").Success)

	later := time.Now().Add(10 * time.Hour)
	g.now = func() time.Time { return later }
	g.Extend()

	state := g.State()
	assert.WithinDuration(t, later.Add(24*time.Hour), state.ExpiresAt, time.Second)
	assert.True(t, state.IsAuthenticated)
}

func TestIsValid(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name  string
		state State
		want  bool
	}{
		{
			name:  "logged out",
			state: State{},
			want:  false,
		},
		{
			name:  "authenticated without expiry",
			state: State{IsAuthenticated: true},
			want:  false,
		},
		{
			name:  "authenticated and live",
			state: State{IsAuthenticated: true, ExpiresAt: now.Add(time.Hour)},
			want:  true,
		},
		{
			name:  "authenticated but elapsed",
			state: State{IsAuthenticated: true, ExpiresAt: now.Add(-time.Minute)},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.state, now))
		})
	}
}

func TestGuard_OlderSliceVersion_LoadsLoggedOut(t *testing.T) {
	dir := t.TempDir()

	stale := map[string]any{
		"name":    SliceName,
		"version": SliceVersion - 1,
		"state": map[string]any{
			"is_authenticated": true,
			"expires_at":       time.Now().Add(time.Hour).Format(time.RFC3339),
		},
	}
	raw, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, SliceName+".json"), raw, 0o644))

	g := testGuardInDir(t, dir)
	assert.False(t, g.Check())
	assert.Equal(t, State{}, g.State())
}

func testGuardInDir(t *testing.T, dir string) *Guard {
	t.Helper()
	g, err := NewGuard(&config.AuthConfig{
		AdminPassword: "correct-horse",
		SessionTTL:    24 * time.Hour,
	}, dir)
	require.NoError(t, err)
	return g
}
