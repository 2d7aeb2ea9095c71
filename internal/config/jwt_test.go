package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNewJWTConfig_DefaultValues(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, testSecret, cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours, "should use default expiration of 24 hours")
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := NewJWTConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewJWTConfig_ShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "too-short")

	cfg, err := NewJWTConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestNewJWTConfig_Expiration(t *testing.T) {
	tests := []struct {
		name          string
		expiration    string
		expectedHours int
		wantErr       bool
	}{
		{name: "custom expiration 12 hours", expiration: "12", expectedHours: 12},
		{name: "minimum expiration 1 hour", expiration: "1", expectedHours: 1},
		{name: "zero hours rejected", expiration: "0", wantErr: true},
		{name: "negative hours rejected", expiration: "-3", wantErr: true},
		{name: "non-numeric rejected", expiration: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", testSecret)
			t.Setenv("JWT_EXPIRATION_HOURS", tt.expiration)

			cfg, err := NewJWTConfig()
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, cfg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedHours, cfg.ExpirationHours)
		})
	}
}

func TestNewJWTConfig_LongSecretAccepted(t *testing.T) {
	t.Setenv("JWT_SECRET", strings.Repeat("a", 64))
	t.Setenv("JWT_EXPIRATION_HOURS", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Len(t, cfg.Secret, 64)
}
