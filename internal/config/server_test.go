package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerConfig_DefaultValues(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_DIR", "")

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Port, "should use default port 8080")
	assert.Equal(t, "./data", cfg.DataDir)
}

func TestNewServerConfig_CustomValues(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_DIR", "/var/lib/portfolio")

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/var/lib/portfolio", cfg.DataDir)
}

func TestNewServerConfig_InvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{name: "non-numeric", port: "eighty"},
		{name: "zero", port: "0"},
		{name: "negative", port: "-1"},
		{name: "above range", port: "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.port)
			t.Setenv("DATA_DIR", "")

			cfg, err := NewServerConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
