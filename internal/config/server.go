package config

import (
	"fmt"
	"os"
	"strconv"
)

// ServerConfig holds the process-level server settings.
type ServerConfig struct {
	Port    int
	DataDir string
}

// NewServerConfig creates server configuration from environment variables.
// It reads PORT (default: 8080) and DATA_DIR (default: ./data).
func NewServerConfig() (*ServerConfig, error) {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080" // default
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		dataDir = "./data"
	}

	cfg := &ServerConfig{
		Port:    port,
		DataDir: dataDir,
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR cannot be empty")
	}
	return nil
}
