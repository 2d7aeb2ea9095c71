package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thomas/portfolio-cms/internal/config"
	"github.com/thomas/portfolio-cms/internal/server"
)

var (
	servePort    int
	serveDataDir string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio API server",
	Long:  `Start an HTTP server exposing the public portfolio endpoint and the admin content API.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "", "Directory for persisted slices (overrides DATA_DIR)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load server config: %w", err)
	}

	// Flags win over environment.
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveDataDir != "" {
		cfg.DataDir = serveDataDir
	}

	srv, err := server.New(server.Config{
		Port:    cfg.Port,
		DataDir: cfg.DataDir,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
