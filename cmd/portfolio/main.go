// Package main provides the entry point for the portfolio CMS server and
// its content management tools.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio CMS server",
	Long:  "Portfolio CMS serves the public portfolio API and the session-gated admin content API, persisting all state to local JSON slices.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
