package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thomas/portfolio-cms/internal/config"
	"github.com/thomas/portfolio-cms/internal/content"
	"github.com/thomas/portfolio-cms/internal/observability"
	"github.com/thomas/portfolio-cms/internal/schemas"
	"github.com/thomas/portfolio-cms/internal/types"
)

var (
	contentOut     string
	contentVerbose bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the content slice as a JSON document",
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import-content <file>",
	Short: "Validate a content document and load it into the content slice",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Schema-check a content document without touching stored state",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func init() {
	exportCmd.Flags().StringVarP(&contentOut, "out", "o", "", "Write to file instead of stdout")
	importCmd.Flags().BoolVarP(&contentVerbose, "verbose", "v", false, "Print a summary of the imported content")
	validateCmd.Flags().BoolVarP(&contentVerbose, "verbose", "v", false, "Print a summary box instead of a single line")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(validateCmd)
}

func openContentStore() (*content.Store, error) {
	cfg, err := config.NewServerConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	return content.NewStore(cfg.DataDir)
}

func runExport(_ *cobra.Command, _ []string) error {
	store, err := openContentStore()
	if err != nil {
		return err
	}

	doc, err := store.Export()
	if err != nil {
		return err
	}

	if contentOut == "" {
		fmt.Println(string(doc))
		return nil
	}

	if err := os.WriteFile(contentOut, doc, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", contentOut, err)
	}
	fmt.Printf("Exported content to %s\n", contentOut)
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	doc, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	store, err := openContentStore()
	if err != nil {
		return err
	}

	if err := store.Import(doc); err != nil {
		var ve *schemas.ValidationError
		if contentVerbose && errors.As(err, &ve) {
			observability.NewPrinter(os.Stdout).PrintValidationResult(ve)
		}
		return err
	}

	fmt.Printf("Imported content from %s\n", args[0])
	if contentVerbose {
		state := store.State()
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintContentSummary(&state)
		printer.PrintExperience(state.Experience)
	}
	return nil
}

func runValidate(_ *cobra.Command, args []string) error {
	doc, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	if err := schemas.ValidateContent(doc); err != nil {
		var ve *schemas.ValidationError
		if contentVerbose && errors.As(err, &ve) {
			observability.NewPrinter(os.Stdout).PrintValidationResult(ve)
		}
		return err
	}

	if !contentVerbose {
		fmt.Printf("%s is a valid content document\n", args[0])
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintValidationResult(nil)

	var parsed types.Portfolio
	if err := json.Unmarshal(doc, &parsed); err == nil {
		printer.PrintContentSummary(&parsed)
	}
	return nil
}
