// Package main is the entry point for the codex CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-codex/internal/config"
	"github.com/KirkDiggler/rpg-codex/internal/loader"
	"github.com/KirkDiggler/rpg-codex/internal/validator"
)

var (
	configPath string
	contentDir string
)

var rootCmd = &cobra.Command{
	Use:   "codex",
	Short: "Tabletop content codex tool",
	Long:  `Codex validates tabletop content records against their schemas, checks cross-record references, and publishes validated libraries.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (JSON)")
	rootCmd.PersistentFlags().StringVar(&contentDir, "content", "", "content directory (overrides config)")

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(pullCmd)
}

// loadConfiguration loads config and applies command-line overrides
func loadConfiguration() (*config.Configuration, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if contentDir != "" {
		cfg.ContentDir = contentDir
	}
	return cfg, nil
}

// loadAndValidate loads the content directory and runs a full validation
// pass, folding loader issues (duplicate IDs, parse failures) into the
// report alongside the validator's findings.
func loadAndValidate(dir string) (*loader.Result, *validator.Report, error) {
	result, err := loader.LoadDir(dir)
	if err != nil {
		return nil, nil, err
	}

	v, err := validator.New(&validator.Config{Tags: result.Tags})
	if err != nil {
		return nil, nil, err
	}

	report, err := v.Validate(result.Store)
	if err != nil {
		return nil, nil, err
	}
	result.IssuesInto(report)

	return result, report, nil
}

func printFindings(report *validator.Report) {
	for _, f := range report.Findings {
		fmt.Println(f.String())
	}
}
