package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var lintStrict bool

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate the content directory",
	Long:  `Lint loads every record in the content directory, validates schemas, tags, references, and versions, and prints the findings. Exits non-zero when errors are found, or when warnings are found in strict mode.`,
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().BoolVar(&lintStrict, "strict", false, "treat warnings as failures")
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfiguration()
	if err != nil {
		return err
	}
	strict := lintStrict || cfg.Strict

	result, report, err := loadAndValidate(cfg.ContentDir)
	if err != nil {
		return err
	}

	printFindings(report)

	errCount := len(report.Errors())
	warnCount := len(report.Warnings())
	fmt.Printf("%d records, %d errors, %d warnings\n", result.Store.Len(), errCount, warnCount)

	if errCount > 0 {
		return fmt.Errorf("validation failed with %d errors", errCount)
	}
	if strict && warnCount > 0 {
		return fmt.Errorf("validation failed with %d warnings (strict mode)", warnCount)
	}
	return nil
}
