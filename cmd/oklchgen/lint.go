package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/oklchgen/internal/lint"
)

// errLintFailed signals a failing lint gate. main exits 1 without printing it.
var errLintFailed = errors.New("lint failed")

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Lint OKLCH utility usage in templates",
	Long: `Check class attributes in templates for OKLCH utilities that are not generated:
misspelled stops, out-of-scale luminance steps, and utilities from disabled families.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runLint(cmd)
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("paths", defaultScanPaths, "File patterns to scan for class references")
	f.Bool("strict", false, "Exit 1 on any issue, including warnings (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues-per-linter", 0, "Max issues to show per linter (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (oklchlint) suffix on issues")
}

// runLint is shared between `oklchgen lint` and `oklchgen generate --lint`.
func runLint(cmd *cobra.Command) error {
	lintConfig, err := buildLintConfig()
	if err != nil {
		return err
	}
	log := newLogger(getBoolWithFallback("verbose", "verbose", false))
	defer func() { _ = log.Sync() }()
	lintConfig.Logger = log

	lintResult, err := lint.Lint(lintConfig)
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "lint.output-format", "")
	format := lint.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		if err := lint.WriteOutput(cmd.OutOrStdout(), lintResult, format, lintConfig); err != nil {
			return err
		}
	}

	// Exit code logic - "Soft Gate" approach
	if lintConfig.Strict {
		// Strict mode: any issue (error or warning) fails the build
		if len(lintResult.Issues) > 0 {
			return errLintFailed
		}
	} else if lintResult.ErrorCount > 0 {
		// Default "Soft Gate" mode: only errors fail the build
		return errLintFailed
	}

	return nil
}
