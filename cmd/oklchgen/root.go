package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "oklchgen",
	Short: "OKLCH color utility generator and linter",
	Long: `Generate OKLCH utility classes that address a color by luminance,
chroma and hue: bg-5-hi-primary, text-fore-lo, border-h-accent.
Luminance steps follow a theme range, so one class set serves light and dark mode.`,
	// Default behavior: run generate when no subcommand is given.
	// We must call loadConfig here because PreRunE of generateCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().String("package", "ui", "Go package name for generated constants")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigFile, "Config file path")
	rootCmd.PersistentFlags().Bool("two-axis", true, "Emit {prefix}-{L}-{C} shorthands")
	rootCmd.PersistentFlags().Bool("decomposed", true, "Emit {prefix}-lc-/c-/h- single-axis utilities")
	rootCmd.PersistentFlags().Bool("hue-context", true, "Emit hue-{H} classes that set the hue for a subtree")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
