package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yacobolo/oklchgen"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the OKLCH utility stylesheet",
	Long: `Build the utility table from the palette and write it as CSS,
JSON and/or Go constants. A theme stylesheet may override the luminance
range, hue angles, chroma values and fixed luminances.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("output-dir", "web/styles", "Output directory for generated files")
	f.StringSlice("formats", []string{"css"}, "Output formats: css,json,go")
	f.String("theme", "", "CSS file with custom property overrides")
	f.String("layer", "", "Wrap utilities in @layer NAME")
	f.Bool("stdout", false, "Print the stylesheet instead of writing files")
	f.Bool("lint", false, "Run linter after generation")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	config, err := buildGenerateConfig()
	if err != nil {
		return err
	}
	log := newLogger(getBoolWithFallback("verbose", "verbose", false))
	defer func() { _ = log.Sync() }()
	config.Logger = log

	out := cmd.OutOrStdout()

	if stdout, _ := cmd.Flags().GetBool("stdout"); stdout {
		return printGenerated(cmd, config)
	}

	result, err := oklchgen.Generate(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	for _, w := range result.Warnings {
		log.Warn(w)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)

	if !quiet {
		fmt.Fprintf(out, "Generated files in %s\n", config.OutputDir)
		fmt.Fprintf(out, "  Utilities generated: %d\n", result.UtilitiesGenerated)

		kinds := make([]string, 0, len(result.ByKind))
		for kind := range result.ByKind {
			kinds = append(kinds, string(kind))
		}
		sort.Strings(kinds)
		for _, kind := range kinds {
			fmt.Fprintf(out, "    %-13s %d\n", kind+":", result.ByKind[oklchgen.UtilityKind(kind)])
		}
		fmt.Fprintf(out, "  Root variables: %d\n", result.RootVariables)
		for _, path := range result.FilesWritten {
			fmt.Fprintf(out, "  Wrote %s\n", path)
		}
	}

	// Run lint after generate if --lint flag set
	if lintAfter, _ := cmd.Flags().GetBool("lint"); lintAfter {
		return runLint(cmd)
	}

	return nil
}

// printGenerated renders a single format to stdout with the same theme
// handling as Generate.
func printGenerated(cmd *cobra.Command, config oklchgen.Config) error {
	if len(config.Formats) > 1 {
		return fmt.Errorf("--stdout prints one format, got %s", strings.Join(config.Formats, ","))
	}
	format := "css"
	if len(config.Formats) == 1 {
		format = config.Formats[0]
	}

	palette, warnings, err := oklchgen.ResolvePalette(config)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	for _, w := range warnings {
		config.Logger.Warn(w)
	}

	table, err := oklchgen.BuildTable(palette, config.Options)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	return oklchgen.Render(cmd.OutOrStdout(), table, format, config)
}
