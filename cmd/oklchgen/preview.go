package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/oklchgen"
	"github.com/yacobolo/oklchgen/internal/preview"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the palette as terminal swatches",
	Long: `Render every hue across the 0..10 luminance scale for one chroma stop.
Use --dark for the dark range and --values for the oklch() strings.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		palette, err := buildPalette()
		if err != nil {
			return err
		}

		// Apply theme overrides so the preview matches the generated stylesheet
		if themeFile := getStringWithFallback("theme", "generate.theme", ""); themeFile != "" {
			theme, err := oklchgen.ParseThemeFile(themeFile)
			if err != nil {
				return err
			}
			if palette, _, err = palette.ApplyTheme(theme); err != nil {
				return err
			}
		}

		opts := buildPreviewOptions()
		if !opts.UseColors {
			opts.UseColors = isTerminal(os.Stdout)
		}
		return preview.RenderMatrix(cmd.OutOrStdout(), palette, opts)
	},
}

func init() {
	f := previewCmd.Flags()
	f.String("chroma", "", "Chroma stop to render (default: palette default)")
	f.Bool("dark", false, "Use the dark luminance range")
	f.Bool("values", false, "Print oklch() values instead of hex swatches")
	f.String("theme", "", "CSS file with custom property overrides")
}

func isTerminal(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
