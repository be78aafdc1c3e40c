package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .oklchgen.yaml config file",
	Long:  `Create a .oklchgen.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# oklchgen configuration

# Shared settings
package: ui
verbose: false

# Generation settings
generate:
  output-dir: web/styles
  formats:                 # css | json | go
    - css
  theme: ""                # optional CSS file overriding --hue-*, --c-*, --l-*, --lc-range-*
  layer: ""                # wrap utilities in @layer
  two-axis: true           # bg-5-hi
  decomposed: true         # bg-lc-5, bg-c-hi, bg-h-primary
  hue-context: true        # hue-primary on a container sets the hue of its children

# Linting settings
lint:
  paths:
    - "web/**/*.html"
    - "internal/web/**/*.templ"
  strict: false
  output-format: issues    # issues | summary | full | json
  max-issues-per-linter: 0 # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-linter-name: true

# Preview settings
preview:
  chroma: mid
  dark: false

# Palette overrides (omit a key to keep the built-in vocabulary)
palette:
  light: {start: 0.95, end: 0.15}
  dark: {start: 0.12, end: 0.92}
  dark-selector: .dark
  defaults: {luminance: "5", chroma: lo, hue: primary}
  # hues:
  #   - {name: primary, degrees: 233}
  #   - {name: brand, degrees: 300}
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
