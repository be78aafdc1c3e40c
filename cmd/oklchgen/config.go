package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yacobolo/oklchgen"
	"github.com/yacobolo/oklchgen/internal/lint"
	"github.com/yacobolo/oklchgen/internal/preview"
)

const defaultConfigFile = ".oklchgen.yaml"

var k = koanf.New(".")

var defaultScanPaths = []string{
	"web/**/*.html",
	"internal/web/**/*.templ",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Only explicitly set flags are loaded
	// so that flag defaults never shadow values from the file or environment.
	fs := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(fs, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(fs, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (OKLCHGEN_* prefix)
	if err := k.Load(env.Provider("OKLCHGEN_", ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps environment variable names to config keys:
//
//	OKLCHGEN_LINT_STRICT            -> lint.strict
//	OKLCHGEN_GENERATE_OUTPUT__DIR   -> generate.output-dir
//	OKLCHGEN_VERBOSE                -> verbose
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, "OKLCHGEN_"))
	s = strings.ReplaceAll(s, "__", "-")
	return strings.ReplaceAll(s, "_", ".")
}

// paletteOverrides mirrors the palette: section of the config file.
// Absent fields keep the stock vocabularies.
type paletteOverrides struct {
	Luminances   []oklchgen.LuminanceStop `koanf:"luminances"`
	Chromas      []oklchgen.ChromaStop    `koanf:"chromas"`
	Hues         []oklchgen.Hue           `koanf:"hues"`
	Properties   []oklchgen.Property      `koanf:"properties"`
	Light        *oklchgen.LuminanceRange `koanf:"light"`
	Dark         *oklchgen.LuminanceRange `koanf:"dark"`
	DarkSelector string                   `koanf:"dark-selector"`
	Defaults     *oklchgen.AxisDefaults   `koanf:"defaults"`
}

// buildPalette overlays the palette: section onto the default palette.
func buildPalette() (oklchgen.Palette, error) {
	p := oklchgen.DefaultPalette()
	if !k.Exists("palette") {
		return p, nil
	}

	var o paletteOverrides
	if err := k.Unmarshal("palette", &o); err != nil {
		return p, fmt.Errorf("reading palette config: %w", err)
	}

	if len(o.Luminances) > 0 {
		p.Luminances = o.Luminances
	}
	if len(o.Chromas) > 0 {
		p.Chromas = o.Chromas
	}
	if len(o.Hues) > 0 {
		p.Hues = o.Hues
	}
	if len(o.Properties) > 0 {
		p.Properties = o.Properties
	}
	if o.Light != nil {
		p.Light = *o.Light
	}
	if o.Dark != nil {
		p.Dark = *o.Dark
	}
	if o.DarkSelector != "" {
		p.DarkSelector = o.DarkSelector
	}
	if o.Defaults != nil {
		if o.Defaults.Luminance != "" {
			p.Defaults.Luminance = o.Defaults.Luminance
		}
		if o.Defaults.Chroma != "" {
			p.Defaults.Chroma = o.Defaults.Chroma
		}
		if o.Defaults.Hue != "" {
			p.Defaults.Hue = o.Defaults.Hue
		}
	}
	return p, nil
}

// buildOptions reads the utility family toggles.
func buildOptions() oklchgen.BuildOptions {
	return oklchgen.BuildOptions{
		TwoAxis:    getBoolWithFallback("two-axis", "generate.two-axis", true),
		Decomposed: getBoolWithFallback("decomposed", "generate.decomposed", true),
		HueContext: getBoolWithFallback("hue-context", "generate.hue-context", true),
	}
}

// buildGenerateConfig constructs the library's Config struct from koanf state.
func buildGenerateConfig() (oklchgen.Config, error) {
	palette, err := buildPalette()
	if err != nil {
		return oklchgen.Config{}, err
	}

	config := oklchgen.Config{
		Palette:     palette,
		Options:     buildOptions(),
		ThemeFile:   getStringWithFallback("theme", "generate.theme", ""),
		OutputDir:   getStringWithFallback("output-dir", "generate.output-dir", "web/styles"),
		Layer:       getStringWithFallback("layer", "generate.layer", ""),
		PackageName: getStringWithFallback("package", "package", "ui"),
	}

	// Handle formats: check flag key first, then config key
	if formats := k.Strings("formats"); len(formats) > 0 {
		config.Formats = formats
	} else if formats := k.Strings("generate.formats"); len(formats) > 0 {
		config.Formats = formats
	} else {
		config.Formats = []string{"css"}
	}

	return config, nil
}

// buildLintConfig constructs the LintConfig struct from koanf state.
func buildLintConfig() (lint.LintConfig, error) {
	palette, err := buildPalette()
	if err != nil {
		return lint.LintConfig{}, err
	}

	// Handle paths: check flag key first, then config key
	var scanPaths []string
	if paths := k.Strings("paths"); len(paths) > 0 {
		scanPaths = paths
	} else if paths := k.Strings("lint.paths"); len(paths) > 0 {
		scanPaths = paths
	} else {
		scanPaths = defaultScanPaths
	}

	return lint.LintConfig{
		ScanPaths:          scanPaths,
		Palette:            palette,
		Options:            buildOptions(),
		Strict:             getBoolWithFallback("strict", "lint.strict", false),
		MaxIssuesPerLinter: getIntWithFallback("max-issues-per-linter", "lint.max-issues-per-linter", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "lint.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "lint.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
	}, nil
}

// buildPreviewOptions constructs preview options from koanf state.
func buildPreviewOptions() preview.Options {
	return preview.Options{
		Chroma:    getStringWithFallback("chroma", "preview.chroma", ""),
		Dark:      getBoolWithFallback("dark", "preview.dark", false),
		Values:    getBoolWithFallback("values", "preview.values", false),
		UseColors: getBoolWithFallback("color", "color", false),
	}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}
