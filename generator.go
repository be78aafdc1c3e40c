package oklchgen

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Output file names per format.
var outputFiles = map[string]string{
	"css":  "oklch.css",
	"json": "oklch.json",
	"go":   "oklch.gen.go",
}

// Formats lists the supported output formats in write order.
var Formats = []string{"css", "json", "go"}

// Generate is the main entry point
func Generate(config Config) (*GenerateResult, error) {
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}
	result := &GenerateResult{}

	// 1. Apply theme overrides
	palette, warnings, err := ResolvePalette(config)
	if err != nil {
		return nil, err
	}
	result.Warnings = append(result.Warnings, warnings...)

	// 2. Build the table (validates the palette)
	table, err := BuildTable(palette, config.Options)
	if err != nil {
		return nil, fmt.Errorf("build failed: %w", err)
	}
	result.UtilitiesGenerated = table.Len()
	result.ByKind = table.CountByKind()
	result.RootVariables = len(table.Root)

	log.Debug("Built utility table",
		zap.Int("utilities", table.Len()),
		zap.Int("bindings", len(palette.Properties)),
		zap.Int("luminances", len(palette.Luminances)),
		zap.Int("chromas", len(palette.Chromas)),
		zap.Int("hues", len(palette.Hues)))

	// 3. Write artifacts
	formats := config.Formats
	if len(formats) == 0 {
		formats = []string{"css"}
	}
	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	for _, format := range formats {
		path, err := writeArtifact(table, format, config)
		if err != nil {
			return nil, fmt.Errorf("write failed: %w", err)
		}
		result.FilesWritten = append(result.FilesWritten, path)
		log.Debug("Wrote artifact", zap.String("format", format), zap.String("path", path))
	}

	return result, nil
}

// ResolvePalette returns the configured palette with the theme file, if any, applied.
func ResolvePalette(config Config) (Palette, []string, error) {
	if config.ThemeFile == "" {
		return config.Palette, nil, nil
	}
	log := config.Logger
	if log == nil {
		log = zap.NewNop()
	}

	theme, err := ParseThemeFile(config.ThemeFile)
	if err != nil {
		return config.Palette, nil, fmt.Errorf("theme failed: %w", err)
	}
	palette, warnings, err := config.Palette.ApplyTheme(theme)
	if err != nil {
		return config.Palette, warnings, fmt.Errorf("theme failed: %w", err)
	}
	log.Debug("Applied theme overrides", zap.String("file", config.ThemeFile), zap.Int("blocks", len(theme)))
	return palette, warnings, nil
}

// Render writes a single format of the table to w.
func Render(w io.Writer, table *Table, format string, config Config) error {
	switch format {
	case "css":
		return WriteCSS(w, table, CSSOptions{Layer: config.Layer})
	case "json":
		return WriteJSON(w, table)
	case "go":
		return WriteGoConstants(w, table, config.PackageName)
	default:
		return fmt.Errorf("unknown format %q (want css, json or go)", format)
	}
}

// writeArtifact renders into memory first so a failed render never truncates an existing file.
func writeArtifact(table *Table, format string, config Config) (string, error) {
	name, ok := outputFiles[format]
	if !ok {
		return "", fmt.Errorf("unknown format %q (want css, json or go)", format)
	}

	var buf bytes.Buffer
	if err := Render(&buf, table, format, config); err != nil {
		return "", err
	}

	path := filepath.Join(config.OutputDir, name)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
