package oklchgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTheme = `
/* brand overrides */
:root {
  --hue-primary: 280deg;
  --c-hi: 0.3;
  --l-mid: 0.5;
  --lc-range-start: 0.98;
  --font-size: 16px;
  color: black;
}

.dark {
  --lc-range-start: 0.1;
  --lc-range-end: 0.9;
}

@media (prefers-color-scheme: dark) {
  :root {
    --lc-range-end: 0.85;
  }
}

.card {
  --hue-primary: 10;
}
`

func TestParseTheme(t *testing.T) {
	theme, err := ParseTheme(sampleTheme)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"--hue-primary":    "280deg",
		"--c-hi":           "0.3",
		"--l-mid":          "0.5",
		"--lc-range-start": "0.98",
		"--font-size":      "16px",
	}, theme[":root"])
	assert.Equal(t, map[string]string{
		"--lc-range-start": "0.1",
		"--lc-range-end":   "0.9",
	}, theme[".dark"])
	assert.Equal(t, map[string]string{"--lc-range-end": "0.85"}, theme["@media (prefers-color-scheme: dark) :root"])
	assert.Equal(t, "10", theme[".card"]["--hue-primary"])
}

func TestParseThemeTailwindBlock(t *testing.T) {
	theme, err := ParseTheme(`@theme { --hue-accent: 330; --c-mid: 0.1 }`)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"--hue-accent": "330", "--c-mid": "0.1"}, theme["@theme"])
}

func TestParseThemeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.css")
	require.NoError(t, os.WriteFile(path, []byte(sampleTheme), 0o644))

	theme, err := ParseThemeFile(path)
	require.NoError(t, err)
	assert.Contains(t, theme, ":root")

	_, err = ParseThemeFile(filepath.Join(t.TempDir(), "missing.css"))
	require.Error(t, err)
}

func TestApplyTheme(t *testing.T) {
	theme, err := ParseTheme(sampleTheme)
	require.NoError(t, err)

	base := DefaultPalette()
	p, warnings, err := base.ApplyTheme(theme)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	hue, _ := p.Hue("primary")
	assert.InDelta(t, 280, hue.Degrees, 1e-9)
	chroma, _ := p.Chroma("hi")
	assert.InDelta(t, 0.3, chroma.Value, 1e-9)
	mid, _ := p.Luminance("mid")
	assert.InDelta(t, 0.5, *mid.Value, 1e-9)

	assert.InDelta(t, 0.98, p.Light.Start, 1e-9)
	assert.InDelta(t, 0.15, p.Light.End, 1e-9)
	assert.InDelta(t, 0.1, p.Dark.Start, 1e-9)
	assert.InDelta(t, 0.85, p.Dark.End, 1e-9, "media block is applied after .dark")

	// The receiver is untouched
	orig, _ := base.Hue("primary")
	assert.InDelta(t, 233, orig.Degrees, 1e-9)
	origMid, _ := base.Luminance("mid")
	assert.InDelta(t, 0.55, *origMid.Value, 1e-9)
}

func TestApplyThemeWarnings(t *testing.T) {
	theme := Theme{
		":root": {
			"--hue-brand": "300",
			"--l-5":       "0.4",
			"--c-neon":    "0.5",
		},
		".dark": {
			"--hue-primary": "100",
		},
	}

	p, warnings, err := DefaultPalette().ApplyTheme(theme)
	require.NoError(t, err)
	require.Len(t, warnings, 4)
	assert.Contains(t, warnings[0], `--hue-primary in .dark`)
	assert.Contains(t, warnings[1], `unknown chroma "neon"`)
	assert.Contains(t, warnings[2], `unknown hue "brand"`)
	assert.Contains(t, warnings[3], "step luminance follows the range")

	hue, _ := p.Hue("primary")
	assert.InDelta(t, 233, hue.Degrees, 1e-9)
}

func TestApplyThemeRejectsNonNumeric(t *testing.T) {
	theme := Theme{":root": {"--hue-primary": "var(--brand)", "--c-hi": "lots"}}

	base := DefaultPalette()
	p, _, err := base.ApplyTheme(theme)
	require.Error(t, err)

	errs := NameErrors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, "theme", errs[0].Axis)
	assert.Equal(t, base, p)
}

func TestApplyThemeThenBuild(t *testing.T) {
	theme, err := ParseTheme(`:root { --lc-range-start: 0.9; --lc-range-end: 0.2 }`)
	require.NoError(t, err)
	p, _, err := DefaultPalette().ApplyTheme(theme)
	require.NoError(t, err)

	table, err := BuildTable(p, DefaultBuildOptions())
	require.NoError(t, err)
	assert.Equal(t, "0.9", declValue(t, table.Root, "--lc-range-start"))
	assert.Equal(t, "0.2", declValue(t, table.Root, "--lc-range-end"))
}
