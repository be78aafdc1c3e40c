package oklchgen

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	p := smallPalette()
	p.DarkSelector = ".dark"
	table, err := BuildTable(p, DefaultBuildOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, table))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, JSONVersion, out.Version)
	assert.Equal(t, ".dark", out.DarkSelector)
	assert.Equal(t, "0.12", out.Dark["--lc-range-start"])
	assert.Equal(t, "233", out.Root["--hue-primary"])
	assert.Equal(t, 14, out.Stats.Total)
	assert.Equal(t, 4, out.Stats.ByKind[KindShorthand])
	assert.Len(t, out.Utilities, 14)

	assert.Equal(t, map[string]string{
		"--bg-c":           "var(--c-hi)",
		"background-color": "oklch(var(--bg-l) var(--bg-c) var(--bg-h))",
	}, out.Utilities[".bg-c-hi"])
}

func TestWriteJSONStable(t *testing.T) {
	table, err := BuildTable(DefaultPalette(), DefaultBuildOptions())
	require.NoError(t, err)

	var a, b bytes.Buffer
	require.NoError(t, WriteJSON(&a, table))
	require.NoError(t, WriteJSON(&b, table))
	assert.Equal(t, a.String(), b.String())
}

func TestWriteJSONOmitsEmptyDark(t *testing.T) {
	table, err := BuildTable(smallPalette(), BuildOptions{})
	require.NoError(t, err)
	table.Dark = nil

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, table))
	assert.NotContains(t, buf.String(), `"dark_selector"`)
	assert.NotContains(t, buf.String(), `"dark"`)
}
