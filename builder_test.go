package oklchgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallPalette is the two-by-two vocabulary with a single bg binding.
func smallPalette() Palette {
	return Palette{
		Luminances: []LuminanceStop{Fixed("lo", 0.25), Fixed("hi", 0.85)},
		Chromas:    []ChromaStop{{Name: "lo", Value: 0.02}, {Name: "hi", Value: 0.25}},
		Hues:       []Hue{{Name: "primary", Degrees: 233}},
		Properties: []Property{{Prefix: "bg", CSSProperty: "background-color"}},
		Light:      DefaultLightRange,
		Dark:       DefaultDarkRange,
		Defaults:   AxisDefaults{Luminance: "lo", Chroma: "lo", Hue: "primary"},
	}
}

func declValue(t *testing.T, decls []Declaration, property string) string {
	t.Helper()
	for _, d := range decls {
		if d.Property == property {
			return d.Value
		}
	}
	t.Fatalf("declaration %s not found", property)
	return ""
}

func TestBuildTableSmallPalette(t *testing.T) {
	table, err := BuildTable(smallPalette(), BuildOptions{})
	require.NoError(t, err)

	require.Equal(t, []string{
		"bg-lo-lo-primary",
		"bg-lo-hi-primary",
		"bg-hi-lo-primary",
		"bg-hi-hi-primary",
	}, table.Classes(KindShorthand))
	assert.Equal(t, 4, table.Len())
}

func TestBuildTableFamilies(t *testing.T) {
	table, err := BuildTable(smallPalette(), DefaultBuildOptions())
	require.NoError(t, err)

	assert.Equal(t, map[UtilityKind]int{
		KindShorthand:   4,
		KindShorthandLC: 4,
		KindAxisL:       2,
		KindAxisC:       2,
		KindAxisH:       1,
		KindHueContext:  1,
	}, table.CountByKind())
	assert.Equal(t, []string{"bg-lc-lo", "bg-lc-hi"}, table.Classes(KindAxisL))
	assert.Equal(t, []string{"bg-h-primary"}, table.Classes(KindAxisH))
	assert.Equal(t, []string{"hue-primary"}, table.Classes(KindHueContext))
	assert.Len(t, table.Classes(), 14)
}

func TestBuildTableNamingRule(t *testing.T) {
	p := DefaultPalette()
	table, err := BuildTable(p, DefaultBuildOptions())
	require.NoError(t, err)

	want := len(p.Properties) * len(p.Luminances) * len(p.Chromas) * len(p.Hues)
	shorthands := table.Classes(KindShorthand)
	require.Len(t, shorthands, want)

	seen := make(map[string]bool, len(table.Utilities))
	for _, u := range table.Utilities {
		require.False(t, seen[u.Class], "duplicate class %s", u.Class)
		seen[u.Class] = true

		switch u.Kind {
		case KindShorthand:
			assert.Equal(t, ShorthandClass(u.Prefix, u.Luminance, u.Chroma, u.Hue), u.Class)
			assert.True(t, strings.HasSuffix(u.Class, "-"+u.Hue))
		case KindShorthandLC:
			assert.Equal(t, TwoAxisClass(u.Prefix, u.Luminance, u.Chroma), u.Class)
			assert.Empty(t, u.Hue)
			for _, h := range p.Hues {
				assert.False(t, strings.HasSuffix(u.Class, "-"+h.Name), "%s carries hue %s", u.Class, h.Name)
			}
		}
	}
}

func TestBuildTableDeterministic(t *testing.T) {
	a, err := BuildTable(DefaultPalette(), DefaultBuildOptions())
	require.NoError(t, err)
	b, err := BuildTable(DefaultPalette(), DefaultBuildOptions())
	require.NoError(t, err)

	assert.Equal(t, a.Utilities, b.Utilities)
	assert.Equal(t, a.Root, b.Root)
	assert.Equal(t, a.Dark, b.Dark)
}

func TestShorthandDeclarations(t *testing.T) {
	table, err := BuildTable(DefaultPalette(), DefaultBuildOptions())
	require.NoError(t, err)

	u, ok := table.Lookup("bg-5-hi-primary")
	require.True(t, ok)
	assert.Equal(t, KindShorthand, u.Kind)
	assert.Equal(t, []Declaration{
		{Property: "--bg-l", Value: "var(--l-5)"},
		{Property: "--bg-c", Value: "var(--c-hi)"},
		{Property: "--bg-h", Value: "var(--hue-primary)"},
		{Property: "background-color", Value: "oklch(var(--bg-l) var(--bg-c) var(--bg-h))"},
	}, u.Declarations)
}

func TestTwoAxisDeclarationsInheritHue(t *testing.T) {
	table, err := BuildTable(DefaultPalette(), DefaultBuildOptions())
	require.NoError(t, err)

	u, ok := table.Lookup("text-fore-lo")
	require.True(t, ok)
	assert.Equal(t, KindShorthandLC, u.Kind)
	assert.Equal(t, []Declaration{
		{Property: "--text-l", Value: "var(--l-fore)"},
		{Property: "--text-c", Value: "var(--c-lo)"},
		{Property: "color", Value: "oklch(var(--text-l) var(--text-c) var(--text-h))"},
	}, u.Declarations)

	// The hue a lone two-axis class falls back to is registered at the root
	assert.Equal(t, "var(--hue-primary)", declValue(t, table.Root, "--text-h"))
}

func TestDecomposedDeclarations(t *testing.T) {
	table, err := BuildTable(DefaultPalette(), DefaultBuildOptions())
	require.NoError(t, err)

	tests := []struct {
		class string
		want  []Declaration
	}{
		{
			class: "border-lc-8",
			want: []Declaration{
				{Property: "--border-l", Value: "var(--l-8)"},
				{Property: "border-color", Value: "oklch(var(--border-l) var(--border-c) var(--border-h))"},
			},
		},
		{
			class: "bg-c-mhi",
			want: []Declaration{
				{Property: "--bg-c", Value: "var(--c-mhi)"},
				{Property: "background-color", Value: "oklch(var(--bg-l) var(--bg-c) var(--bg-h))"},
			},
		},
		{
			class: "accent-h-danger",
			want: []Declaration{
				{Property: "--accent-h", Value: "var(--hue-danger)"},
				{Property: "accent-color", Value: "oklch(var(--accent-l) var(--accent-c) var(--accent-h))"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			u, ok := table.Lookup(tt.class)
			require.True(t, ok)
			assert.Equal(t, tt.want, u.Declarations)
		})
	}
}

func TestHueContextSetsEveryBindingHue(t *testing.T) {
	p := DefaultPalette()
	table, err := BuildTable(p, DefaultBuildOptions())
	require.NoError(t, err)

	u, ok := table.Lookup("hue-danger")
	require.True(t, ok)
	assert.Equal(t, KindHueContext, u.Kind)
	assert.Empty(t, u.Prefix)
	assert.Equal(t, "danger", u.Hue)

	require.Len(t, u.Declarations, len(p.Properties))
	for i, prop := range p.Properties {
		assert.Equal(t, Declaration{Property: prop.AxisVars()[2], Value: "var(--hue-danger)"}, u.Declarations[i])
	}
	// Only custom properties: the context paints nothing itself
	for _, d := range u.Declarations {
		assert.True(t, strings.HasPrefix(d.Property, "--"), d.Property)
	}

	assert.Len(t, table.Classes(KindHueContext), len(p.Hues))

	c, ok := table.Resolve("hue-danger", DefaultLightRange)
	require.True(t, ok)
	assert.InDelta(t, 15, c.H, 1e-9)
}

func TestHueContextNextToHueBinding(t *testing.T) {
	p := smallPalette()
	p.Properties = append(p.Properties, Property{Prefix: "hue", CSSProperty: "color"})

	// Binding classes always carry at least two segments after the prefix
	table, err := BuildTable(p, DefaultBuildOptions())
	require.NoError(t, err)
	assert.True(t, table.Has("hue-primary"))
	assert.True(t, table.Has("hue-h-primary"))
	assert.True(t, table.Has("hue-lo-hi"))
}

func TestGradientBindingsCarryStops(t *testing.T) {
	table, err := BuildTable(DefaultPalette(), DefaultBuildOptions())
	require.NoError(t, err)

	for _, class := range []string{"from-5-hi-primary", "to-lc-3", "from-2-mid"} {
		u, ok := table.Lookup(class)
		require.True(t, ok, class)
		stops := declValue(t, u.Declarations, "--tw-gradient-stops")
		assert.Contains(t, stops, "var(--tw-gradient-from)")
	}

	u, _ := table.Lookup("from-5-hi-primary")
	assert.Equal(t, "oklch(var(--from-l) var(--from-c) var(--from-h))", declValue(t, u.Declarations, "--tw-gradient-from"))
}

func TestBorderBottomBindingDoesNotCollide(t *testing.T) {
	table, err := BuildTable(DefaultPalette(), DefaultBuildOptions())
	require.NoError(t, err)

	u, ok := table.Lookup("border-b-5-hi-primary")
	require.True(t, ok)
	assert.Equal(t, "border-b", u.Prefix)
	assert.Equal(t, "border-bottom-color", u.Declarations[len(u.Declarations)-1].Property)
}

func TestRootDeclarations(t *testing.T) {
	table, err := BuildTable(DefaultPalette(), DefaultBuildOptions())
	require.NoError(t, err)

	tests := []struct {
		property string
		want     string
	}{
		{"--lc-range-start", "0.95"},
		{"--lc-range-end", "0.15"},
		{"--hue-primary", "233"},
		{"--hue-neutral", "250"},
		{"--c-mid", "0.12"},
		{"--l-0", rangeExpr(0)},
		{"--l-5", rangeExpr(5)},
		{"--l-base", "var(--l-0)"},
		{"--l-fore", "var(--l-10)"},
		{"--l-mid", "0.55"},
		{"--bg-l", "var(--l-5)"},
		{"--bg-c", "var(--c-lo)"},
		{"--bg-h", "var(--hue-primary)"},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			assert.Equal(t, tt.want, declValue(t, table.Root, tt.property))
		})
	}

	assert.Equal(t, ".dark", table.DarkSelector)
	assert.Equal(t, []Declaration{
		{Property: "--lc-range-start", Value: "0.12"},
		{Property: "--lc-range-end", Value: "0.92"},
	}, table.Dark[:2])
}

func TestDarkDeclarationsRedeclareRangeVariables(t *testing.T) {
	p := DefaultPalette()
	table, err := BuildTable(p, DefaultBuildOptions())
	require.NoError(t, err)

	// A .dark subtree recomputes the scale instead of inheriting :root's values
	assert.Equal(t, rangeExpr(0), declValue(t, table.Dark, "--l-0"))
	assert.Equal(t, rangeExpr(7), declValue(t, table.Dark, "--l-7"))
	assert.Equal(t, "var(--l-10)", declValue(t, table.Dark, "--l-fore"))
	assert.Equal(t, "var(--l-5)", declValue(t, table.Dark, "--bg-l"))
	assert.Equal(t, "var(--l-5)", declValue(t, table.Dark, "--border-b-l"))

	for _, d := range table.Dark {
		assert.NotEqual(t, "--l-mid", d.Property, "fixed stops do not follow the range")
		assert.NotEqual(t, "--bg-c", d.Property)
	}
	assert.Len(t, table.Dark, 2+13+len(p.Properties))
}

func TestDarkDeclarationsFixedDefault(t *testing.T) {
	table, err := BuildTable(smallPalette(), BuildOptions{})
	require.NoError(t, err)

	// Nothing in the small palette depends on the range
	assert.Equal(t, []Declaration{
		{Property: "--lc-range-start", Value: "0.12"},
		{Property: "--lc-range-end", Value: "0.92"},
	}, table.Dark)
}

func TestAliasWithoutNumericStop(t *testing.T) {
	p := smallPalette()
	p.Luminances = append(p.Luminances, Step("base", 0))

	table, err := BuildTable(p, BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, rangeExpr(0), declValue(t, table.Root, "--l-base"))
}

func TestBuildTableOptionsDisabled(t *testing.T) {
	table, err := BuildTable(DefaultPalette(), BuildOptions{})
	require.NoError(t, err)

	assert.True(t, table.Has("bg-5-hi-primary"))
	assert.False(t, table.Has("bg-5-hi"))
	assert.False(t, table.Has("bg-lc-5"))
	assert.Equal(t, table.Len(), len(table.Classes(KindShorthand)))
}

func TestBuildTableClassCollision(t *testing.T) {
	p := Palette{
		Luminances: []LuminanceStop{Fixed("x", 0.5), Fixed("a", 0.2)},
		Chromas:    []ChromaStop{{Name: "a", Value: 0.1}},
		Hues:       []Hue{{Name: "a", Degrees: 10}},
		Properties: []Property{
			{Prefix: "bg", CSSProperty: "background-color"},
			{Prefix: "bg-x", CSSProperty: "color"},
		},
		Light:    DefaultLightRange,
		Dark:     DefaultDarkRange,
		Defaults: AxisDefaults{Luminance: "x", Chroma: "a", Hue: "a"},
	}

	_, err := BuildTable(p, BuildOptions{TwoAxis: true})
	require.ErrorIs(t, err, ErrInvalidPalette)

	errs := NameErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "class", errs[0].Axis)
	assert.Equal(t, "bg-x-a-a", errs[0].Name)
}

func TestTableResolve(t *testing.T) {
	table, err := BuildTable(DefaultPalette(), DefaultBuildOptions())
	require.NoError(t, err)

	c, ok := table.Resolve("bg-5-hi-primary", DefaultDarkRange)
	require.True(t, ok)
	assert.InDelta(t, 0.52, c.L, 1e-9)
	assert.InDelta(t, 0.25, c.C, 1e-9)
	assert.InDelta(t, 233, c.H, 1e-9)

	// Axes a utility leaves unset come from the root defaults
	c, ok = table.Resolve("bg-h-danger", DefaultLightRange)
	require.True(t, ok)
	assert.InDelta(t, 0.55, c.L, 1e-9)
	assert.InDelta(t, 0.02, c.C, 1e-9)
	assert.InDelta(t, 15, c.H, 1e-9)

	_, ok = table.Resolve("bg-red-500", DefaultLightRange)
	assert.False(t, ok)
}

func TestTablePaletteIsCopy(t *testing.T) {
	table, err := BuildTable(DefaultPalette(), DefaultBuildOptions())
	require.NoError(t, err)

	p := table.Palette()
	p.Hues[0].Degrees = 1
	*p.Luminances[0].Step = 9

	again := table.Palette()
	assert.InDelta(t, 233, again.Hues[0].Degrees, 1e-9)
	assert.Equal(t, 0, *again.Luminances[0].Step)
}
