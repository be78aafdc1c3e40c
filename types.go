package oklchgen

import "go.uber.org/zap"

// LuminanceStop is a named point on the luminance axis.
//
// Exactly one of Step or Value is set. Step stops sit on the 0..10 contrast
// scale and resolve through the active LuminanceRange; Value stops are fixed
// lightness constants independent of the range.
type LuminanceStop struct {
	Name  string   `koanf:"name" json:"name"`
	Step  *int     `koanf:"step" json:"step,omitempty"`
	Value *float64 `koanf:"value" json:"value,omitempty"`
}

// IsStep reports whether the stop resolves through the luminance range.
func (s LuminanceStop) IsStep() bool {
	return s.Step != nil
}

// ChromaStop is a named point on the chroma axis ("mid" -> 0.12).
type ChromaStop struct {
	Name  string  `koanf:"name" json:"name"`
	Value float64 `koanf:"value" json:"value"`
}

// Hue is a semantic hue with its default angle in degrees.
type Hue struct {
	Name    string  `koanf:"name" json:"name"`
	Degrees float64 `koanf:"degrees" json:"degrees"`
}

// Declaration is a single CSS property: value pair.
type Declaration struct {
	Property string `koanf:"property" json:"property"`
	Value    string `koanf:"value" json:"value"`
}

// Property binds a utility prefix to the CSS property it sets.
// The axis variables it writes are --{prefix}-l, --{prefix}-c and --{prefix}-h.
type Property struct {
	Prefix      string        `koanf:"prefix" json:"prefix"`
	CSSProperty string        `koanf:"css" json:"css"`
	Extra       []Declaration `koanf:"extra" json:"extra,omitempty"`
}

// AxisVars returns the custom property names written by the binding, in L, C, H order.
func (p Property) AxisVars() [3]string {
	return [3]string{
		"--" + p.Prefix + "-l",
		"--" + p.Prefix + "-c",
		"--" + p.Prefix + "-h",
	}
}

// LuminanceRange holds the base (step 0) and fore (step 10) lightness endpoints.
type LuminanceRange struct {
	Start float64 `koanf:"start" json:"start"`
	End   float64 `koanf:"end" json:"end"`
}

// AxisDefaults names the stops every binding falls back to at the document root.
type AxisDefaults struct {
	Luminance string `koanf:"luminance" json:"luminance"`
	Chroma    string `koanf:"chroma" json:"chroma"`
	Hue       string `koanf:"hue" json:"hue"`
}

// Palette is the complete static configuration a table is built from.
type Palette struct {
	Luminances   []LuminanceStop
	Chromas      []ChromaStop
	Hues         []Hue
	Properties   []Property
	Light        LuminanceRange // applied at :root
	Dark         LuminanceRange // applied under DarkSelector
	DarkSelector string         // ".dark"
	Defaults     AxisDefaults
}

// UtilityKind classifies the generated utilities.
type UtilityKind string

// Utility kinds emitted by the builder.
const (
	// KindShorthand sets all three axes: bg-5-hi-primary
	KindShorthand UtilityKind = "shorthand"
	// KindShorthandLC sets luminance and chroma, inheriting the hue: bg-5-hi
	KindShorthandLC UtilityKind = "shorthand-lc"
	// KindAxisL sets only luminance: bg-lc-5
	KindAxisL UtilityKind = "axis-l"
	// KindAxisC sets only chroma: bg-c-hi
	KindAxisC UtilityKind = "axis-c"
	// KindAxisH sets only the hue: bg-h-primary
	KindAxisH UtilityKind = "axis-h"
	// KindHueContext sets the hue of every binding for a subtree: hue-primary
	KindHueContext UtilityKind = "hue-context"
)

// Utility is one generated class with its declaration block.
// Axis fields are empty when the utility does not set that axis. Prefix is
// empty for hue-context utilities, which belong to no single binding.
type Utility struct {
	Class        string
	Kind         UtilityKind
	Prefix       string
	Luminance    string
	Chroma       string
	Hue          string
	Declarations []Declaration
}

// BuildOptions selects which utility families the builder emits.
// Three-axis shorthands are always emitted.
type BuildOptions struct {
	TwoAxis    bool // {prefix}-{L}-{C}
	Decomposed bool // {prefix}-lc-{L}, {prefix}-c-{C}, {prefix}-h-{H}
	HueContext bool // hue-{H}: sets --{prefix}-h for every binding
}

// DefaultBuildOptions enables every utility family.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{TwoAxis: true, Decomposed: true, HueContext: true}
}

// Config holds generator configuration
type Config struct {
	Palette     Palette
	Options     BuildOptions
	ThemeFile   string      // Optional CSS file with custom property overrides
	OutputDir   string      // "web/styles"
	Formats     []string    // ["css", "json", "go"]
	Layer       string      // Wrap utilities in @layer (empty = no layer)
	PackageName string      // Package for the Go constants file
	Logger      *zap.Logger // nil disables logging
}

// GenerateResult contains generation stats
type GenerateResult struct {
	UtilitiesGenerated int
	ByKind             map[UtilityKind]int
	RootVariables      int
	FilesWritten       []string
	Warnings           []string
}
