package oklchgen

import "strconv"

// Default luminance ranges for light mode (:root) and dark mode.
var (
	DefaultLightRange = LuminanceRange{Start: 0.95, End: 0.15}
	DefaultDarkRange  = LuminanceRange{Start: 0.12, End: 0.92}
)

// Step returns a luminance stop on the 0..10 contrast scale.
func Step(name string, step int) LuminanceStop {
	return LuminanceStop{Name: name, Step: &step}
}

// Fixed returns a luminance stop pinned to value regardless of the range.
func Fixed(name string, value float64) LuminanceStop {
	return LuminanceStop{Name: name, Value: &value}
}

// gradientStops reproduces the stop composition of Tailwind v4's gradient utilities.
const gradientStops = "var(--tw-gradient-via-stops, var(--tw-gradient-position), " +
	"var(--tw-gradient-from) var(--tw-gradient-from-position), " +
	"var(--tw-gradient-to) var(--tw-gradient-to-position))"

// DefaultPalette returns the stock vocabularies: the 0..10 contrast scale with
// base/fore aliases, five fixed luminances, five chromas, seven hues and the
// background, text, border, accent, border-bottom and gradient bindings.
func DefaultPalette() Palette {
	lums := make([]LuminanceStop, 0, 18)
	for i := 0; i <= 10; i++ {
		lums = append(lums, Step(strconv.Itoa(i), i))
	}
	lums = append(lums,
		Step("base", 0),
		Step("fore", 10),
		Fixed("lo", 0.25),
		Fixed("mlo", 0.4),
		Fixed("mid", 0.55),
		Fixed("mhi", 0.7),
		Fixed("hi", 0.85),
	)

	return Palette{
		Luminances: lums,
		Chromas: []ChromaStop{
			{Name: "lo", Value: 0.02},
			{Name: "mlo", Value: 0.06},
			{Name: "mid", Value: 0.12},
			{Name: "mhi", Value: 0.18},
			{Name: "hi", Value: 0.25},
		},
		Hues: []Hue{
			{Name: "primary", Degrees: 233},
			{Name: "accent", Degrees: 350},
			{Name: "success", Degrees: 145},
			{Name: "warning", Degrees: 55},
			{Name: "danger", Degrees: 15},
			{Name: "info", Degrees: 220},
			{Name: "neutral", Degrees: 250},
		},
		Properties: []Property{
			{Prefix: "bg", CSSProperty: "background-color"},
			{Prefix: "text", CSSProperty: "color"},
			{Prefix: "border", CSSProperty: "border-color"},
			{Prefix: "accent", CSSProperty: "accent-color"},
			{Prefix: "border-b", CSSProperty: "border-bottom-color"},
			{
				Prefix:      "from",
				CSSProperty: "--tw-gradient-from",
				Extra:       []Declaration{{Property: "--tw-gradient-stops", Value: gradientStops}},
			},
			{
				Prefix:      "to",
				CSSProperty: "--tw-gradient-to",
				Extra:       []Declaration{{Property: "--tw-gradient-stops", Value: gradientStops}},
			},
		},
		Light:        DefaultLightRange,
		Dark:         DefaultDarkRange,
		DarkSelector: ".dark",
		Defaults:     AxisDefaults{Luminance: "5", Chroma: "lo", Hue: "primary"},
	}
}

// Luminance looks up a luminance stop by name.
func (p Palette) Luminance(name string) (LuminanceStop, bool) {
	for _, l := range p.Luminances {
		if l.Name == name {
			return l, true
		}
	}
	return LuminanceStop{}, false
}

// Chroma looks up a chroma stop by name.
func (p Palette) Chroma(name string) (ChromaStop, bool) {
	for _, c := range p.Chromas {
		if c.Name == name {
			return c, true
		}
	}
	return ChromaStop{}, false
}

// Hue looks up a hue by name.
func (p Palette) Hue(name string) (Hue, bool) {
	for _, h := range p.Hues {
		if h.Name == name {
			return h, true
		}
	}
	return Hue{}, false
}

// Clone returns a deep copy so overrides never alias the receiver's slices.
func (p Palette) Clone() Palette {
	out := p
	out.Luminances = make([]LuminanceStop, len(p.Luminances))
	for i, l := range p.Luminances {
		c := LuminanceStop{Name: l.Name}
		if l.Step != nil {
			s := *l.Step
			c.Step = &s
		}
		if l.Value != nil {
			v := *l.Value
			c.Value = &v
		}
		out.Luminances[i] = c
	}
	out.Chromas = append([]ChromaStop(nil), p.Chromas...)
	out.Hues = append([]Hue(nil), p.Hues...)
	out.Properties = make([]Property, len(p.Properties))
	for i, prop := range p.Properties {
		prop.Extra = append([]Declaration(nil), prop.Extra...)
		out.Properties[i] = prop
	}
	return out
}
