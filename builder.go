package oklchgen

import (
	"fmt"
	"strconv"

	"go.uber.org/multierr"
)

// Table is the built class-name -> declaration mapping together with the
// document-root variables the utilities rely on.
type Table struct {
	Root         []Declaration // :root custom properties
	Dark         []Declaration // overrides under DarkSelector
	DarkSelector string
	Utilities    []Utility // deterministic build order

	index   map[string]int
	palette Palette
}

// BuildTable validates the palette and produces the utility table. The same
// palette and options always produce the same table.
func BuildTable(p Palette, opts BuildOptions) (*Table, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	b := &tableBuilder{
		table: &Table{
			DarkSelector: p.DarkSelector,
			index:        make(map[string]int),
			palette:      p.Clone(),
		},
		owners: make(map[string]string),
	}

	for _, prop := range p.Properties {
		b.addShorthands(p, prop)
		if opts.TwoAxis {
			b.addTwoAxis(p, prop)
		}
		if opts.Decomposed {
			b.addDecomposed(p, prop)
		}
	}
	if opts.HueContext {
		b.addHueContexts(p)
	}
	if b.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPalette, b.err)
	}

	b.table.Root = rootDeclarations(p)
	b.table.Dark = darkDeclarations(p)
	return b.table, nil
}

type tableBuilder struct {
	table  *Table
	owners map[string]string // class -> binding or family that produced it
	err    error
}

func (b *tableBuilder) add(u Utility) {
	origin := u.Prefix + " binding"
	if u.Kind == KindHueContext {
		origin = "hue context"
	}
	if owner, dup := b.owners[u.Class]; dup {
		b.err = multierr.Append(b.err, &NameError{
			Axis:   "class",
			Name:   u.Class,
			Reason: fmt.Sprintf("generated by both the %s and the %s", owner, origin),
		})
		return
	}
	b.owners[u.Class] = origin
	b.table.index[u.Class] = len(b.table.Utilities)
	b.table.Utilities = append(b.table.Utilities, u)
}

func (b *tableBuilder) addShorthands(p Palette, prop Property) {
	for _, l := range p.Luminances {
		for _, c := range p.Chromas {
			for _, h := range p.Hues {
				b.add(Utility{
					Class:        ShorthandClass(prop.Prefix, l.Name, c.Name, h.Name),
					Kind:         KindShorthand,
					Prefix:       prop.Prefix,
					Luminance:    l.Name,
					Chroma:       c.Name,
					Hue:          h.Name,
					Declarations: colorBlock(prop, "--l-"+l.Name, "--c-"+c.Name, "--hue-"+h.Name),
				})
			}
		}
	}
}

func (b *tableBuilder) addTwoAxis(p Palette, prop Property) {
	for _, l := range p.Luminances {
		for _, c := range p.Chromas {
			b.add(Utility{
				Class:        TwoAxisClass(prop.Prefix, l.Name, c.Name),
				Kind:         KindShorthandLC,
				Prefix:       prop.Prefix,
				Luminance:    l.Name,
				Chroma:       c.Name,
				Declarations: colorBlock(prop, "--l-"+l.Name, "--c-"+c.Name, ""),
			})
		}
	}
}

func (b *tableBuilder) addDecomposed(p Palette, prop Property) {
	for _, l := range p.Luminances {
		b.add(Utility{
			Class:        prop.Prefix + "-lc-" + l.Name,
			Kind:         KindAxisL,
			Prefix:       prop.Prefix,
			Luminance:    l.Name,
			Declarations: colorBlock(prop, "--l-"+l.Name, "", ""),
		})
	}
	for _, c := range p.Chromas {
		b.add(Utility{
			Class:        prop.Prefix + "-c-" + c.Name,
			Kind:         KindAxisC,
			Prefix:       prop.Prefix,
			Chroma:       c.Name,
			Declarations: colorBlock(prop, "", "--c-"+c.Name, ""),
		})
	}
	for _, h := range p.Hues {
		b.add(Utility{
			Class:        prop.Prefix + "-h-" + h.Name,
			Kind:         KindAxisH,
			Prefix:       prop.Prefix,
			Hue:          h.Name,
			Declarations: colorBlock(prop, "", "", "--hue-"+h.Name),
		})
	}
}

// addHueContexts emits hue-{H}, which sets only the hue variable of every
// binding. Descendants using two-axis or lc-/c- utilities pick the hue up
// through inheritance.
func (b *tableBuilder) addHueContexts(p Palette) {
	for _, h := range p.Hues {
		decls := make([]Declaration, 0, len(p.Properties))
		for _, prop := range p.Properties {
			decls = append(decls, Declaration{Property: prop.AxisVars()[2], Value: "var(--hue-" + h.Name + ")"})
		}
		b.add(Utility{
			Class:        HueContextClass(h.Name),
			Kind:         KindHueContext,
			Hue:          h.Name,
			Declarations: decls,
		})
	}
}

// colorBlock sets the given axis variables (empty = inherit) and re-applies
// the resolved color to the bound property.
func colorBlock(prop Property, lVar, cVar, hVar string) []Declaration {
	axis := prop.AxisVars()
	decls := make([]Declaration, 0, 4+len(prop.Extra))
	for i, src := range [3]string{lVar, cVar, hVar} {
		if src != "" {
			decls = append(decls, Declaration{Property: axis[i], Value: "var(" + src + ")"})
		}
	}
	decls = append(decls, Declaration{Property: prop.CSSProperty, Value: ColorExpr(prop)})
	return append(decls, prop.Extra...)
}

// ColorExpr is the oklch() expression combining a binding's three axis variables.
func ColorExpr(prop Property) string {
	axis := prop.AxisVars()
	return fmt.Sprintf("oklch(var(%s) var(%s) var(%s))", axis[0], axis[1], axis[2])
}

// ShorthandClass composes {prefix}-{luminance}-{chroma}-{hue}.
func ShorthandClass(prefix, luminance, chroma, hue string) string {
	return prefix + "-" + luminance + "-" + chroma + "-" + hue
}

// HueContextClass composes hue-{hue}.
func HueContextClass(hue string) string {
	return "hue-" + hue
}

// TwoAxisClass composes {prefix}-{luminance}-{chroma}.
func TwoAxisClass(prefix, luminance, chroma string) string {
	return prefix + "-" + luminance + "-" + chroma
}

func rootDeclarations(p Palette) []Declaration {
	decls := []Declaration{
		{Property: "--lc-range-start", Value: formatNumber(p.Light.Start)},
		{Property: "--lc-range-end", Value: formatNumber(p.Light.End)},
	}

	for _, h := range p.Hues {
		decls = append(decls, Declaration{Property: "--hue-" + h.Name, Value: formatNumber(h.Degrees)})
	}
	for _, c := range p.Chromas {
		decls = append(decls, Declaration{Property: "--c-" + c.Name, Value: formatNumber(c.Value)})
	}
	for _, l := range p.Luminances {
		decls = append(decls, Declaration{Property: "--l-" + l.Name, Value: luminanceValue(p, l)})
	}

	// Per-binding defaults let single-axis and two-axis utilities resolve
	// without an ancestor setting the remaining axes.
	for _, prop := range p.Properties {
		axis := prop.AxisVars()
		decls = append(decls,
			Declaration{Property: axis[0], Value: "var(--l-" + p.Defaults.Luminance + ")"},
			Declaration{Property: axis[1], Value: "var(--c-" + p.Defaults.Chroma + ")"},
			Declaration{Property: axis[2], Value: "var(--hue-" + p.Defaults.Hue + ")"},
		)
	}
	return decls
}

// darkDeclarations flips the range under the dark selector. Custom properties
// holding var() or calc() are computed where they are declared, so every
// range-derived variable is declared again for a .dark subtree to pick up
// the flipped range.
func darkDeclarations(p Palette) []Declaration {
	decls := []Declaration{
		{Property: "--lc-range-start", Value: formatNumber(p.Dark.Start)},
		{Property: "--lc-range-end", Value: formatNumber(p.Dark.End)},
	}
	for _, l := range p.Luminances {
		if l.IsStep() {
			decls = append(decls, Declaration{Property: "--l-" + l.Name, Value: luminanceValue(p, l)})
		}
	}
	if def, ok := p.Luminance(p.Defaults.Luminance); ok && def.IsStep() {
		for _, prop := range p.Properties {
			decls = append(decls, Declaration{Property: prop.AxisVars()[0], Value: "var(--l-" + def.Name + ")"})
		}
	}
	return decls
}

// luminanceValue renders the root value of --l-{name}. Aliases such as base
// and fore point at the numeric stop sharing their step when one exists.
func luminanceValue(p Palette, l LuminanceStop) string {
	if l.Step == nil {
		return formatNumber(*l.Value)
	}
	numeric := strconv.Itoa(*l.Step)
	if l.Name != numeric {
		if target, ok := p.Luminance(numeric); ok && target.Step != nil && *target.Step == *l.Step {
			return "var(--l-" + numeric + ")"
		}
	}
	return rangeExpr(*l.Step)
}

// Lookup returns the utility generated for class.
func (t *Table) Lookup(class string) (Utility, bool) {
	i, ok := t.index[class]
	if !ok {
		return Utility{}, false
	}
	return t.Utilities[i], true
}

// Has reports whether class is part of the table.
func (t *Table) Has(class string) bool {
	_, ok := t.index[class]
	return ok
}

// Len returns the number of utilities.
func (t *Table) Len() int {
	return len(t.Utilities)
}

// CountByKind tallies utilities per kind.
func (t *Table) CountByKind() map[UtilityKind]int {
	counts := make(map[UtilityKind]int)
	for _, u := range t.Utilities {
		counts[u.Kind]++
	}
	return counts
}

// Classes returns every class name of the given kinds (all kinds when none given), in build order.
func (t *Table) Classes(kinds ...UtilityKind) []string {
	want := make(map[UtilityKind]bool, len(kinds))
	for _, k := range kinds {
		want[k] = true
	}
	out := make([]string, 0, len(t.Utilities))
	for _, u := range t.Utilities {
		if len(want) == 0 || want[u.Kind] {
			out = append(out, u.Class)
		}
	}
	return out
}

// Palette returns the palette the table was built from.
func (t *Table) Palette() Palette {
	return t.palette.Clone()
}

// Resolve computes the numeric color a utility paints under r. Axes the
// utility does not set fall back to the palette's root defaults.
func (t *Table) Resolve(class string, r LuminanceRange) (OKLCH, bool) {
	u, ok := t.Lookup(class)
	if !ok {
		return OKLCH{}, false
	}
	return t.palette.Resolve(u.Luminance, u.Chroma, u.Hue, r)
}
