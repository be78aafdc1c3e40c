package oklchgen

import (
	"errors"
	"fmt"
	"regexp"

	"go.uber.org/multierr"
)

// Axis names used in validation errors.
const (
	AxisLuminance = "luminance"
	AxisChroma    = "chroma"
	AxisHue       = "hue"
	AxisProperty  = "property"
	AxisRange     = "range"
	AxisDefault   = "defaults"
)

// ErrInvalidPalette wraps every palette validation failure.
var ErrInvalidPalette = errors.New("invalid palette")

// NameError describes one rejected identifier or value.
type NameError struct {
	Axis   string // "luminance", "chroma", "hue", "property", ...
	Name   string // offending identifier ("" when missing)
	Reason string
}

func (e *NameError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %s", e.Axis, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.Axis, e.Name, e.Reason)
}

var (
	// Stop names become class segments, so no hyphens.
	stopNamePattern = regexp.MustCompile(`^[a-z0-9]+$`)
	hueNamePattern  = regexp.MustCompile(`^[a-z][a-z0-9]*$`)
	prefixPattern   = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)
	cssPropPattern  = regexp.MustCompile(`^(--)?[a-z][a-z0-9-]*$`)
)

// reservedLuminance collides with the decomposed setter segments (bg-lc-5, bg-c-hi, bg-h-primary).
var reservedLuminance = map[string]bool{"lc": true, "c": true, "h": true}

// Validate reports every problem in the palette at once. The returned error
// wraps ErrInvalidPalette; NameErrors lists the individual problems.
func (p Palette) Validate() error {
	var err error

	if len(p.Luminances) == 0 {
		err = multierr.Append(err, &NameError{Axis: AxisLuminance, Reason: "no stops defined"})
	}
	seen := make(map[string]bool)
	for _, l := range p.Luminances {
		err = multierr.Append(err, validateLuminance(l, seen))
	}

	if len(p.Chromas) == 0 {
		err = multierr.Append(err, &NameError{Axis: AxisChroma, Reason: "no stops defined"})
	}
	seen = make(map[string]bool)
	for _, c := range p.Chromas {
		err = multierr.Append(err, validateName(AxisChroma, c.Name, stopNamePattern, seen))
		if c.Value < 0 {
			err = multierr.Append(err, &NameError{Axis: AxisChroma, Name: c.Name, Reason: fmt.Sprintf("value %v is negative", c.Value)})
		}
	}

	if len(p.Hues) == 0 {
		err = multierr.Append(err, &NameError{Axis: AxisHue, Reason: "no hues defined"})
	}
	seen = make(map[string]bool)
	for _, h := range p.Hues {
		err = multierr.Append(err, validateName(AxisHue, h.Name, hueNamePattern, seen))
		if h.Degrees < 0 || h.Degrees >= 360 {
			err = multierr.Append(err, &NameError{Axis: AxisHue, Name: h.Name, Reason: fmt.Sprintf("degrees %v outside [0,360)", h.Degrees)})
		}
	}

	if len(p.Properties) == 0 {
		err = multierr.Append(err, &NameError{Axis: AxisProperty, Reason: "no property bindings defined"})
	}
	seen = make(map[string]bool)
	for _, prop := range p.Properties {
		err = multierr.Append(err, validateName(AxisProperty, prop.Prefix, prefixPattern, seen))
		if !cssPropPattern.MatchString(prop.CSSProperty) {
			err = multierr.Append(err, &NameError{Axis: AxisProperty, Name: prop.Prefix, Reason: fmt.Sprintf("invalid CSS property %q", prop.CSSProperty)})
		}
		for _, d := range prop.Extra {
			if !cssPropPattern.MatchString(d.Property) || d.Value == "" {
				err = multierr.Append(err, &NameError{Axis: AxisProperty, Name: prop.Prefix, Reason: fmt.Sprintf("invalid extra declaration %q", d.Property)})
			}
		}
	}

	if rerr := p.Light.Validate(); rerr != nil {
		err = multierr.Append(err, &NameError{Axis: AxisRange, Name: "light", Reason: rerr.Error()})
	}
	if rerr := p.Dark.Validate(); rerr != nil {
		err = multierr.Append(err, &NameError{Axis: AxisRange, Name: "dark", Reason: rerr.Error()})
	}

	if _, ok := p.Luminance(p.Defaults.Luminance); !ok {
		err = multierr.Append(err, &NameError{Axis: AxisDefault, Name: p.Defaults.Luminance, Reason: "default luminance is not a defined stop"})
	}
	if _, ok := p.Chroma(p.Defaults.Chroma); !ok {
		err = multierr.Append(err, &NameError{Axis: AxisDefault, Name: p.Defaults.Chroma, Reason: "default chroma is not a defined stop"})
	}
	if _, ok := p.Hue(p.Defaults.Hue); !ok {
		err = multierr.Append(err, &NameError{Axis: AxisDefault, Name: p.Defaults.Hue, Reason: "default hue is not defined"})
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPalette, err)
	}
	return nil
}

func validateLuminance(l LuminanceStop, seen map[string]bool) error {
	err := validateName(AxisLuminance, l.Name, stopNamePattern, seen)
	if reservedLuminance[l.Name] {
		err = multierr.Append(err, &NameError{Axis: AxisLuminance, Name: l.Name, Reason: "name is reserved for single-axis utilities"})
	}

	switch {
	case l.Step == nil && l.Value == nil:
		err = multierr.Append(err, &NameError{Axis: AxisLuminance, Name: l.Name, Reason: "needs either step or value"})
	case l.Step != nil && l.Value != nil:
		err = multierr.Append(err, &NameError{Axis: AxisLuminance, Name: l.Name, Reason: "cannot set both step and value"})
	case l.Step != nil && (*l.Step < 0 || *l.Step > ScaleSteps):
		err = multierr.Append(err, &NameError{Axis: AxisLuminance, Name: l.Name, Reason: fmt.Sprintf("step %d outside 0..%d", *l.Step, ScaleSteps)})
	case l.Value != nil && (*l.Value < 0 || *l.Value > 1):
		err = multierr.Append(err, &NameError{Axis: AxisLuminance, Name: l.Name, Reason: fmt.Sprintf("value %v outside [0,1]", *l.Value)})
	}
	return err
}

func validateName(axis, name string, pattern *regexp.Regexp, seen map[string]bool) error {
	if name == "" {
		return &NameError{Axis: axis, Reason: "empty name"}
	}
	if !pattern.MatchString(name) {
		return &NameError{Axis: axis, Name: name, Reason: fmt.Sprintf("must match %s", pattern.String())}
	}
	if seen[name] {
		return &NameError{Axis: axis, Name: name, Reason: "defined more than once"}
	}
	seen[name] = true
	return nil
}

// NameErrors flattens a Validate error into its *NameError values.
func NameErrors(err error) []*NameError {
	var out []*NameError
	var walk func(error)
	walk = func(e error) {
		switch v := e.(type) {
		case nil:
		case *NameError:
			out = append(out, v)
		case interface{ Unwrap() []error }:
			for _, inner := range v.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			walk(v.Unwrap())
		}
	}
	walk(err)
	return out
}
