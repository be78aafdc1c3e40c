package oklchgen

import (
	"fmt"
	"strconv"
)

// ScaleSteps is the number of increments on the luminance contrast scale.
const ScaleSteps = 10

// LuValue interpolates the lightness of a contrast step within r.
// Step 0 yields r.Start and step 10 yields r.End exactly.
func LuValue(step int, r LuminanceRange) float64 {
	t := float64(step) / ScaleSteps
	return r.Start*(1-t) + r.End*t
}

// Validate checks that both endpoints are valid OKLCH lightness values.
func (r LuminanceRange) Validate() error {
	if r.Start < 0 || r.Start > 1 {
		return fmt.Errorf("range start %v outside [0,1]", r.Start)
	}
	if r.End < 0 || r.End > 1 {
		return fmt.Errorf("range end %v outside [0,1]", r.End)
	}
	return nil
}

// Lightness resolves a stop to its numeric lightness under r.
func (s LuminanceStop) Lightness(r LuminanceRange) float64 {
	if s.Step != nil {
		return LuValue(*s.Step, r)
	}
	if s.Value != nil {
		return *s.Value
	}
	return 0
}

// rangeExpr is the CSS counterpart of LuValue, evaluated by the browser so
// that overriding --lc-range-start/--lc-range-end re-themes every step.
func rangeExpr(step int) string {
	t := formatNumber(float64(step) / ScaleSteps)
	return "calc(var(--lc-range-start) + (var(--lc-range-end) - var(--lc-range-start)) * " + t + ")"
}

// formatNumber renders a float in the shortest form that round-trips.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
