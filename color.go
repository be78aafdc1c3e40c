package oklchgen

import "fmt"

// OKLCH is a resolved color: L in [0,1], C >= 0, H in degrees.
type OKLCH struct {
	L, C, H float64
}

// String renders the color the way the preview tooltip shows it.
func (c OKLCH) String() string {
	return fmt.Sprintf("oklch(%.2f %s %s)", c.L, formatNumber(c.C), formatNumber(c.H))
}

// Resolve turns axis stop names into a numeric color under r. Empty names
// fall back to the palette defaults, mirroring the :root cascade.
func (p Palette) Resolve(luminance, chroma, hue string, r LuminanceRange) (OKLCH, bool) {
	if luminance == "" {
		luminance = p.Defaults.Luminance
	}
	if chroma == "" {
		chroma = p.Defaults.Chroma
	}
	if hue == "" {
		hue = p.Defaults.Hue
	}

	l, ok := p.Luminance(luminance)
	if !ok {
		return OKLCH{}, false
	}
	c, ok := p.Chroma(chroma)
	if !ok {
		return OKLCH{}, false
	}
	h, ok := p.Hue(hue)
	if !ok {
		return OKLCH{}, false
	}
	return OKLCH{L: l.Lightness(r), C: c.Value, H: h.Degrees}, true
}
