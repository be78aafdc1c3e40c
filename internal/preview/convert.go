// Package preview renders the palette as terminal swatches.
package preview

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/yacobolo/oklchgen"
)

// gamutEpsilon absorbs rounding in the matrix constants so in-range
// colors like pure white are not reported as clipped.
const gamutEpsilon = 1e-4

// ToSRGB converts an OKLCH color to sRGB. The returned color is clamped to
// the displayable range; inGamut reports whether clamping was necessary.
func ToSRGB(c oklchgen.OKLCH) (rgb colorful.Color, inGamut bool) {
	h := c.H * math.Pi / 180
	a := c.C * math.Cos(h)
	b := c.C * math.Sin(h)

	// OKLab -> LMS'
	l := c.L + 0.3963377774*a + 0.2158037573*b
	m := c.L - 0.1055613458*a - 0.0638541728*b
	s := c.L - 0.0894841775*a - 1.2914855480*b

	l, m, s = l*l*l, m*m*m, s*s*s

	// LMS -> linear sRGB
	lr := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	lg := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	lb := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	inGamut = inUnit(lr) && inUnit(lg) && inUnit(lb)
	return colorful.LinearRgb(clampLinear(lr), clampLinear(lg), clampLinear(lb)).Clamped(), inGamut
}

// Hex returns the #rrggbb form of c after gamut clipping.
func Hex(c oklchgen.OKLCH) string {
	rgb, _ := ToSRGB(c)
	return rgb.Hex()
}

func inUnit(v float64) bool {
	return v >= -gamutEpsilon && v <= 1+gamutEpsilon
}

// clampLinear keeps negative channels out of the sRGB transfer function.
func clampLinear(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
