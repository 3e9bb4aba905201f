// Package palette turns escape times into pixel colors.
//
// Escaping points sweep the full hue circle as their exit time grows
// towards the iteration budget, at full saturation and brightness. Points
// that never escape are black.
package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/willbeason/julia-reveal/pkg/escape"
)

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R, G, B uint8
}

// Black is the color of points that stay bounded.
var Black = RGB{}

// Color returns the pixel color for an escape result under the given
// iteration budget.
func Color(r escape.Result, budget int) RGB {
	if !r.Escaped() {
		return Black
	}

	c := colorful.Hsv(wrap(Hue(int(r), budget)), 1.0, 1.0).Clamped()

	return RGB{
		R: Channel(c.R),
		G: Channel(c.G),
		B: Channel(c.B),
	}
}

// Hue is the hue in degrees of an orbit escaping at iteration i of budget.
// It runs from -180 at i = 0 towards +180 as i approaches budget.
func Hue(i, budget int) float64 {
	coef := float64(i) / float64(budget)
	return 360.0*coef - 180.0
}

// Channel scales a channel in [0, 1] to [0, 255], truncating toward zero.
func Channel(v float64) uint8 {
	return uint8(v * 255.0)
}

// wrap brings a hue in degrees into [0, 360), which colorful.Hsv expects.
func wrap(h float64) float64 {
	h = math.Mod(h, 360.0)
	if h < 0 {
		h += 360.0
	}
	// -1e-15 + 360 rounds to 360.
	if h >= 360.0 {
		h = 0
	}

	return h
}
