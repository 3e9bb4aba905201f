// Package escape computes escape times of points under an iterated map.
package escape

import "github.com/willbeason/julia-reveal/pkg/transforms"

// DefaultRadius is the escape radius of the Julia reveal.
const DefaultRadius = 3.0

// A Result is the iteration at which an orbit left the escape radius, or
// Bounded if it never did within the budget.
type Result int

// Bounded means the orbit stayed inside the radius for the whole budget.
const Bounded Result = -1

// Escaped reports whether r is an exit time rather than Bounded.
func (r Result) Escaped() bool {
	return r >= 0
}

// Time iterates z under t at most budget times. Before step i the squared
// norm of the current point is compared to radius^2; the first step at
// which it is larger is returned.
func Time(z complex128, t transforms.Transform, budget int, radius float64) Result {
	r2 := radius * radius

	for i := 0; i < budget; i++ {
		re, im := real(z), imag(z)
		if re*re+im*im > r2 {
			return Result(i)
		}

		z = t.Next(z)
	}

	return Bounded
}
