// Package schedule derives the iteration budget and viewport of each
// frame of the reveal animation.
//
// Frame k iterates k times over a square window whose half-width decays
// as 1.75*exp(-k/50). The window is centered slightly off the symmetry
// point of the Julia set so late frames don't zoom into a degenerate
// region.
package schedule

import (
	"errors"
	"fmt"
	"math"

	"github.com/willbeason/julia-reveal/pkg/escape"
)

const (
	Width  = 2000
	Height = 2000
	Frames = 2000

	// ShrinkRate is the number of frames over which the window shrinks by
	// a factor of e.
	ShrinkRate = 50.0
	HalfExtent = 1.75

	CenterReal = 0.1000001009999
	CenterImag = 0.0999989899
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid schedule")

// Frame is everything needed to render one image.
type Frame struct {
	// Index is 1-based.
	Index  int
	Budget int
	View   escape.Viewport
}

// Schedule is the animation's fixed configuration.
type Schedule struct {
	Width, Height int
	Frames        int
}

// Default is the 2000-frame, 2000x2000 reveal.
func Default() Schedule {
	return Schedule{Width: Width, Height: Height, Frames: Frames}
}

func (s Schedule) Validate() error {
	switch {
	case s.Width <= 0:
		return fmt.Errorf("%w: width %d must be positive", ErrInvalid, s.Width)
	case s.Height <= 0:
		return fmt.Errorf("%w: height %d must be positive", ErrInvalid, s.Height)
	case s.Frames <= 0:
		return fmt.Errorf("%w: frame count %d must be positive", ErrInvalid, s.Frames)
	}

	return nil
}

// Shrink is the window scale of frame k.
func Shrink(k int) float64 {
	return math.Exp(-float64(k) / ShrinkRate)
}

// Frame returns the parameters of frame k. It depends on nothing but k and
// the resolution.
func (s Schedule) Frame(k int) Frame {
	half := HalfExtent * Shrink(k)

	return Frame{
		Index:  k,
		Budget: k,
		View: escape.Viewport{
			RealMin: -half + CenterReal,
			RealMax: half + CenterReal,
			ImagMin: -half + CenterImag,
			ImagMax: half + CenterImag,
			Width:   s.Width,
			Height:  s.Height,
		},
	}
}
