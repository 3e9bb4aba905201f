package escape

// A Viewport is the rectangle of the complex plane drawn onto a
// Width x Height pixel grid. Pixel (0, 0) maps to (RealMin, ImagMin).
type Viewport struct {
	RealMin, RealMax float64
	ImagMin, ImagMax float64

	Width, Height int
}

// Valid reports whether the viewport has a positive resolution and
// non-inverted bounds.
//
// Bounds are allowed to coincide: deep in a zoom the span can fall below
// the spacing of float64 values around the center.
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0 &&
		v.RealMax >= v.RealMin && v.ImagMax >= v.ImagMin
}

// Scaler returns the pixel-to-plane mapping for v with its per-pixel
// steps computed once.
func (v Viewport) Scaler() Scaler {
	return Scaler{
		realMin: v.RealMin,
		imagMin: v.ImagMin,
		dRe:     (v.RealMax - v.RealMin) / float64(v.Width),
		dIm:     (v.ImagMax - v.ImagMin) / float64(v.Height),
	}
}

// Scaler maps pixel coordinates to points in the complex plane.
type Scaler struct {
	realMin, imagMin float64
	// dRe and dIm are the real size of one pixel along each axis.
	dRe, dIm float64
}

// At returns the point for pixel (x, y).
func (s Scaler) At(x, y int) complex128 {
	return complex(float64(x)*s.dRe+s.realMin, float64(y)*s.dIm+s.imagMin)
}

// Row returns the imaginary part shared by every pixel in row y.
func (s Scaler) Row(y int) float64 {
	return float64(y)*s.dIm + s.imagMin
}

// Column returns the real part shared by every pixel in column x.
func (s Scaler) Column(x int) float64 {
	return float64(x)*s.dRe + s.realMin
}
