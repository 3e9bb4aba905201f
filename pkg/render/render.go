// Package render evaluates every pixel of a frame in parallel.
package render

import (
	"sync"

	"github.com/willbeason/julia-reveal/pkg/escape"
	"github.com/willbeason/julia-reveal/pkg/palette"
	"github.com/willbeason/julia-reveal/pkg/schedule"
	"github.com/willbeason/julia-reveal/pkg/transforms"
)

// Renderer turns frames into row-major pixel buffers.
type Renderer struct {
	Pool *Pool

	Map    transforms.Transform
	Radius float64
}

// Render returns the colors of f's pixels, y outer and x inner.
//
// Each row is one job on the pool and writes only to its own slice of the
// result, so the output does not depend on scheduling or pool size.
func (r Renderer) Render(f schedule.Frame) []palette.RGB {
	width, height := f.View.Width, f.View.Height
	pixels := make([]palette.RGB, width*height)
	scaler := f.View.Scaler()

	wg := sync.WaitGroup{}
	wg.Add(height)
	for y := 0; y < height; y++ {
		row := pixels[y*width : (y+1)*width]
		r.Pool.Go(func() {
			defer wg.Done()
			r.renderRow(row, scaler, y, f.Budget)
		})
	}
	wg.Wait()

	return pixels
}

func (r Renderer) renderRow(row []palette.RGB, scaler escape.Scaler, y, budget int) {
	im := scaler.Row(y)

	for x := range row {
		z := complex(scaler.Column(x), im)
		row[x] = palette.Color(escape.Time(z, r.Map, budget, r.Radius), budget)
	}
}
