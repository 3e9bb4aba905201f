package frames

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"strconv"

	"github.com/willbeason/julia-reveal/pkg/palette"
)

// MaxChannel is the channel maximum written in PPM headers.
const MaxChannel = 255

// EncodePPM writes pixels as a plain-text (P3) PPM image with one
// "r g b" line per pixel, in the order given.
func EncodePPM(w io.Writer, width, height int, pixels []palette.RGB) error {
	if len(pixels) != width*height {
		return fmt.Errorf("got %d pixels for a %dx%d image", len(pixels), width, height)
	}

	bw := bufio.NewWriterSize(w, 1<<16)

	_, err := fmt.Fprintf(bw, "P3\n%d %d\n%d\n", width, height, MaxChannel)
	if err != nil {
		return err
	}

	// "255 255 255\n" is the longest line.
	line := make([]byte, 0, 12)
	for _, c := range pixels {
		line = strconv.AppendUint(line[:0], uint64(c.R), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(c.G), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(c.B), 10)
		line = append(line, '\n')

		if _, err = bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// EncodePNG writes pixels as an opaque PNG image.
func EncodePNG(w io.Writer, width, height int, pixels []palette.RGB) error {
	if len(pixels) != width*height {
		return fmt.Errorf("got %d pixels for a %dx%d image", len(pixels), width, height)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, c := range pixels {
		p := img.Pix[4*i : 4*i+4 : 4*i+4]
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 0xff
	}

	return png.Encode(w, img)
}
