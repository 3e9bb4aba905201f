// Package frames writes rendered frames to disk, one file per frame.
package frames

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/willbeason/julia-reveal/pkg/palette"
)

// Format is an output image format.
type Format string

const (
	PPM Format = "ppm"
	PNG Format = "png"
)

var ErrUnknownFormat = errors.New("unknown image format")

// ParseFormat accepts "ppm" or "png".
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case PPM, PNG:
		return f, nil
	}

	return "", fmt.Errorf("%w %q, want %q or %q", ErrUnknownFormat, s, PPM, PNG)
}

// Name is the file name of frame k: the prefix, k padded to four digits,
// and the extension. Name("out/out", 42, ".ppm") is "out/out0042.ppm".
func Name(prefix string, k int, ext string) string {
	return fmt.Sprintf("%s%04d%s", prefix, k, ext)
}

// EnsureDir creates the directory frames with the given prefix are written
// to.
func EnsureDir(prefix string) error {
	dir := filepath.Dir(prefix)

	err := os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return fmt.Errorf("create output directory %s: %w", dir, err)
	}

	return nil
}

// Sink writes frames to files named by frame index.
//
// A Sink is used from the single goroutine running the frame loop.
type Sink struct {
	prefix string
	format Format

	// zst is non-nil when PPM frames are compressed. It is reset onto each
	// new file.
	zst *zstd.Encoder
}

// NewSink returns a Sink writing frames under prefix. Only PPM frames may
// be compressed.
func NewSink(prefix string, format Format, compress bool) (*Sink, error) {
	s := &Sink{prefix: prefix, format: format}

	if !compress {
		return s, nil
	}

	if format != PPM {
		return nil, fmt.Errorf("zstd compression is only supported for %s frames, not %s", PPM, format)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	s.zst = enc

	return s, nil
}

// Ext is the file extension of written frames.
func (s *Sink) Ext() string {
	switch {
	case s.format == PNG:
		return ".png"
	case s.zst != nil:
		return ".ppm.zst"
	default:
		return ".ppm"
	}
}

// Path is the file frame k is written to.
func (s *Sink) Path(k int) string {
	return Name(s.prefix, k, s.Ext())
}

// Write stores frame k and returns the path written. On error the file
// may be incomplete; earlier frames are untouched.
func (s *Sink) Write(k, width, height int, pixels []palette.RGB) (string, error) {
	path := s.Path(k)

	f, err := os.Create(path)
	if err != nil {
		return path, fmt.Errorf("create %s: %w", path, err)
	}

	err = s.encode(f, width, height, pixels)
	if err != nil {
		_ = f.Close()
		return path, fmt.Errorf("write %s: %w", path, err)
	}

	err = f.Close()
	if err != nil {
		return path, fmt.Errorf("close %s: %w", path, err)
	}

	return path, nil
}

func (s *Sink) encode(w io.Writer, width, height int, pixels []palette.RGB) error {
	switch {
	case s.format == PNG:
		return EncodePNG(w, width, height, pixels)
	case s.zst != nil:
		s.zst.Reset(w)

		err := EncodePPM(s.zst, width, height, pixels)
		if err != nil {
			_ = s.zst.Close()
			return err
		}

		return s.zst.Close()
	default:
		return EncodePPM(w, width, height, pixels)
	}
}

// Close releases the compressor, if any.
func (s *Sink) Close() error {
	if s.zst == nil {
		return nil
	}

	// Close already ended the last frame's stream; release the encoder's
	// goroutines too.
	s.zst.Reset(io.Discard)

	return s.zst.Close()
}
