package main

import (
	"context"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/julia-reveal/pkg/escape"
	"github.com/willbeason/julia-reveal/pkg/frames"
	"github.com/willbeason/julia-reveal/pkg/progress"
	"github.com/willbeason/julia-reveal/pkg/render"
	"github.com/willbeason/julia-reveal/pkg/schedule"
	"github.com/willbeason/julia-reveal/pkg/transforms"
	"io"
	"os"
	"os/signal"
)

const (
	DefaultPrefix = "out/out"

	// C is the constant of the quadratic map being revealed.
	C = complex(-0.8, 0.156)
)

type config struct {
	schedule schedule.Schedule
	first    int

	prefix   string
	format   string
	compress bool

	power   int
	workers int
	quiet   bool
}

func mainCmd() *cobra.Command {
	cfg := config{schedule: schedule.Default()}

	cmd := &cobra.Command{
		Use:   "julia",
		Short: "Render the Julia set reveal, one image per iteration budget",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			// At this point usage information has already been printed if obviously incorrect.
			cmd.SilenceUsage = true

			status := cmd.ErrOrStderr()
			if cfg.quiet {
				status = nil
			}

			return run(cmd.Context(), cfg, status)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.schedule.Width, "width", schedule.Width, "horizontal resolution in pixels")
	flags.IntVar(&cfg.schedule.Height, "height", schedule.Height, "vertical resolution in pixels")
	flags.IntVar(&cfg.schedule.Frames, "frames", schedule.Frames, "number of frames; frame k iterates k times")
	flags.IntVar(&cfg.first, "first", 1, "first frame to render, to resume an interrupted run")
	flags.StringVar(&cfg.prefix, "out", DefaultPrefix, "output file prefix; frame numbers and the extension are appended")
	flags.StringVar(&cfg.format, "format", string(frames.PPM), "image format, ppm or png")
	flags.BoolVar(&cfg.compress, "zstd", false, "compress ppm frames with zstd")
	flags.IntVar(&cfg.power, "power", 2, "exponent of the iterated map z^power + c")
	flags.IntVar(&cfg.workers, "workers", 0, "rendering goroutines; 0 uses one per CPU")
	flags.BoolVar(&cfg.quiet, "quiet", false, "don't report progress")

	return cmd
}

func (cfg config) validate() error {
	err := cfg.schedule.Validate()
	if err != nil {
		return err
	}

	if cfg.first < 1 || cfg.first > cfg.schedule.Frames {
		return fmt.Errorf("first frame %d outside [1, %d]", cfg.first, cfg.schedule.Frames)
	}

	if cfg.power < 2 {
		return fmt.Errorf("power %d must be at least 2", cfg.power)
	}

	return nil
}

// run renders frames cfg.first through cfg.schedule.Frames in order. Each
// frame is written before the next is started; the first failed write ends
// the run.
func run(ctx context.Context, cfg config, status io.Writer) error {
	err := cfg.validate()
	if err != nil {
		return err
	}

	format, err := frames.ParseFormat(cfg.format)
	if err != nil {
		return err
	}

	sink, err := frames.NewSink(cfg.prefix, format, cfg.compress)
	if err != nil {
		return err
	}
	defer sink.Close()

	err = frames.EnsureDir(cfg.prefix)
	if err != nil {
		return err
	}

	pool := render.NewPool(cfg.workers)
	defer pool.Close()

	renderer := render.Renderer{
		Pool:   pool,
		Map:    transforms.ForPower(cfg.power, C),
		Radius: escape.DefaultRadius,
	}

	counter := progress.NewCounter(status, cfg.schedule.Frames)
	counter.Skip(cfg.first - 1)
	defer counter.Finish()

	for k := cfg.first; k <= cfg.schedule.Frames; k++ {
		// Stop between frames so every file on disk is complete.
		if err = ctx.Err(); err != nil {
			return fmt.Errorf("stopped before frame %d: %w", k, err)
		}

		f := cfg.schedule.Frame(k)
		pixels := renderer.Render(f)

		_, err = sink.Write(k, f.View.Width, f.View.Height, pixels)
		if err != nil {
			return err
		}

		counter.Done()
	}

	return sink.Close()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := mainCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
