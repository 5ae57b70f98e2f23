package orion

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/oliverbestmann/gpuboot/glimpse"
	"github.com/oliverbestmann/gpuboot/pulse"
	"github.com/pkg/profile"
)

// renderContext is the part of *pulse.Context that Run depends on.
type renderContext interface {
	Describe() string
	Release()
}

var newWindow = glimpse.NewWindow

var newRenderContext = func(sd *wgpu.SurfaceDescriptor, width, height uint32) (renderContext, error) {
	ctx, err := pulse.New(sd, width, height)
	if err != nil {
		return nil, err
	}

	return ctx, nil
}

type RunOptions struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// directory to write a cpu profile to. No profile is written if empty
	CPUProfile string

	// receives the adapter report. Defaults to os.Stdout
	Output io.Writer
}

func (opts RunOptions) withDefaults() RunOptions {
	if opts.WindowWidth == 0 {
		opts.WindowWidth = 1000
	}

	if opts.WindowHeight == 0 {
		opts.WindowHeight = 600
	}

	if opts.WindowTitle == "" {
		opts.WindowTitle = "gpuboot"
	}

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return opts
}

// Run opens a window, initializes webgpu for it and blocks until the window
// is closed or Escape is pressed. An error is only returned if the window
// or the webgpu context could not be created.
func Run(opts RunOptions) error {
	opts = opts.withDefaults()

	if opts.CPUProfile != "" {
		defer profile.Start(
			profile.CPUProfile,
			profile.ProfilePath(opts.CPUProfile),
			profile.NoShutdownHook,
		).Stop()
	}

	// create a new window
	win, err := newWindow(
		opts.WindowWidth,
		opts.WindowHeight,
		opts.WindowTitle,
	)
	if err != nil {
		return errors.Wrap(err, "open window")
	}

	defer win.Terminate()

	width, height := win.GetSize()

	// initialize the webgpu device
	ctx, err := newRenderContext(win.SurfaceDescriptor(), width, height)
	if err != nil {
		return errors.Wrap(err, "initialize rendering")
	}

	defer ctx.Release()

	_, _ = fmt.Fprintf(opts.Output, "Using device %s\n", ctx.Describe())

	state := Loop(win)

	slog.Debug("Event loop finished", slog.String("state", state.String()))

	return nil
}
