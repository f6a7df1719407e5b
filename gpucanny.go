// This file is part of Gpucanny.
//
// Gpucanny is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gpucanny is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gpucanny.  If not, see <https://www.gnu.org/licenses/>.
package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gpucanny/accelerator/gl32"
	"github.com/jetsetilly/gpucanny/accelerator/software"
	"github.com/jetsetilly/gpucanny/digest"
	"github.com/jetsetilly/gpucanny/gui/sdlwindow"
	"github.com/jetsetilly/gpucanny/imageloader"
	"github.com/jetsetilly/gpucanny/logger"
	"github.com/jetsetilly/gpucanny/modalflag"
	"github.com/jetsetilly/gpucanny/performance"
	"github.com/jetsetilly/gpucanny/pipeline"
	"github.com/jetsetilly/gpucanny/prefs"
	"github.com/jetsetilly/gpucanny/shaders"
	"github.com/jetsetilly/gpucanny/statsview"
	"github.com/jetsetilly/gpucanny/version"
)

const (
	defaultDisplayDuration  = 5 * time.Second
	defaultSoftwareDuration = 30 * time.Second
)

// the OpenGL context and the SDL event loop must both be serviced from the
// main thread
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	os.Exit(launch(ctx, os.Args[1:]))
}

func launch(ctx context.Context, args []string) int {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS", "PERFORMANCE", "VERSION")

	log := md.AddBool("log", false, "echo log to stderr")
	prefsOverride := md.AddString("prefs", "", "preference overrides in the form \"key::value; key::value\"")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		return 10
	}

	if *log {
		logger.SetEcho(logger.NewColorizer(os.Stderr), true)
	}

	if *prefsOverride != "" {
		prefs.PushCommandLineStack(*prefsOverride)
	}

	switch md.Mode() {
	case "RUN":
		err = run(ctx, md)
	case "HEADLESS":
		err = headless(md)
	case "PERFORMANCE":
		err = perform(ctx, md)
	case "VERSION":
		fmt.Println(version.Version())
	}

	if *prefsOverride != "" {
		if unused := prefs.PopCommandLineStack(); len(unused) > 0 {
			fmt.Printf("* unused preference overrides: %s\n", strings.Join(unused, ", "))
		}
	}

	if err != nil {
		// the log has not been echoed so write it out now to give the error
		// some context
		if !*log {
			logger.Write(os.Stderr)
		}
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// loadImage loads the file named by the single remaining argument and
// prepares it for the working resolution.
func loadImage(md *modalflag.Modes, cfg *pipeline.Preferences, fit string) (pipeline.Image, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return pipeline.Image{}, fmt.Errorf("image file required for %s mode", md)
	case 1:
	default:
		return pipeline.Image{}, fmt.Errorf("too many arguments for %s mode", md)
	}

	f, err := imageloader.ParseFit(fit)
	if err != nil {
		return pipeline.Image{}, err
	}

	w, h := cfg.Resolution()
	g, err := imageloader.Load(md.GetArg(0), w, h, f)
	if err != nil {
		return pipeline.Image{}, err
	}

	return pipeline.ImageFromGray(g), nil
}

// handler connects a pipeline to an sdlwindow.
type handler struct {
	pl *pipeline.Pipeline
}

func (hnd *handler) Render() error {
	return hnd.pl.Render()
}

func (hnd *handler) Resize(width int, height int) {
	hnd.pl.Resize(width, height)
}

func (hnd *handler) Reset() error {
	dev, err := gl32.NewDevice()
	if err != nil {
		return err
	}
	return hnd.pl.Reset(dev)
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	fit := md.AddString("fit", "letterbox", "fit image to working resolution: letterbox, stretch, fill")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	save := md.AddBool("save", false, "save preferences on exit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cfg, err := pipeline.NewPreferences()
	if err != nil {
		return err
	}

	img, err := loadImage(md, cfg, *fit)
	if err != nil {
		return err
	}

	if *stats {
		if !statsview.Available() {
			fmt.Println("* statsview not available in this build")
		}
		statsview.Launch(os.Stdout)
	}

	win, err := sdlwindow.NewWindow(version.ApplicationName, img.Width, img.Height)
	if err != nil {
		return err
	}
	defer win.Destroy()

	dev, err := gl32.NewDevice()
	if err != nil {
		return err
	}

	pl, err := pipeline.NewPipeline(dev, cfg, img)
	if err != nil {
		return err
	}
	defer pl.Destroy()

	if err := win.Run(ctx, &handler{pl: pl}); err != nil {
		return err
	}

	if *save {
		return cfg.Save()
	}

	return nil
}

func headless(md *modalflag.Modes) error {
	md.NewMode()

	fit := md.AddString("fit", "letterbox", "fit image to working resolution: letterbox, stretch, fill")
	out := md.AddString("out", "edges.png", "output PNG file")
	frames := md.AddInt("frames", 1, "number of frames to render before writing the output")
	dot := md.AddString("memviz", "", "write a graph of the pipeline resources to the named dot file")
	fingerprint := md.AddBool("digest", false, "print a fingerprint of every rendered frame")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *frames < 1 {
		return fmt.Errorf("at least one frame must be rendered (%d)", *frames)
	}

	cfg, err := pipeline.NewPreferences()
	if err != nil {
		return err
	}

	img, err := loadImage(md, cfg, *fit)
	if err != nil {
		return err
	}

	dev, err := software.NewDevice(img.Width, img.Height, shaders.SoftwareKernels())
	if err != nil {
		return err
	}

	pl, err := pipeline.NewPipeline(dev, cfg, img)
	if err != nil {
		return err
	}
	defer pl.Destroy()

	var dig digest.Frames

	for i := 0; i < *frames; i++ {
		if err := pl.Render(); err != nil {
			return err
		}
		if *fingerprint {
			g, err := pl.Snapshot()
			if err != nil {
				return err
			}
			dig.Add(g)
		}
	}

	if *fingerprint {
		fmt.Printf("digest: %s (%d frames)\n", dig.Hash(), dig.Count())
	}

	if *dot != "" {
		f, err := os.Create(*dot)
		if err != nil {
			return err
		}
		memviz.Map(f, pl.Resources())
		if err := f.Close(); err != nil {
			return err
		}
	}

	g, err := pl.Snapshot()
	if err != nil {
		return err
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, g); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("%s written (%s)\n", *out, pl.Timer())

	return nil
}

// presentFrame returns a frame function that services window events before
// rendering and presenting each frame. Closing the window cancels the context
// of the performance check.
func presentFrame(cancel context.CancelFunc, service func() (bool, error), render func() error, swap func()) func() error {
	return func() error {
		quit, err := service()
		if err != nil {
			return err
		}
		if quit {
			cancel()
			return nil
		}
		if err := render(); err != nil {
			return err
		}
		swap()
		return nil
	}
}

func perform(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	fit := md.AddString("fit", "letterbox", "fit image to working resolution: letterbox, stretch, fill")
	display := md.AddBool("display", false, "render with OpenGL to a window rather than with the software device")
	duration := md.AddDuration("duration", 0, "run duration (default 5s, or 30s for the software device)")
	profile := md.AddString("profile", "none", "run with profiler: cpu, mem, trace, all (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	cfg, err := pipeline.NewPreferences()
	if err != nil {
		return err
	}

	img, err := loadImage(md, cfg, *fit)
	if err != nil {
		return err
	}

	var frame func() error
	var pl *pipeline.Pipeline

	if *display {
		if *duration == 0 {
			*duration = defaultDisplayDuration
		}

		win, err := sdlwindow.NewWindow(version.ApplicationName, img.Width, img.Height)
		if err != nil {
			return err
		}
		defer win.Destroy()

		dev, err := gl32.NewDevice()
		if err != nil {
			return err
		}

		pl, err = pipeline.NewPipeline(dev, cfg, img)
		if err != nil {
			return err
		}

		hnd := &handler{pl: pl}
		win.Show(hnd)

		var cancel context.CancelFunc
		ctx, cancel = context.WithCancel(ctx)
		defer cancel()

		frame = presentFrame(cancel, func() (bool, error) {
			return win.Service(hnd)
		}, pl.Render, win.Swap)
	} else {
		if *duration == 0 {
			*duration = defaultSoftwareDuration
		}

		dev, err := software.NewDevice(img.Width, img.Height, shaders.SoftwareKernels())
		if err != nil {
			return err
		}

		pl, err = pipeline.NewPipeline(dev, cfg, img)
		if err != nil {
			return err
		}

		frame = pl.Render
	}
	defer pl.Destroy()

	return performance.RunProfiler(prf, "gpucanny", func() error {
		return performance.Check(ctx, md.Output, *duration, frame)
	})
}
