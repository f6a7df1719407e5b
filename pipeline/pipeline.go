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
package pipeline

import (
	"image"

	"github.com/jetsetilly/gpucanny/accelerator"
	"github.com/jetsetilly/gpucanny/curated"
	"github.com/jetsetilly/gpucanny/logger"
	"github.com/jetsetilly/gpucanny/performance"
)

// Pipeline renders edge detected frames of a single image.
type Pipeline struct {
	dev   accelerator.Device
	prefs *Preferences
	img   Image
	res   *Resources

	state State

	viewport  accelerator.Viewport
	transform accelerator.Mat4

	timer *performance.FrameTimer
}

// NewPipeline uploads the image and creates every resource required to
// render a frame. The image must be the size of the working resolution. The
// viewport is initially the size of the working resolution.
//
// The pipeline owns the device. If an error is returned the device has been
// destroyed.
func NewPipeline(dev accelerator.Device, prefs *Preferences, img Image) (*Pipeline, error) {
	w, h := prefs.Resolution()
	if img.Width != w || img.Height != h {
		dev.Destroy()
		return nil, curated.Errorf(ImageSizeError, img.Width, img.Height, w, h)
	}

	pl := &Pipeline{
		dev:   dev,
		prefs: prefs,
		img:   img,
		timer: performance.NewFrameTimer(prefs.TimerFrames.Get().(int)),
	}

	if err := pl.init(); err != nil {
		return nil, err
	}
	pl.Resize(w, h)

	return pl, nil
}

func (pl *Pipeline) init() error {
	pl.state = Init

	var err error
	pl.res, err = NewResources(pl.dev, pl.img)
	if err != nil {
		return curated.Errorf("pipeline: %v", err)
	}

	// the state that follows INIT
	pl.state = Present

	return nil
}

// Reset returns the pipeline to the INIT state and creates the resources
// again on the device. Used when the context of the previous device has been
// lost. The viewport is preserved.
func (pl *Pipeline) Reset(dev accelerator.Device) error {
	logger.Log(logger.Allow, "pipeline", "reset")
	pl.dev = dev
	if err := pl.init(); err != nil {
		return err
	}
	pl.Resize(pl.viewport.Width, pl.viewport.Height)
	return nil
}

// Resize the viewport. The transform that fits the image to the viewport is
// recomputed.
func (pl *Pipeline) Resize(width int, height int) {
	pl.viewport = accelerator.Viewport{Width: width, Height: height}
	pl.transform = FitTransform(pl.img.Width, pl.img.Height, width, height)
	logger.Logf(logger.Allow, "pipeline", "viewport %s", pl.viewport)
}

// FrameState returns the state for the next frame.
func (pl *Pipeline) FrameState() FrameState {
	return FrameState{
		Transform:       pl.transform,
		Viewport:        pl.viewport,
		Low:             float32(pl.prefs.Low.Get().(float64)),
		High:            float32(pl.prefs.High.Get().(float64)),
		StrongCutoff:    float32(pl.prefs.StrongCutoff.Get().(float64)),
		EncodeDirection: pl.prefs.EncodeDirection.Get().(bool),
		OnState: func(s State) {
			pl.state = s
		},
	}
}

// Render a frame.
func (pl *Pipeline) Render() error {
	if f := pl.prefs.TimerFrames.Get().(int); f != pl.timer.Frames() {
		pl.timer.SetFrames(f)
	}

	pl.timer.Start()
	err := RenderFrame(pl.dev, pl.res, pl.FrameState())
	pl.timer.End()

	return err
}

// State returns the most recent state of the pipeline.
func (pl *Pipeline) State() State {
	return pl.state
}

// Resources returns the resources used by the pipeline.
func (pl *Pipeline) Resources() *Resources {
	return pl.res
}

// Timer returns the frame timer.
func (pl *Pipeline) Timer() *performance.FrameTimer {
	return pl.timer
}

// Snapshot returns the contents of the viewport.
func (pl *Pipeline) Snapshot() (*image.Gray, error) {
	w, h, pix, err := pl.dev.ReadPixels(accelerator.OnScreen)
	if err != nil {
		return nil, curated.Errorf("pipeline: %v", err)
	}
	return grayFromRGBA(w, h, pix), nil
}

// Destroy every accelerator resource.
func (pl *Pipeline) Destroy() {
	pl.dev.Destroy()
	pl.res = nil
}
