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
package sdlwindow

import (
	"context"
	"fmt"
	"runtime"

	"github.com/jetsetilly/gpucanny/logger"
	"github.com/jetsetilly/gpucanny/version"
	"github.com/veandco/go-sdl2/sdl"
)

// Handler is implemented by the type that draws frames into the window.
type Handler interface {
	// Render a single frame into the default framebuffer
	Render() error

	// Resize is called with the drawable size of the window in pixels. It is
	// called once before the first frame and then whenever the size changes
	Resize(width int, height int)

	// Reset is called when the window system reports that the rendering
	// device has been reset and that the resources created on it are lost
	Reset() error
}

// Window is an SDL window with an OpenGL 3.2 core context.
type Window struct {
	window  *sdl.Window
	context sdl.GLContext
}

// NewWindow creates a window with a drawable size close to the requested
// size. The OpenGL context is current when NewWindow returns.
func NewWindow(title string, width int, height int) (*Window, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("sdl: %w", err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	win := &Window{}

	var err error
	win.window, err = sdl.CreateWindow(fmt.Sprintf("%s (%s)", title, version.Version().Version),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(width), int32(height),
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	win.context, err = win.window.GLCreateContext()
	if err != nil {
		_ = win.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	if err := win.window.GLMakeCurrent(win.context); err != nil {
		_ = win.Destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	major, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d core", major, minor)

	if err := sdl.GLSetSwapInterval(1); err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(1): %v", err)
	}

	return win, nil
}

// DrawableSize returns the size of the window in pixels. This may differ
// from the window size on high DPI displays.
func (win *Window) DrawableSize() (int, int) {
	w, h := win.window.GLGetDrawableSize()
	return int(w), int(h)
}

// Swap the front and back buffers. Waits for vertical retrace if the
// platform supports it.
func (win *Window) Swap() {
	win.window.GLSwap()
}

// Destroy the window and quit SDL.
func (win *Window) Destroy() error {
	if win.context != nil {
		sdl.GLDeleteContext(win.context)
		win.context = nil
	}
	if win.window != nil {
		if err := win.window.Destroy(); err != nil {
			return fmt.Errorf("sdl: %w", err)
		}
		win.window = nil
	}
	sdl.Quit()
	return nil
}

// Show the window and tell the Handler the drawable size.
func (win *Window) Show(hnd Handler) {
	win.window.Show()
	w, h := win.DrawableSize()
	hnd.Resize(w, h)
}

// Run the presentation loop until the window is closed, the escape key is
// pressed, the context is cancelled or the Handler returns an error.
func (win *Window) Run(ctx context.Context, hnd Handler) error {
	win.Show(hnd)

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		quit, err := win.Service(hnd)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}

		if err := hnd.Render(); err != nil {
			return err
		}
		win.Swap()
	}
}

// Service pending events. Returns true if the window should close. Must be
// called regularly by any loop that draws to the window without using Run().
func (win *Window) Service(hnd Handler) (bool, error) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return true, nil

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
				return true, nil
			}

		case *sdl.WindowEvent:
			switch ev.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED:
				w, h := win.DrawableSize()
				hnd.Resize(w, h)
			case sdl.WINDOWEVENT_CLOSE:
				return true, nil
			}

		case *sdl.RenderEvent:
			if ev.Type == sdl.RENDER_DEVICE_RESET {
				logger.Log(logger.Allow, "sdl", "render device reset")
				if err := hnd.Reset(); err != nil {
					return true, err
				}
			}
		}
	}
	return false, nil
}
