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
	"github.com/jetsetilly/gpucanny/accelerator"
	"github.com/jetsetilly/gpucanny/curated"
	"github.com/jetsetilly/gpucanny/shaders"
)

// FrameState is the per-frame input to RenderFrame().
type FrameState struct {
	// applied by the resolution pass. recomputed only when the viewport
	// changes
	Transform accelerator.Mat4
	Viewport  accelerator.Viewport

	// suppression thresholds
	Low  float32
	High float32

	// neighbourhood sum at which a weak pixel is kept
	StrongCutoff float32

	// write the gradient direction to the green and blue channels
	EncodeDirection bool

	// called at the start of every pass. may be nil
	OnState func(State)
}

// uniforms for the pass.
func (fs FrameState) uniforms(p Pass, src Texture) accelerator.Uniforms {
	u := accelerator.Uniforms{
		shaders.UniformSource:    accelerator.Sampler(0),
		shaders.UniformPixelStep: src.PixelStep(p.Step),
	}

	switch p.Program {
	case GradientProgram:
		var enc int32
		if fs.EncodeDirection {
			enc = 1
		}
		u[shaders.UniformEncodeDirection] = enc
	case SuppressionProgram:
		u[shaders.UniformThreshold] = accelerator.Vec2{fs.Low, fs.High}
	case ResolutionProgram:
		u[shaders.UniformTransform] = fs.Transform
		u[shaders.UniformCutoff] = fs.StrongCutoff
	}

	return u
}

// RenderFrame executes the pass schedule of the resources. The on-screen
// surface is cleared before the first pass.
func RenderFrame(dev accelerator.Device, res *Resources, fs FrameState) error {
	dev.SetViewport(fs.Viewport)
	dev.Clear(accelerator.OnScreen, 0, 0, 0, 1)

	for _, p := range res.schedule {
		if fs.OnState != nil {
			fs.OnState(p.State)
		}

		src, err := res.texture(p.Source)
		if err != nil {
			return curated.Errorf("pipeline: %v", err)
		}
		dest, err := res.target(p.Destination)
		if err != nil {
			return curated.Errorf("pipeline: %v", err)
		}

		if p.Barrier {
			dev.Barrier()
		}

		err = dev.Draw(accelerator.DrawCall{
			Name:     p.State.String(),
			Program:  res.programs[p.Program].ID,
			Geometry: res.quad,
			Target:   dest,
			Textures: []accelerator.TextureID{src.ID},
			Uniforms: fs.uniforms(p, src),
		})
		if err != nil {
			return curated.Errorf("pipeline: %v", err)
		}
	}

	if fs.OnState != nil {
		fs.OnState(Present)
	}

	return nil
}
