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
package gl32

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/gpucanny/accelerator"
	"github.com/jetsetilly/gpucanny/curated"
)

// Draw implements the accelerator.Device interface.
func (dev *Device) Draw(call accelerator.DrawCall) error {
	dev.owner.Check()

	p, ok := dev.programs[call.Program]
	if !ok {
		return fmt.Errorf("gl32: %s: no program %d", call.Name, call.Program)
	}
	g, ok := dev.geometry[call.Geometry]
	if !ok {
		return fmt.Errorf("gl32: %s: no geometry %d", call.Name, call.Geometry)
	}

	// sampling a texture attached to the framebuffer being drawn to is
	// undefined behaviour in OpenGL
	if tgt, ok := dev.targets[call.Target]; ok && call.Samples(tgt.tex) {
		return curated.Errorf(accelerator.PipelineHazardError,
			fmt.Sprintf("%s samples texture %d which backs %s", call.Name, tgt.tex, call.Target))
	}

	if err := dev.bind(call.Target); err != nil {
		return err
	}

	gl.UseProgram(p.handle)

	for i, id := range call.Textures {
		tex, ok := dev.textures[id]
		if !ok {
			return fmt.Errorf("gl32: %s: no texture %d", call.Name, id)
		}
		gl.ActiveTexture(gl.TEXTURE0 + uint32(i))
		gl.BindTexture(gl.TEXTURE_2D, tex.handle)
	}

	for name, v := range call.Uniforms {
		if err := p.set(name, v); err != nil {
			return err
		}
	}

	gl.BindVertexArray(g.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.count, gl.UNSIGNED_SHORT, 0)
	gl.BindVertexArray(0)

	if err := glError(); err != nil {
		return fmt.Errorf("gl32: %s: %w", call.Name, err)
	}

	return nil
}
