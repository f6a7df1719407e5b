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
package shaders

import (
	"embed"
	"fmt"

	"github.com/jetsetilly/gpucanny/accelerator"
)

//go:embed glsl
var glsl embed.FS

// Names of the shader stages.
const (
	Transform   = "transform.vert"
	Passthrough = "passthrough.vert"
	Blur        = "blur.frag"
	Gradient    = "gradient.frag"
	Suppression = "suppression.frag"
	Resolution  = "resolution.frag"
)

// Names of the vertex attributes. The order is the order of the fields in the
// accelerator.Vertex type.
const (
	AttribPosition = "position"
	AttribTexCoord = "texCoord"
)

// Attributes in location order.
var Attributes = []string{AttribPosition, AttribTexCoord}

// Names of the uniforms.
const (
	UniformTransform       = "transform"
	UniformSource          = "sourceTextureUnit"
	UniformPixelStep       = "pixelStep"
	UniformThreshold       = "threshold"
	UniformCutoff          = "cutoff"
	UniformEncodeDirection = "encodeDirection"
)

var stages = map[string]accelerator.Stage{
	Transform:   accelerator.VertexStage,
	Passthrough: accelerator.VertexStage,
	Blur:        accelerator.FragmentStage,
	Gradient:    accelerator.FragmentStage,
	Suppression: accelerator.FragmentStage,
	Resolution:  accelerator.FragmentStage,
}

// Source returns the named shader source.
func Source(name string) (accelerator.Source, error) {
	stage, ok := stages[name]
	if !ok {
		return accelerator.Source{}, fmt.Errorf("shaders: unknown shader (%s)", name)
	}

	b, err := glsl.ReadFile("glsl/" + name)
	if err != nil {
		return accelerator.Source{}, fmt.Errorf("shaders: %w", err)
	}

	return accelerator.Source{
		Name:  name,
		Stage: stage,
		Text:  string(b),
	}, nil
}
