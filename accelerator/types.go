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
package accelerator

import "fmt"

// TextureID refers to a texture created by a Device.
type TextureID int

// NoTexture is never returned by a Device.
const NoTexture TextureID = 0

// TargetID refers to a render target created by a Device.
type TargetID int

// OnScreen is the reserved render target for the presentation surface.
const OnScreen TargetID = 0

func (t TargetID) String() string {
	if t == OnScreen {
		return "on-screen"
	}
	return fmt.Sprintf("target %d", int(t))
}

// ShaderID refers to a compiled shader stage.
type ShaderID int

// ProgramID refers to a linked shader program.
type ProgramID int

// GeometryID refers to vertex data uploaded to a Device.
type GeometryID int

// Stage of a shader.
type Stage int

// List of valid Stage values.
const (
	VertexStage Stage = iota
	FragmentStage
)

func (s Stage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	}
	return "unknown stage"
}

// Source of a shader stage. The Name identifies the shader in errors and in
// the software device's kernel registry.
type Source struct {
	Name  string
	Stage Stage
	Text  string
}

// Vertex is a single vertex of the geometry shared by every pass.
type Vertex struct {
	Position [3]float32
	TexCoord [2]float32
}

// Vec2 is a two component vector uniform.
type Vec2 [2]float32

// Mat4 is a 4x4 matrix uniform in column-major order.
type Mat4 [16]float32

// Identity matrix.
var Identity = Mat4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 1, 0,
	0, 0, 0, 1,
}

// Apply the matrix to a position. The w component of the position is
// assumed to be 1.
func (m Mat4) Apply(p [3]float32) [4]float32 {
	var r [4]float32
	for row := 0; row < 4; row++ {
		r[row] = m[row]*p[0] + m[4+row]*p[1] + m[8+row]*p[2] + m[12+row]
	}
	return r
}

// Sampler is a uniform that names a texture unit.
type Sampler int32

// Uniforms for a draw, keyed by uniform name. Valid value types are float32,
// int32, Sampler, Vec2 and Mat4.
type Uniforms map[string]any

// Viewport is the area of the on-screen surface that draws to OnScreen are
// mapped to. Off-screen draws always cover the whole of their target.
type Viewport struct {
	X, Y          int
	Width, Height int
}

func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", v.Width, v.Height, v.X, v.Y)
}

// DrawCall describes a single draw of a geometry with a program.
type DrawCall struct {
	// the name of the draw. used in errors and logging
	Name string

	Program  ProgramID
	Geometry GeometryID
	Target   TargetID

	// textures are bound to texture units in order. the first texture is
	// bound to unit 0
	Textures []TextureID

	Uniforms Uniforms
}

// Samples returns true if the draw samples the texture.
func (d DrawCall) Samples(tex TextureID) bool {
	for _, t := range d.Textures {
		if t == tex {
			return true
		}
	}
	return false
}
