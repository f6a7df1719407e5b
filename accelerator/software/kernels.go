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
package software

import (
	"github.com/jetsetilly/gpucanny/accelerator"
)

// VertexKernel is the Go implementation of a vertex shader. It is called once
// per draw and returns the function that is called for every vertex. The
// returned position is in clip space.
type VertexKernel func(env *Env) func(v accelerator.Vertex) (position [4]float32, texCoord [2]float32)

// FragmentKernel is the Go implementation of a fragment shader. It is called
// once per draw and returns the function that is called for every fragment.
type FragmentKernel func(env *Env) func(texCoord [2]float32) [4]float32

// Kernels is a registry of Go kernels, keyed by shader name.
type Kernels struct {
	vertex   map[string]VertexKernel
	fragment map[string]FragmentKernel
}

// NewKernels is the preferred method of initialisation for the Kernels type.
func NewKernels() *Kernels {
	return &Kernels{
		vertex:   make(map[string]VertexKernel),
		fragment: make(map[string]FragmentKernel),
	}
}

// AddVertex registers the kernel for the named vertex shader.
func (k *Kernels) AddVertex(name string, kernel VertexKernel) {
	k.vertex[name] = kernel
}

// AddFragment registers the kernel for the named fragment shader.
func (k *Kernels) AddFragment(name string, kernel FragmentKernel) {
	k.fragment[name] = kernel
}

// Env gives a kernel access to the uniforms and textures of a draw. Missing
// uniforms have the zero value, as they do in GLSL.
type Env struct {
	uniforms accelerator.Uniforms
	units    []*texture
}

// NewEnv creates an environment outside of a device. Textures are given as
// width, height and RGBA pixel data, bottom row first, and are bound to
// texture units in order. Useful for testing kernels in isolation.
func NewEnv(uniforms accelerator.Uniforms, textures ...Image) *Env {
	env := &Env{uniforms: uniforms}
	for _, img := range textures {
		env.units = append(env.units, &texture{
			width:  img.Width,
			height: img.Height,
			pix:    img.Pix,
		})
	}
	return env
}

// Image is RGBA float32 data, bottom row first.
type Image struct {
	Width  int
	Height int
	Pix    []float32
}

// Float returns the named float uniform.
func (e *Env) Float(name string) float32 {
	if v, ok := e.uniforms[name].(float32); ok {
		return v
	}
	return 0
}

// Int returns the named int uniform.
func (e *Env) Int(name string) int32 {
	if v, ok := e.uniforms[name].(int32); ok {
		return v
	}
	return 0
}

// Vec2 returns the named vec2 uniform.
func (e *Env) Vec2(name string) accelerator.Vec2 {
	if v, ok := e.uniforms[name].(accelerator.Vec2); ok {
		return v
	}
	return accelerator.Vec2{}
}

// Mat4 returns the named mat4 uniform.
func (e *Env) Mat4(name string) accelerator.Mat4 {
	if v, ok := e.uniforms[name].(accelerator.Mat4); ok {
		return v
	}
	return accelerator.Mat4{}
}

// Sampler returns the texture bound to the unit named by the sampler
// uniform.
func (e *Env) Sampler(name string) Sampler2D {
	var unit int
	switch v := e.uniforms[name].(type) {
	case accelerator.Sampler:
		unit = int(v)
	case int32:
		unit = int(v)
	}
	if unit < 0 || unit >= len(e.units) {
		return Sampler2D{}
	}
	return Sampler2D{tex: e.units[unit]}
}

// Sampler2D samples a texture with nearest filtering and clamp to edge
// wrapping. A Sampler2D with no texture returns zero for every sample.
type Sampler2D struct {
	tex *texture
}

// Sample returns the texel at the texture coordinate.
func (s Sampler2D) Sample(uv [2]float32) [4]float32 {
	if s.tex == nil {
		return [4]float32{}
	}
	return s.tex.sample(uv)
}

// Size of the texture in texels.
func (s Sampler2D) Size() (int, int) {
	if s.tex == nil {
		return 0, 0
	}
	return s.tex.width, s.tex.height
}
