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
	"github.com/chewxy/math32"
	"github.com/jetsetilly/gpucanny/accelerator"
	"github.com/jetsetilly/gpucanny/accelerator/software"
)

// SoftwareKernels returns the Go kernels for every shader stage, ready to be
// given to software.NewDevice().
func SoftwareKernels() *software.Kernels {
	k := software.NewKernels()
	k.AddVertex(Transform, transformKernel)
	k.AddVertex(Passthrough, passthroughKernel)
	k.AddFragment(Blur, blurKernel)
	k.AddFragment(Gradient, gradientKernel)
	k.AddFragment(Suppression, suppressionKernel)
	k.AddFragment(Resolution, resolutionKernel)
	return k
}

func transformKernel(env *software.Env) func(accelerator.Vertex) ([4]float32, [2]float32) {
	m := env.Mat4(UniformTransform)
	return func(v accelerator.Vertex) ([4]float32, [2]float32) {
		return m.Apply(v.Position), v.TexCoord
	}
}

func passthroughKernel(_ *software.Env) func(accelerator.Vertex) ([4]float32, [2]float32) {
	return func(v accelerator.Vertex) ([4]float32, [2]float32) {
		return [4]float32{v.Position[0], v.Position[1], v.Position[2], 1}, v.TexCoord
	}
}

// BlurWeights are the weights of the 5-tap gaussian.
var BlurWeights = [5]float32{0.0625, 0.25, 0.375, 0.25, 0.0625}

func offset(uv [2]float32, s, t float32, step accelerator.Vec2) [2]float32 {
	return [2]float32{uv[0] + s*step[0], uv[1] + t*step[1]}
}

func blurKernel(env *software.Env) func([2]float32) [4]float32 {
	src := env.Sampler(UniformSource)
	step := env.Vec2(UniformPixelStep)

	return func(uv [2]float32) [4]float32 {
		var v float32
		for i, w := range BlurWeights {
			o := float32(i - 2)
			v += src.Sample(offset(uv, o, o, step))[0] * w
		}
		return [4]float32{v, v, v, 1}
	}
}

func sign(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func stepf(edge, x float32) float32 {
	if x < edge {
		return 0
	}
	return 1
}

func smoothstep(lo, hi, x float32) float32 {
	t := min(max((x-lo)/(hi-lo), 0), 1)
	return t * t * (3 - 2*t)
}

// Direction quantises the gradient to one of four directions: (1, 0),
// (1, 1), (0, 1) and (1, -1). A zero gradient has direction (1, 0).
func Direction(gx, gy float32) (float32, float32) {
	// rotate by 22.5 degrees
	rx := 0.92388*gx - 0.38268*gy
	ry := 0.38268*gx + 0.92388*gy

	// double the angle
	qx := rx*rx - ry*ry
	qy := 2 * rx * ry

	dx := stepf(-1.5, sign(qx)+sign(qy))
	dy := stepf(0, -qx) - stepf(0, qx)*stepf(0, -qy)
	return dx, dy
}

// Sobel returns the horizontal and vertical gradient at the texture
// coordinate.
func Sobel(src software.Sampler2D, uv [2]float32, step accelerator.Vec2) (float32, float32) {
	tap := func(s, t float32) float32 {
		return src.Sample(offset(uv, s, t, step))[0]
	}

	a11 := tap(-1, -1)
	a12 := tap(0, -1)
	a13 := tap(1, -1)
	a21 := tap(-1, 0)
	a23 := tap(1, 0)
	a31 := tap(-1, 1)
	a32 := tap(0, 1)
	a33 := tap(1, 1)

	gx := (a13 + 2*a23 + a33) - (a11 + 2*a21 + a31)
	gy := (a31 + 2*a32 + a33) - (a11 + 2*a12 + a13)
	return gx, gy
}

func gradientKernel(env *software.Env) func([2]float32) [4]float32 {
	src := env.Sampler(UniformSource)
	step := env.Vec2(UniformPixelStep)
	encode := env.Int(UniformEncodeDirection) != 0

	return func(uv [2]float32) [4]float32 {
		gx, gy := Sobel(src, uv, step)
		mag := math32.Sqrt(gx*gx + gy*gy)

		if !encode {
			return [4]float32{mag, mag, mag, 1}
		}

		dx, dy := Direction(gx, gy)
		return [4]float32{mag, dx*0.5 + 0.5, dy*0.5 + 0.5, 1}
	}
}

func suppressionKernel(env *software.Env) func([2]float32) [4]float32 {
	src := env.Sampler(UniformSource)
	step := env.Vec2(UniformPixelStep)
	threshold := env.Vec2(UniformThreshold)

	return func(uv [2]float32) [4]float32 {
		c := src.Sample(uv)
		dx := c[1]*2 - 1
		dy := c[2]*2 - 1

		n1 := src.Sample(offset(uv, dx, dy, step))[0]
		n2 := src.Sample(offset(uv, -dx, -dy, step))[0]

		e := c[0] * stepf(max(n1, n2), c[0])
		return [4]float32{smoothstep(threshold[0], threshold[1], e), 0, 0, 1}
	}
}

func resolutionKernel(env *software.Env) func([2]float32) [4]float32 {
	src := env.Sampler(UniformSource)
	step := env.Vec2(UniformPixelStep)
	cutoff := env.Float(UniformCutoff)

	return func(uv [2]float32) [4]float32 {
		var sum float32
		for t := float32(-1); t <= 1; t++ {
			for s := float32(-1); s <= 1; s++ {
				sum += src.Sample(offset(uv, s, t, step))[0]
			}
		}

		strong := stepf(cutoff, sum)
		v := src.Sample(uv)[0]
		o := 1 - (strong + (v-strong)*stepf(0.49, math32.Abs(v-0.5)))
		return [4]float32{o, o, o, 1}
	}
}
