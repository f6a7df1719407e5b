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
package software_test

import (
	"testing"

	"github.com/jetsetilly/gpucanny/accelerator"
	"github.com/jetsetilly/gpucanny/accelerator/software"
	"github.com/jetsetilly/gpucanny/curated"
	"github.com/jetsetilly/gpucanny/test"
)

const vertexSource = `#version 150 core
in vec3 position;
in vec2 texCoord;
out vec2 fragTexCoord;
void main() {
	fragTexCoord = texCoord;
	gl_Position = vec4(position, 1.0);
}
`

const fragmentSource = `#version 150 core
// gain is applied to every channel
uniform sampler2D source;
uniform float gain;
in vec2 fragTexCoord;
out vec4 fragColor;
void main() {
	fragColor = texture(source, fragTexCoord) * gain;
}
`

var quadVertices = []accelerator.Vertex{
	{Position: [3]float32{-1, -1, 0}, TexCoord: [2]float32{0, 0}},
	{Position: [3]float32{1, -1, 0}, TexCoord: [2]float32{1, 0}},
	{Position: [3]float32{1, 1, 0}, TexCoord: [2]float32{1, 1}},
	{Position: [3]float32{-1, 1, 0}, TexCoord: [2]float32{0, 1}},
}

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

func kernels() *software.Kernels {
	k := software.NewKernels()
	k.AddVertex("copy.vert", func(_ *software.Env) func(accelerator.Vertex) ([4]float32, [2]float32) {
		return func(v accelerator.Vertex) ([4]float32, [2]float32) {
			return [4]float32{v.Position[0], v.Position[1], v.Position[2], 1}, v.TexCoord
		}
	})
	k.AddFragment("gain.frag", func(env *software.Env) func([2]float32) [4]float32 {
		src := env.Sampler("source")
		gain := env.Float("gain")
		return func(uv [2]float32) [4]float32 {
			c := src.Sample(uv)
			return [4]float32{c[0] * gain, c[1] * gain, c[2] * gain, c[3] * gain}
		}
	})
	return k
}

type fixture struct {
	dev  *software.Device
	prog accelerator.ProgramID
	quad accelerator.GeometryID
}

func newFixture(t *testing.T, w, h int) fixture {
	t.Helper()

	dev, err := software.NewDevice(w, h, kernels())
	test.DemandSuccess(t, err)
	dev.EnableTrace(software.DefaultTraceLimit)

	vs, err := dev.CompileShader(accelerator.Source{Name: "copy.vert", Stage: accelerator.VertexStage, Text: vertexSource})
	test.DemandSuccess(t, err)
	fs, err := dev.CompileShader(accelerator.Source{Name: "gain.frag", Stage: accelerator.FragmentStage, Text: fragmentSource})
	test.DemandSuccess(t, err)
	prog, err := dev.LinkProgram("gain", vs, fs, []string{"position", "texCoord"})
	test.DemandSuccess(t, err)
	quad, err := dev.CreateGeometry(quadVertices, quadIndices)
	test.DemandSuccess(t, err)

	return fixture{dev: dev, prog: prog, quad: quad}
}

// ramp creates pixel data where every pixel has a unique value.
func ramp(w, h int) []float32 {
	pix := make([]float32, 0, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := float32(y*w+x) / float32(w*h)
			pix = append(pix, v, v, v, 1)
		}
	}
	return pix
}

func TestLocations(t *testing.T) {
	f := newFixture(t, 4, 4)
	test.ExpectEquality(t, f.dev.AttributeLocation(f.prog, "position"), 0)
	test.ExpectEquality(t, f.dev.AttributeLocation(f.prog, "texCoord"), 1)
	test.ExpectEquality(t, f.dev.AttributeLocation(f.prog, "colour"), -1)
	test.ExpectEquality(t, f.dev.UniformLocation(f.prog, "source"), 0)
	test.ExpectEquality(t, f.dev.UniformLocation(f.prog, "gain"), 1)

	// names in comments are not declarations
	test.ExpectEquality(t, f.dev.UniformLocation(f.prog, "every"), -1)
}

func TestCompileErrors(t *testing.T) {
	dev, err := software.NewDevice(4, 4, kernels())
	test.DemandSuccess(t, err)

	_, err = dev.CompileShader(accelerator.Source{Name: "copy.vert", Stage: accelerator.VertexStage, Text: "in vec3 position;"})
	test.ExpectSuccess(t, curated.Is(err, accelerator.CompileError), err)

	_, err = dev.CompileShader(accelerator.Source{Name: "missing.frag", Stage: accelerator.FragmentStage, Text: fragmentSource})
	test.ExpectSuccess(t, curated.Is(err, accelerator.CompileError), err)

	// the kernel exists but for the other stage
	_, err = dev.CompileShader(accelerator.Source{Name: "gain.frag", Stage: accelerator.VertexStage, Text: fragmentSource})
	test.ExpectSuccess(t, curated.Is(err, accelerator.CompileError), err)
}

func TestLinkErrors(t *testing.T) {
	dev, err := software.NewDevice(4, 4, kernels())
	test.DemandSuccess(t, err)

	vs, err := dev.CompileShader(accelerator.Source{Name: "copy.vert", Stage: accelerator.VertexStage, Text: vertexSource})
	test.DemandSuccess(t, err)
	fs, err := dev.CompileShader(accelerator.Source{Name: "gain.frag", Stage: accelerator.FragmentStage, Text: fragmentSource})
	test.DemandSuccess(t, err)

	_, err = dev.LinkProgram("bad attribute", vs, fs, []string{"position", "normal"})
	test.ExpectSuccess(t, curated.Is(err, accelerator.LinkError), err)

	_, err = dev.LinkProgram("swapped", fs, vs, nil)
	test.ExpectSuccess(t, curated.Is(err, accelerator.LinkError), err)

	// the fragment stage reads a varying the vertex stage does not write
	dev, err = software.NewDevice(4, 4, kernels())
	test.DemandSuccess(t, err)
	vs, err = dev.CompileShader(accelerator.Source{Name: "copy.vert", Stage: accelerator.VertexStage,
		Text: "in vec3 position;\nin vec2 texCoord;\nout vec2 uv;\nvoid main() {}"})
	test.DemandSuccess(t, err)
	fs, err = dev.CompileShader(accelerator.Source{Name: "gain.frag", Stage: accelerator.FragmentStage, Text: fragmentSource})
	test.DemandSuccess(t, err)
	_, err = dev.LinkProgram("varying", vs, fs, []string{"position", "texCoord"})
	test.ExpectSuccess(t, curated.Is(err, accelerator.LinkError), err)
}

func TestDrawCopy(t *testing.T) {
	f := newFixture(t, 5, 3)

	pix := ramp(5, 3)
	src, err := f.dev.CreateTexture(5, 3, pix)
	test.DemandSuccess(t, err)
	dst, err := f.dev.CreateTexture(5, 3, nil)
	test.DemandSuccess(t, err)
	target, err := f.dev.CreateTarget(dst)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, f.dev.CheckTarget(target))

	err = f.dev.Draw(accelerator.DrawCall{
		Name:     "copy",
		Program:  f.prog,
		Geometry: f.quad,
		Target:   target,
		Textures: []accelerator.TextureID{src},
		Uniforms: accelerator.Uniforms{"source": accelerator.Sampler(0), "gain": float32(1)},
	})
	test.DemandSuccess(t, err)

	w, h, out, err := f.dev.ReadPixels(target)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, w, 5)
	test.ExpectEquality(t, h, 3)
	test.DemandEquality(t, len(out), len(pix))
	for i := range pix {
		test.ExpectEquality(t, out[i], pix[i], i)
	}
}

func TestOffscreenNotClamped(t *testing.T) {
	f := newFixture(t, 2, 2)

	src, err := f.dev.CreateTexture(2, 2, ramp(2, 2))
	test.DemandSuccess(t, err)
	dst, err := f.dev.CreateTexture(2, 2, nil)
	test.DemandSuccess(t, err)
	target, err := f.dev.CreateTarget(dst)
	test.DemandSuccess(t, err)

	call := accelerator.DrawCall{
		Name:     "gain",
		Program:  f.prog,
		Geometry: f.quad,
		Target:   target,
		Textures: []accelerator.TextureID{src},
		Uniforms: accelerator.Uniforms{"source": accelerator.Sampler(0), "gain": float32(8)},
	}
	test.DemandSuccess(t, f.dev.Draw(call))

	_, _, out, err := f.dev.ReadPixels(target)
	test.DemandSuccess(t, err)

	// the last pixel is 0.75 * 8 and the alpha channel is 8
	test.ExpectApproximate(t, out[12], 6, 0.0001)
	test.ExpectApproximate(t, out[15], 8, 0.0001)

	// the same draw to the screen is clamped
	call.Target = accelerator.OnScreen
	test.DemandSuccess(t, f.dev.Draw(call))
	_, _, out, err = f.dev.ReadPixels(accelerator.OnScreen)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, out[12], 1)
	test.ExpectEquality(t, out[0], 0)
}

func TestViewport(t *testing.T) {
	f := newFixture(t, 4, 4)

	src, err := f.dev.CreateTexture(1, 1, []float32{1, 1, 1, 1})
	test.DemandSuccess(t, err)

	f.dev.Clear(accelerator.OnScreen, 0, 0, 0, 1)
	f.dev.SetViewport(accelerator.Viewport{X: 2, Y: 0, Width: 2, Height: 4})
	test.DemandSuccess(t, f.dev.Draw(accelerator.DrawCall{
		Name:     "right half",
		Program:  f.prog,
		Geometry: f.quad,
		Target:   accelerator.OnScreen,
		Textures: []accelerator.TextureID{src},
		Uniforms: accelerator.Uniforms{"source": accelerator.Sampler(0), "gain": float32(1)},
	}))

	// read the whole surface
	f.dev.SetViewport(accelerator.Viewport{Width: 4, Height: 4})
	w, h, out, err := f.dev.ReadPixels(accelerator.OnScreen)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, w*h*4, len(out))

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			var expected float32
			if x >= 2 {
				expected = 1
			}
			test.ExpectEquality(t, out[(y*4+x)*4], expected, x, y)
		}
	}
}

func TestHazard(t *testing.T) {
	f := newFixture(t, 2, 2)

	tex, err := f.dev.CreateTexture(2, 2, nil)
	test.DemandSuccess(t, err)
	target, err := f.dev.CreateTarget(tex)
	test.DemandSuccess(t, err)

	err = f.dev.Draw(accelerator.DrawCall{
		Name:     "feedback",
		Program:  f.prog,
		Geometry: f.quad,
		Target:   target,
		Textures: []accelerator.TextureID{tex},
	})
	test.ExpectSuccess(t, curated.Is(err, accelerator.PipelineHazardError), err)
	test.ExpectEquality(t, len(f.dev.Draws()), 0)
}

func TestIncompleteTarget(t *testing.T) {
	f := newFixture(t, 2, 2)

	tex, err := f.dev.CreateTexture(2, 2, nil)
	test.DemandSuccess(t, err)
	target, err := f.dev.CreateTarget(tex)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, f.dev.CheckTarget(target))
	test.ExpectSuccess(t, f.dev.CheckTarget(accelerator.OnScreen))

	f.dev.DeleteTexture(tex)
	err = f.dev.CheckTarget(target)
	test.ExpectSuccess(t, curated.Is(err, accelerator.IncompleteTargetError), err)

	err = f.dev.CheckTarget(accelerator.TargetID(99))
	test.ExpectSuccess(t, curated.Is(err, accelerator.IncompleteTargetError), err)
}

func TestAllocation(t *testing.T) {
	f := newFixture(t, 2, 2)
	f.dev.SetMaxTextureSize(16)

	_, err := f.dev.CreateTexture(17, 4, nil)
	test.ExpectSuccess(t, curated.Is(err, accelerator.AllocationError), err)

	_, err = f.dev.CreateTexture(0, 4, nil)
	test.ExpectSuccess(t, curated.Is(err, accelerator.AllocationError), err)

	_, err = f.dev.CreateTexture(2, 2, make([]float32, 3))
	test.ExpectSuccess(t, curated.Is(err, accelerator.AllocationError), err)

	tex, err := f.dev.CreateTexture(2, 2, nil)
	test.DemandSuccess(t, err)
	_, err = f.dev.CreateTarget(tex)
	test.DemandSuccess(t, err)

	// a texture can only back one target
	_, err = f.dev.CreateTarget(tex)
	test.ExpectSuccess(t, curated.Is(err, accelerator.AllocationError), err)

	_, err = software.NewDevice(0, 0, nil)
	test.ExpectSuccess(t, curated.Is(err, accelerator.AllocationError), err)
}

func TestTrace(t *testing.T) {
	f := newFixture(t, 2, 2)

	src, err := f.dev.CreateTexture(2, 2, nil)
	test.DemandSuccess(t, err)

	f.dev.Clear(accelerator.OnScreen, 1, 1, 1, 1)
	test.DemandSuccess(t, f.dev.Draw(accelerator.DrawCall{
		Name:     "present",
		Program:  f.prog,
		Geometry: f.quad,
		Target:   accelerator.OnScreen,
		Textures: []accelerator.TextureID{src},
		Uniforms: accelerator.Uniforms{"gain": float32(0.5)},
	}))
	f.dev.Barrier()

	tr := f.dev.Trace()
	test.DemandEquality(t, len(tr), 3)
	test.ExpectEquality(t, tr[0].Kind, software.ClearCommand)
	test.ExpectEquality(t, tr[1].Kind, software.DrawCommand)
	test.ExpectEquality(t, tr[1].ProgramName, "gain")
	test.ExpectEquality(t, tr[1].Uniforms["gain"].(float32), 0.5)
	test.ExpectEquality(t, tr[1].String(), "draw present (gain) -> on-screen tex5")
	test.ExpectEquality(t, tr[2].Kind, software.BarrierCommand)

	f.dev.ResetTrace()
	test.ExpectEquality(t, len(f.dev.Trace()), 0)
}

func TestTraceDisabled(t *testing.T) {
	dev, err := software.NewDevice(4, 4, kernels())
	test.DemandSuccess(t, err)

	dev.Clear(accelerator.OnScreen, 0, 0, 0, 1)
	dev.Barrier()
	test.ExpectEquality(t, len(dev.Trace()), 0)

	dev.EnableTrace(10)
	dev.Barrier()
	test.ExpectEquality(t, len(dev.Trace()), 1)

	// disabling forgets the recorded commands
	dev.EnableTrace(0)
	test.ExpectEquality(t, len(dev.Trace()), 0)
	dev.Barrier()
	test.ExpectEquality(t, len(dev.Trace()), 0)
}

func TestTraceLimit(t *testing.T) {
	dev, err := software.NewDevice(4, 4, kernels())
	test.DemandSuccess(t, err)
	dev.EnableTrace(3)

	dev.Clear(accelerator.OnScreen, 0, 0, 0, 1)
	for i := 0; i < 10; i++ {
		dev.Barrier()
	}
	dev.Clear(accelerator.OnScreen, 0, 0, 0, 1)

	// the oldest commands are discarded
	tr := dev.Trace()
	test.DemandEquality(t, len(tr), 3)
	test.ExpectEquality(t, tr[0].Kind, software.BarrierCommand)
	test.ExpectEquality(t, tr[1].Kind, software.BarrierCommand)
	test.ExpectEquality(t, tr[2].Kind, software.ClearCommand)

	// reducing the limit keeps the most recent commands
	dev.EnableTrace(1)
	tr = dev.Trace()
	test.DemandEquality(t, len(tr), 1)
	test.ExpectEquality(t, tr[0].Kind, software.ClearCommand)
}
