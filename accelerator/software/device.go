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
	"fmt"

	"github.com/jetsetilly/gpucanny/accelerator"
	"github.com/jetsetilly/gpucanny/curated"
	"github.com/jetsetilly/gpucanny/logger"
)

// DefaultMaxTextureSize is the largest width or height of a texture that can
// be created by a new device.
const DefaultMaxTextureSize = 8192

type shader struct {
	name  string
	stage accelerator.Stage
	decl  declarations

	vertex   VertexKernel
	fragment FragmentKernel
}

type program struct {
	name       string
	vertex     *shader
	fragment   *shader
	attributes []string
	uniforms   []string
}

type geometry struct {
	vertices []accelerator.Vertex
	indices  []uint16
}

// Device implements the accelerator.Device interface on the CPU.
type Device struct {
	kernels *Kernels

	// the on-screen surface
	screen   *texture
	viewport accelerator.Viewport

	textures map[accelerator.TextureID]*texture
	targets  map[accelerator.TargetID]accelerator.TextureID
	shaders  map[accelerator.ShaderID]*shader
	programs map[accelerator.ProgramID]*program
	geometry map[accelerator.GeometryID]*geometry

	// IDs are shared by every resource type and start at one
	nextID int

	maxTextureSize int

	// the trace is disabled when the limit is zero
	trace      []Command
	traceLimit int
}

// NewDevice is the preferred method of initialisation for the Device type.
// The width and height are the size of the on-screen surface. The viewport
// initially covers the whole of the surface.
func NewDevice(width int, height int, kernels *Kernels) (*Device, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(accelerator.AllocationError, fmt.Sprintf("software: surface size %dx%d", width, height))
	}
	if kernels == nil {
		kernels = NewKernels()
	}

	dev := &Device{
		kernels:        kernels,
		screen:         newTexture(width, height),
		viewport:       accelerator.Viewport{Width: width, Height: height},
		maxTextureSize: DefaultMaxTextureSize,
	}
	dev.reset()

	logger.Logf(logger.Allow, "software", "surface %dx%d", width, height)

	return dev, nil
}

func (dev *Device) reset() {
	dev.textures = make(map[accelerator.TextureID]*texture)
	dev.targets = make(map[accelerator.TargetID]accelerator.TextureID)
	dev.shaders = make(map[accelerator.ShaderID]*shader)
	dev.programs = make(map[accelerator.ProgramID]*program)
	dev.geometry = make(map[accelerator.GeometryID]*geometry)
	dev.trace = dev.trace[:0]
}

func (dev *Device) id() int {
	dev.nextID++
	return dev.nextID
}

// SetMaxTextureSize changes the largest width or height of textures created
// after the call.
func (dev *Device) SetMaxTextureSize(size int) {
	dev.maxTextureSize = size
}

// Resize the on-screen surface. The contents of the surface are lost and the
// viewport is reset to cover the whole of the new surface.
func (dev *Device) Resize(width int, height int) error {
	if width <= 0 || height <= 0 {
		return curated.Errorf(accelerator.AllocationError, fmt.Sprintf("software: surface size %dx%d", width, height))
	}
	dev.screen = newTexture(width, height)
	dev.viewport = accelerator.Viewport{Width: width, Height: height}
	return nil
}

// CreateTexture implements the accelerator.Device interface.
func (dev *Device) CreateTexture(width int, height int, pixels []float32) (accelerator.TextureID, error) {
	if width <= 0 || height <= 0 || width > dev.maxTextureSize || height > dev.maxTextureSize {
		return accelerator.NoTexture, curated.Errorf(accelerator.AllocationError,
			fmt.Sprintf("software: texture size %dx%d (max %d)", width, height, dev.maxTextureSize))
	}

	tex := newTexture(width, height)
	if pixels != nil {
		if len(pixels) != len(tex.pix) {
			return accelerator.NoTexture, curated.Errorf(accelerator.AllocationError,
				fmt.Sprintf("software: %d values supplied for %dx%d texture", len(pixels), width, height))
		}
		copy(tex.pix, pixels)
	}

	id := accelerator.TextureID(dev.id())
	dev.textures[id] = tex
	return id, nil
}

// DeleteTexture releases the texture. Any render target backed by the texture
// becomes incomplete.
func (dev *Device) DeleteTexture(tex accelerator.TextureID) {
	delete(dev.textures, tex)
}

// CreateTarget implements the accelerator.Device interface.
func (dev *Device) CreateTarget(tex accelerator.TextureID) (accelerator.TargetID, error) {
	t, ok := dev.textures[tex]
	if !ok {
		return accelerator.OnScreen, curated.Errorf(accelerator.AllocationError, fmt.Sprintf("software: no texture %d", tex))
	}
	if t.target != 0 {
		return accelerator.OnScreen, curated.Errorf(accelerator.AllocationError,
			fmt.Sprintf("software: texture %d already backs target %d", tex, t.target))
	}

	id := accelerator.TargetID(dev.id())
	dev.targets[id] = tex
	t.target = int(id)
	return id, nil
}

// CheckTarget implements the accelerator.Device interface.
func (dev *Device) CheckTarget(target accelerator.TargetID) error {
	if target == accelerator.OnScreen {
		return nil
	}
	tex, ok := dev.targets[target]
	if !ok {
		return curated.Errorf(accelerator.IncompleteTargetError, target, "no such target")
	}
	if _, ok := dev.textures[tex]; !ok {
		return curated.Errorf(accelerator.IncompleteTargetError, target, "missing attachment")
	}
	return nil
}

// the texture that a draw to the target writes to and the area of the
// texture covered by the draw.
func (dev *Device) destination(target accelerator.TargetID) (*texture, accelerator.TextureID, accelerator.Viewport, error) {
	if target == accelerator.OnScreen {
		return dev.screen, accelerator.NoTexture, dev.viewport, nil
	}
	if err := dev.CheckTarget(target); err != nil {
		return nil, accelerator.NoTexture, accelerator.Viewport{}, err
	}
	id := dev.targets[target]
	t := dev.textures[id]
	return t, id, accelerator.Viewport{Width: t.width, Height: t.height}, nil
}

// CompileShader implements the accelerator.Device interface.
func (dev *Device) CompileShader(src accelerator.Source) (accelerator.ShaderID, error) {
	sh := &shader{
		name:  src.Name,
		stage: src.Stage,
		decl:  parseDeclarations(src.Text),
	}

	if !sh.decl.hasMain {
		return 0, curated.Errorf(accelerator.CompileError, src.Name, "0:0: error: no definition of main()")
	}

	var ok bool
	switch src.Stage {
	case accelerator.VertexStage:
		sh.vertex, ok = dev.kernels.vertex[src.Name]
	case accelerator.FragmentStage:
		sh.fragment, ok = dev.kernels.fragment[src.Name]
	}
	if !ok {
		return 0, curated.Errorf(accelerator.CompileError, src.Name, fmt.Sprintf("no %s kernel registered", src.Stage))
	}

	id := accelerator.ShaderID(dev.id())
	dev.shaders[id] = sh
	return id, nil
}

// LinkProgram implements the accelerator.Device interface.
func (dev *Device) LinkProgram(name string, vertex accelerator.ShaderID, fragment accelerator.ShaderID, attributes []string) (accelerator.ProgramID, error) {
	vs, ok := dev.shaders[vertex]
	if !ok || vs.stage != accelerator.VertexStage {
		return 0, curated.Errorf(accelerator.LinkError, name, "no vertex stage attached")
	}
	fs, ok := dev.shaders[fragment]
	if !ok || fs.stage != accelerator.FragmentStage {
		return 0, curated.Errorf(accelerator.LinkError, name, "no fragment stage attached")
	}

	for _, a := range attributes {
		if !contains(vs.decl.inputs, a) {
			return 0, curated.Errorf(accelerator.LinkError, name, fmt.Sprintf("attribute %s is not an input of %s", a, vs.name))
		}
	}
	for _, in := range fs.decl.inputs {
		if !contains(vs.decl.outputs, in) {
			return 0, curated.Errorf(accelerator.LinkError, name, fmt.Sprintf("%s is not written by %s", in, vs.name))
		}
	}
	if len(fs.decl.outputs) == 0 {
		return 0, curated.Errorf(accelerator.LinkError, name, fmt.Sprintf("%s has no output", fs.name))
	}

	p := &program{
		name:       name,
		vertex:     vs,
		fragment:   fs,
		attributes: append([]string{}, attributes...),
	}
	p.uniforms = append(p.uniforms, vs.decl.uniforms...)
	for _, u := range fs.decl.uniforms {
		if !contains(p.uniforms, u) {
			p.uniforms = append(p.uniforms, u)
		}
	}

	id := accelerator.ProgramID(dev.id())
	dev.programs[id] = p
	return id, nil
}

// AttributeLocation implements the accelerator.Device interface.
func (dev *Device) AttributeLocation(prog accelerator.ProgramID, name string) int32 {
	if p, ok := dev.programs[prog]; ok {
		for i, a := range p.attributes {
			if a == name {
				return int32(i)
			}
		}
	}
	return -1
}

// UniformLocation implements the accelerator.Device interface.
func (dev *Device) UniformLocation(prog accelerator.ProgramID, name string) int32 {
	if p, ok := dev.programs[prog]; ok {
		for i, u := range p.uniforms {
			if u == name {
				return int32(i)
			}
		}
	}
	return -1
}

// CreateGeometry implements the accelerator.Device interface.
func (dev *Device) CreateGeometry(vertices []accelerator.Vertex, indices []uint16) (accelerator.GeometryID, error) {
	if len(indices)%3 != 0 {
		return 0, curated.Errorf(accelerator.AllocationError, fmt.Sprintf("software: %d indices is not a list of triangles", len(indices)))
	}
	for _, i := range indices {
		if int(i) >= len(vertices) {
			return 0, curated.Errorf(accelerator.AllocationError, fmt.Sprintf("software: index %d out of range", i))
		}
	}

	id := accelerator.GeometryID(dev.id())
	dev.geometry[id] = &geometry{
		vertices: append([]accelerator.Vertex{}, vertices...),
		indices:  append([]uint16{}, indices...),
	}
	return id, nil
}

// SetViewport implements the accelerator.Device interface.
func (dev *Device) SetViewport(vp accelerator.Viewport) {
	dev.viewport = vp
}

// Viewport returns the current viewport.
func (dev *Device) Viewport() accelerator.Viewport {
	return dev.viewport
}

// Clear implements the accelerator.Device interface.
func (dev *Device) Clear(target accelerator.TargetID, r, g, b, a float32) {
	c := [4]float32{r, g, b, a}
	if target == accelerator.OnScreen {
		dev.screen.fill(clampColor(c))
	} else if t, _, _, err := dev.destination(target); err == nil {
		t.fill(c)
	}
	dev.record(Command{Kind: ClearCommand, Target: target})
}

// Draw implements the accelerator.Device interface.
func (dev *Device) Draw(call accelerator.DrawCall) error {
	p, ok := dev.programs[call.Program]
	if !ok {
		return fmt.Errorf("software: %s: no program %d", call.Name, call.Program)
	}
	geom, ok := dev.geometry[call.Geometry]
	if !ok {
		return fmt.Errorf("software: %s: no geometry %d", call.Name, call.Geometry)
	}

	dest, destID, vp, err := dev.destination(call.Target)
	if err != nil {
		return err
	}
	if destID != accelerator.NoTexture && call.Samples(destID) {
		return curated.Errorf(accelerator.PipelineHazardError,
			fmt.Sprintf("%s samples texture %d which backs %s", call.Name, destID, call.Target))
	}

	env := &Env{uniforms: call.Uniforms}
	for _, tex := range call.Textures {
		t, ok := dev.textures[tex]
		if !ok {
			return fmt.Errorf("software: %s: no texture %d", call.Name, tex)
		}
		env.units = append(env.units, t)
	}

	r := rasterizer{
		dest:     dest,
		viewport: vp,
		clamp:    call.Target == accelerator.OnScreen,
		vertex:   p.vertex.vertex(env),
		fragment: p.fragment.fragment(env),
	}
	r.draw(geom)

	if dev.traceLimit > 0 {
		dev.record(Command{
			Kind:        DrawCommand,
			Name:        call.Name,
			ProgramName: p.name,
			Target:      call.Target,
			Textures:    append([]accelerator.TextureID{}, call.Textures...),
			Uniforms:    copyUniforms(call.Uniforms),
		})
	}

	return nil
}

// Barrier implements the accelerator.Device interface. Draws on the software
// device complete before Draw() returns so the barrier is only recorded.
func (dev *Device) Barrier() {
	dev.record(Command{Kind: BarrierCommand})
}

// ReadPixels implements the accelerator.Device interface.
func (dev *Device) ReadPixels(target accelerator.TargetID) (int, int, []float32, error) {
	src, _, vp, err := dev.destination(target)
	if err != nil {
		return 0, 0, nil, err
	}

	x0 := max(vp.X, 0)
	y0 := max(vp.Y, 0)
	x1 := min(vp.X+vp.Width, src.width)
	y1 := min(vp.Y+vp.Height, src.height)
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, nil, nil
	}

	w := x1 - x0
	h := y1 - y0
	pix := make([]float32, 0, w*h*4)
	for y := y0; y < y1; y++ {
		i := (y*src.width + x0) * 4
		pix = append(pix, src.pix[i:i+w*4]...)
	}

	return w, h, pix, nil
}

// Allocated returns the number of resources of every type that currently
// exist on the device.
func (dev *Device) Allocated() int {
	return len(dev.textures) + len(dev.targets) + len(dev.shaders) + len(dev.programs) + len(dev.geometry)
}

// Destroy implements the accelerator.Device interface.
func (dev *Device) Destroy() {
	n := dev.Allocated()
	dev.reset()
	logger.Logf(logger.Allow, "software", "destroyed (%d resources)", n)
}

func clampColor(c [4]float32) [4]float32 {
	for i := range c {
		c[i] = min(max(c[i], 0), 1)
	}
	return c
}
