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
	"github.com/jetsetilly/gpucanny/assert"
	"github.com/jetsetilly/gpucanny/curated"
	"github.com/jetsetilly/gpucanny/logger"
)

type texture struct {
	handle uint32
	width  int32
	height int32
}

type target struct {
	fbo uint32
	tex accelerator.TextureID
}

type geometry struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
}

// Device implements the accelerator.Device interface with OpenGL 3.2 core.
type Device struct {
	owner assert.Owner

	textures map[accelerator.TextureID]*texture
	targets  map[accelerator.TargetID]*target
	shaders  map[accelerator.ShaderID]*shader
	programs map[accelerator.ProgramID]*program
	geometry map[accelerator.GeometryID]*geometry

	viewport accelerator.Viewport

	nextID int
}

var _ accelerator.Device = (*Device)(nil)

// NewDevice initialises the OpenGL bindings for the current context.
func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl32: %w", err)
	}

	logger.Logf(logger.Allow, "gl32", "%s", gl.GoStr(gl.GetString(gl.VERSION)))
	logger.Logf(logger.Allow, "gl32", "%s", gl.GoStr(gl.GetString(gl.RENDERER)))

	dev := &Device{
		owner:    assert.NewOwner("gl32"),
		textures: make(map[accelerator.TextureID]*texture),
		targets:  make(map[accelerator.TargetID]*target),
		shaders:  make(map[accelerator.ShaderID]*shader),
		programs: make(map[accelerator.ProgramID]*program),
		geometry: make(map[accelerator.GeometryID]*geometry),
	}

	gl.Disable(gl.BLEND)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.SCISSOR_TEST)

	return dev, nil
}

func (dev *Device) id() int {
	dev.nextID++
	return dev.nextID
}

// CreateTexture implements the accelerator.Device interface.
func (dev *Device) CreateTexture(width int, height int, pixels []float32) (accelerator.TextureID, error) {
	dev.owner.Check()

	if width <= 0 || height <= 0 {
		return accelerator.NoTexture, curated.Errorf(accelerator.AllocationError, fmt.Sprintf("gl32: texture size %dx%d", width, height))
	}

	var maxSize int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxSize)
	if int32(width) > maxSize || int32(height) > maxSize {
		return accelerator.NoTexture, curated.Errorf(accelerator.AllocationError,
			fmt.Sprintf("gl32: texture size %dx%d (max %d)", width, height, maxSize))
	}

	if pixels != nil && len(pixels) != width*height*4 {
		return accelerator.NoTexture, curated.Errorf(accelerator.AllocationError,
			fmt.Sprintf("gl32: %d values supplied for %dx%d texture", len(pixels), width, height))
	}

	tex := &texture{width: int32(width), height: int32(height)}
	gl.GenTextures(1, &tex.handle)
	gl.BindTexture(gl.TEXTURE_2D, tex.handle)

	if pixels != nil {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA32F, tex.width, tex.height, 0, gl.RGBA, gl.FLOAT, gl.Ptr(pixels))
	} else {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA32F, tex.width, tex.height, 0, gl.RGBA, gl.FLOAT, nil)
	}

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	if err := glError(); err != nil {
		gl.DeleteTextures(1, &tex.handle)
		return accelerator.NoTexture, curated.Errorf(accelerator.AllocationError, err)
	}

	id := accelerator.TextureID(dev.id())
	dev.textures[id] = tex
	return id, nil
}

// CreateTarget implements the accelerator.Device interface.
func (dev *Device) CreateTarget(tex accelerator.TextureID) (accelerator.TargetID, error) {
	dev.owner.Check()

	t, ok := dev.textures[tex]
	if !ok {
		return accelerator.OnScreen, curated.Errorf(accelerator.AllocationError, fmt.Sprintf("gl32: no texture %d", tex))
	}

	tgt := &target{tex: tex}
	gl.GenFramebuffers(1, &tgt.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, tgt.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.handle, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if err := glError(); err != nil {
		gl.DeleteFramebuffers(1, &tgt.fbo)
		return accelerator.OnScreen, curated.Errorf(accelerator.AllocationError, err)
	}

	id := accelerator.TargetID(dev.id())
	dev.targets[id] = tgt
	return id, nil
}

// CheckTarget implements the accelerator.Device interface.
func (dev *Device) CheckTarget(id accelerator.TargetID) error {
	dev.owner.Check()

	if id == accelerator.OnScreen {
		return nil
	}

	tgt, ok := dev.targets[id]
	if !ok {
		return curated.Errorf(accelerator.IncompleteTargetError, id, "no such target")
	}

	gl.BindFramebuffer(gl.FRAMEBUFFER, tgt.fbo)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		return curated.Errorf(accelerator.IncompleteTargetError, id, framebufferStatus(status))
	}
	return nil
}

func framebufferStatus(status uint32) string {
	switch status {
	case gl.FRAMEBUFFER_COMPLETE:
		return "complete"
	case gl.FRAMEBUFFER_UNDEFINED:
		return "undefined"
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return "incomplete attachment"
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return "missing attachment"
	case gl.FRAMEBUFFER_UNSUPPORTED:
		return "unsupported"
	case gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return "incomplete multisample"
	}
	return fmt.Sprintf("status %#x", status)
}

// glError returns the most recent OpenGL error, if there is one.
func glError() error {
	switch e := gl.GetError(); e {
	case gl.NO_ERROR:
		return nil
	case gl.OUT_OF_MEMORY:
		return fmt.Errorf("gl32: out of memory")
	case gl.INVALID_VALUE:
		return fmt.Errorf("gl32: invalid value")
	case gl.INVALID_OPERATION:
		return fmt.Errorf("gl32: invalid operation")
	case gl.INVALID_ENUM:
		return fmt.Errorf("gl32: invalid enum")
	default:
		return fmt.Errorf("gl32: error %#x", e)
	}
}

// CreateGeometry implements the accelerator.Device interface.
func (dev *Device) CreateGeometry(vertices []accelerator.Vertex, indices []uint16) (accelerator.GeometryID, error) {
	dev.owner.Check()

	if len(vertices) == 0 || len(indices) == 0 {
		return 0, curated.Errorf(accelerator.AllocationError, "gl32: empty geometry")
	}

	// interleaved position and texture coordinate
	const stride = 5 * 4
	data := make([]float32, 0, len(vertices)*5)
	for _, v := range vertices {
		data = append(data, v.Position[0], v.Position[1], v.Position[2], v.TexCoord[0], v.TexCoord[1])
	}

	g := &geometry{count: int32(len(indices))}
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*2, gl.Ptr(indices), gl.STATIC_DRAW)

	// attribute locations are bound in this order by LinkProgram()
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)

	gl.BindVertexArray(0)

	if err := glError(); err != nil {
		return 0, curated.Errorf(accelerator.AllocationError, err)
	}

	id := accelerator.GeometryID(dev.id())
	dev.geometry[id] = g
	return id, nil
}

// SetViewport implements the accelerator.Device interface.
func (dev *Device) SetViewport(vp accelerator.Viewport) {
	dev.owner.Check()
	dev.viewport = vp
}

// bind the target for drawing or reading and set the viewport to match.
func (dev *Device) bind(id accelerator.TargetID) error {
	if id == accelerator.OnScreen {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		vp := dev.viewport
		gl.Viewport(int32(vp.X), int32(vp.Y), int32(vp.Width), int32(vp.Height))
		return nil
	}

	tgt, ok := dev.targets[id]
	if !ok {
		return curated.Errorf(accelerator.IncompleteTargetError, id, "no such target")
	}
	tex := dev.textures[tgt.tex]
	gl.BindFramebuffer(gl.FRAMEBUFFER, tgt.fbo)
	gl.Viewport(0, 0, tex.width, tex.height)
	return nil
}

// Clear implements the accelerator.Device interface.
func (dev *Device) Clear(id accelerator.TargetID, r, g, b, a float32) {
	dev.owner.Check()
	if err := dev.bind(id); err != nil {
		logger.Log(logger.Allow, "gl32", err)
		return
	}
	gl.ClearColor(r, g, b, a)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Barrier implements the accelerator.Device interface. OpenGL completes a
// draw to a framebuffer before a later draw samples the attached texture, so
// there is nothing to do.
func (dev *Device) Barrier() {
	dev.owner.Check()
}

// ReadPixels implements the accelerator.Device interface.
func (dev *Device) ReadPixels(id accelerator.TargetID) (int, int, []float32, error) {
	dev.owner.Check()

	var x, y, w, h int32
	if id == accelerator.OnScreen {
		x, y = int32(dev.viewport.X), int32(dev.viewport.Y)
		w, h = int32(dev.viewport.Width), int32(dev.viewport.Height)
	} else {
		tgt, ok := dev.targets[id]
		if !ok {
			return 0, 0, nil, curated.Errorf(accelerator.IncompleteTargetError, id, "no such target")
		}
		tex := dev.textures[tgt.tex]
		w, h = tex.width, tex.height
	}

	if err := dev.bind(id); err != nil {
		return 0, 0, nil, err
	}

	pix := make([]float32, w*h*4)
	gl.ReadPixels(x, y, w, h, gl.RGBA, gl.FLOAT, gl.Ptr(pix))
	if err := glError(); err != nil {
		return 0, 0, nil, err
	}

	return int(w), int(h), pix, nil
}

// Destroy implements the accelerator.Device interface.
func (dev *Device) Destroy() {
	dev.owner.Check()

	for _, p := range dev.programs {
		gl.DeleteProgram(p.handle)
	}
	for _, s := range dev.shaders {
		gl.DeleteShader(s.handle)
	}
	for _, t := range dev.targets {
		gl.DeleteFramebuffers(1, &t.fbo)
	}
	for _, t := range dev.textures {
		gl.DeleteTextures(1, &t.handle)
	}
	for _, g := range dev.geometry {
		gl.DeleteBuffers(1, &g.vbo)
		gl.DeleteBuffers(1, &g.ebo)
		gl.DeleteVertexArrays(1, &g.vao)
	}

	dev.textures = make(map[accelerator.TextureID]*texture)
	dev.targets = make(map[accelerator.TargetID]*target)
	dev.shaders = make(map[accelerator.ShaderID]*shader)
	dev.programs = make(map[accelerator.ProgramID]*program)
	dev.geometry = make(map[accelerator.GeometryID]*geometry)

	logger.Log(logger.Allow, "gl32", "destroyed")
}
