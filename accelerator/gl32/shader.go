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
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/gpucanny/accelerator"
	"github.com/jetsetilly/gpucanny/curated"
)

// the name of the output of every fragment stage.
const fragmentOutput = "fragColor"

type shader struct {
	handle uint32
	name   string
	stage  accelerator.Stage
}

type program struct {
	handle   uint32
	name     string
	uniforms map[string]int32
}

// CompileShader implements the accelerator.Device interface.
func (dev *Device) CompileShader(src accelerator.Source) (accelerator.ShaderID, error) {
	dev.owner.Check()

	var typ uint32
	switch src.Stage {
	case accelerator.VertexStage:
		typ = gl.VERTEX_SHADER
	case accelerator.FragmentStage:
		typ = gl.FRAGMENT_SHADER
	default:
		return 0, curated.Errorf(accelerator.CompileError, src.Name, src.Stage.String())
	}

	sh := &shader{
		handle: gl.CreateShader(typ),
		name:   src.Name,
		stage:  src.Stage,
	}

	csource, free := gl.Strs(src.Text + "\x00")
	gl.ShaderSource(sh.handle, 1, csource, nil)
	free()

	gl.CompileShader(sh.handle)

	var status int32
	gl.GetShaderiv(sh.handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := shaderLog(sh.handle)
		gl.DeleteShader(sh.handle)
		return 0, curated.Errorf(accelerator.CompileError, src.Name, log)
	}

	id := accelerator.ShaderID(dev.id())
	dev.shaders[id] = sh
	return id, nil
}

func shaderLog(handle uint32) string {
	var n int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return "no log"
	}
	log := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(handle, n, nil, gl.Str(log))
	return strings.TrimSpace(strings.TrimRight(log, "\x00"))
}

func programLog(handle uint32) string {
	var n int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return "no log"
	}
	log := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(handle, n, nil, gl.Str(log))
	return strings.TrimSpace(strings.TrimRight(log, "\x00"))
}

// LinkProgram implements the accelerator.Device interface.
func (dev *Device) LinkProgram(name string, vertex accelerator.ShaderID, fragment accelerator.ShaderID, attributes []string) (accelerator.ProgramID, error) {
	dev.owner.Check()

	vs, ok := dev.shaders[vertex]
	if !ok || vs.stage != accelerator.VertexStage {
		return 0, curated.Errorf(accelerator.LinkError, name, "no vertex stage attached")
	}
	fs, ok := dev.shaders[fragment]
	if !ok || fs.stage != accelerator.FragmentStage {
		return 0, curated.Errorf(accelerator.LinkError, name, "no fragment stage attached")
	}

	p := &program{
		handle:   gl.CreateProgram(),
		name:     name,
		uniforms: make(map[string]int32),
	}

	gl.AttachShader(p.handle, vs.handle)
	gl.AttachShader(p.handle, fs.handle)
	for i, a := range attributes {
		gl.BindAttribLocation(p.handle, uint32(i), gl.Str(a+"\x00"))
	}
	gl.BindFragDataLocation(p.handle, 0, gl.Str(fragmentOutput+"\x00"))
	gl.LinkProgram(p.handle)

	var status int32
	gl.GetProgramiv(p.handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programLog(p.handle)
		gl.DeleteProgram(p.handle)
		return 0, curated.Errorf(accelerator.LinkError, name, log)
	}

	// the linker may assign locations to attributes that were not bound by
	// name if the names do not exist in the vertex stage
	for i, a := range attributes {
		if loc := gl.GetAttribLocation(p.handle, gl.Str(a+"\x00")); loc != int32(i) {
			gl.DeleteProgram(p.handle)
			return 0, curated.Errorf(accelerator.LinkError, name, fmt.Sprintf("attribute %s has location %d", a, loc))
		}
	}

	gl.DetachShader(p.handle, vs.handle)
	gl.DetachShader(p.handle, fs.handle)

	id := accelerator.ProgramID(dev.id())
	dev.programs[id] = p
	return id, nil
}

// AttributeLocation implements the accelerator.Device interface.
func (dev *Device) AttributeLocation(prog accelerator.ProgramID, name string) int32 {
	dev.owner.Check()
	p, ok := dev.programs[prog]
	if !ok {
		return -1
	}
	return gl.GetAttribLocation(p.handle, gl.Str(name+"\x00"))
}

// UniformLocation implements the accelerator.Device interface. Locations are
// cached.
func (dev *Device) UniformLocation(prog accelerator.ProgramID, name string) int32 {
	dev.owner.Check()
	p, ok := dev.programs[prog]
	if !ok {
		return -1
	}
	return p.location(name)
}

func (p *program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.handle, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// set the uniform. the program must be in use. uniforms that are not active
// in the program are ignored.
func (p *program) set(name string, value any) error {
	loc := p.location(name)
	if loc == -1 {
		return nil
	}

	switch v := value.(type) {
	case float32:
		gl.Uniform1f(loc, v)
	case int32:
		gl.Uniform1i(loc, v)
	case accelerator.Sampler:
		gl.Uniform1i(loc, int32(v))
	case accelerator.Vec2:
		gl.Uniform2f(loc, v[0], v[1])
	case accelerator.Mat4:
		gl.UniformMatrix4fv(loc, 1, false, &v[0])
	default:
		return fmt.Errorf("gl32: %s: unsupported uniform type %T for %s", p.name, value, name)
	}
	return nil
}
