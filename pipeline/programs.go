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
	"fmt"

	"github.com/jetsetilly/gpucanny/accelerator"
	"github.com/jetsetilly/gpucanny/curated"
	"github.com/jetsetilly/gpucanny/logger"
	"github.com/jetsetilly/gpucanny/shaders"
)

// ProgramKind identifies one of the four shader programs.
type ProgramKind int

// List of valid ProgramKind values.
const (
	BlurProgram ProgramKind = iota
	GradientProgram
	SuppressionProgram
	ResolutionProgram
	numPrograms
)

func (k ProgramKind) String() string {
	switch k {
	case BlurProgram:
		return "blur"
	case GradientProgram:
		return "gradient"
	case SuppressionProgram:
		return "suppression"
	case ResolutionProgram:
		return "resolution"
	}
	return "unknown program"
}

// the vertex and fragment stage of each program. only the resolution
// program, which draws to the on-screen surface, applies the transform.
var programStages = [numPrograms]struct {
	vertex   string
	fragment string
}{
	BlurProgram:        {shaders.Passthrough, shaders.Blur},
	GradientProgram:    {shaders.Passthrough, shaders.Gradient},
	SuppressionProgram: {shaders.Passthrough, shaders.Suppression},
	ResolutionProgram:  {shaders.Transform, shaders.Resolution},
}

// the uniforms each program is expected to use.
var programUniforms = [numPrograms][]string{
	BlurProgram:        {shaders.UniformSource, shaders.UniformPixelStep},
	GradientProgram:    {shaders.UniformSource, shaders.UniformPixelStep, shaders.UniformEncodeDirection},
	SuppressionProgram: {shaders.UniformSource, shaders.UniformPixelStep, shaders.UniformThreshold},
	ResolutionProgram:  {shaders.UniformTransform, shaders.UniformSource, shaders.UniformPixelStep, shaders.UniformCutoff},
}

// Program is a linked shader program and the locations of its attributes and
// uniforms. A location of -1 means the attribute or uniform is not active.
type Program struct {
	ID         accelerator.ProgramID
	Kind       ProgramKind
	Attributes map[string]int32
	Uniforms   map[string]int32
}

func (p Program) String() string {
	return fmt.Sprintf("%s program %d", p.Kind, p.ID)
}

// ProgramRegistry compiles shader stages and links programs.
type ProgramRegistry struct {
	dev      accelerator.Device
	compiled map[string]accelerator.ShaderID
}

// NewProgramRegistry is the preferred method of initialisation for the
// ProgramRegistry type.
func NewProgramRegistry(dev accelerator.Device) *ProgramRegistry {
	return &ProgramRegistry{
		dev:      dev,
		compiled: make(map[string]accelerator.ShaderID),
	}
}

// Compile the shader stage. Each stage is compiled once however many programs
// use it.
func (r *ProgramRegistry) Compile(src accelerator.Source) (accelerator.ShaderID, error) {
	if id, ok := r.compiled[src.Name]; ok {
		return id, nil
	}
	id, err := r.dev.CompileShader(src)
	if err != nil {
		return 0, curated.Errorf("programs: %v", err)
	}
	r.compiled[src.Name] = id
	return id, nil
}

// Link a program from compiled stages.
func (r *ProgramRegistry) Link(kind ProgramKind, vertex accelerator.ShaderID, fragment accelerator.ShaderID) (Program, error) {
	id, err := r.dev.LinkProgram(kind.String(), vertex, fragment, shaders.Attributes)
	if err != nil {
		return Program{}, curated.Errorf("programs: %v", err)
	}

	p := Program{
		ID:         id,
		Kind:       kind,
		Attributes: make(map[string]int32),
		Uniforms:   make(map[string]int32),
	}
	for _, a := range shaders.Attributes {
		p.Attributes[a] = r.dev.AttributeLocation(id, a)
	}
	for _, u := range programUniforms[kind] {
		p.Uniforms[u] = r.dev.UniformLocation(id, u)
		if p.Uniforms[u] == -1 {
			logger.Logf(logger.Allow, "pipeline", "%s: uniform %s is not active", kind, u)
		}
	}

	return p, nil
}

// Build compiles every stage and links every program.
func (r *ProgramRegistry) Build() ([numPrograms]Program, error) {
	var programs [numPrograms]Program

	for k, st := range programStages {
		kind := ProgramKind(k)

		vs, err := r.compileNamed(st.vertex)
		if err != nil {
			return programs, err
		}
		fs, err := r.compileNamed(st.fragment)
		if err != nil {
			return programs, err
		}

		programs[kind], err = r.Link(kind, vs, fs)
		if err != nil {
			return programs, err
		}
	}

	return programs, nil
}

func (r *ProgramRegistry) compileNamed(name string) (accelerator.ShaderID, error) {
	src, err := shaders.Source(name)
	if err != nil {
		return 0, curated.Errorf("programs: %v", err)
	}
	return r.Compile(src)
}
