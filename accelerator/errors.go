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

// Error patterns returned by Device implementations. Errors are created with
// curated.Errorf() and should be tested for with curated.Is() or curated.Has().
const (
	// a texture or render target could not be created
	AllocationError = "allocation error: %v"

	// a shader stage failed to compile. the values are the name of the shader
	// and the compiler log
	CompileError = "compile error: %s: %s"

	// a shader program failed to link. the values are the name of the program
	// and the linker log
	LinkError = "link error: %s: %s"

	// a render target is not complete. the values are the target ID and a
	// description of the status
	IncompleteTargetError = "incomplete target: %v: %s"

	// a draw would sample the texture backing its destination target. the
	// value is a description of the draw
	PipelineHazardError = "pipeline hazard: %s"
)
