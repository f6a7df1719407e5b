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

// Device is a graphics accelerator able to run the edge detection pipeline.
//
// Devices are not safe for concurrent use. Some devices (OpenGL for example)
// must only be used from the goroutine that created them.
type Device interface {
	// CreateTexture allocates an RGBA texture. If pixels is not nil it must
	// contain width*height*4 values, bottom row first. Otherwise the texture
	// is zeroed. Errors are AllocationError.
	CreateTexture(width int, height int, pixels []float32) (TextureID, error)

	// CreateTarget creates an off-screen render target backed by the texture.
	// Errors are AllocationError.
	CreateTarget(tex TextureID) (TargetID, error)

	// CheckTarget returns IncompleteTargetError if the target cannot be
	// rendered to.
	CheckTarget(target TargetID) error

	// CompileShader compiles a single shader stage. Errors are CompileError.
	CompileShader(src Source) (ShaderID, error)

	// LinkProgram links a vertex and fragment stage. The attributes are
	// assigned locations in the order they are given. Errors are LinkError.
	LinkProgram(name string, vertex ShaderID, fragment ShaderID, attributes []string) (ProgramID, error)

	// AttributeLocation returns the location of the named attribute in the
	// program or -1 if the attribute does not exist.
	AttributeLocation(prog ProgramID, name string) int32

	// UniformLocation returns the location of the named uniform in the
	// program or -1 if the uniform does not exist or is not active.
	UniformLocation(prog ProgramID, name string) int32

	// CreateGeometry uploads indexed triangles. The vertex attributes are
	// bound to the first two attribute locations: position then texture
	// coordinate.
	CreateGeometry(vertices []Vertex, indices []uint16) (GeometryID, error)

	// SetViewport for draws to OnScreen.
	SetViewport(vp Viewport)

	// Clear the target to the colour.
	Clear(target TargetID, r, g, b, a float32)

	// Draw with the program. Returns PipelineHazardError if the draw samples
	// the texture backing the target.
	Draw(call DrawCall) error

	// Barrier makes the results of all previous draws visible to subsequent
	// draws.
	Barrier()

	// ReadPixels returns the contents of the target, bottom row first. For
	// OnScreen the contents of the viewport are returned.
	ReadPixels(target TargetID) (width int, height int, pixels []float32, err error)

	// Destroy releases every resource created by the device.
	Destroy()
}
