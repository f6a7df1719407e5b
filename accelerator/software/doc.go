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
// Package software implements the accelerator.Device interface on the CPU.
// It exists so that the pipeline can be run and tested on machines without a
// suitable graphics accelerator.
//
// The device follows the semantics of the OpenGL device as closely as
// possible. Textures are RGBA with float32 channels, stored bottom row first.
// Sampling uses nearest filtering with coordinates clamped to the edge. Writes
// to the on-screen surface are clamped to the range 0 to 1. Off-screen targets
// are not clamped.
//
// Shader sources are not executed. Instead, each shader is paired with a Go
// kernel registered under the shader's name (see Kernels). The GLSL source is
// still inspected: the declarations of uniforms, inputs and outputs are used
// to check links and to assign uniform locations, just as a driver would.
//
// Every clear, draw and barrier is recorded in a trace which can be inspected
// with Trace().
package software
