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
// Package accelerator defines the contract between the edge detection
// pipeline and a graphics accelerator. The Device interface is implemented
// by the gl32 package, using OpenGL 3.2 core, and by the software package,
// which emulates the same semantics on the CPU.
//
// Resources created by a Device are referred to by opaque IDs. The zero
// TargetID is reserved for the on-screen surface and is never attached to a
// texture.
//
// Texture data is RGBA with float32 channels. Rows are ordered bottom to top,
// as they are in OpenGL. Textures are sampled with nearest filtering and
// coordinates outside the texture are clamped to the edge.
package accelerator
