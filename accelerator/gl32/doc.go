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
// Package gl32 implements the accelerator.Device interface with OpenGL 3.2
// core. The OpenGL context must be created and made current before
// NewDevice() is called, for example by the sdlwindow package.
//
// OpenGL contexts are bound to a single thread. Every method of the Device
// checks that it has been called from the goroutine that created the Device
// and panics if it hasn't. The goroutine should be locked to its thread with
// runtime.LockOSThread().
//
// Textures are allocated with the RGBA32F internal format so that results of
// off-screen passes are not clamped or quantised. Sampling is with nearest
// filtering and clamp to edge wrapping.
package gl32
