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
// Package shaders contains the GLSL sources for every stage of the edge
// detection pipeline and the Go kernels that implement the same algorithms
// for the software accelerator.
//
// There are two vertex stages. Transform applies the transform uniform to the
// position attribute and is used by the pass that draws to the on-screen
// surface. Passthrough leaves the position untouched and is used by the
// off-screen passes.
//
// There are four fragment stages: Blur, Gradient, Suppression and
// Resolution. Every fragment stage reads its source texture from the
// sourceTextureUnit sampler and the distance between adjacent texels from the
// pixelStep uniform.
package shaders
