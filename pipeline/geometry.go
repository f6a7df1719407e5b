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
	"github.com/jetsetilly/gpucanny/accelerator"
)

// QuadVertices is the full-screen quad shared by every pass. Texture
// coordinates have their origin at the bottom-left.
var QuadVertices = []accelerator.Vertex{
	{Position: [3]float32{-1, -1, 0}, TexCoord: [2]float32{0, 0}},
	{Position: [3]float32{1, -1, 0}, TexCoord: [2]float32{1, 0}},
	{Position: [3]float32{1, 1, 0}, TexCoord: [2]float32{1, 1}},
	{Position: [3]float32{-1, 1, 0}, TexCoord: [2]float32{0, 1}},
}

// QuadIndices form two triangles from QuadVertices.
var QuadIndices = []uint16{0, 1, 2, 0, 2, 3}

func createQuad(dev accelerator.Device) (accelerator.GeometryID, error) {
	return dev.CreateGeometry(QuadVertices, QuadIndices)
}
