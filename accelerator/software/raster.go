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
package software

import (
	"github.com/chewxy/math32"
	"github.com/jetsetilly/gpucanny/accelerator"
)

type rasterizer struct {
	dest     *texture
	viewport accelerator.Viewport
	clamp    bool

	vertex   func(v accelerator.Vertex) ([4]float32, [2]float32)
	fragment func(texCoord [2]float32) [4]float32
}

// a vertex after the vertex stage, in window coordinates.
type windowVertex struct {
	x, y     float32
	texCoord [2]float32
}

func (r *rasterizer) toWindow(v accelerator.Vertex) windowVertex {
	pos, tc := r.vertex(v)

	w := pos[3]
	if w == 0 {
		w = 1
	}

	vp := r.viewport
	return windowVertex{
		x:        float32(vp.X) + (pos[0]/w+1)*0.5*float32(vp.Width),
		y:        float32(vp.Y) + (pos[1]/w+1)*0.5*float32(vp.Height),
		texCoord: tc,
	}
}

func (r *rasterizer) draw(geom *geometry) {
	verts := make([]windowVertex, len(geom.vertices))
	for i, v := range geom.vertices {
		verts[i] = r.toWindow(v)
	}

	for i := 0; i+2 < len(geom.indices); i += 3 {
		r.triangle(verts[geom.indices[i]], verts[geom.indices[i+1]], verts[geom.indices[i+2]])
	}
}

// edge function. positive if p is to the left of the edge a to b.
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// triangle fills every pixel whose centre is inside the triangle. pixels on
// a shared edge are filled by both triangles, which is harmless because the
// fragment stage writes without blending.
func (r *rasterizer) triangle(a, b, c windowVertex) {
	area := edge(a.x, a.y, b.x, b.y, c.x, c.y)
	if area == 0 {
		return
	}

	// pixels outside the viewport or the destination are never touched
	vp := r.viewport
	minX := max(vp.X, 0, int(math32.Floor(min(a.x, b.x, c.x))))
	minY := max(vp.Y, 0, int(math32.Floor(min(a.y, b.y, c.y))))
	maxX := min(vp.X+vp.Width, r.dest.width, int(math32.Ceil(max(a.x, b.x, c.x))))
	maxY := min(vp.Y+vp.Height, r.dest.height, int(math32.Ceil(max(a.y, b.y, c.y))))

	for y := minY; y < maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x < maxX; x++ {
			px := float32(x) + 0.5

			w0 := edge(b.x, b.y, c.x, c.y, px, py) / area
			w1 := edge(c.x, c.y, a.x, a.y, px, py) / area
			w2 := edge(a.x, a.y, b.x, b.y, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue // for loop
			}

			tc := [2]float32{
				w0*a.texCoord[0] + w1*b.texCoord[0] + w2*c.texCoord[0],
				w0*a.texCoord[1] + w1*b.texCoord[1] + w2*c.texCoord[1],
			}

			col := r.fragment(tc)
			if r.clamp {
				col = clampColor(col)
			}

			r.dest.set(x, y, col)
		}
	}
}
