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
)

type texture struct {
	width  int
	height int

	// RGBA, bottom row first
	pix []float32

	// the off-screen target backed by the texture. zero if there isn't one
	target int
}

func newTexture(width, height int) *texture {
	return &texture{
		width:  width,
		height: height,
		pix:    make([]float32, width*height*4),
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// sample with nearest filtering. coordinates outside the texture are
// clamped to the edge texels.
func (t *texture) sample(uv [2]float32) [4]float32 {
	x := clampIndex(int(math32.Floor(uv[0]*float32(t.width))), t.width)
	y := clampIndex(int(math32.Floor(uv[1]*float32(t.height))), t.height)
	i := (y*t.width + x) * 4
	return [4]float32{t.pix[i], t.pix[i+1], t.pix[i+2], t.pix[i+3]}
}

func (t *texture) set(x, y int, c [4]float32) {
	i := (y*t.width + x) * 4
	copy(t.pix[i:i+4], c[:])
}

func (t *texture) fill(c [4]float32) {
	for i := 0; i < len(t.pix); i += 4 {
		copy(t.pix[i:i+4], c[:])
	}
}
