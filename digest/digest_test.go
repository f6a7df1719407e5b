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
package digest_test

import (
	"image"
	"testing"

	"github.com/jetsetilly/gpucanny/digest"
	"github.com/jetsetilly/gpucanny/test"
)

func frame(w, h int, v uint8) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for i := range g.Pix {
		g.Pix[i] = v
	}
	return g
}

func TestDigest(t *testing.T) {
	var a, b digest.Frames

	empty := a.Hash()
	test.ExpectEquality(t, empty, "0000000000000000000000000000000000000000")

	a.Add(frame(4, 4, 10))
	b.Add(frame(4, 4, 10))
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), empty)
	test.ExpectEquality(t, a.Count(), 1)

	// a second identical frame changes the chained fingerprint
	first := a.Hash()
	a.Add(frame(4, 4, 10))
	test.ExpectInequality(t, a.Hash(), first)
	test.ExpectEquality(t, a.Count(), 2)

	a.Reset()
	test.ExpectEquality(t, a.Hash(), empty)
	test.ExpectEquality(t, a.Count(), 0)
}

func TestDigestDimensions(t *testing.T) {
	var a, b digest.Frames

	// same number of pixels with the same value
	a.Add(frame(4, 8, 0))
	b.Add(frame(8, 4, 0))
	test.ExpectInequality(t, a.Hash(), b.Hash())
}

func TestDigestSubImage(t *testing.T) {
	var a, b digest.Frames

	g := frame(8, 8, 0)
	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			g.Pix[g.PixOffset(x, y)] = 200
		}
	}

	a.Add(g.SubImage(image.Rect(2, 2, 6, 6)).(*image.Gray))
	b.Add(frame(4, 4, 200))
	test.ExpectEquality(t, a.Hash(), b.Hash())
}
