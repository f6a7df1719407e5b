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
package pipeline_test

import (
	"testing"

	"github.com/jetsetilly/gpucanny/accelerator"
	"github.com/jetsetilly/gpucanny/pipeline"
	"github.com/jetsetilly/gpucanny/test"
)

func TestFitTransform(t *testing.T) {
	cases := []struct {
		iw, ih, vw, vh int
		sx, sy         float32
	}{
		{640, 480, 640, 480, 1, 1},
		{640, 480, 1280, 960, 1, 1},

		// viewport is wider than the image
		{640, 480, 1280, 480, 0.5, 1},

		// viewport is taller than the image
		{640, 480, 640, 960, 1, 0.5},
	}

	for _, c := range cases {
		m := pipeline.FitTransform(c.iw, c.ih, c.vw, c.vh)
		test.ExpectApproximate(t, m[0], c.sx, 0.0001, c.vw, c.vh)
		test.ExpectApproximate(t, m[5], c.sy, 0.0001, c.vw, c.vh)
		test.ExpectEquality(t, m[10], 1)
		test.ExpectEquality(t, m[15], 1)
	}

	test.ExpectEquality(t, pipeline.FitTransform(640, 480, 0, 0), accelerator.Identity)
}
