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

// FitTransform returns an orthographic transform that scales the full-screen
// quad so that an image of the given size fits the viewport without changing
// its aspect ratio. The image is centred in the viewport.
func FitTransform(imageWidth, imageHeight, viewportWidth, viewportHeight int) accelerator.Mat4 {
	if imageWidth <= 0 || imageHeight <= 0 || viewportWidth <= 0 || viewportHeight <= 0 {
		return accelerator.Identity
	}

	ia := float32(imageWidth) / float32(imageHeight)
	va := float32(viewportWidth) / float32(viewportHeight)

	sx := min(1, ia/va)
	sy := min(1, va/ia)

	return accelerator.Mat4{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}
