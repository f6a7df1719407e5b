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
	"image"
	"image/color"
)

// Image is a luminance image with values in the range 0 to 1. Rows are
// ordered top to bottom, as they are in the image package.
type Image struct {
	Width  int
	Height int
	Pix    []float32
}

// ImageFromGray converts an image.Gray to an Image.
func ImageFromGray(g *image.Gray) Image {
	b := g.Bounds()
	img := Image{
		Width:  b.Dx(),
		Height: b.Dy(),
		Pix:    make([]float32, 0, b.Dx()*b.Dy()),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Pix = append(img.Pix, float32(g.GrayAt(x, y).Y)/255)
		}
	}
	return img
}

// rgba returns the image as RGBA data, bottom row first. The luminance is
// copied to every colour channel.
func (img Image) rgba() []float32 {
	pix := make([]float32, 0, img.Width*img.Height*4)
	for y := img.Height - 1; y >= 0; y-- {
		for _, v := range img.Pix[y*img.Width : (y+1)*img.Width] {
			pix = append(pix, v, v, v, 1)
		}
	}
	return pix
}

// grayFromRGBA converts RGBA data, bottom row first, to an image.Gray using
// the red channel.
func grayFromRGBA(width int, height int, pix []float32) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := height - 1 - y
		for x := 0; x < width; x++ {
			v := pix[(row*width+x)*4]
			v = min(max(v, 0), 1)
			g.SetGray(x, y, color.Gray{Y: uint8(v*255 + 0.5)})
		}
	}
	return g
}
