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
package imageloader_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gpucanny/curated"
	"github.com/jetsetilly/gpucanny/imageloader"
	"github.com/jetsetilly/gpucanny/test"
)

func step(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x >= w/2 {
				img.Set(x, y, color.White)
			} else {
				img.Set(x, y, color.Black)
			}
		}
	}
	return img
}

func TestDecodeSameSize(t *testing.T) {
	var buf bytes.Buffer
	test.DemandSuccess(t, png.Encode(&buf, step(8, 4)))

	g, err := imageloader.Decode(&buf, 8, 4, imageloader.FitLetterbox)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g.Bounds(), image.Rect(0, 0, 8, 4))

	for y := 0; y < 4; y++ {
		test.ExpectEquality(t, g.GrayAt(3, y).Y, uint8(0))
		test.ExpectEquality(t, g.GrayAt(4, y).Y, uint8(255))
	}
}

func TestDecodeFailure(t *testing.T) {
	_, err := imageloader.Decode(strings.NewReader("not an image"), 8, 4, imageloader.FitLetterbox)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, imageloader.LoadError))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := imageloader.Load(filepath.Join(t.TempDir(), "missing.png"), 8, 4, imageloader.FitLetterbox)
	test.ExpectFailure(t, err)
}

func TestPrepareResolution(t *testing.T) {
	_, err := imageloader.Prepare(step(8, 4), 0, 4, imageloader.FitStretch)
	test.ExpectFailure(t, err)

	_, err = imageloader.Prepare(image.NewGray(image.Rect(0, 0, 0, 0)), 8, 4, imageloader.FitStretch)
	test.ExpectFailure(t, err)
}

func TestPrepareFits(t *testing.T) {
	for _, fit := range []imageloader.Fit{imageloader.FitLetterbox, imageloader.FitStretch, imageloader.FitFill} {
		g, err := imageloader.Prepare(step(40, 10), 16, 16, fit)
		test.DemandSuccess(t, err, fit)
		test.ExpectEquality(t, g.Bounds(), image.Rect(0, 0, 16, 16), fit)
	}
}

func TestLetterbox(t *testing.T) {
	white := image.NewGray(image.Rect(0, 0, 40, 10))
	for i := range white.Pix {
		white.Pix[i] = 255
	}

	g, err := imageloader.Prepare(white, 16, 16, imageloader.FitLetterbox)
	test.DemandSuccess(t, err)

	// the image is scaled to 16x4 and centred vertically
	test.ExpectEquality(t, g.GrayAt(8, 0).Y, uint8(0))
	test.ExpectEquality(t, g.GrayAt(8, 15).Y, uint8(0))
	test.ExpectEquality(t, g.GrayAt(8, 8).Y > 200, true)

	var rows int
	for y := 0; y < 16; y++ {
		if g.GrayAt(8, y).Y > 200 {
			rows++
		}
	}
	test.ExpectEquality(t, rows, 4)
}

func TestLetterboxEnlarge(t *testing.T) {
	white := image.NewGray(image.Rect(0, 0, 4, 2))
	for i := range white.Pix {
		white.Pix[i] = 255
	}

	g, err := imageloader.Prepare(white, 16, 16, imageloader.FitLetterbox)
	test.DemandSuccess(t, err)

	var rows int
	for y := 0; y < 16; y++ {
		if g.GrayAt(8, y).Y > 200 {
			rows++
		}
	}
	test.ExpectEquality(t, rows, 8)
	test.ExpectEquality(t, g.GrayAt(0, 8).Y > 200, true)
	test.ExpectEquality(t, g.GrayAt(15, 8).Y > 200, true)
}

func TestParseFit(t *testing.T) {
	for _, fit := range []imageloader.Fit{imageloader.FitLetterbox, imageloader.FitStretch, imageloader.FitFill} {
		f, err := imageloader.ParseFit(fit.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, f, fit)
	}
	_, err := imageloader.ParseFit("squash")
	test.ExpectFailure(t, err)
}
