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
package imageloader

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/jetsetilly/gpucanny/curated"
	"github.com/jetsetilly/gpucanny/logger"

	// decoders
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadError is the pattern used when an image cannot be loaded.
const LoadError = "imageloader: %v"

// Fit describes how the decoded image is made to match the working
// resolution.
type Fit int

// List of valid Fit values.
const (
	// scale the image to fit inside the working resolution, preserving
	// aspect ratio. the remaining area is filled with black
	FitLetterbox Fit = iota

	// scale the image to the working resolution, ignoring aspect ratio
	FitStretch

	// scale and crop the image so that it covers the working resolution
	FitFill
)

func (f Fit) String() string {
	switch f {
	case FitLetterbox:
		return "letterbox"
	case FitStretch:
		return "stretch"
	case FitFill:
		return "fill"
	}
	return "unknown fit"
}

// ParseFit converts a string to a Fit value.
func ParseFit(s string) (Fit, error) {
	switch s {
	case "letterbox", "":
		return FitLetterbox, nil
	case "stretch":
		return FitStretch, nil
	case "fill":
		return FitFill, nil
	}
	return FitLetterbox, fmt.Errorf("imageloader: unknown fit: %s", s)
}

// Load opens and decodes the named file. The result is as described for
// Prepare().
func Load(filename string, width int, height int, fit Fit) (*image.Gray, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}
	defer f.Close()

	return Decode(f, width, height, fit)
}

// Decode reads an image from the io.Reader. The result is as described for
// Prepare().
func Decode(r io.Reader, width int, height int, fit Fit) (*image.Gray, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	b := img.Bounds()
	logger.Logf(logger.Allow, "imageloader", "decoded %s image (%dx%d)", format, b.Dx(), b.Dy())

	return Prepare(img, width, height, fit)
}

// Prepare fits the image to the working resolution and converts it to
// grayscale. The returned image always has the requested dimensions and a
// bounds origin of (0,0).
func Prepare(img image.Image, width int, height int, fit Fit) (*image.Gray, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(LoadError, fmt.Sprintf("working resolution %dx%d", width, height))
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, curated.Errorf(LoadError, "empty image")
	}

	var fitted image.Image

	if b.Dx() == width && b.Dy() == height {
		fitted = img
	} else {
		switch fit {
		case FitStretch:
			fitted = imaging.Resize(img, width, height, imaging.Lanczos)
		case FitFill:
			fitted = imaging.Fill(img, width, height, imaging.Center, imaging.Lanczos)
		default:
			scaled := imaging.Fit(img, width, height, imaging.Lanczos)

			// imaging.Fit() will not enlarge an image
			sb := scaled.Bounds()
			if sb.Dx() < width && sb.Dy() < height {
				w, h := width, height
				if sb.Dx()*height > sb.Dy()*width {
					h = 0
				} else {
					w = 0
				}
				scaled = imaging.Resize(img, w, h, imaging.Lanczos)
			}

			bg := imaging.New(width, height, color.Black)
			fitted = imaging.PasteCenter(bg, scaled)
		}
	}

	gray := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(gray, gray.Bounds(), fitted, fitted.Bounds().Min, draw.Src)

	return gray, nil
}
