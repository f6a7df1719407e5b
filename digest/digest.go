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
package digest

import (
	"crypto/sha1"
	"fmt"
	"image"
)

// Frames is a chained SHA1 fingerprint of a sequence of grayscale frames.
type Frames struct {
	digest [sha1.Size]byte
	pixels []byte
	count  int
}

// Hash returns the current fingerprint as a hex string.
func (dig *Frames) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Count returns the number of frames added since the most recent reset.
func (dig *Frames) Count() int {
	return dig.count
}

// Reset the fingerprint.
func (dig *Frames) Reset() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.count = 0
}

// Add a frame to the fingerprint. The dimensions of the frame are part of
// the fingerprint.
func (dig *Frames) Add(frame *image.Gray) {
	b := frame.Bounds()

	// room for the previous digest, the frame dimensions and the pixels
	l := len(dig.digest) + 8 + b.Dx()*b.Dy()
	if cap(dig.pixels) < l {
		dig.pixels = make([]byte, l)
	}
	dig.pixels = dig.pixels[:l]

	// chain fingerprints by copying the previous value to the head of the data
	i := copy(dig.pixels, dig.digest[:])

	w, h := uint32(b.Dx()), uint32(b.Dy())
	dig.pixels[i] = byte(w >> 24)
	dig.pixels[i+1] = byte(w >> 16)
	dig.pixels[i+2] = byte(w >> 8)
	dig.pixels[i+3] = byte(w)
	dig.pixels[i+4] = byte(h >> 24)
	dig.pixels[i+5] = byte(h >> 16)
	dig.pixels[i+6] = byte(h >> 8)
	dig.pixels[i+7] = byte(h)
	i += 8

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := frame.Pix[frame.PixOffset(b.Min.X, y):frame.PixOffset(b.Max.X, y)]
		i += copy(dig.pixels[i:], row)
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.count++
}
