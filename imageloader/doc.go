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
// Package imageloader reads an image file and prepares it for the edge
// detection pipeline. The image is decoded, fitted to the working resolution
// and converted to grayscale.
//
// PNG, JPEG and GIF files are supported by the standard library decoders.
// BMP, TIFF and WebP are supported by the decoders in golang.org/x/image.
package imageloader
