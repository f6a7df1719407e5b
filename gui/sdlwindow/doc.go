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
// Package sdlwindow opens a resizable window with an OpenGL 3.2 core context
// and runs the presentation loop. The context is made current on the calling
// goroutine, which is locked to its thread.
//
// The window knows nothing about edge detection. Frames are drawn by a
// Handler, which is told when the drawable size changes and when the context
// has been reset.
package sdlwindow
