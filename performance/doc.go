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
// Package performance measures the speed of the edge detection frame loop.
//
// FrameTimer measures the wall-clock duration of each frame and logs a
// rolling average every N frames. Check() runs a frame function repeatedly
// for a fixed duration and reports the achieved frame rate. RunProfiler()
// wraps any function with the CPU, memory and trace profilers from the Go
// runtime.
package performance
