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
// Package pipeline runs Canny style edge detection on a graphics
// accelerator. A single luminance image is uploaded once and every frame is
// produced by five draws:
//
//	BlurHorizontal  image -> A
//	BlurVertical    A     -> B
//	Gradient        B     -> A
//	Suppression     A     -> B
//	Resolution      B     -> on-screen
//
// A and B are off-screen render targets used in ping-pong fashion. No pass
// ever samples the texture backing its own destination and a barrier is
// issued before every pass that reads the result of the previous pass.
//
// All accelerator resources are created once by NewResources() and reused by
// every frame. The order of the passes is data, created by the pure
// BuildPassSchedule() function, and RenderFrame() simply executes the
// schedule with the per-frame values in a FrameState.
//
// The Pipeline type ties these together with the Preferences, the viewport
// transform and a frame timer.
package pipeline
