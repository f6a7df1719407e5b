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

// Error patterns specific to the pipeline. Errors from the accelerator are
// wrapped and should be tested for with curated.Has().
const (
	InvalidScheduleError = "invalid schedule: %s"
	ImageSizeError       = "image size: %dx%d does not match working resolution %dx%d"
	PreferencesError     = "preferences: %v"
)
