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
// Package resources contains functions to prepare paths for Gpucanny
// resources. The preferences file and any files written by the headless and
// performance modes are placed under this path by default.
//
// JoinPath() creates directories as required but does not otherwise touch
// or create files. The base path depends on how the binary was built.
//
// For builds with the "release" build tag, the base path is rooted in the
// user's configuration directory. On modern Linux systems the full path would
// be something like:
//
//	/home/user/.config/gpucanny/
//
// For non-"release" builds the base path is rooted in the current working
// directory:
//
//	.gpucanny
package resources
