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
// Package logger is the central logging facility for gpucanny. Entries are
// tagged and deduplicated: an entry identical to the previous one increases
// the repeat count of that entry rather than adding a new line.
//
// Log entries are made with Log() or Logf(). The first argument to either
// function is an implementation of the Permission interface. Use logger.Allow
// for entries that should always be made.
//
//	logger.Logf(logger.Allow, "pipeline", "allocated %dx%d targets", w, h)
//
// The central log can be echoed to an io.Writer as entries are made with
// SetEcho(). Echoed entries are colourised when the writer is a terminal.
package logger
