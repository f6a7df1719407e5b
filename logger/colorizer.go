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
package logger

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	dimTag    = "\033[2m"
	normalPen = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag part of
// each entry is dimmed.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	s := string(p)

	i := strings.Index(s, ": ")
	if i < 0 {
		return c.out.Write(p)
	}

	_, err := io.WriteString(c.out, dimTag+s[:i+1]+normalPen+s[i+1:])
	if err != nil {
		return 0, err
	}

	return len(p), nil
}

// isTerminal returns true if the io.Writer is a file connected to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
