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
package software

import (
	"regexp"
	"strings"
)

// declarations found in a GLSL source.
type declarations struct {
	uniforms []string
	inputs   []string
	outputs  []string
	hasMain  bool
}

var (
	declRe = regexp.MustCompile(`(?m)^\s*(uniform|in|out)\s+(?:(?:lowp|mediump|highp)\s+)?\w+\s+(\w+)\s*(?:\[\s*\d+\s*\])?\s*;`)
	mainRe = regexp.MustCompile(`\bvoid\s+main\s*\(\s*\)`)
)

// stripComments removes line and block comments.
func stripComments(src string) string {
	s := strings.Builder{}
	for i := 0; i < len(src); i++ {
		if strings.HasPrefix(src[i:], "//") {
			n := strings.IndexByte(src[i:], '\n')
			if n < 0 {
				break // for loop
			}
			i += n - 1
			continue // for loop
		}
		if strings.HasPrefix(src[i:], "/*") {
			n := strings.Index(src[i+2:], "*/")
			if n < 0 {
				break // for loop
			}
			i += n + 3
			continue // for loop
		}
		s.WriteByte(src[i])
	}
	return s.String()
}

func parseDeclarations(src string) declarations {
	src = stripComments(src)

	var d declarations
	for _, m := range declRe.FindAllStringSubmatch(src, -1) {
		switch m[1] {
		case "uniform":
			d.uniforms = append(d.uniforms, m[2])
		case "in":
			d.inputs = append(d.inputs, m[2])
		case "out":
			d.outputs = append(d.outputs, m[2])
		}
	}
	d.hasMain = mainRe.MatchString(src)

	return d
}

func contains(l []string, s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}
