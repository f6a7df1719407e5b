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
// Package assert contains checks that are useful during development. The
// checks are cheap enough to leave in release builds.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns the ID of the calling goroutine. The ID is parsed
// from the output of runtime.Stack().
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that created a resource which must only be
// used from that goroutine. OpenGL contexts are an example of such a
// resource.
type Owner struct {
	name string
	id   uint64
}

// NewOwner records the calling goroutine as the owner of the named resource.
func NewOwner(name string) Owner {
	return Owner{
		name: name,
		id:   GetGoRoutineID(),
	}
}

// Check panics if the calling goroutine is not the owner.
func (o Owner) Check() {
	if id := GetGoRoutineID(); id != o.id {
		panic(fmt.Sprintf("%s: used from goroutine %d but owned by goroutine %d", o.name, id, o.id))
	}
}
