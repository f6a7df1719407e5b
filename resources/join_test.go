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
//go:build !release

package resources_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gpucanny/resources"
	"github.com/jetsetilly/gpucanny/test"
)

func TestJoinPath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	p, err := resources.JoinPath("out", "edges.png")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p, filepath.Join(".gpucanny", "out", "edges.png"))

	// directory is created but the file is not
	_, err = os.Stat(filepath.Join(".gpucanny", "out"))
	test.ExpectSuccess(t, err == nil)
	_, err = os.Stat(p)
	test.ExpectSuccess(t, os.IsNotExist(err))

	// base path is not prepended twice
	q, err := resources.JoinPath(p)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q, p)
}
