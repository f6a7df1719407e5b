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
package test_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gpucanny/test"
)

func TestExpectations(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	test.ExpectSuccess(t, error(nil))
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("failure"))

	test.ExpectEquality(t, 10, 10)
	test.ExpectInequality(t, "a", "b")
	test.ExpectApproximate(t, float32(0.1)+float32(0.2), 0.3, 1e-6)
}

func TestCompareWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	_, _ = tw.Write([]byte("hello "))
	_, _ = tw.Write([]byte("world"))
	test.ExpectSuccess(t, tw.Compare("hello world"))

	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}
