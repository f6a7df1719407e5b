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
package prefs_test

import (
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gpucanny/prefs"
	"github.com/jetsetilly/gpucanny/test"
)

func TestCommandLineStack(t *testing.T) {
	prefs.PushCommandLineStack("canny.width::320; canny.threshold.high :: 0.4;bogus")

	ok, v := prefs.GetCommandLinePref("canny.width")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "320")

	// values are consumed when retrieved
	ok, _ = prefs.GetCommandLinePref("canny.width")
	test.ExpectFailure(t, ok)

	unused := prefs.PopCommandLineStack()
	test.DemandEquality(t, len(unused), 1)
	test.ExpectEquality(t, unused[0], "canny.threshold.high")

	ok, _ = prefs.GetCommandLinePref("canny.threshold.high")
	test.ExpectFailure(t, ok)
}

func TestCommandLineOverridesDisk(t *testing.T) {
	prefs.PushCommandLineStack("canny.height::240")
	defer prefs.PopCommandLineStack()

	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	var h prefs.Int
	test.ExpectSuccess(t, h.Set(480))
	test.DemandSuccess(t, dsk.Add("canny.height", &h))
	test.ExpectEquality(t, h.Get().(int), 240)
}
