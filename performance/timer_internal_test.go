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
package performance

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gpucanny/logger"
	"github.com/jetsetilly/gpucanny/test"
)

// clock advances by a fixed step every time it is read.
type clock struct {
	t    time.Time
	step time.Duration
}

func (c *clock) now() time.Time {
	c.t = c.t.Add(c.step)
	return c.t
}

func TestFrameTimer(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	c := &clock{step: time.Millisecond}
	tm := NewFrameTimer(4)
	tm.now = c.now

	for i := 0; i < 3; i++ {
		tm.Start()
		test.ExpectFailure(t, tm.End())
	}
	test.ExpectEquality(t, tm.Average(), 0)

	tm.Start()
	test.ExpectSuccess(t, tm.End())
	test.ExpectEquality(t, tm.Average(), time.Millisecond)

	w := &strings.Builder{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "timer: 1000000ns per frame (4 frames)\n")

	// the window restarts
	c.step = 3 * time.Millisecond
	for i := 0; i < 3; i++ {
		tm.Start()
		test.ExpectFailure(t, tm.End())
	}
	test.ExpectEquality(t, tm.Average(), time.Millisecond)
	tm.Start()
	test.ExpectSuccess(t, tm.End())
	test.ExpectEquality(t, tm.Average(), 3*time.Millisecond)
}

func TestFrameTimerDefaults(t *testing.T) {
	tm := NewFrameTimer(0)
	test.ExpectEquality(t, tm.frames, DefaultTimerFrames)

	tm.SetFrames(-1)
	test.ExpectEquality(t, tm.frames, DefaultTimerFrames)

	// End() without Start() does nothing
	test.ExpectFailure(t, tm.End())
	test.ExpectEquality(t, tm.count, 0)
}
