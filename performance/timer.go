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
	"fmt"
	"time"

	"github.com/jetsetilly/gpucanny/logger"
)

// DefaultTimerFrames is the number of frames between each log of the
// average frame duration.
const DefaultTimerFrames = 1000

// FrameTimer measures the duration of the per-frame draw. The average over
// the most recent window of frames is logged when the window is complete,
// after which the window starts again.
type FrameTimer struct {
	frames  int
	count   int
	total   time.Duration
	start   time.Time
	started bool

	// the most recently completed average. zero until the first window is
	// complete
	average time.Duration

	// used to measure time. replaced in tests
	now func() time.Time
}

// NewFrameTimer is the preferred method of initialisation for the FrameTimer
// type. A frames value of less than one is replaced by DefaultTimerFrames.
func NewFrameTimer(frames int) *FrameTimer {
	if frames < 1 {
		frames = DefaultTimerFrames
	}
	return &FrameTimer{
		frames: frames,
		now:    time.Now,
	}
}

func (tm *FrameTimer) String() string {
	return fmt.Sprintf("%dns per frame (%d frames)", tm.average.Nanoseconds(), tm.frames)
}

// SetFrames changes the size of the window. The current window is discarded.
func (tm *FrameTimer) SetFrames(frames int) {
	if frames < 1 {
		frames = DefaultTimerFrames
	}
	tm.frames = frames
	tm.count = 0
	tm.total = 0
}

// Start measuring a frame.
func (tm *FrameTimer) Start() {
	tm.start = tm.now()
	tm.started = true
}

// End measuring a frame. Returns true if the window was completed by this
// frame, in which case the average has been logged.
func (tm *FrameTimer) End() bool {
	if !tm.started {
		return false
	}
	tm.started = false

	tm.total += tm.now().Sub(tm.start)
	tm.count++

	if tm.count < tm.frames {
		return false
	}

	tm.average = tm.total / time.Duration(tm.count)
	tm.count = 0
	tm.total = 0
	logger.Log(logger.Allow, "timer", tm)

	return true
}

// Average returns the most recently completed average frame duration.
func (tm *FrameTimer) Average() time.Duration {
	return tm.average
}

// Frames returns the size of the window.
func (tm *FrameTimer) Frames() int {
	return tm.frames
}
