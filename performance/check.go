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
	"context"
	"errors"
	"fmt"
	"io"
	"time"
)

// Check runs the frame function repeatedly for the specified duration and
// writes the achieved frame rate to output. The frame function is called
// from the goroutine that called Check(). Check returns early if the context
// is cancelled or if the frame function returns an error.
func Check(ctx context.Context, output io.Writer, duration time.Duration, frame func() error) error {
	if duration <= 0 {
		return fmt.Errorf("performance: duration must be positive (%v)", duration)
	}

	ctx, cancel := context.WithTimeout(ctx, duration)
	defer cancel()

	var frames int
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			elapsed := time.Since(start)
			if elapsed <= 0 || frames == 0 {
				fmt.Fprintf(output, "%d frames in %v\n", frames, elapsed)
				return nil
			}
			fps := float64(frames) / elapsed.Seconds()
			fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) %v per frame\n",
				fps, frames, elapsed.Seconds(), elapsed/time.Duration(frames))
			return nil
		default:
		}

		if err := frame(); err != nil {
			return fmt.Errorf("performance: %w", err)
		}

		// a frame that cancelled the check was not completed
		if errors.Is(ctx.Err(), context.Canceled) {
			continue
		}
		frames++
	}
}
