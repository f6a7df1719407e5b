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
	"fmt"
	"strings"

	"github.com/jetsetilly/gpucanny/accelerator"
)

// CommandKind identifies the type of a recorded Command.
type CommandKind int

// List of valid CommandKind values.
const (
	ClearCommand CommandKind = iota
	DrawCommand
	BarrierCommand
)

// Command is a single entry in the device trace.
type Command struct {
	Kind CommandKind

	// the following fields are only used by DrawCommand. Target is also
	// used by ClearCommand
	Name        string
	ProgramName string
	Target      accelerator.TargetID
	Textures    []accelerator.TextureID
	Uniforms    accelerator.Uniforms
}

func (c Command) String() string {
	switch c.Kind {
	case ClearCommand:
		return fmt.Sprintf("clear %s", c.Target)
	case BarrierCommand:
		return "barrier"
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("draw %s (%s) -> %s", c.Name, c.ProgramName, c.Target))
	for _, t := range c.Textures {
		s.WriteString(fmt.Sprintf(" tex%d", t))
	}
	return s.String()
}

func copyUniforms(u accelerator.Uniforms) accelerator.Uniforms {
	c := make(accelerator.Uniforms, len(u))
	for k, v := range u {
		c[k] = v
	}
	return c
}

// DefaultTraceLimit is a suitable limit for EnableTrace(). It is enough for
// many frames of the edge detection pipeline.
const DefaultTraceLimit = 1000

// EnableTrace starts recording commands. At most limit commands are kept and
// the oldest commands are discarded to make room for new ones. A limit of
// zero or less stops recording and forgets every recorded command.
//
// The trace is disabled when the device is created.
func (dev *Device) EnableTrace(limit int) {
	dev.traceLimit = max(limit, 0)
	if dev.traceLimit == 0 {
		dev.trace = nil
		return
	}
	if len(dev.trace) > dev.traceLimit {
		dev.trace = append(dev.trace[:0], dev.trace[len(dev.trace)-dev.traceLimit:]...)
	}
}

func (dev *Device) record(c Command) {
	if dev.traceLimit <= 0 {
		return
	}
	if len(dev.trace) >= dev.traceLimit {
		n := copy(dev.trace, dev.trace[len(dev.trace)-dev.traceLimit+1:])
		dev.trace = dev.trace[:n]
	}
	dev.trace = append(dev.trace, c)
}

// Trace returns a copy of the commands recorded since the trace was enabled
// or since the most recent call to ResetTrace().
func (dev *Device) Trace() []Command {
	return append([]Command{}, dev.trace...)
}

// ResetTrace forgets all recorded commands.
func (dev *Device) ResetTrace() {
	dev.trace = dev.trace[:0]
}

// Draws returns only the draw commands in the trace.
func (dev *Device) Draws() []Command {
	var d []Command
	for _, c := range dev.trace {
		if c.Kind == DrawCommand {
			d = append(d, c)
		}
	}
	return d
}
