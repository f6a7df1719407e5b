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
package pipeline

import (
	"fmt"

	"github.com/jetsetilly/gpucanny/accelerator"
	"github.com/jetsetilly/gpucanny/curated"
)

// State of the pipeline. Every frame moves through the states BlurHorizontal
// to Present in order. Init is only visited when resources are created.
type State int

// List of valid State values.
const (
	Init State = iota
	BlurHorizontal
	BlurVertical
	Gradient
	Suppression
	Resolution
	Present
)

func (s State) String() string {
	switch s {
	case Init:
		return "INIT"
	case BlurHorizontal:
		return "BLUR_H"
	case BlurVertical:
		return "BLUR_V"
	case Gradient:
		return "GRADIENT"
	case Suppression:
		return "SUPPRESSION"
	case Resolution:
		return "RESOLUTION"
	case Present:
		return "PRESENT"
	}
	return "unknown state"
}

// Next returns the state that follows s.
func (s State) Next() State {
	if s == Present {
		return BlurHorizontal
	}
	return s + 1
}

// Slot is a symbolic texture or render target. Slots are resolved to real
// resources by RenderFrame().
type Slot int

// List of valid Slot values.
const (
	// the uploaded image. never written after INIT
	SlotImage Slot = iota
	SlotA
	SlotB
	SlotScreen
)

func (s Slot) String() string {
	switch s {
	case SlotImage:
		return "image"
	case SlotA:
		return "A"
	case SlotB:
		return "B"
	case SlotScreen:
		return "screen"
	}
	return "unknown slot"
}

// Step is the direction of the pixel step uniform. Values can be combined.
type Step int

// List of valid Step values.
const (
	StepHorizontal Step = 0b01
	StepVertical   Step = 0b10
	StepBoth            = StepHorizontal | StepVertical
)

// Pass is a single draw in the frame.
type Pass struct {
	State       State
	Program     ProgramKind
	Source      Slot
	Destination Slot

	// the pixel step is computed from the resolution of the source
	Step Step

	// a barrier is issued before the pass
	Barrier bool
}

func (p Pass) String() string {
	return fmt.Sprintf("%s: %s -> %s (%s)", p.State, p.Source, p.Destination, p.Program)
}

// BuildPassSchedule returns the passes of a frame in execution order.
func BuildPassSchedule() []Pass {
	return []Pass{
		{State: BlurHorizontal, Program: BlurProgram, Source: SlotImage, Destination: SlotA, Step: StepHorizontal},
		{State: BlurVertical, Program: BlurProgram, Source: SlotA, Destination: SlotB, Step: StepVertical, Barrier: true},
		{State: Gradient, Program: GradientProgram, Source: SlotB, Destination: SlotA, Step: StepBoth, Barrier: true},
		{State: Suppression, Program: SuppressionProgram, Source: SlotA, Destination: SlotB, Step: StepBoth, Barrier: true},
		{State: Resolution, Program: ResolutionProgram, Source: SlotB, Destination: SlotScreen, Step: StepBoth, Barrier: true},
	}
}

// ValidateSchedule checks that the schedule can be executed safely. Returns
// PipelineHazardError if a pass samples its own destination and
// InvalidScheduleError for any other problem.
func ValidateSchedule(passes []Pass) error {
	if len(passes) == 0 {
		return curated.Errorf(InvalidScheduleError, "no passes")
	}

	for i, p := range passes {
		if p.Source == p.Destination {
			return curated.Errorf(accelerator.PipelineHazardError, fmt.Sprintf("%s samples its destination", p))
		}
		if p.Destination == SlotImage {
			return curated.Errorf(InvalidScheduleError, fmt.Sprintf("%s writes to the image", p))
		}
		if p.Source == SlotScreen {
			return curated.Errorf(InvalidScheduleError, fmt.Sprintf("%s samples the screen", p))
		}

		last := i == len(passes)-1
		if last != (p.Destination == SlotScreen) {
			return curated.Errorf(InvalidScheduleError, fmt.Sprintf("%s: only the final pass draws to the screen", p))
		}

		if i == 0 {
			continue // for loop
		}

		// ping-pong: the source is the previous destination and the
		// destination holds the result from two passes back
		prev := passes[i-1]
		if p.Source != SlotImage && p.Source != prev.Destination {
			return curated.Errorf(InvalidScheduleError, fmt.Sprintf("%s does not read the result of %s", p, prev.State))
		}
		if p.Source == prev.Destination && !p.Barrier {
			return curated.Errorf(InvalidScheduleError, fmt.Sprintf("%s has no barrier", p))
		}
	}

	return nil
}
