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
package pipeline_test

import (
	"testing"

	"github.com/jetsetilly/gpucanny/accelerator"
	"github.com/jetsetilly/gpucanny/curated"
	"github.com/jetsetilly/gpucanny/pipeline"
	"github.com/jetsetilly/gpucanny/test"
)

func TestBuildPassSchedule(t *testing.T) {
	expected := []pipeline.Pass{
		{State: pipeline.BlurHorizontal, Program: pipeline.BlurProgram, Source: pipeline.SlotImage, Destination: pipeline.SlotA, Step: pipeline.StepHorizontal},
		{State: pipeline.BlurVertical, Program: pipeline.BlurProgram, Source: pipeline.SlotA, Destination: pipeline.SlotB, Step: pipeline.StepVertical, Barrier: true},
		{State: pipeline.Gradient, Program: pipeline.GradientProgram, Source: pipeline.SlotB, Destination: pipeline.SlotA, Step: pipeline.StepBoth, Barrier: true},
		{State: pipeline.Suppression, Program: pipeline.SuppressionProgram, Source: pipeline.SlotA, Destination: pipeline.SlotB, Step: pipeline.StepBoth, Barrier: true},
		{State: pipeline.Resolution, Program: pipeline.ResolutionProgram, Source: pipeline.SlotB, Destination: pipeline.SlotScreen, Step: pipeline.StepBoth, Barrier: true},
	}

	sch := pipeline.BuildPassSchedule()
	test.DemandEquality(t, len(sch), len(expected))
	for i := range expected {
		test.ExpectEquality(t, sch[i], expected[i], i)
	}

	test.ExpectSuccess(t, pipeline.ValidateSchedule(sch))

	// the schedule is a new slice every time
	sch[0].Source = pipeline.SlotB
	test.ExpectEquality(t, pipeline.BuildPassSchedule()[0].Source, pipeline.SlotImage)
}

func TestPingPong(t *testing.T) {
	sch := pipeline.BuildPassSchedule()

	for i := 1; i < len(sch); i++ {
		// every pass reads the result of the previous pass
		test.ExpectEquality(t, sch[i].Source, sch[i-1].Destination, i)

		// and never samples its own destination
		test.ExpectInequality(t, sch[i].Source, sch[i].Destination, i)
	}

	// only the final pass has no downstream consumer
	for i, p := range sch {
		test.ExpectEquality(t, p.Destination == pipeline.SlotScreen, i == len(sch)-1, i)
	}
}

func TestValidateSchedule(t *testing.T) {
	test.ExpectSuccess(t, curated.Is(pipeline.ValidateSchedule(nil), pipeline.InvalidScheduleError))

	// sampling the destination
	sch := pipeline.BuildPassSchedule()
	sch[2].Destination = pipeline.SlotB
	err := pipeline.ValidateSchedule(sch)
	test.ExpectSuccess(t, curated.Is(err, accelerator.PipelineHazardError), err)

	// missing barrier
	sch = pipeline.BuildPassSchedule()
	sch[3].Barrier = false
	err = pipeline.ValidateSchedule(sch)
	test.ExpectSuccess(t, curated.Is(err, pipeline.InvalidScheduleError), err)

	// drawing to the screen before the final pass
	sch = pipeline.BuildPassSchedule()
	sch[1].Destination = pipeline.SlotScreen
	err = pipeline.ValidateSchedule(sch)
	test.ExpectSuccess(t, curated.Is(err, pipeline.InvalidScheduleError), err)

	// not reading the previous result
	sch = pipeline.BuildPassSchedule()
	sch[3].Source = pipeline.SlotB
	sch[3].Destination = pipeline.SlotA
	err = pipeline.ValidateSchedule(sch)
	test.ExpectSuccess(t, curated.Is(err, pipeline.InvalidScheduleError), err)

	// writing to the image
	sch = pipeline.BuildPassSchedule()
	sch[0].Destination = pipeline.SlotImage
	sch[0].Source = pipeline.SlotB
	err = pipeline.ValidateSchedule(sch)
	test.ExpectSuccess(t, curated.Is(err, pipeline.InvalidScheduleError), err)
}

func TestStateMachine(t *testing.T) {
	s := pipeline.Init
	var seq []string
	for i := 0; i < 8; i++ {
		s = s.Next()
		seq = append(seq, s.String())
	}

	expected := []string{"BLUR_H", "BLUR_V", "GRADIENT", "SUPPRESSION", "RESOLUTION", "PRESENT", "BLUR_H", "BLUR_V"}
	test.DemandEquality(t, len(seq), len(expected))
	for i := range expected {
		test.ExpectEquality(t, seq[i], expected[i], i)
	}
}
