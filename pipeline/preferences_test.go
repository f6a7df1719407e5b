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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gpucanny/curated"
	"github.com/jetsetilly/gpucanny/pipeline"
	"github.com/jetsetilly/gpucanny/prefs"
	"github.com/jetsetilly/gpucanny/test"
)

func TestPreferencesDefaults(t *testing.T) {
	p := newPreferences(t)

	w, h := p.Resolution()
	test.ExpectEquality(t, w, 640)
	test.ExpectEquality(t, h, 480)
	test.ExpectApproximate(t, p.Low.Get().(float64), 0.1, 0.0001)
	test.ExpectApproximate(t, p.High.Get().(float64), 0.3, 0.0001)
	test.ExpectApproximate(t, p.StrongCutoff.Get().(float64), 2.0, 0.0001)
	test.ExpectEquality(t, p.EncodeDirection.Get().(bool), true)
	test.ExpectEquality(t, p.TimerFrames.Get().(int), 1000)
}

func TestPreferencesValidation(t *testing.T) {
	p := newPreferences(t)

	test.ExpectFailure(t, p.Width.Set(0))
	test.ExpectFailure(t, p.Height.Set(-480))
	test.ExpectFailure(t, p.StrongCutoff.Set(0.0))
	test.ExpectFailure(t, p.TimerFrames.Set(0))

	// low must be less than high
	test.ExpectFailure(t, p.Low.Set(0.3))
	test.ExpectFailure(t, p.Low.Set(-0.1))
	test.ExpectFailure(t, p.High.Set(0.05))
	test.ExpectSuccess(t, p.Low.Set(0.2))
	test.ExpectSuccess(t, p.High.Set(0.25))

	// rejected values are not stored
	w, _ := p.Resolution()
	test.ExpectEquality(t, w, 640)

	// defaults are always accepted
	test.ExpectSuccess(t, p.High.Set(0.9))
	test.ExpectSuccess(t, p.Low.Set(0.8))
	p.SetDefaults()
	test.ExpectApproximate(t, p.Low.Get().(float64), 0.1, 0.0001)
	test.ExpectApproximate(t, p.High.Get().(float64), 0.3, 0.0001)
}

func TestPreferencesDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := pipeline.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.High.Set(0.8))
	test.DemandSuccess(t, p.Low.Set(0.5))
	test.DemandSuccess(t, p.EncodeDirection.Set(false))
	test.DemandSuccess(t, p.Save())

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "canny.threshold.low :: 0.500"))

	// the low threshold in the file is higher than the default high
	// threshold. the pair is only compared once both have been loaded
	q, err := pipeline.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectApproximate(t, q.Low.Get().(float64), 0.5, 0.0001)
	test.ExpectApproximate(t, q.High.Get().(float64), 0.8, 0.0001)
	test.ExpectEquality(t, q.EncodeDirection.Get().(bool), false)
	test.ExpectEquality(t, q.String(), p.String())
}

func TestPreferencesCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("canny.width::320; canny.height::240; canny.strongCutoff::3")
	defer prefs.PopCommandLineStack()

	p := newPreferences(t)
	w, h := p.Resolution()
	test.ExpectEquality(t, w, 320)
	test.ExpectEquality(t, h, 240)
	test.ExpectApproximate(t, p.StrongCutoff.Get().(float64), 3.0, 0.0001)
}

func writePreferences(t *testing.T, pth string, lines ...string) {
	t.Helper()
	data := prefs.WarningBoilerPlate + "\n" + strings.Join(lines, "\n") + "\n"
	test.DemandSuccess(t, os.WriteFile(pth, []byte(data), 0o600))
}

func TestPreferencesLowerThresholdsCommandLine(t *testing.T) {
	// both thresholds are below the default low threshold
	prefs.PushCommandLineStack("canny.threshold.low::0.01; canny.threshold.high::0.05")
	defer prefs.PopCommandLineStack()

	p := newPreferences(t)
	test.ExpectApproximate(t, p.Low.Get().(float64), 0.01, 0.0001)
	test.ExpectApproximate(t, p.High.Get().(float64), 0.05, 0.0001)
}

func TestPreferencesInvalidThresholdsCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("canny.threshold.low::0.05; canny.threshold.high::0.01")
	defer prefs.PopCommandLineStack()

	_, err := pipeline.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, pipeline.PreferencesError), err)
}

func TestPreferencesLowerThresholdsDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")
	writePreferences(t, pth,
		"canny.threshold.high :: 0.050",
		"canny.threshold.low :: 0.010",
	)

	p, err := pipeline.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectApproximate(t, p.Low.Get().(float64), 0.01, 0.0001)
	test.ExpectApproximate(t, p.High.Get().(float64), 0.05, 0.0001)

	// the file has not been rewritten with different values
	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "canny.threshold.high :: 0.050"))
	test.ExpectSuccess(t, strings.Contains(string(data), "canny.threshold.low :: 0.010"))

	// reloading the same file also succeeds
	test.ExpectSuccess(t, p.Load())
	test.ExpectApproximate(t, p.High.Get().(float64), 0.05, 0.0001)
}

func TestPreferencesInvalidThresholdsDisk(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")
	lines := []string{
		"canny.threshold.high :: 0.010",
		"canny.threshold.low :: 0.050",
	}
	writePreferences(t, pth, lines...)

	_, err := pipeline.NewPreferencesFromFile(pth)
	test.ExpectFailure(t, err)

	// an invalid pair does not cause the file to be overwritten
	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), lines[0]))
	test.ExpectSuccess(t, strings.Contains(string(data), lines[1]))
}

func TestPreferencesReloadInvalidThresholds(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")
	p, err := pipeline.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)

	writePreferences(t, pth,
		"canny.threshold.high :: 0.010",
		"canny.threshold.low :: 0.050",
	)

	// the thresholds are restored when a reload finds an invalid pair
	test.ExpectFailure(t, p.Load())
	test.ExpectApproximate(t, p.Low.Get().(float64), 0.1, 0.0001)
	test.ExpectApproximate(t, p.High.Get().(float64), 0.3, 0.0001)
}
