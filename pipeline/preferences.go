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

	"github.com/jetsetilly/gpucanny/curated"
	"github.com/jetsetilly/gpucanny/performance"
	"github.com/jetsetilly/gpucanny/prefs"
	"github.com/jetsetilly/gpucanny/resources"
)

// Preferences for the pipeline. The working resolution is only read when a
// Pipeline is created. The remaining values are read every frame.
type Preferences struct {
	dsk *prefs.Disk

	// the threshold hooks do not compare the two thresholds while the
	// defaults are being set or while a group of values is being applied. the
	// pair is checked once the group is complete
	deferPairCheck bool

	Width           prefs.Int
	Height          prefs.Int
	Low             prefs.Float
	High            prefs.Float
	StrongCutoff    prefs.Float
	EncodeDirection prefs.Bool
	TimerFrames     prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// Default values for the preferences.
const (
	DefaultWidth        = 640
	DefaultHeight       = 480
	DefaultLow          = 0.1
	DefaultHigh         = 0.3
	DefaultStrongCutoff = 2.0
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf(PreferencesError, err)
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences but uses the specified
// preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf(PreferencesError, err)
	}

	positive := func(v prefs.Value) error {
		switch v := v.(type) {
		case int:
			if v <= 0 {
				return fmt.Errorf("must be positive (%d)", v)
			}
		case float64:
			if v <= 0 {
				return fmt.Errorf("must be positive (%.3f)", v)
			}
		}
		return nil
	}

	p.Width.SetHookPre(positive)
	p.Height.SetHookPre(positive)
	p.StrongCutoff.SetHookPre(positive)
	p.TimerFrames.SetHookPre(positive)

	p.Low.SetHookPre(func(v prefs.Value) error {
		l := v.(float64)
		if l < 0 {
			return fmt.Errorf("low threshold must be at least zero (%.3f)", l)
		}
		if !p.deferPairCheck && l >= p.High.Get().(float64) {
			return fmt.Errorf("low threshold must be less than the high threshold (%.3f)", l)
		}
		return nil
	})
	p.High.SetHookPre(func(v prefs.Value) error {
		h := v.(float64)
		if h <= 0 {
			return fmt.Errorf("high threshold must be positive (%.3f)", h)
		}
		if !p.deferPairCheck && h <= p.Low.Get().(float64) {
			return fmt.Errorf("high threshold must be more than the low threshold (%.3f)", h)
		}
		return nil
	})

	// values from the command line are applied by Add()
	p.deferPairCheck = true
	for _, e := range []struct {
		key string
		p   interface {
			fmt.Stringer
			Set(prefs.Value) error
			Get() prefs.Value
		}
	}{
		{"canny.width", &p.Width},
		{"canny.height", &p.Height},
		{"canny.threshold.high", &p.High},
		{"canny.threshold.low", &p.Low},
		{"canny.strongCutoff", &p.StrongCutoff},
		{"canny.encodeDirection", &p.EncodeDirection},
		{"canny.timer.frames", &p.TimerFrames},
	} {
		if err := p.dsk.Add(e.key, e.p); err != nil {
			p.deferPairCheck = false
			return nil, curated.Errorf(PreferencesError, err)
		}
	}
	p.deferPairCheck = false

	if err := p.checkThresholds(); err != nil {
		return nil, curated.Errorf(PreferencesError, err)
	}

	if err := p.load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// checkThresholds returns an error if the low threshold is not less than
// the high threshold.
func (p *Preferences) checkThresholds() error {
	low := p.Low.Get().(float64)
	high := p.High.Get().(float64)
	if low >= high {
		return fmt.Errorf("low threshold (%.3f) must be less than the high threshold (%.3f)", low, high)
	}
	return nil
}

// load values from disk with the threshold pair checked after every value
// has been applied, so the order of the keys in the file does not matter.
//
// if the loaded pair is invalid then both thresholds are restored and the
// file is left untouched. if saveOnFail is true then any other rejected
// value causes the current values to be written to disk.
func (p *Preferences) load(saveOnFail bool) error {
	low := p.Low.Get()
	high := p.High.Get()

	p.deferPairCheck = true
	err := p.dsk.Load(false)
	p.deferPairCheck = false

	if perr := p.checkThresholds(); perr != nil {
		p.deferPairCheck = true
		_ = p.Low.Set(low)
		_ = p.High.Set(high)
		p.deferPairCheck = false
		return curated.Errorf(PreferencesError, perr)
	}

	if err != nil {
		if saveOnFail {
			if serr := p.dsk.Save(); serr != nil {
				return curated.Errorf(PreferencesError, serr)
			}
		}
		return curated.Errorf(PreferencesError, err)
	}

	return nil
}

// SetDefaults reverts all values to the defaults.
func (p *Preferences) SetDefaults() {
	p.deferPairCheck = true
	defer func() {
		p.deferPairCheck = false
	}()

	_ = p.Width.Set(DefaultWidth)
	_ = p.Height.Set(DefaultHeight)
	_ = p.Low.Set(DefaultLow)
	_ = p.High.Set(DefaultHigh)
	_ = p.StrongCutoff.Set(DefaultStrongCutoff)
	_ = p.EncodeDirection.Set(true)
	_ = p.TimerFrames.Set(performance.DefaultTimerFrames)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	if err := p.dsk.Save(); err != nil {
		return curated.Errorf(PreferencesError, err)
	}
	return nil
}

// Resolution returns the working resolution.
func (p *Preferences) Resolution() (int, int) {
	return p.Width.Get().(int), p.Height.Get().(int)
}
