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
	"github.com/jetsetilly/gpucanny/logger"
)

// Resources is every accelerator resource required to render a frame. It is
// created once and is not changed by RenderFrame().
type Resources struct {
	image Texture
	a     Target
	b     Target

	programs [numPrograms]Program
	quad     accelerator.GeometryID
	schedule []Pass
}

func (res *Resources) String() string {
	return fmt.Sprintf("image: %s, A: %s, B: %s", res.image, res.a, res.b)
}

// NewResources uploads the image and creates the render targets, the shader
// programs and the pass schedule. Any failure aborts the creation of the
// resources and destroys the device, releasing whatever had been created on
// it so far.
func NewResources(dev accelerator.Device, img Image) (_ *Resources, rerr error) {
	defer func() {
		if rerr != nil {
			dev.Destroy()
		}
	}()

	if img.Width <= 0 || img.Height <= 0 || len(img.Pix) != img.Width*img.Height {
		return nil, curated.Errorf("resources: %v", fmt.Errorf("image has %d values for %dx%d", len(img.Pix), img.Width, img.Height))
	}

	res := &Resources{}

	tm := NewTargetManager(dev)

	var err error
	res.image, err = tm.Allocate(img.Width, img.Height, img.rgba())
	if err != nil {
		return nil, curated.Errorf("resources: %v", err)
	}

	res.a, err = tm.AllocateTarget(img.Width, img.Height)
	if err != nil {
		return nil, curated.Errorf("resources: %v", err)
	}
	res.b, err = tm.AllocateTarget(img.Width, img.Height)
	if err != nil {
		return nil, curated.Errorf("resources: %v", err)
	}

	res.programs, err = NewProgramRegistry(dev).Build()
	if err != nil {
		return nil, curated.Errorf("resources: %v", err)
	}

	res.quad, err = createQuad(dev)
	if err != nil {
		return nil, curated.Errorf("resources: %v", err)
	}

	res.schedule = BuildPassSchedule()
	if err := ValidateSchedule(res.schedule); err != nil {
		return nil, curated.Errorf("resources: %v", err)
	}

	logger.Log(logger.Allow, "pipeline", res)

	return res, nil
}

// Image returns the texture holding the uploaded image.
func (res *Resources) Image() Texture {
	return res.image
}

// Targets returns the two off-screen render targets.
func (res *Resources) Targets() (Target, Target) {
	return res.a, res.b
}

// Program returns the linked program of the specified kind.
func (res *Resources) Program(kind ProgramKind) Program {
	return res.programs[kind]
}

// Schedule returns a copy of the pass schedule.
func (res *Resources) Schedule() []Pass {
	return append([]Pass{}, res.schedule...)
}

// the texture to sample for the slot.
func (res *Resources) texture(s Slot) (Texture, error) {
	switch s {
	case SlotImage:
		return res.image, nil
	case SlotA:
		return res.a.Texture, nil
	case SlotB:
		return res.b.Texture, nil
	}
	return Texture{}, fmt.Errorf("slot %s has no texture", s)
}

// the render target to draw to for the slot.
func (res *Resources) target(s Slot) (accelerator.TargetID, error) {
	switch s {
	case SlotA:
		return res.a.ID, nil
	case SlotB:
		return res.b.ID, nil
	case SlotScreen:
		return accelerator.OnScreen, nil
	}
	return accelerator.OnScreen, fmt.Errorf("slot %s is not a render target", s)
}
