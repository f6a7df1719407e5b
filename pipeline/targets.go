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

// Texture is a texture allocated by the TargetManager.
type Texture struct {
	ID     accelerator.TextureID
	Width  int
	Height int
}

func (t Texture) String() string {
	return fmt.Sprintf("texture %d (%dx%d)", t.ID, t.Width, t.Height)
}

// PixelStep returns the distance between adjacent texels in texture
// coordinates.
func (t Texture) PixelStep(dir Step) accelerator.Vec2 {
	var s accelerator.Vec2
	if dir&StepHorizontal == StepHorizontal {
		s[0] = 1 / float32(t.Width)
	}
	if dir&StepVertical == StepVertical {
		s[1] = 1 / float32(t.Height)
	}
	return s
}

// Target is an off-screen render target and the texture backing it.
type Target struct {
	ID      accelerator.TargetID
	Texture Texture
}

func (t Target) String() string {
	return fmt.Sprintf("%s backed by %s", t.ID, t.Texture)
}

// TargetManager allocates textures and render targets.
type TargetManager struct {
	dev accelerator.Device
}

// NewTargetManager is the preferred method of initialisation for the
// TargetManager type.
func NewTargetManager(dev accelerator.Device) *TargetManager {
	return &TargetManager{dev: dev}
}

// Allocate a texture. If pixels is nil the texture is zeroed.
func (m *TargetManager) Allocate(width int, height int, pixels []float32) (Texture, error) {
	id, err := m.dev.CreateTexture(width, height, pixels)
	if err != nil {
		return Texture{}, curated.Errorf("targets: %v", err)
	}
	return Texture{ID: id, Width: width, Height: height}, nil
}

// Bind a texture to a new off-screen render target.
func (m *TargetManager) Bind(tex Texture) (Target, error) {
	id, err := m.dev.CreateTarget(tex.ID)
	if err != nil {
		return Target{}, curated.Errorf("targets: %v", err)
	}
	return Target{ID: id, Texture: tex}, nil
}

// VerifyComplete returns an error if the render target cannot be drawn to.
func (m *TargetManager) VerifyComplete(target Target) error {
	if err := m.dev.CheckTarget(target.ID); err != nil {
		return curated.Errorf("targets: %v", err)
	}
	return nil
}

// AllocateTarget allocates a texture, binds it to a new render target and
// verifies that the target is complete.
func (m *TargetManager) AllocateTarget(width int, height int) (Target, error) {
	tex, err := m.Allocate(width, height, nil)
	if err != nil {
		return Target{}, err
	}
	target, err := m.Bind(tex)
	if err != nil {
		return Target{}, err
	}
	if err := m.VerifyComplete(target); err != nil {
		return Target{}, err
	}
	return target, nil
}
