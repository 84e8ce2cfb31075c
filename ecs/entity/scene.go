package entity

import (
	"fmt"
	"image/color"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/chaser/ecs"
	"github.com/milk9111/chaser/ecs/component"
	"github.com/milk9111/chaser/prefabs"
)

var (
	defaultPlayerColor = color.RGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff}
	defaultEnemyColor  = color.RGBA{R: 0xef, G: 0x53, B: 0x50, A: 0xff}
)

// NewSession creates the singleton that carries the outcome, the clock, the
// world bounds and the generated path.
func NewSession(w *ecs.World, width, height float64) (ecs.Entity, error) {
	e := w.CreateEntity()
	if err := ecs.Add(w, e, component.SessionComponent, component.Session{}); err != nil {
		return 0, fmt.Errorf("session: add session: %w", err)
	}
	if err := ecs.Add(w, e, component.ClockComponent, component.Clock{}); err != nil {
		return 0, fmt.Errorf("session: add clock: %w", err)
	}
	if err := ecs.Add(w, e, component.WorldBoundsComponent, component.WorldBounds{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("session: add bounds: %w", err)
	}
	if err := ecs.Add(w, e, component.PathComponent, component.Path{Points: GeneratePath(width, height)}); err != nil {
		return 0, fmt.Errorf("session: add path: %w", err)
	}
	return e, nil
}

// NewJoystick anchors the stick relative to the bottom-left corner of a
// viewport of the given height.
func NewJoystick(w *ecs.World, spec prefabs.JoystickSpec, viewportHeight float64) (ecs.Entity, error) {
	e := w.CreateEntity()
	stick := component.NewJoystick(spec.Offset.X, viewportHeight-spec.Offset.Y)
	if err := ecs.Add(w, e, component.JoystickComponent, stick); err != nil {
		return 0, fmt.Errorf("joystick: %w", err)
	}
	return e, nil
}

// GeneratePath is where a route across the field will be generated. No
// algorithm exists yet, so the path is empty.
func GeneratePath(width, height float64) []cp.Vector {
	return nil
}

// Build spawns the whole scene into an empty world.
func Build(w *ecs.World, spec *prefabs.SceneSpec, width, height float64) error {
	if spec == nil {
		spec = prefabs.DefaultSceneSpec()
	}
	if _, err := NewSession(w, width, height); err != nil {
		return err
	}
	if _, err := NewPlayer(w, spec.Player); err != nil {
		return err
	}
	if _, err := NewEnemies(w, spec.Enemies); err != nil {
		return err
	}
	if _, err := NewJoystick(w, spec.Joystick, height); err != nil {
		return err
	}
	return nil
}
