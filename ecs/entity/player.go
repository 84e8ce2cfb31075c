package entity

import (
	"fmt"

	"github.com/milk9111/chaser/ecs"
	"github.com/milk9111/chaser/ecs/component"
	"github.com/milk9111/chaser/prefabs"
)

func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec) (ecs.Entity, error) {
	e := w.CreateEntity()

	if err := ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := addBody(w, e, spec.Spawn, spec.Size); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent, component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.AbilitiesComponent, component.NewAbilities()); err != nil {
		return 0, fmt.Errorf("player: add abilities: %w", err)
	}
	if err := ecs.Add(w, e, component.AppearanceComponent, component.Appearance{
		Color:  spec.Color.Value(defaultPlayerColor),
		Radius: spec.Size.Width / 2,
	}); err != nil {
		return 0, fmt.Errorf("player: add appearance: %w", err)
	}

	return e, nil
}

func addBody(w *ecs.World, e ecs.Entity, spawn prefabs.PointSpec, size prefabs.SizeSpec) error {
	if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: spawn.X, Y: spawn.Y}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent, component.Velocity{}); err != nil {
		return fmt.Errorf("add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Width:              size.Width,
		Height:             size.Height,
		Mass:               1,
		CollideWorldBounds: true,
	}); err != nil {
		return fmt.Errorf("add physics body: %w", err)
	}
	return nil
}
