package entity

import (
	"fmt"

	"github.com/milk9111/chaser/ecs"
	"github.com/milk9111/chaser/ecs/component"
	"github.com/milk9111/chaser/prefabs"
)

// NewEnemies spawns spec.Count pursuers in a line starting at spec.Spawn.
func NewEnemies(w *ecs.World, spec prefabs.EnemySpec) ([]ecs.Entity, error) {
	out := make([]ecs.Entity, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		e, err := NewEnemy(w, spec, i)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func NewEnemy(w *ecs.World, spec prefabs.EnemySpec, index int) (ecs.Entity, error) {
	e := w.CreateEntity()

	spawn := prefabs.PointSpec{
		X: spec.Spawn.X + float64(index)*spec.Step.X,
		Y: spec.Spawn.Y + float64(index)*spec.Step.Y,
	}
	if err := ecs.Add(w, e, component.EnemyComponent, component.Enemy{Index: index}); err != nil {
		return 0, fmt.Errorf("enemy %d: add tag: %w", index, err)
	}
	if err := addBody(w, e, spawn, spec.Size); err != nil {
		return 0, fmt.Errorf("enemy %d: %w", index, err)
	}
	if err := ecs.Add(w, e, component.AppearanceComponent, component.Appearance{
		Color:  spec.Color.Value(defaultEnemyColor),
		Radius: spec.Size.Width / 2,
	}); err != nil {
		return 0, fmt.Errorf("enemy %d: add appearance: %w", index, err)
	}
	return e, nil
}
