package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/chaser/common"
	"github.com/milk9111/chaser/ecs"
	"github.com/milk9111/chaser/ecs/component"
)

const enemyPursuitSpeed = 100.0

// PursuitVelocity points an enemy straight at the target at pursuit speed.
func PursuitVelocity(enemy, target cp.Vector) cp.Vector {
	return common.Toward(enemy, target, enemyPursuitSpeed)
}

// PursuitSystem recomputes every enemy's velocity toward the player each
// tick. There is no smoothing and no awareness of other enemies.
type PursuitSystem struct{}

func NewPursuitSystem() *PursuitSystem {
	return &PursuitSystem{}
}

func (s *PursuitSystem) Update(w *ecs.World) {
	if s == nil || w == nil || Frozen(w) {
		return
	}

	player, ok := playerEntity(w)
	if !ok {
		return
	}
	pt, ok := position(w, player)
	if !ok {
		return
	}
	target := cp.Vector{X: pt.X, Y: pt.Y}

	entities := w.Query(
		component.EnemyComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
	)
	for _, e := range entities {
		t, _ := position(w, e)
		vel := PursuitVelocity(cp.Vector{X: t.X, Y: t.Y}, target)
		ecs.Update(w, e, component.VelocityComponent, func(v *component.Velocity) {
			v.X, v.Y = vel.X, vel.Y
		})
	}
}
