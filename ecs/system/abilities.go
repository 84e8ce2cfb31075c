package system

import (
	"github.com/milk9111/chaser/ecs"
	"github.com/milk9111/chaser/ecs/component"
)

// AbilitySystem decays the dash cooldown and fills the charge meter by the
// tick's elapsed time. It keeps running after the session freezes.
type AbilitySystem struct{}

func NewAbilitySystem() *AbilitySystem {
	return &AbilitySystem{}
}

func (s *AbilitySystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	elapsed := ElapsedMs(w)
	ecs.ForEach(w, component.AbilitiesComponent, func(_ ecs.Entity, a *component.Abilities) {
		a.Tick(elapsed)
	})
}
