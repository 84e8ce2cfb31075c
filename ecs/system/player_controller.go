package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/chaser/common"
	"github.com/milk9111/chaser/ecs"
	"github.com/milk9111/chaser/ecs/component"
)

const (
	playerMoveSpeed  = 200.0
	playerDashSpeed  = 400.0
	joystickDeadZone = 10.0
)

// ResolvePlayerVelocity merges keyboard and joystick into one velocity.
// Dashing overrides manual input; otherwise any held key wins over the
// joystick for the whole tick.
func ResolvePlayerVelocity(keys component.Input, stick component.Joystick, abilities component.Abilities) cp.Vector {
	if abilities.Dashing {
		if stick.Displacement() > 0 {
			return common.Toward(stick.Base(), stick.Position(), playerDashSpeed)
		}
		heading := cp.Vector{X: abilities.HeadingX, Y: abilities.HeadingY}
		if heading.LengthSq() == 0 {
			heading = cp.Vector{X: 1}
		}
		return heading.Normalize().Mult(playerDashSpeed)
	}

	var vx, vy float64
	if keys.Left {
		vx = -playerMoveSpeed
	}
	if keys.Right {
		vx = playerMoveSpeed
	}
	if keys.Up {
		vy = -playerMoveSpeed
	}
	if keys.Down {
		vy = playerMoveSpeed
	}
	if vx != 0 || vy != 0 {
		if vx != 0 && vy != 0 {
			vx *= math.Sqrt2 / 2
			vy *= math.Sqrt2 / 2
		}
		return cp.Vector{X: vx, Y: vy}
	}

	if stick.Displacement() > joystickDeadZone {
		return common.Toward(stick.Base(), stick.Position(), playerMoveSpeed)
	}
	return cp.Vector{}
}

// PlayerControllerSystem is the input resolver: it writes the player's
// velocity from this tick's keys, the joystick and the dash state.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if p == nil || w == nil || Frozen(w) {
		return
	}

	stick := component.NewJoystick(0, 0)
	if e, ok := w.First(component.JoystickComponent.Kind()); ok {
		stick, _ = ecs.Get(w, e, component.JoystickComponent)
	}

	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.VelocityComponent.Kind(),
	)
	for _, e := range entities {
		keys, _ := ecs.Get(w, e, component.InputComponent)
		abilities, ok := ecs.Get(w, e, component.AbilitiesComponent)
		if !ok {
			abilities = component.NewAbilities()
		}

		vel := ResolvePlayerVelocity(keys, stick, abilities)

		ecs.Update(w, e, component.VelocityComponent, func(v *component.Velocity) {
			v.X, v.Y = vel.X, vel.Y
		})
		ecs.Update(w, e, component.AbilitiesComponent, func(a *component.Abilities) {
			a.SetHeading(vel.X, vel.Y)
		})
	}
}
