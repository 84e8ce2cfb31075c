package system

import (
	"github.com/milk9111/chaser/ecs"
	"github.com/milk9111/chaser/ecs/component"
)

// Command types accepted by CommandSystem. Host UI elements fire these on
// press and release.
const (
	CommandStartDash       = "start_dash"
	CommandStopDash        = "stop_dash"
	CommandStartCharge     = "start_charge"
	CommandReleaseCharge   = "release_charge"
	CommandJoystickDrag    = "joystick_drag"
	CommandJoystickRelease = "joystick_release"
)

// JoystickDrag is the payload of CommandJoystickDrag: the raw pointer
// position before clamping.
type JoystickDrag struct {
	X float64
	Y float64
}

// ChargeReleaseFunc receives the accumulated power when a charge is
// released. Nothing is fired by default.
type ChargeReleaseFunc func(w *ecs.World, player ecs.Entity, power float64)

// CommandSystem drains host commands queued since the last tick and applies
// them to the player's abilities and the joystick. Invalid commands, such as
// a dash during cooldown, are dropped silently.
type CommandSystem struct {
	queue     ecs.EventQueue
	onRelease ChargeReleaseFunc
}

func NewCommandSystem(onRelease ChargeReleaseFunc) *CommandSystem {
	return &CommandSystem{onRelease: onRelease}
}

// Push queues a command for the next Update.
func (s *CommandSystem) Push(cmd ecs.Event) {
	if s == nil {
		return
	}
	s.queue.Push(cmd)
}

func (s *CommandSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, cmd := range s.queue.Drain() {
		switch cmd.Type {
		case CommandJoystickDrag:
			drag, ok := cmd.Data.(JoystickDrag)
			if !ok {
				continue
			}
			ecs.ForEach(w, component.JoystickComponent, func(_ ecs.Entity, j *component.Joystick) {
				j.Drag(drag.X, drag.Y)
			})
		case CommandJoystickRelease:
			ecs.ForEach(w, component.JoystickComponent, func(_ ecs.Entity, j *component.Joystick) {
				j.Release()
			})
		default:
			s.applyAbility(w, cmd.Type)
		}
	}
}

func (s *CommandSystem) applyAbility(w *ecs.World, kind string) {
	player, ok := playerEntity(w)
	if !ok {
		return
	}

	var released bool
	var power float64
	ecs.Update(w, player, component.AbilitiesComponent, func(a *component.Abilities) {
		switch kind {
		case CommandStartDash:
			a.StartDash()
		case CommandStopDash:
			a.StopDash()
		case CommandStartCharge:
			a.StartCharge()
		case CommandReleaseCharge:
			power, released = a.ReleaseCharge()
		}
	})

	if released && s.onRelease != nil {
		s.onRelease(w, player, power)
	}
}
