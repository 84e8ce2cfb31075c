package system

import (
	"testing"

	"github.com/milk9111/chaser/ecs"
	"github.com/milk9111/chaser/ecs/component"
)

func TestCommandSystemAbilities(t *testing.T) {
	tw := newTestWorld(t, 0, 0)
	sys := NewCommandSystem(nil)

	sys.Push(ecs.Event{Type: CommandStartDash})
	sys.Update(tw.w)
	a, _ := ecs.Get(tw.w, tw.player, component.AbilitiesComponent)
	if !a.Dashing {
		t.Fatalf("expected dashing after start_dash")
	}

	sys.Push(ecs.Event{Type: CommandStopDash})
	sys.Push(ecs.Event{Type: CommandStartDash})
	sys.Update(tw.w)
	a, _ = ecs.Get(tw.w, tw.player, component.AbilitiesComponent)
	if a.Dashing || a.DashCooldown != 3000 {
		t.Fatalf("dash during cooldown should be ignored: %+v", a)
	}
}

func TestCommandSystemChargeRelease(t *testing.T) {
	tw := newTestWorld(t, 0, 0)

	var fired []float64
	sys := NewCommandSystem(func(w *ecs.World, player ecs.Entity, power float64) {
		if player != tw.player {
			t.Fatalf("release hook got entity %v, want %v", player, tw.player)
		}
		fired = append(fired, power)
	})

	sys.Push(ecs.Event{Type: CommandReleaseCharge})
	sys.Update(tw.w)
	if len(fired) != 0 {
		t.Fatalf("release without charge should not fire, got %v", fired)
	}

	sys.Push(ecs.Event{Type: CommandStartCharge})
	sys.Update(tw.w)
	ecs.Update(tw.w, tw.player, component.AbilitiesComponent, func(a *component.Abilities) { a.Tick(2000) })

	sys.Push(ecs.Event{Type: CommandReleaseCharge})
	sys.Update(tw.w)
	if len(fired) != 1 || fired[0] != 2 {
		t.Fatalf("fired = %v, want [2]", fired)
	}
	a, _ := ecs.Get(tw.w, tw.player, component.AbilitiesComponent)
	if a.Charging || a.ChargePower != 0 {
		t.Fatalf("charge not reset: %+v", a)
	}
}

func TestCommandSystemJoystick(t *testing.T) {
	tw := newTestWorld(t, 0, 0)
	sys := NewCommandSystem(nil)

	sys.Push(ecs.Event{Type: CommandJoystickDrag, Data: JoystickDrag{X: 400, Y: 620}})
	sys.Update(tw.w)
	stick, _ := ecs.Get(tw.w, tw.stick, component.JoystickComponent)
	if stick.X != 150 || stick.Y != 620 {
		t.Fatalf("knob = (%f,%f), want (150,620)", stick.X, stick.Y)
	}

	sys.Push(ecs.Event{Type: CommandJoystickDrag, Data: "garbage"})
	sys.Push(ecs.Event{Type: CommandJoystickRelease})
	sys.Update(tw.w)
	stick, _ = ecs.Get(tw.w, tw.stick, component.JoystickComponent)
	if stick.X != 100 || stick.Y != 620 || stick.Active {
		t.Fatalf("release should snap back, got %+v", stick)
	}
}
