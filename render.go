package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/chaser/ecs"
	"github.com/milk9111/chaser/ecs/component"
	"github.com/milk9111/chaser/prefabs"
	"github.com/milk9111/chaser/scene"
	"golang.org/x/image/colornames"
)

func drawScene(screen *ebiten.Image, s *scene.Scene, debug bool) {
	spec := s.Spec()
	w := s.World()
	screen.Fill(spec.Background.Value(colornames.Black))

	ecs.ForEach(w, component.AppearanceComponent, func(e ecs.Entity, a *component.Appearance) {
		t, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			return
		}
		vector.FillCircle(screen, float32(t.X), float32(t.Y), float32(a.Radius), a.Color, true)
	})

	if debug {
		for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
			pb, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
			t, _ := ecs.Get(w, e, component.TransformComponent)
			x := t.X - pb.Width/2
			y := t.Y - pb.Height/2
			vector.StrokeRect(screen, float32(x), float32(y), float32(pb.Width), float32(pb.Height), 1.0, color.RGBA{R: 255, G: 0, B: 0, A: 200}, false)
		}
	}

	if stick, ok := stickState(w); ok {
		vector.StrokeCircle(screen, float32(stick.BaseX), float32(stick.BaseY), float32(stick.MaxRadius), 2, colornames.Lightgrey, true)
		vector.FillCircle(screen, float32(stick.X), float32(stick.Y), float32(spec.Joystick.KnobRadius), spec.Joystick.Color.Value(colornames.White), true)
	}

	abilities, _ := ecs.Get(w, s.Player(), component.AbilitiesComponent)
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	drawButton(screen, spec.Buttons.Dash, float64(sw), float64(sh), "DASH", abilities.DashReady() || abilities.Dashing)
	drawButton(screen, spec.Buttons.Charge, float64(sw), float64(sh), "CHARGE", true)
}

func drawButton(screen *ebiten.Image, b prefabs.ButtonSpec, width, height float64, label string, enabled bool) {
	c := buttonCenter(b, width, height)
	clr := b.Color.Value(colornames.Grey)
	if !enabled {
		clr.A /= 3
	}
	vector.FillCircle(screen, float32(c.X), float32(c.Y), float32(b.Radius), clr, true)
	ebitenutil.DebugPrintAt(screen, label, int(c.X)-len(label)*3, int(c.Y)-8)
}

func drawHUD(screen *ebiten.Image, s *scene.Scene, header string, debug bool) {
	abilities, _ := ecs.Get(s.World(), s.Player(), component.AbilitiesComponent)

	line := fmt.Sprintf("Dash: %s    Charge: %.1f/%.0f", abilities.DashState(), abilities.ChargePower, component.MaxChargePower)
	if abilities.DashState() == component.DashCoolingDown {
		line = fmt.Sprintf("Dash: %.1fs    Charge: %.1f/%.0f", abilities.DashCooldown/1000, abilities.ChargePower, component.MaxChargePower)
	}
	ebitenutil.DebugPrint(screen, header+"\n"+line)

	if debug {
		out := s.Outcome()
		clock := s.Clock()
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("state=%s t=%.0fms frame=%d", out.State, clock.TotalMs, clock.Frame), 0, 40)
	}
}
