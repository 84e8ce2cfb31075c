package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/chaser/common"
	"github.com/milk9111/chaser/ecs"
	"github.com/milk9111/chaser/ecs/component"
	"github.com/milk9111/chaser/ecs/system"
	"github.com/milk9111/chaser/prefabs"
	"github.com/milk9111/chaser/scene"
)

// pointerID identifies a mouse or touch pointer. The mouse is mousePointer;
// touches use their ebiten.TouchID.
type pointerID int

const (
	noPointer    pointerID = -2
	mousePointer pointerID = -1
)

type pointer struct {
	id   pointerID
	x, y float64
}

// Input turns keyboard, mouse and touch state into scene input. Each of the
// joystick and the two buttons is owned by at most one pointer at a time.
type Input struct {
	stick  pointerID
	dash   pointerID
	charge pointerID

	dashKey   bool
	chargeKey bool

	touches []ebiten.TouchID
}

func NewInput() *Input {
	in := &Input{}
	in.Reset()
	return in
}

// Reset forgets pointer ownership, used after the scene is rebuilt.
func (in *Input) Reset() {
	in.stick = noPointer
	in.dash = noPointer
	in.charge = noPointer
	in.dashKey = false
	in.chargeKey = false
}

// Poll sends the frame's pointer commands to s and returns the keyboard
// down-set.
func (in *Input) Poll(s *scene.Scene, width, height float64) component.Input {
	keys := component.Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
	}

	in.pollButtonKeys(s)

	spec := s.Spec()
	stick, hasStick := stickState(s.World())
	dashPos := buttonCenter(spec.Buttons.Dash, width, height)
	chargePos := buttonCenter(spec.Buttons.Charge, width, height)

	for _, p := range in.pressed() {
		pos := cp.Vector{X: p.x, Y: p.y}
		switch {
		case hasStick && in.stick == noPointer && common.Distance(stick.Base(), pos) <= stick.MaxRadius+spec.Joystick.KnobRadius:
			in.stick = p.id
			s.Send(ecs.Event{Type: system.CommandJoystickDrag, Data: system.JoystickDrag{X: p.x, Y: p.y}})
		case in.dash == noPointer && common.Distance(dashPos, pos) <= spec.Buttons.Dash.Radius:
			in.dash = p.id
			s.Send(ecs.Event{Type: system.CommandStartDash})
		case in.charge == noPointer && common.Distance(chargePos, pos) <= spec.Buttons.Charge.Radius:
			in.charge = p.id
			s.Send(ecs.Event{Type: system.CommandStartCharge})
		}
	}

	if in.stick != noPointer {
		if x, y, ok := in.position(in.stick); ok {
			s.Send(ecs.Event{Type: system.CommandJoystickDrag, Data: system.JoystickDrag{X: x, Y: y}})
		}
	}

	for _, id := range in.released() {
		switch id {
		case in.stick:
			in.stick = noPointer
			s.Send(ecs.Event{Type: system.CommandJoystickRelease})
		case in.dash:
			in.dash = noPointer
			s.Send(ecs.Event{Type: system.CommandStopDash})
		case in.charge:
			in.charge = noPointer
			s.Send(ecs.Event{Type: system.CommandReleaseCharge})
		}
	}

	return keys
}

// pollButtonKeys maps Space to the dash button and C to the charge button.
func (in *Input) pollButtonKeys(s *scene.Scene) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) && !in.dashKey {
		in.dashKey = true
		s.Send(ecs.Event{Type: system.CommandStartDash})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) && in.dashKey {
		in.dashKey = false
		s.Send(ecs.Event{Type: system.CommandStopDash})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) && !in.chargeKey {
		in.chargeKey = true
		s.Send(ecs.Event{Type: system.CommandStartCharge})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyC) && in.chargeKey {
		in.chargeKey = false
		s.Send(ecs.Event{Type: system.CommandReleaseCharge})
	}
}

func (in *Input) pressed() []pointer {
	var out []pointer
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		out = append(out, pointer{id: mousePointer, x: float64(x), y: float64(y)})
	}
	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	for _, id := range in.touches {
		x, y := ebiten.TouchPosition(id)
		out = append(out, pointer{id: pointerID(id), x: float64(x), y: float64(y)})
	}
	return out
}

func (in *Input) released() []pointerID {
	var out []pointerID
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		out = append(out, mousePointer)
	}
	in.touches = inpututil.AppendJustReleasedTouchIDs(in.touches[:0])
	for _, id := range in.touches {
		out = append(out, pointerID(id))
	}
	return out
}

func (in *Input) position(id pointerID) (float64, float64, bool) {
	if id == mousePointer {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			return 0, 0, false
		}
		x, y := ebiten.CursorPosition()
		return float64(x), float64(y), true
	}
	x, y := ebiten.TouchPosition(ebiten.TouchID(id))
	if x == 0 && y == 0 {
		return 0, 0, false
	}
	return float64(x), float64(y), true
}

func stickState(w *ecs.World) (component.Joystick, bool) {
	e, ok := w.First(component.JoystickComponent.Kind())
	if !ok {
		return component.Joystick{}, false
	}
	return ecs.Get(w, e, component.JoystickComponent)
}

// buttonCenter places a button relative to the bottom-right corner.
func buttonCenter(b prefabs.ButtonSpec, width, height float64) cp.Vector {
	return cp.Vector{X: width - b.Offset.X, Y: height - b.Offset.Y}
}
