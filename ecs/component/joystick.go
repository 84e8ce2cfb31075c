package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/chaser/common"
)

const JoystickMaxRadius = 50.0

// Joystick is the on-screen stick. The anchor is fixed at creation; the knob
// is never further than MaxRadius from it.
type Joystick struct {
	BaseX     float64
	BaseY     float64
	X         float64
	Y         float64
	MaxRadius float64
	Active    bool
}

var JoystickComponent = NewComponent[Joystick]()

func NewJoystick(x, y float64) Joystick {
	return Joystick{BaseX: x, BaseY: y, X: x, Y: y, MaxRadius: JoystickMaxRadius}
}

func (j Joystick) Base() cp.Vector {
	return cp.Vector{X: j.BaseX, Y: j.BaseY}
}

func (j Joystick) Position() cp.Vector {
	return cp.Vector{X: j.X, Y: j.Y}
}

// Displacement is the knob offset from the anchor.
func (j Joystick) Displacement() float64 {
	return common.Distance(j.Base(), j.Position())
}

// Drag moves the knob toward (x, y), clamped to the stick radius.
func (j *Joystick) Drag(x, y float64) {
	if j == nil {
		return
	}
	r := j.MaxRadius
	if r <= 0 {
		r = JoystickMaxRadius
	}
	p := common.ClampToRadius(j.Base(), cp.Vector{X: x, Y: y}, r)
	j.X, j.Y = p.X, p.Y
	j.Active = true
}

// Release snaps the knob back to the anchor.
func (j *Joystick) Release() {
	if j == nil {
		return
	}
	j.X, j.Y = j.BaseX, j.BaseY
	j.Active = false
}
