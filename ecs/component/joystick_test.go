package component

import (
	"math/rand"
	"testing"
)

func TestJoystickDragClamped(t *testing.T) {
	drags := []struct{ x, y float64 }{
		{100, 620},
		{130, 640},
		{400, 620},
		{100, 0},
		{-1000, 1000},
		{151, 620},
	}
	j := NewJoystick(100, 620)
	for _, d := range drags {
		j.Drag(d.x, d.y)
		if got := j.Displacement(); got > j.MaxRadius {
			t.Fatalf("Drag(%f,%f): displacement %f exceeds %f", d.x, d.y, got, j.MaxRadius)
		}
		if !j.Active {
			t.Fatalf("expected joystick active after drag")
		}
	}
}

func TestJoystickDragInsideRadiusUnchanged(t *testing.T) {
	j := NewJoystick(100, 620)
	j.Drag(120, 600)
	if j.X != 120 || j.Y != 600 {
		t.Fatalf("knob = (%f,%f), want (120,600)", j.X, j.Y)
	}
}

func TestJoystickRelease(t *testing.T) {
	j := NewJoystick(100, 620)
	j.Drag(140, 620)
	j.Release()
	if j.X != j.BaseX || j.Y != j.BaseY || j.Active {
		t.Fatalf("release should snap to anchor, got (%f,%f) active=%v", j.X, j.Y, j.Active)
	}
	if j.Displacement() != 0 {
		t.Fatalf("displacement = %f, want 0", j.Displacement())
	}
}

func TestJoystickDragRandomStaysInside(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	j := NewJoystick(100, 620)
	for i := 0; i < 200000; i++ {
		x, y := rng.Float64()*2000-1000, rng.Float64()*2000-1000
		j.Drag(x, y)
		if got := j.Displacement(); got > j.MaxRadius {
			t.Fatalf("Drag(%v,%v): displacement %.17g exceeds %v", x, y, got, j.MaxRadius)
		}
	}
}
