package component

import (
	"math"
	"testing"
)

func TestDashGatedByCooldown(t *testing.T) {
	tests := []struct {
		name     string
		cooldown float64
		want     bool
	}{
		{"fresh", 0, true},
		{"overshot_negative", -16.6, true},
		{"cooling", 0.5, false},
		{"just_stopped", 3000, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAbilities()
			a.DashCooldown = tc.cooldown
			if got := a.StartDash(); got != tc.want {
				t.Fatalf("StartDash = %v, want %v", got, tc.want)
			}
			if a.Dashing != tc.want {
				t.Fatalf("Dashing = %v, want %v", a.Dashing, tc.want)
			}
		})
	}
}

func TestStopDashStartsCooldown(t *testing.T) {
	a := NewAbilities()
	if a.StopDash() {
		t.Fatalf("StopDash while idle should be a no-op")
	}
	if a.DashCooldown != 0 {
		t.Fatalf("cooldown = %f, want 0", a.DashCooldown)
	}

	a.StartDash()
	if !a.StopDash() {
		t.Fatalf("StopDash while dashing should succeed")
	}
	if a.DashCooldown != 3000 {
		t.Fatalf("cooldown = %f, want 3000", a.DashCooldown)
	}
	if a.DashState() != DashCoolingDown {
		t.Fatalf("state = %v, want %v", a.DashState(), DashCoolingDown)
	}
	if a.StartDash() {
		t.Fatalf("StartDash during cooldown should be ignored")
	}
}

func TestCooldownDecayIsNotFloored(t *testing.T) {
	a := NewAbilities()
	a.DashCooldown = 10
	a.Tick(16)
	if a.DashCooldown != -6 {
		t.Fatalf("cooldown = %f, want -6", a.DashCooldown)
	}
	if a.DashState() != DashIdle || !a.DashReady() {
		t.Fatalf("expected dash ready at negative cooldown")
	}

	// Once ready the countdown stops.
	a.Tick(16)
	if a.DashCooldown != -6 {
		t.Fatalf("cooldown after ready tick = %f, want -6", a.DashCooldown)
	}
}

func TestCooldownFullCycle(t *testing.T) {
	a := NewAbilities()
	a.StartDash()
	a.StopDash()
	for elapsed := 0.0; elapsed < 3000; elapsed += 100 {
		if a.DashReady() {
			t.Fatalf("ready after %fms, want >= 3000ms", elapsed)
		}
		a.Tick(100)
	}
	if !a.DashReady() {
		t.Fatalf("expected ready after 3000ms, cooldown = %f", a.DashCooldown)
	}
}

func TestChargeAccumulatesAndClamps(t *testing.T) {
	tests := []struct {
		name   string
		ticks  int
		tickMs float64
		want   float64
	}{
		{"half_second", 30, 1000.0 / 60.0, 0.5},
		{"two_seconds", 2, 1000, 2},
		{"clamped", 12, 1000, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAbilities()
			a.StartCharge()
			for i := 0; i < tc.ticks; i++ {
				a.Tick(tc.tickMs)
				if a.ChargePower > MaxChargePower {
					t.Fatalf("charge %f exceeded max", a.ChargePower)
				}
			}
			if math.Abs(a.ChargePower-tc.want) > 1e-9 {
				t.Fatalf("charge = %f, want %f", a.ChargePower, tc.want)
			}
		})
	}
}

func TestChargeNotAccumulatedWhileIdle(t *testing.T) {
	a := NewAbilities()
	a.Tick(1000)
	if a.ChargePower != 0 {
		t.Fatalf("charge = %f, want 0", a.ChargePower)
	}
}

func TestStartChargeResets(t *testing.T) {
	a := NewAbilities()
	a.StartCharge()
	a.Tick(2500)
	a.StartCharge()
	if !a.Charging || a.ChargePower != 0 {
		t.Fatalf("re-entrant StartCharge: charging=%v power=%f", a.Charging, a.ChargePower)
	}
}

func TestReleaseCharge(t *testing.T) {
	a := NewAbilities()
	if _, ok := a.ReleaseCharge(); ok {
		t.Fatalf("ReleaseCharge while idle should be a no-op")
	}

	a.StartCharge()
	a.Tick(1500)
	power, ok := a.ReleaseCharge()
	if !ok || power != 1.5 {
		t.Fatalf("ReleaseCharge = %f, %v; want 1.5, true", power, ok)
	}
	if a.Charging || a.ChargePower != 0 {
		t.Fatalf("after release: charging=%v power=%f", a.Charging, a.ChargePower)
	}
}

func TestSetHeadingNormalizes(t *testing.T) {
	a := NewAbilities()
	if a.HeadingX != 1 || a.HeadingY != 0 {
		t.Fatalf("default heading = (%f,%f), want (1,0)", a.HeadingX, a.HeadingY)
	}
	a.SetHeading(0, 0)
	if a.HeadingX != 1 {
		t.Fatalf("zero heading should be ignored")
	}
	a.SetHeading(0, -200)
	if a.HeadingX != 0 || a.HeadingY != -1 {
		t.Fatalf("heading = (%f,%f), want (0,-1)", a.HeadingX, a.HeadingY)
	}
}
