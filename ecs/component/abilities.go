package component

import "math"

const (
	// DashDurationSeconds times DashCooldownMultiplier gives the cooldown in
	// milliseconds started by StopDash.
	DashDurationSeconds    = 1.0
	DashCooldownMultiplier = 3000.0
	MaxChargePower         = 5.0
)

// Abilities is the dash and charge state of the player. The two axes are
// independent: the player may dash while charging.
type Abilities struct {
	// DashCooldown counts down in milliseconds. It is not floored at zero;
	// any value <= 0 means the dash is ready.
	DashCooldown float64
	Dashing      bool

	ChargePower float64
	Charging    bool

	// HeadingX/HeadingY is the last non-zero movement direction, used when a
	// dash starts with the stick at rest.
	HeadingX float64
	HeadingY float64
}

var AbilitiesComponent = NewComponent[Abilities]()

func NewAbilities() Abilities {
	return Abilities{HeadingX: 1}
}

// DashState names the dash axis state for display and logging.
type DashState int

const (
	DashIdle DashState = iota
	DashActive
	DashCoolingDown
)

func (s DashState) String() string {
	switch s {
	case DashActive:
		return "dashing"
	case DashCoolingDown:
		return "cooling_down"
	default:
		return "idle"
	}
}

func (a Abilities) DashState() DashState {
	switch {
	case a.Dashing:
		return DashActive
	case a.DashCooldown > 0:
		return DashCoolingDown
	default:
		return DashIdle
	}
}

// DashReady reports whether StartDash would succeed.
func (a Abilities) DashReady() bool {
	return a.DashCooldown <= 0
}

// StartDash begins a dash unless the cooldown is still running.
func (a *Abilities) StartDash() bool {
	if a == nil || !a.DashReady() {
		return false
	}
	a.Dashing = true
	return true
}

// StopDash ends an active dash and starts the cooldown.
func (a *Abilities) StopDash() bool {
	if a == nil || !a.Dashing {
		return false
	}
	a.Dashing = false
	a.DashCooldown = DashDurationSeconds * DashCooldownMultiplier
	return true
}

// StartCharge (re)starts the meter from zero.
func (a *Abilities) StartCharge() {
	if a == nil {
		return
	}
	a.Charging = true
	a.ChargePower = 0
}

// ReleaseCharge stops charging and resets the meter, returning the power
// that was accumulated.
func (a *Abilities) ReleaseCharge() (float64, bool) {
	if a == nil || !a.Charging {
		return 0, false
	}
	power := a.ChargePower
	a.Charging = false
	a.ChargePower = 0
	return power, true
}

// Tick advances the cooldown and the charge meter by elapsedMs.
func (a *Abilities) Tick(elapsedMs float64) {
	if a == nil {
		return
	}
	if a.DashCooldown > 0 {
		a.DashCooldown -= elapsedMs
	}
	if a.Charging {
		a.ChargePower = math.Min(a.ChargePower+elapsedMs/1000, MaxChargePower)
	}
}

// SetHeading records a movement direction. Zero vectors are ignored.
func (a *Abilities) SetHeading(x, y float64) {
	if a == nil {
		return
	}
	l := math.Hypot(x, y)
	if l == 0 {
		return
	}
	a.HeadingX, a.HeadingY = x/l, y/l
}
