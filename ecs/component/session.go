package component

import "github.com/jakecoffman/cp"

type SessionState int

const (
	SessionRunning SessionState = iota
	SessionFrozen
)

func (s SessionState) String() string {
	if s == SessionFrozen {
		return "frozen"
	}
	return "running"
}

// Session is the outcome of the running scene. Once frozen it stays frozen
// until the scene is rebuilt.
type Session struct {
	State   SessionState
	Message string
	Won     bool
}

var SessionComponent = NewComponent[Session]()

func (s Session) Frozen() bool {
	return s.State == SessionFrozen
}

// Freeze moves Running to Frozen. It reports false when already frozen so
// the terminal transition fires exactly once.
func (s *Session) Freeze(message string, won bool) bool {
	if s == nil || s.State == SessionFrozen {
		return false
	}
	s.State = SessionFrozen
	s.Message = message
	s.Won = won
	return true
}

// Clock is the timing of the current tick.
type Clock struct {
	ElapsedMs float64
	TotalMs   float64
	Frame     int
}

var ClockComponent = NewComponent[Clock]()

// Path is the generated route across the field.
type Path struct {
	Points []cp.Vector
}

var PathComponent = NewComponent[Path]()
