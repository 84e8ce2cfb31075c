package component

// Input stores the keyboard down-set for the four logical directions as
// sampled by the host at the start of the tick.
type Input struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Any reports whether any direction is held.
func (i Input) Any() bool {
	return i.Up || i.Down || i.Left || i.Right
}

var InputComponent = NewComponent[Input]()
