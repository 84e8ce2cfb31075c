package component

import "image/color"

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// Enemy marks a pursuer. Index is the spawn ordinal.
type Enemy struct {
	Index int
}

var EnemyComponent = NewComponent[Enemy]()

// Appearance is what the host needs to draw an entity as a flat shape.
type Appearance struct {
	Color  color.RGBA
	Radius float64
}

var AppearanceComponent = NewComponent[Appearance]()
