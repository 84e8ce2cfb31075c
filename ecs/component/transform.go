package component

// Transform is the entity's center position in world units.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()

// Velocity is the commanded velocity in world units per second. Controllers
// write it; the physics system pushes it into the body before stepping.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
