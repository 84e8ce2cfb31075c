package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration. Body
// and Shape are filled in by the physics system on first sight of the entity.
type PhysicsBody struct {
	Body               *cp.Body
	Shape              *cp.Shape
	Width              float64
	Height             float64
	Mass               float64
	CollideWorldBounds bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// WorldBounds is the playable rectangle anchored at the origin.
type WorldBounds struct {
	Width  float64
	Height float64
}

var WorldBoundsComponent = NewComponent[WorldBounds]()
