package system

import (
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/chaser/common"
	"github.com/milk9111/chaser/ecs"
)

const (
	collisionThreshold = 50.0
	gameOverMessage    = "Game Over"
)

// CollisionSystem refines broad-phase overlaps. Box shapes overlap well
// before the sprites touch, so a hit only counts once the centers are closer
// than collisionThreshold.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

// OnOverlap is an OverlapFunc. It freezes the session on the first
// confirmed hit and ignores every overlap after that.
func (c *CollisionSystem) OnOverlap(w *ecs.World, player, enemy ecs.Entity) {
	if c == nil || w == nil || Frozen(w) {
		return
	}
	pt, ok := position(w, player)
	if !ok {
		return
	}
	et, ok := position(w, enemy)
	if !ok {
		return
	}

	dist := common.Distance(cp.Vector{X: pt.X, Y: pt.Y}, cp.Vector{X: et.X, Y: et.Y})
	if dist >= collisionThreshold {
		return
	}
	if FreezeSession(w, gameOverMessage, false) {
		log.Printf("collision: player %v hit by enemy %v at distance %.1f", player, enemy, dist)
	}
}
