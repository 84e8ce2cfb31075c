package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/chaser/common"
	"github.com/milk9111/chaser/ecs"
	"github.com/milk9111/chaser/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeEnemy
	collisionTypeDynamic
)

const defaultBodySize = 64.0

// OverlapFunc receives one player/enemy pair whose shapes intersect.
type OverlapFunc func(w *ecs.World, player, enemy ecs.Entity)

// PhysicsSystem owns a zero-gravity Chipmunk space. Every shape is a sensor:
// the space integrates positions and reports overlaps but never resolves
// contacts. The space is not stepped while the session is frozen.
type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool
	onOverlap     OverlapFunc

	entities     map[ecs.Entity]*bodyInfo
	shapes       map[*cp.Shape]ecs.Entity
	playerShapes map[*cp.Shape]bool

	pending []overlapPair
	seen    map[overlapPair]struct{}
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	width  float64
	height float64
	bound  bool
}

type overlapPair struct {
	player ecs.Entity
	enemy  ecs.Entity
}

func NewPhysicsSystem(onOverlap OverlapFunc) *PhysicsSystem {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &PhysicsSystem{
		space:        space,
		onOverlap:    onOverlap,
		entities:     make(map[ecs.Entity]*bodyInfo),
		shapes:       make(map[*cp.Shape]ecs.Entity),
		playerShapes: make(map[*cp.Shape]bool),
		seen:         make(map[overlapPair]struct{}),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil || Frozen(w) {
		return
	}

	ps.ensureHandlers()
	ps.syncEntities(w)

	dt := ElapsedMs(w) / 1000
	if dt <= 0 {
		return
	}

	ps.pending = ps.pending[:0]
	clear(ps.seen)

	ps.space.Step(dt)

	ps.syncWorldBounds(w)
	ps.syncTransforms(w)
	ps.flushOverlaps(w)
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	handler := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypeEnemy)
	handler.UserData = ps
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		a, okA := sys.shapes[shapeA]
		b, okB := sys.shapes[shapeB]
		if !okA || !okB {
			return true
		}
		if !sys.playerShapes[shapeA] {
			a, b = b, a
		}
		sys.recordOverlap(overlapPair{player: a, enemy: b})
		return true
	}

	ps.handlersReady = true
}

// recordOverlap keeps the first report of each pair per step.
func (ps *PhysicsSystem) recordOverlap(pair overlapPair) {
	if _, ok := ps.seen[pair]; ok {
		return
	}
	ps.seen[pair] = struct{}{}
	ps.pending = append(ps.pending, pair)
}

func (ps *PhysicsSystem) flushOverlaps(w *ecs.World) {
	if ps.onOverlap == nil {
		return
	}
	for _, pair := range ps.pending {
		ps.onOverlap(w, pair.player, pair.enemy)
	}
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	entities := w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind())
	for _, e := range entities {
		info, ok := ps.entities[e]
		if !ok {
			info = ps.createBody(w, e)
			if info == nil {
				continue
			}
		}

		if vel, ok := ecs.Get(w, e, component.VelocityComponent); ok {
			info.body.SetVelocityVector(cp.Vector{X: vel.X, Y: vel.Y})
		}
	}
}

func (ps *PhysicsSystem) createBody(w *ecs.World, e ecs.Entity) *bodyInfo {
	bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	if !ok {
		return nil
	}
	transform, _ := ecs.Get(w, e, component.TransformComponent)

	width, height := bodyComp.Width, bodyComp.Height
	if width <= 0 {
		width = defaultBodySize
	}
	if height <= 0 {
		height = defaultBodySize
	}
	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}

	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	shape := cp.NewBox(body, width, height, 0)
	shape.SetSensor(true)

	role := "dynamic"
	switch {
	case ecs.Has(w, e, component.PlayerTagComponent):
		shape.SetCollisionType(collisionTypePlayer)
		ps.playerShapes[shape] = true
		role = "player"
	case ecs.Has(w, e, component.EnemyComponent):
		shape.SetCollisionType(collisionTypeEnemy)
		role = "enemy"
	default:
		shape.SetCollisionType(collisionTypeDynamic)
	}

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	info := &bodyInfo{body: body, shape: shape, width: width, height: height, bound: bodyComp.CollideWorldBounds}
	ps.entities[e] = info
	ps.shapes[shape] = e

	ecs.Update(w, e, component.PhysicsBodyComponent, func(pb *component.PhysicsBody) {
		pb.Body = body
		pb.Shape = shape
		pb.Width = width
		pb.Height = height
	})
	log.Printf("physics: created body for entity %v role=%s", e, role)
	return info
}

// syncWorldBounds clamps bounded bodies inside the world rectangle and kills
// the velocity component that pushed them out.
func (ps *PhysicsSystem) syncWorldBounds(w *ecs.World) {
	boundsEnt, ok := w.First(component.WorldBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, _ := ecs.Get(w, boundsEnt, component.WorldBoundsComponent)
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}

	for _, info := range ps.entities {
		if !info.bound {
			continue
		}
		pos := info.body.Position()
		x := common.Clamp(pos.X, info.width/2, bounds.Width-info.width/2)
		y := common.Clamp(pos.Y, info.height/2, bounds.Height-info.height/2)
		if x == pos.X && y == pos.Y {
			continue
		}
		vel := info.body.Velocity()
		if x != pos.X {
			vel.X = 0
		}
		if y != pos.Y {
			vel.Y = 0
		}
		info.body.SetPosition(cp.Vector{X: x, Y: y})
		info.body.SetVelocityVector(vel)
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		pos := info.body.Position()
		ecs.Update(w, e, component.TransformComponent, func(t *component.Transform) {
			t.X, t.Y = pos.X, pos.Y
		})
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent) {
			continue
		}
		ps.space.RemoveShape(info.shape)
		ps.space.RemoveBody(info.body)
		delete(ps.shapes, info.shape)
		delete(ps.playerShapes, info.shape)
		delete(ps.entities, e)
	}
}
