package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/chaser/ecs"
	"github.com/milk9111/chaser/ecs/component"
)

const tolerance = 1e-9

func nearVec(got cp.Vector, x, y float64) bool {
	return math.Abs(got.X-x) < tolerance && math.Abs(got.Y-y) < tolerance
}

type testWorld struct {
	w       *ecs.World
	session ecs.Entity
	player  ecs.Entity
	stick   ecs.Entity
}

// newTestWorld builds a session, a player at (px, py) and a joystick
// anchored at (100, 620) without touching prefabs.
func newTestWorld(t *testing.T, px, py float64) *testWorld {
	t.Helper()
	w := ecs.NewWorld()
	tw := &testWorld{w: w}

	tw.session = w.CreateEntity()
	mustAdd(t, ecs.Add(w, tw.session, component.SessionComponent, component.Session{}))
	mustAdd(t, ecs.Add(w, tw.session, component.ClockComponent, component.Clock{ElapsedMs: 1000.0 / 60.0}))
	mustAdd(t, ecs.Add(w, tw.session, component.WorldBoundsComponent, component.WorldBounds{Width: 1280, Height: 720}))

	tw.player = w.CreateEntity()
	mustAdd(t, ecs.Add(w, tw.player, component.PlayerTagComponent, component.PlayerTag{}))
	mustAdd(t, ecs.Add(w, tw.player, component.TransformComponent, component.Transform{X: px, Y: py}))
	mustAdd(t, ecs.Add(w, tw.player, component.VelocityComponent, component.Velocity{}))
	mustAdd(t, ecs.Add(w, tw.player, component.InputComponent, component.Input{}))
	mustAdd(t, ecs.Add(w, tw.player, component.AbilitiesComponent, component.NewAbilities()))

	tw.stick = w.CreateEntity()
	mustAdd(t, ecs.Add(w, tw.stick, component.JoystickComponent, component.NewJoystick(100, 620)))
	return tw
}

func (tw *testWorld) addEnemy(t *testing.T, x, y float64) ecs.Entity {
	t.Helper()
	e := tw.w.CreateEntity()
	mustAdd(t, ecs.Add(tw.w, e, component.EnemyComponent, component.Enemy{}))
	mustAdd(t, ecs.Add(tw.w, e, component.TransformComponent, component.Transform{X: x, Y: y}))
	mustAdd(t, ecs.Add(tw.w, e, component.VelocityComponent, component.Velocity{}))
	return e
}

func (tw *testWorld) withBodies(t *testing.T, size float64) {
	t.Helper()
	for _, e := range tw.w.Query(component.TransformComponent.Kind(), component.VelocityComponent.Kind()) {
		mustAdd(t, ecs.Add(tw.w, e, component.PhysicsBodyComponent, component.PhysicsBody{
			Width: size, Height: size, CollideWorldBounds: true,
		}))
	}
}

func (tw *testWorld) velocity(e ecs.Entity) cp.Vector {
	v, _ := ecs.Get(tw.w, e, component.VelocityComponent)
	return cp.Vector{X: v.X, Y: v.Y}
}

func (tw *testWorld) outcome() component.Session {
	s, _ := ecs.Get(tw.w, tw.session, component.SessionComponent)
	return s
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
}
