package entity

import (
	"testing"

	"github.com/milk9111/chaser/ecs"
	"github.com/milk9111/chaser/ecs/component"
	"github.com/milk9111/chaser/prefabs"
)

func TestBuildDefaultScene(t *testing.T) {
	w := ecs.NewWorld()
	if err := Build(w, prefabs.DefaultSceneSpec(), 1280, 720); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	players := w.Query(component.PlayerTagComponent.Kind())
	if len(players) != 1 {
		t.Fatalf("got %d players, want 1", len(players))
	}
	pt, _ := ecs.Get(w, players[0], component.TransformComponent)
	if pt.X != 100 || pt.Y != 300 {
		t.Fatalf("player at (%f,%f), want (100,300)", pt.X, pt.Y)
	}
	if pb, _ := ecs.Get(w, players[0], component.PhysicsBodyComponent); !pb.CollideWorldBounds {
		t.Fatalf("player should be clamped to world bounds")
	}

	enemies := w.Query(component.EnemyComponent.Kind(), component.TransformComponent.Kind())
	if len(enemies) != 3 {
		t.Fatalf("got %d enemies, want 3", len(enemies))
	}
	for i, e := range enemies {
		en, _ := ecs.Get(w, e, component.EnemyComponent)
		et, _ := ecs.Get(w, e, component.TransformComponent)
		if en.Index != i || et.X != 700 || et.Y != 200+float64(i)*100 {
			t.Fatalf("enemy %d: index=%d at (%f,%f)", i, en.Index, et.X, et.Y)
		}
	}

	stickEnt, ok := w.First(component.JoystickComponent.Kind())
	if !ok {
		t.Fatalf("expected a joystick")
	}
	stick, _ := ecs.Get(w, stickEnt, component.JoystickComponent)
	if stick.BaseX != 100 || stick.BaseY != 620 || stick.MaxRadius != 50 {
		t.Fatalf("joystick = %+v", stick)
	}

	sessEnt, ok := w.First(component.SessionComponent.Kind())
	if !ok {
		t.Fatalf("expected a session")
	}
	if path, _ := ecs.Get(w, sessEnt, component.PathComponent); len(path.Points) != 0 {
		t.Fatalf("path generation is a stub, got %d points", len(path.Points))
	}
}
