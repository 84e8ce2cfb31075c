package system

import (
	"testing"

	"github.com/milk9111/chaser/ecs"
	"github.com/milk9111/chaser/ecs/component"
)

const reachRightEdge = `won := world_w > 0 && player_x >= world_w - 40`

func TestNeverWonByDefault(t *testing.T) {
	tw := newTestWorld(t, 1270, 300)
	NewWinConditionSystem(nil).Update(tw.w)
	if tw.outcome().Frozen() {
		t.Fatalf("default win condition should never end the session")
	}
}

func TestScriptWinCondition(t *testing.T) {
	cond, err := NewScriptWinCondition([]byte(reachRightEdge))
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	tests := []struct {
		name string
		ctx  WinContext
		want bool
	}{
		{"far", WinContext{PlayerX: 100, WorldWidth: 1280}, false},
		{"at_edge", WinContext{PlayerX: 1250, WorldWidth: 1280}, true},
		{"no_bounds", WinContext{PlayerX: 1250}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := cond.Won(tc.ctx)
			if err != nil {
				t.Fatalf("Won failed: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Won = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWinConditionSystemFreezesOnWin(t *testing.T) {
	cond, err := NewScriptWinCondition([]byte(reachRightEdge))
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	tw := newTestWorld(t, 1250, 300)
	NewWinConditionSystem(cond).Update(tw.w)

	s := tw.outcome()
	if !s.Frozen() || !s.Won || s.Message != "You Win" {
		t.Fatalf("session = %+v, want frozen win", s)
	}
	events := tw.w.Events().Drain()
	if len(events) != 1 || events[0].Type != ecs.EventGameOver {
		t.Fatalf("events = %v", events)
	}
	if got := events[0].Data.(component.Session); !got.Won {
		t.Fatalf("event payload = %+v, want a win", got)
	}
}

func TestScriptCompileError(t *testing.T) {
	if _, err := NewScriptWinCondition([]byte(`won := missing_fn()`)); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestBrokenScriptIsDisabled(t *testing.T) {
	cond, err := NewScriptWinCondition([]byte(`x := player_x`))
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	tw := newTestWorld(t, 1250, 300)
	sys := NewWinConditionSystem(cond)
	sys.Update(tw.w)
	if !sys.failed {
		t.Fatalf("expected a script without won to disable the rule")
	}
	if tw.outcome().Frozen() {
		t.Fatalf("broken rule should not end the session")
	}
}
