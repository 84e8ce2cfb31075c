package system

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestPursuitVelocity(t *testing.T) {
	tests := []struct {
		name         string
		enemy        cp.Vector
		player       cp.Vector
		wantX, wantY float64
	}{
		{"east", cp.Vector{}, cp.Vector{X: 100}, 100, 0},
		{"west", cp.Vector{X: 700, Y: 300}, cp.Vector{X: 100, Y: 300}, -100, 0},
		// Y grows downward, so a player above the enemy gives a negative vy.
		{"player_above", cp.Vector{X: 10, Y: 60}, cp.Vector{X: 10, Y: 10}, 0, -100},
		{"player_below", cp.Vector{X: 10, Y: 10}, cp.Vector{X: 10, Y: 60}, 0, 100},
		{"coincident", cp.Vector{X: 5, Y: 5}, cp.Vector{X: 5, Y: 5}, 100, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := PursuitVelocity(tc.enemy, tc.player)
			if !nearVec(got, tc.wantX, tc.wantY) {
				t.Fatalf("velocity = %v, want (%f,%f)", got, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestPursuitSystemSteersEveryEnemy(t *testing.T) {
	tw := newTestWorld(t, 100, 0)
	a := tw.addEnemy(t, 0, 0)
	b := tw.addEnemy(t, 100, 100)

	NewPursuitSystem().Update(tw.w)

	if v := tw.velocity(a); !nearVec(v, 100, 0) {
		t.Fatalf("enemy a velocity = %v, want (100,0)", v)
	}
	if v := tw.velocity(b); !nearVec(v, 0, -100) {
		t.Fatalf("enemy b velocity = %v, want (0,-100)", v)
	}
	if v := tw.velocity(tw.player); !nearVec(v, 0, 0) {
		t.Fatalf("pursuit should not touch the player, got %v", v)
	}
}

func TestPursuitSystemSkipsWhenFrozen(t *testing.T) {
	tw := newTestWorld(t, 10, 10)
	e := tw.addEnemy(t, 10, 60)
	FreezeSession(tw.w, "Game Over", false)

	NewPursuitSystem().Update(tw.w)
	if v := tw.velocity(e); !nearVec(v, 0, 0) {
		t.Fatalf("velocity changed while frozen: %v", v)
	}
}
