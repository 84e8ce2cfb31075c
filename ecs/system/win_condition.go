package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/chaser/ecs"
	"github.com/milk9111/chaser/ecs/component"
)

const winMessage = "You Win"

// WinContext is what a win rule can see each tick.
type WinContext struct {
	PlayerX     float64
	PlayerY     float64
	TotalMs     float64
	WorldWidth  float64
	WorldHeight float64
}

// WinCondition decides whether the running session has been won.
type WinCondition interface {
	Won(ctx WinContext) (bool, error)
}

// NeverWon is the default rule: there is no goal yet.
type NeverWon struct{}

func (NeverWon) Won(WinContext) (bool, error) { return false, nil }

// ScriptWinCondition evaluates a tengo script every tick. The script reads
// player_x, player_y, total_ms, world_w and world_h and must assign the
// boolean global won.
type ScriptWinCondition struct {
	compiled *tengo.Compiled
}

func NewScriptWinCondition(src []byte) (*ScriptWinCondition, error) {
	script := tengo.NewScript(src)
	for _, name := range []string{"player_x", "player_y", "total_ms", "world_w", "world_h"} {
		if err := script.Add(name, 0.0); err != nil {
			return nil, fmt.Errorf("win: declare %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("win: compile: %w", err)
	}
	return &ScriptWinCondition{compiled: compiled}, nil
}

func (s *ScriptWinCondition) Won(ctx WinContext) (bool, error) {
	if s == nil || s.compiled == nil {
		return false, nil
	}
	values := map[string]float64{
		"player_x": ctx.PlayerX,
		"player_y": ctx.PlayerY,
		"total_ms": ctx.TotalMs,
		"world_w":  ctx.WorldWidth,
		"world_h":  ctx.WorldHeight,
	}
	for name, v := range values {
		if err := s.compiled.Set(name, v); err != nil {
			return false, err
		}
	}
	if err := s.compiled.Run(); err != nil {
		return false, err
	}
	if !s.compiled.IsDefined("won") {
		return false, fmt.Errorf("win: script does not define won")
	}
	return s.compiled.Get("won").Bool(), nil
}

// WinConditionSystem checks the win rule once per running tick and freezes
// the session when it reports a win.
type WinConditionSystem struct {
	cond   WinCondition
	failed bool
}

func NewWinConditionSystem(cond WinCondition) *WinConditionSystem {
	if cond == nil {
		cond = NeverWon{}
	}
	return &WinConditionSystem{cond: cond}
}

func (s *WinConditionSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.failed || Frozen(w) {
		return
	}

	player, ok := playerEntity(w)
	if !ok {
		return
	}
	pt, _ := position(w, player)
	ctx := WinContext{PlayerX: pt.X, PlayerY: pt.Y}
	if e, ok := w.First(component.ClockComponent.Kind()); ok {
		c, _ := ecs.Get(w, e, component.ClockComponent)
		ctx.TotalMs = c.TotalMs
	}
	if e, ok := w.First(component.WorldBoundsComponent.Kind()); ok {
		b, _ := ecs.Get(w, e, component.WorldBoundsComponent)
		ctx.WorldWidth, ctx.WorldHeight = b.Width, b.Height
	}

	won, err := s.cond.Won(ctx)
	if err != nil {
		// A broken rule is disabled rather than retried every frame.
		log.Printf("win: condition error, disabling: %v", err)
		s.failed = true
		return
	}
	if won {
		FreezeSession(w, winMessage, true)
	}
}
