package system

import (
	"github.com/milk9111/chaser/ecs"
	"github.com/milk9111/chaser/ecs/component"
)

// Frozen reports whether the world's session has reached a terminal state.
func Frozen(w *ecs.World) bool {
	e, ok := w.First(component.SessionComponent.Kind())
	if !ok {
		return false
	}
	s, _ := ecs.Get(w, e, component.SessionComponent)
	return s.Frozen()
}

// ElapsedMs returns the current tick's elapsed time.
func ElapsedMs(w *ecs.World) float64 {
	e, ok := w.First(component.ClockComponent.Kind())
	if !ok {
		return 0
	}
	c, _ := ecs.Get(w, e, component.ClockComponent)
	return c.ElapsedMs
}

// FreezeSession moves the session to Frozen and queues a game-over event. It
// reports false when the session was already frozen.
func FreezeSession(w *ecs.World, message string, won bool) bool {
	e, ok := w.First(component.SessionComponent.Kind())
	if !ok {
		return false
	}
	var snapshot component.Session
	froze := false
	ecs.Update(w, e, component.SessionComponent, func(s *component.Session) {
		froze = s.Freeze(message, won)
		snapshot = *s
	})
	if froze {
		w.Events().Push(ecs.Event{Type: ecs.EventGameOver, Data: snapshot})
	}
	return froze
}

func playerEntity(w *ecs.World) (ecs.Entity, bool) {
	return w.First(component.PlayerTagComponent.Kind())
}

func position(w *ecs.World, e ecs.Entity) (component.Transform, bool) {
	return ecs.Get(w, e, component.TransformComponent)
}
