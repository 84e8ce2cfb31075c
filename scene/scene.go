// Package scene runs one chase session: it owns the world and the system
// schedule, accepts host commands and reports the game-over directive back
// to the host.
package scene

import (
	"fmt"
	"log"

	"github.com/milk9111/chaser/ecs"
	"github.com/milk9111/chaser/ecs/component"
	"github.com/milk9111/chaser/ecs/entity"
	"github.com/milk9111/chaser/ecs/system"
	"github.com/milk9111/chaser/prefabs"
)

// Host is what the scene needs from the program running it.
type Host interface {
	ViewportSize() (w, h float64)
	GameOver(message string)
}

// Frame is the host's input for one tick.
type Frame struct {
	ElapsedMs float64
	Keys      component.Input
}

type Option func(*Scene)

// WithWinCondition replaces the scene's win rule. Without it the rule comes
// from the spec's win_script, reloaded on every reset.
func WithWinCondition(cond system.WinCondition) Option {
	return func(s *Scene) { s.win = cond }
}

// WithChargeRelease installs the hook called when a charge is released.
func WithChargeRelease(fn system.ChargeReleaseFunc) Option {
	return func(s *Scene) { s.onRelease = fn }
}

type Scene struct {
	spec *prefabs.SceneSpec
	host Host

	win       system.WinCondition
	onRelease system.ChargeReleaseFunc

	world     *ecs.World
	scheduler *ecs.Scheduler
	commands  *system.CommandSystem
	physics   *system.PhysicsSystem

	session  ecs.Entity
	player   ecs.Entity
	notified bool
}

// New builds a running scene from spec. A nil spec uses the built-in layout.
func New(spec *prefabs.SceneSpec, host Host, opts ...Option) (*Scene, error) {
	if host == nil {
		return nil, fmt.Errorf("scene: nil host")
	}
	if spec == nil {
		spec = prefabs.DefaultSceneSpec()
	}

	s := &Scene{spec: spec, host: host}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadWinScript compiles a tengo win rule from the prefab scripts.
func LoadWinScript(name string) (*system.ScriptWinCondition, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("scene: win script: %w", err)
	}
	cond, err := system.NewScriptWinCondition(src)
	if err != nil {
		return nil, fmt.Errorf("scene: win script %s: %w", name, err)
	}
	return cond, nil
}

func (s *Scene) build() error {
	width, height := s.host.ViewportSize()

	win := s.win
	if win == nil && s.spec.WinScript != "" {
		cond, err := LoadWinScript(s.spec.WinScript)
		if err != nil {
			return err
		}
		win = cond
	}

	w := ecs.NewWorld()
	if err := entity.Build(w, s.spec, width, height); err != nil {
		return fmt.Errorf("scene: build %s: %w", s.spec.Name, err)
	}

	session, ok := w.First(component.SessionComponent.Kind())
	if !ok {
		return fmt.Errorf("scene: build %s: no session entity", s.spec.Name)
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return fmt.Errorf("scene: build %s: no player entity", s.spec.Name)
	}

	s.commands = system.NewCommandSystem(s.onRelease)
	s.physics = system.NewPhysicsSystem(system.NewCollisionSystem().OnOverlap)
	s.scheduler = ecs.NewScheduler(
		s.commands,
		system.NewPlayerControllerSystem(),
		system.NewPursuitSystem(),
		system.NewAbilitySystem(),
		system.NewWinConditionSystem(win),
		s.physics,
	)

	s.world = w
	s.session = session
	s.player = player
	s.notified = false
	return nil
}

// Send queues a host command for the next tick.
func (s *Scene) Send(cmd ecs.Event) {
	if s == nil {
		return
	}
	s.commands.Push(cmd)
}

// Update advances the session by one frame.
func (s *Scene) Update(frame Frame) {
	if s == nil || s.world == nil {
		return
	}

	elapsed := frame.ElapsedMs
	if elapsed < 0 {
		elapsed = 0
	}
	ecs.Update(s.world, s.session, component.ClockComponent, func(c *component.Clock) {
		c.ElapsedMs = elapsed
		c.TotalMs += elapsed
		c.Frame++
	})
	ecs.Update(s.world, s.player, component.InputComponent, func(in *component.Input) {
		*in = frame.Keys
	})

	s.scheduler.Update(s.world)
	s.dispatchEvents()
}

func (s *Scene) dispatchEvents() {
	for _, evt := range s.world.Events().Drain() {
		if evt.Type != ecs.EventGameOver || s.notified {
			continue
		}
		outcome, _ := evt.Data.(component.Session)
		s.notified = true
		log.Printf("scene: %s after %.0fms", outcome.Message, s.Clock().TotalMs)
		s.host.GameOver(outcome.Message)
	}
}

// Resize follows a viewport change. Only the world bounds move; the player's
// abilities and the joystick anchor are untouched.
func (s *Scene) Resize(width, height float64) {
	if s == nil || s.world == nil {
		return
	}
	ecs.Update(s.world, s.session, component.WorldBoundsComponent, func(b *component.WorldBounds) {
		b.Width, b.Height = width, height
	})
}

// Reset rebuilds the session from the current spec. Any queued commands are
// dropped.
func (s *Scene) Reset() error {
	if s == nil {
		return nil
	}
	if err := s.build(); err != nil {
		return err
	}
	log.Printf("scene: reset %s", s.spec.Name)
	return nil
}

// SetSpec swaps in a new layout and rebuilds. On error the previous layout
// and session are kept.
func (s *Scene) SetSpec(spec *prefabs.SceneSpec) error {
	if s == nil || spec == nil {
		return nil
	}
	prev := s.spec
	s.spec = spec
	if err := s.Reset(); err != nil {
		s.spec = prev
		return err
	}
	return nil
}

func (s *Scene) Spec() *prefabs.SceneSpec { return s.spec }

func (s *Scene) World() *ecs.World { return s.world }

func (s *Scene) Player() ecs.Entity { return s.player }

func (s *Scene) Outcome() component.Session {
	out, _ := ecs.Get(s.world, s.session, component.SessionComponent)
	return out
}

func (s *Scene) Clock() component.Clock {
	c, _ := ecs.Get(s.world, s.session, component.ClockComponent)
	return c
}
