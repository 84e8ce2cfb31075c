package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/chaser/prefabs"
	"github.com/milk9111/chaser/scene"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// maxFrameMs caps a single tick after the window was stalled.
	maxFrameMs = 250.0
)

type Game struct {
	frames int
	debug  bool

	sceneName string
	scene     *scene.Scene
	input     *Input
	watcher   *prefabs.Watcher

	width  float64
	height float64
	last   time.Time

	gameOver *ebitenui.UI
	message  string
	restart  bool
}

func NewGame(sceneName string, debug, watch bool) (*Game, error) {
	g := &Game{
		debug:     debug,
		sceneName: sceneName,
		width:     baseWidth,
		height:    baseHeight,
	}

	spec, err := prefabs.LoadSceneSpec(sceneName)
	if err != nil {
		return nil, err
	}
	s, err := scene.New(spec, g)
	if err != nil {
		return nil, err
	}
	g.scene = s
	g.input = NewInput()

	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("game: watch %s disabled: %v", prefabs.Dir, err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// ViewportSize implements scene.Host.
func (g *Game) ViewportSize() (float64, float64) {
	return g.width, g.height
}

// GameOver implements scene.Host.
func (g *Game) GameOver(message string) {
	g.message = message
	g.gameOver = NewGameOverUI(g, message)
}

func (g *Game) Update() error {
	g.frames++

	g.pollWatcher()

	if g.gameOver != nil {
		g.gameOver.Update()
	}
	if g.restart {
		g.restart = false
		g.reset()
	}

	keys := g.input.Poll(g.scene, g.width, g.height)
	g.scene.Update(scene.Frame{ElapsedMs: g.elapsedMs(), Keys: keys})
	return nil
}

func (g *Game) elapsedMs() float64 {
	now := time.Now()
	if g.last.IsZero() {
		g.last = now
		return 1000.0 / float64(ebiten.TPS())
	}
	ms := float64(now.Sub(g.last)) / float64(time.Millisecond)
	g.last = now
	if ms > maxFrameMs {
		ms = maxFrameMs
	}
	return ms
}

func (g *Game) requestRestart() {
	g.restart = true
}

func (g *Game) reset() {
	if err := g.scene.Reset(); err != nil {
		log.Printf("game: reset failed: %v", err)
		return
	}
	g.gameOver = nil
	g.message = ""
	g.input.Reset()
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case path := <-g.watcher.Events:
		spec, err := prefabs.LoadSceneSpec(g.sceneName)
		if err != nil {
			log.Printf("game: reload after %s: %v", path, err)
			return
		}
		if err := g.scene.SetSpec(spec); err != nil {
			log.Printf("game: apply %s: %v", path, err)
			return
		}
		g.gameOver = nil
		g.message = ""
		g.input.Reset()
		log.Printf("game: reloaded scene after change to %s", path)
	case err := <-g.watcher.Errors:
		log.Printf("game: watch error: %v", err)
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawScene(screen, g.scene, g.debug)

	hud := fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS())
	drawHUD(screen, g.scene, hud, g.debug)

	if g.gameOver != nil {
		g.gameOver.Draw(screen)
	}
}

// LayoutF follows the window size. The scene only sees the new bounds; the
// joystick keeps the anchor it was created with.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.width, g.height = outsideWidth, outsideHeight
		g.scene.Resize(g.width, g.height)
	}
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
