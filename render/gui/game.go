package gui

import (
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/loop"
)

// Game adapts a scheduler to ebiten's update and draw callbacks. Ebiten calls
// Update at a fixed rate, so every frame advances the engine by one tick period.
type Game struct {
	Scheduler *loop.Scheduler
	Renderer  *Renderer

	// Imgui, when set, wraps each update in an ImGui frame and draws the overlay.
	Imgui *ebitenbackend.EbitenBackend

	over bool
	err  error
}

func (g *Game) Update() error {
	if g.over {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			return ebiten.Termination
		}
		return nil
	}

	if g.Imgui != nil {
		g.Imgui.BeginFrame()
	}
	result, err := g.Scheduler.Once(time.Second / time.Duration(ebiten.TPS()))
	if g.Imgui != nil {
		g.Imgui.EndFrame()
	}

	if err != nil {
		g.err = err
		return err
	}
	if result == engine.Exit {
		g.over = true
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen)
	if g.Imgui != nil {
		g.Imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Imgui != nil {
		g.Imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.Renderer.Size()
}

// Over reports whether the engine has exited.
func (g *Game) Over() bool {
	return g.over
}

// Err returns the error that stopped the scheduler, if any.
func (g *Game) Err() error {
	return g.err
}
