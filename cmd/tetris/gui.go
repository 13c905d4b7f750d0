package main

import (
	"errors"
	"fmt"
	"log"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/tetris/config"
	"github.com/plus3/tetris/debugui"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/render/gui"
)

const frameHistory = 120

func runGUI(cfg *config.Config, e *engine.Engine, effects loop.Effects, debug bool) error {
	renderer := gui.NewRenderer(cfg.Frontend.CellSize)
	keyboard := &gui.Keyboard{}

	scheduler := loop.NewScheduler(e)
	scheduler.Register(&loop.InputSystem{Input: keyboard})
	scheduler.Register(&loop.TickSystem{})
	scheduler.Register(&loop.RenderSystem{Renderer: renderer})
	scheduler.Register(&loop.SoundSystem{Effects: effects})

	game := &gui.Game{Scheduler: scheduler, Renderer: renderer}

	width, height := renderer.Size()
	ebiten.SetTPS(cfg.Frontend.FrameRate)

	if debug {
		backend := ebitenbackend.NewEbitenBackend()
		backend.CreateWindow("Tetris", width*2, height)
		imgui.CurrentIO().SetIniFilename("")

		inputState := &debugui.InputState{}
		keyboard.Captured = func() bool { return inputState.WantCaptureKeyboard }

		ui := &debugui.System{Input: inputState}
		ui.Add(debugui.NewEngineInspector(e).Render)
		ui.Add(debugui.NewPerformanceStats(scheduler, frameHistory).Render)
		scheduler.Register(ui)

		game.Imgui = backend
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle("Tetris")
	}

	log.Printf("Starting window game at level %d", cfg.Game.InitialLevel)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}
