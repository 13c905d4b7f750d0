package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/tetris/config"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/render/terminal"
)

// gameOverHold keeps the final frame on screen before the terminal is restored.
const gameOverHold = 2 * time.Second

func runTerminal(cfg *config.Config, e *engine.Engine, effects loop.Effects) error {
	// The screen owns the terminal, so log lines go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}
	defer log.SetOutput(os.Stderr)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	input := terminal.NewInput(screen)
	input.Start()

	scheduler := loop.NewScheduler(e)
	scheduler.Register(&loop.InputSystem{Input: input})
	scheduler.Register(&loop.TickSystem{})
	scheduler.Register(&loop.RenderSystem{Renderer: terminal.NewRenderer(screen)})
	scheduler.Register(&loop.SoundSystem{Effects: effects})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Printf("Starting terminal game at level %d", cfg.Game.InitialLevel)
	interval := time.Second / time.Duration(cfg.Frontend.FrameRate)
	if err := scheduler.Run(ctx, interval); err != nil {
		return err
	}

	stats := scheduler.GetStats()
	log.Printf("Ran %d frames across %d systems", stats.Frames, stats.SystemCount)

	if toppedOut(e, input) {
		select {
		case <-time.After(gameOverHold):
		case <-ctx.Done():
		}
	}
	return nil
}

// toppedOut reports whether the game ended by locking a piece above the
// ceiling rather than by the player quitting.
func toppedOut(e *engine.Engine, input *terminal.Input) bool {
	return e.State() == engine.Exited && !input.Quitting()
}
