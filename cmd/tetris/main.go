package main

import (
	"flag"
	"log"

	"github.com/plus3/tetris/config"
	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/sound"
	"github.com/plus3/tetris/tetromino"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	level := flag.Int("level", -1, "Initial level, overriding the config file.")
	seed := flag.Uint64("seed", 0, "Piece generator seed, overriding the config file. 0 keeps the configured seed.")
	frontend := flag.String("frontend", "", "Front end to use: terminal or gui. Overrides the config file.")
	debug := flag.Bool("debug", false, "Show the debug overlay (gui only).")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *level >= 0 {
		cfg.Game.InitialLevel = *level
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if *frontend != "" {
		cfg.Frontend.Kind = *frontend
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	e := engine.New(
		engine.WithGenerator(tetromino.NewRandom(cfg.Game.Seed)),
		engine.WithInitialLevel(cfg.Game.InitialLevel),
	)

	var effects loop.Effects
	if cfg.Sound.Enabled {
		player := sound.NewPlayer(cfg.Sound.Volume)
		if err := player.Init(); err != nil {
			// Non-fatal, the game runs without sound.
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer player.Close()
			effects = player
		}
	}

	switch cfg.Frontend.Kind {
	case config.GUI:
		err = runGUI(cfg, e, effects, *debug)
	default:
		err = runTerminal(cfg, e, effects)
	}
	if err != nil {
		log.Fatalf("Game stopped: %v", err)
	}

	log.Printf("game over: score=%d level=%d lines=%d", e.Score(), e.Level(), e.Lines())
}
