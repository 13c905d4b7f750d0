package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/loop"
	"github.com/plus3/tetris/render"
	"github.com/plus3/tetris/tetromino"
)

func main() {
	games := flag.Int("games", 100, "Number of games to play.")
	seed := flag.Uint64("seed", 1, "Seed for piece generation and the bot. Game i uses seed+i.")
	level := flag.Int("level", 0, "Initial level of every game.")
	maxTicks := flag.Int("max-ticks", 200000, "Ticks after which a game is abandoned.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	boards := flag.Bool("boards", false, "Print the final board of every game.")
	flag.Parse()

	if *level < 0 || *level > engine.MaxLevel {
		log.Fatalf("level must be between 0 and %d", engine.MaxLevel)
	}

	log.Printf("Playing %d games from seed %d...\n", *games, *seed)

	report := &Report{
		Games:          *games,
		Seed:           *seed,
		InitialLevel:   *level,
		MaxTicks:       *maxTicks,
		GCPauseMetrics: *gcPauseMetrics,
		systems: make(map[string]*SystemTotals),
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	for i := 0; i < *games; i++ {
		gameSeed := *seed + uint64(i)
		result, err := play(report, gameSeed, *level, *maxTicks)
		if err != nil {
			log.Fatalf("game %d (seed %d): %v", i, gameSeed, err)
		}
		report.Add(result)

		if *boards {
			fmt.Printf("\ngame %d (seed %d)\n", i, gameSeed)
			if err := render.NewText(os.Stdout).Render(&result.Final); err != nil {
				log.Fatalf("Failed to print board: %v", err)
			}
		}
	}

	report.TotalTime = time.Since(startTime)
	report.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// play runs one game to completion with a random bot at a fixed 60 Hz tick.
func play(report *Report, seed uint64, level, maxTicks int) (GameResult, error) {
	e := engine.New(
		engine.WithGenerator(tetromino.NewRandom(seed)),
		engine.WithInitialLevel(level),
	)

	scheduler := loop.NewScheduler(e)
	scheduler.Register(&loop.InputSystem{Input: NewBot(seed)})
	scheduler.Register(&loop.TickSystem{})
	scheduler.Register(&InvariantSystem{})

	dt := time.Second / engine.FrameRate
	result := GameResult{Seed: seed}

	for result.Ticks < maxTicks {
		tickStart := time.Now()
		r, err := scheduler.Once(dt)
		report.TickTime.Add(time.Since(tickStart))
		result.Ticks++

		if err != nil {
			return result, err
		}
		if r == engine.Exit {
			result.GameOver = true
			break
		}
	}

	result.Final = e.Snapshot()
	result.Score = result.Final.Score
	result.Level = result.Final.Level
	result.Lines = result.Final.Lines
	report.AddSystems(scheduler.GetStats())
	return result, nil
}
