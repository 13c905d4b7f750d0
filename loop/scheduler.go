// Package loop drives an engine frame by frame: it runs an ordered list of systems
// (input, tick, render, sound) with per-system timing statistics and paces them to a
// fixed frame interval.
package loop

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/plus3/tetris/engine"
)

// Scheduler runs systems in order against a single engine.
type Scheduler struct {
	engine  *engine.Engine
	entries []entry
	frames  int64
}

type entry struct {
	system System
	timing timing
}

// NewScheduler creates a scheduler for the given engine.
func NewScheduler(e *engine.Engine) *Scheduler {
	return &Scheduler{engine: e}
}

// Engine returns the engine the scheduler drives.
func (s *Scheduler) Engine() *engine.Engine {
	return s.engine
}

// Register appends a system to the frame.
func (s *Scheduler) Register(system System) {
	s.entries = append(s.entries, entry{
		system: system,
		timing: timing{name: systemName(system)},
	})
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Once executes all registered systems once with the given delta time. It returns
// the engine result recorded during the frame and any error a system stopped with.
func (s *Scheduler) Once(dt time.Duration) (engine.Result, error) {
	frame := newFrame(dt, s.engine)

	for i := range s.entries {
		ent := &s.entries[i]
		start := time.Now()
		ent.system.Execute(frame)
		ent.timing.record(time.Since(start))
	}
	s.frames++

	err := frame.Commands.Flush()
	return frame.Result, err
}

// Run executes frames at the given interval until the engine exits, a system stops
// the loop or the context is cancelled. Engine exit and cancellation return nil.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now

			result, err := s.Once(dt)
			if errors.Is(err, ErrStopped) {
				return nil
			}
			if err != nil {
				return err
			}
			if result == engine.Exit {
				return nil
			}
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.entries),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.entries)),
	}
	for i := range s.entries {
		stats.Systems[i] = s.entries[i].timing.stats()
		stats.TotalExecutions += stats.Systems[i].ExecutionCount
	}
	return stats
}
