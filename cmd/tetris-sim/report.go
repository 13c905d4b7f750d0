package main

import (
	"fmt"
	"io"
	"runtime"
	"sort"
	"text/template"
	"time"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/loop"
)

type Report struct {
	// Configuration
	Games        int
	Seed         uint64
	InitialLevel int
	MaxTicks     int

	// Results
	Results        []GameResult
	GameOvers      int
	TotalTicks     int64
	TotalTime      time.Duration
	TickTime       Stats
	Score          IntStats
	Lines          IntStats
	Level          IntStats
	Systems        []SystemTotals
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats

	systems map[string]*SystemTotals
}

// GameResult is the outcome of one simulated game.
type GameResult struct {
	Seed     uint64
	Ticks    int
	Score    int
	Level    int
	Lines    int
	GameOver bool
	Final    engine.Snapshot
}

// SystemTotals accumulates scheduler statistics for one system across games.
type SystemTotals struct {
	Name       string
	Executions int64
	Total      time.Duration
	Max        time.Duration
	Avg        time.Duration
}

// Stats keeps a running summary of durations.
type Stats struct {
	Count int64
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
	Avg   time.Duration
}

func (s *Stats) Add(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	s.Max = max(s.Max, d)
	s.Total += d
	s.Count++
}

func (s *Stats) Finalize() {
	if s.Count == 0 {
		return
	}
	s.Avg = s.Total / time.Duration(s.Count)
}

type IntStats struct {
	Min, Max int
	Avg      float64
}

func intStats(values []int) IntStats {
	if len(values) == 0 {
		return IntStats{}
	}
	s := IntStats{Min: values[0], Max: values[0]}
	total := 0
	for _, v := range values {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		total += v
	}
	s.Avg = float64(total) / float64(len(values))
	return s
}

// Add records a finished game.
func (r *Report) Add(g GameResult) {
	r.Results = append(r.Results, g)
	r.TotalTicks += int64(g.Ticks)
	if g.GameOver {
		r.GameOvers++
	}
}

// AddSystems folds one game's scheduler statistics into the per-system totals.
func (r *Report) AddSystems(stats *loop.SchedulerStats) {
	for _, sys := range stats.Systems {
		totals, ok := r.systems[sys.Name]
		if !ok {
			totals = &SystemTotals{Name: sys.Name}
			r.systems[sys.Name] = totals
		}
		totals.Executions += sys.ExecutionCount
		totals.Total += sys.TotalDuration
		totals.Max = max(totals.Max, sys.MaxDuration)
	}
}

// Finalize computes the summary statistics.
func (r *Report) Finalize() {
	r.TickTime.Finalize()

	scores := make([]int, len(r.Results))
	lines := make([]int, len(r.Results))
	levels := make([]int, len(r.Results))
	for i, g := range r.Results {
		scores[i], lines[i], levels[i] = g.Score, g.Lines, g.Level
	}
	r.Score = intStats(scores)
	r.Lines = intStats(lines)
	r.Level = intStats(levels)

	r.Systems = r.Systems[:0]
	for _, totals := range r.systems {
		if totals.Executions > 0 {
			totals.Avg = totals.Total / time.Duration(totals.Executions)
		}
		r.Systems = append(r.Systems, *totals)
	}
	sort.Slice(r.Systems, func(i, j int) bool {
		return r.Systems[i].Total > r.Systems[j].Total
	})
}

// Best returns the highest scoring game.
func (r *Report) Best() GameResult {
	var best GameResult
	for _, g := range r.Results {
		if g.Score > best.Score {
			best = g
		}
	}
	return best
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Simulation Report

## Configuration
- **Games:** {{.Games}}
- **First Seed:** {{.Seed}}
- **Initial Level:** {{.InitialLevel}}
- **Tick Limit:** {{.MaxTicks}}

## Game Results
- **Game Overs:** {{.GameOvers}} of {{len .Results}}
- **Score:** avg {{printf "%.1f" .Score.Avg}}, min {{.Score.Min}}, max {{.Score.Max}}
- **Lines:** avg {{printf "%.1f" .Lines.Avg}}, min {{.Lines.Min}}, max {{.Lines.Max}}
- **Level:** avg {{printf "%.1f" .Level.Avg}}, min {{.Level.Min}}, max {{.Level.Max}}
{{with .Best}}- **Best Game:** seed {{.Seed}}, score {{.Score}}, {{.Lines}} lines in {{.Ticks}} ticks{{end}}

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Time:** {{.TotalTime}}
- **Tick Time (Frame):**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

| System | Executions | Avg | Max |
|---|---|---|---|
{{range .Systems}}| {{.Name}} | {{.Executions}} | {{.Avg}} | {{.Max}} |
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
