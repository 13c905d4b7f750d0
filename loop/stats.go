package loop

import "time"

// SchedulerStats summarises every frame a scheduler has run.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats is the timing of one registered system. Durations are zero until
// the system has run.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// timing accumulates run durations for one system.
type timing struct {
	name             string
	runs             int64
	total, last      time.Duration
	fastest, slowest time.Duration
}

func (t *timing) record(d time.Duration) {
	if t.runs == 0 || d < t.fastest {
		t.fastest = d
	}
	t.slowest = max(t.slowest, d)
	t.total += d
	t.last = d
	t.runs++
}

func (t *timing) stats() SystemStats {
	s := SystemStats{
		Name:           t.name,
		ExecutionCount: t.runs,
		MinDuration:    t.fastest,
		MaxDuration:    t.slowest,
		LastDuration:   t.last,
		TotalDuration:  t.total,
	}
	if t.runs > 0 {
		s.AvgDuration = t.total / time.Duration(t.runs)
	}
	return s
}
