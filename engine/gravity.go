package engine

import "time"

const (
	// MaxLevel caps level progression.
	MaxLevel = 21
	// LinesPerLevel is the counter value restored after each level-up.
	LinesPerLevel = 10
	// FrameRate converts the gravity table's frame counts to durations.
	FrameRate = 60
)

// dropFrames is the classic stepped gravity curve, frames per row for levels 0..20.
var dropFrames = [...]int{53, 49, 45, 41, 37, 33, 28, 22, 17, 11, 10, 9, 8, 7, 6, 6, 5, 5, 4, 4, 3}

// lineScores is the base award for clearing 0..4 rows at once.
var lineScores = [...]int{0, 40, 100, 300, 1200}

// DropInterval returns the time between automatic descents at the given level.
// Levels past the end of the table use the fastest entry.
func DropInterval(level int) time.Duration {
	level = max(0, min(level, len(dropFrames)-1))
	return time.Duration(dropFrames[level]) * time.Second / FrameRate
}

// LineScore returns the points for clearing rows lines at once on the given level.
// Counts outside 1..4 score nothing.
func LineScore(rows, level int) int {
	if rows < 0 || rows >= len(lineScores) {
		return 0
	}
	return lineScores[rows] * (level + 1)
}
