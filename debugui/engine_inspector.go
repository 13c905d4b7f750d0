package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/tetris/engine"
	"github.com/plus3/tetris/render"
)

// EngineInspector shows the live game state.
type EngineInspector struct {
	engine *engine.Engine
}

func NewEngineInspector(e *engine.Engine) *EngineInspector {
	return &EngineInspector{engine: e}
}

func (ei *EngineInspector) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 300), imgui.CondOnce)

	if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := ei.engine.Snapshot()
	for _, line := range Summary(&s) {
		imgui.Text(line)
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Drop Interval: %v", engine.DropInterval(s.Level)))
	imgui.Text(fmt.Sprintf("Locked Blocks: %d", s.Field.Count()))

	if imgui.TreeNodeStr("Field") {
		for _, row := range FieldRows(&s) {
			imgui.Text(row)
		}
		imgui.TreePop()
	}

	imgui.End()
}

// Summary formats the counters and the falling piece, one line each.
func Summary(s *engine.Snapshot) []string {
	return []string{
		fmt.Sprintf("State: %v", s.State),
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Level: %d", s.Level),
		fmt.Sprintf("Lines: %d", s.Lines),
		fmt.Sprintf("Remaining: %d", s.Remaining),
		fmt.Sprintf("Piece: %v rot %d at (%d,%d)", s.Piece.Kind, s.Piece.Rotation, s.Piece.Anchor.X, s.Piece.Anchor.Y),
	}
}

// FieldRows renders the board top row first, with the falling piece overlaid.
func FieldRows(s *engine.Snapshot) []string {
	cells := render.Cells(s)
	rows := make([]string, 0, engine.Height)
	var b strings.Builder
	for y := engine.Height - 1; y >= 0; y-- {
		b.Reset()
		for x := 0; x < engine.Width; x++ {
			b.WriteString(cells.At(x, y).String())
		}
		rows = append(rows, fmt.Sprintf("%2d %s", y, b.String()))
	}
	return rows
}
