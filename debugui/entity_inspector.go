package debugui

import (
	"fmt"
	"math"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/drift/loop"
)

type EntityInspector struct {
	selected int
	degrees  bool
}

func NewEntityInspector() *EntityInspector {
	return &EntityInspector{selected: -1}
}

func (ei *EntityInspector) Render(frame *loop.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 180), imgui.CondOnce)

	if !imgui.BeginV("Entities", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	world := frame.World
	imgui.Checkbox("Degrees", &ei.degrees)

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("#")
		imgui.TableSetupColumn("X")
		imgui.TableSetupColumn("Y")
		imgui.TableSetupColumn("Rotation")
		imgui.TableHeadersRow()

		for i := 0; i < world.Len(); i++ {
			e := world.Entity(i)
			imgui.TableNextRow()

			imgui.TableNextColumn()
			c := e.Color
			imgui.PushStyleColorVec4(imgui.ColText, imgui.NewVec4(c[0], c[1], c[2], 1.0))
			if imgui.SelectableBoolV(fmt.Sprintf("■ %d", i), ei.selected == i, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				ei.selected = i
			}
			imgui.PopStyleColor()

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", e.Position.X))

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3f", e.Position.Y))

			imgui.TableNextColumn()
			if ei.degrees {
				imgui.Text(fmt.Sprintf("%.1f°", e.Rotation*180/math.Pi))
			} else {
				imgui.Text(fmt.Sprintf("%.3f", e.Rotation))
			}
		}

		imgui.EndTable()
	}

	if ei.selected >= 0 && ei.selected < world.Len() {
		e := world.Entity(ei.selected)
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Heading: (%.3f, %.3f)", math.Cos(e.Rotation), math.Sin(e.Rotation)))
		imgui.Text(fmt.Sprintf("Color: %.2f %.2f %.2f %.2f", e.Color[0], e.Color[1], e.Color[2], e.Color[3]))
	}

	imgui.End()
}
