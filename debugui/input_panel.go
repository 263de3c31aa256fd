package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/drift/loop"
	"github.com/plus3/drift/sim"
)

// InputPanel lists every reported axis and lets the steering axis be
// overridden without a controller.
type InputPanel struct {
	override float32
}

func NewInputPanel() *InputPanel {
	return &InputPanel{}
}

func (ip *InputPanel) Render(frame *loop.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 200), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 160), imgui.CondOnce)

	if !imgui.BeginV("Input", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	steering := frame.World.Config().Steering
	imgui.Text(fmt.Sprintf("Steering: device %d axis %d", steering.Device, steering.Axis))

	imgui.SetNextItemWidth(120)
	imgui.InputFloat("##override", &ip.override)
	imgui.SameLine()
	if imgui.Button("Set") {
		ip.override = min(max(ip.override, -1), 1)
		frame.Commands.SetAxis(steering, float64(ip.override))
	}
	imgui.SameLine()
	if imgui.Button("Center") {
		ip.override = 0
		frame.Commands.SetAxis(steering, 0)
	}

	axes := frame.World.Input().Axes()
	if len(axes) == 0 {
		imgui.Text("No axis reported yet")
		imgui.End()
		return
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("AxisTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Device")
		imgui.TableSetupColumn("Axis")
		imgui.TableSetupColumn("Value")
		imgui.TableHeadersRow()

		for _, a := range axes {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", a.Key.Device))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", a.Key.Axis))
			imgui.TableNextColumn()
			imgui.ProgressBarV(float32((a.Value+1)/2), imgui.NewVec2(-1, 0), axisLabel(a))
		}

		imgui.EndTable()
	}

	imgui.End()
}

func axisLabel(a sim.AxisValue) string {
	return fmt.Sprintf("%+.3f", a.Value)
}
