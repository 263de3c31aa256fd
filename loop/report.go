package loop

import (
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/plus3/drift/sim"
)

type Report struct {
	// Run
	RunID    string
	Script   string
	WallTime time.Duration

	// Results
	Events    EventCounts
	DrawCalls int
	Entities  []sim.Entity
	Axes      []sim.AxisValue
	Stats     *SchedulerStats
}

// NewReport collects the final state of a driver's world.
func NewReport(runID, script string, d *Driver, wall time.Duration, drawCalls int) *Report {
	world := d.Scheduler().World()
	return &Report{
		RunID:     runID,
		Script:    script,
		WallTime:  wall,
		Events:    d.Counts(),
		DrawCalls: drawCalls,
		Entities:  world.Entities(),
		Axes:      world.Input().Axes(),
		Stats:     d.Scheduler().GetStats(),
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Run Report

## Run
- **Run ID:** {{.RunID}}
- **Script:** {{.Script}}
- **Wall Time:** {{.WallTime}}

## Events
- **Updates:** {{.Stats.Frames}}
- **Renders:** {{.Events.Render}}
- **Axis Events:** {{.Events.Axis}}
- **Draw Calls:** {{.DrawCalls}}
- **Simulated Time:** {{seconds .Stats.SimulatedTime}}

## Entities
| # | X | Y | Rotation |
|---|---|---|---|
{{range $i, $e := .Entities}}| {{$i}} | {{f4 $e.Position.X}} | {{f4 $e.Position.Y}} | {{f4 $e.Rotation}} |
{{end}}
{{- if .Axes}}
## Input
{{range .Axes}}- device {{.Key.Device}} axis {{.Key.Axis}}: {{f4 .Value}}
{{end}}{{end}}
## Systems
{{range .Stats.Systems}}- **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}`

	fm := template.FuncMap{
		"f4": func(v float64) string {
			return fmt.Sprintf("%.4f", v)
		},
		"seconds": func(v float64) string {
			return time.Duration(v * float64(time.Second)).Round(time.Millisecond).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
