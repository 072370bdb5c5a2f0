package workflow

import (
	"fmt"
	"strings"

	"maestro/pkg/faults"
)

// Mermaid notation styles.
const (
	StyleSequenceDiagram = "sequenceDiagram"
	StyleFlowchart       = "flowchart"
)

// Flowchart orientations.
const (
	OrientationTD = "TD"
	OrientationLR = "LR"
)

// ToMermaid renders the workflow in the requested notation. Orientation is
// only meaningful for flowcharts.
func (w *Workflow) ToMermaid(style, orientation string) (string, error) {
	switch style {
	case StyleSequenceDiagram:
		return w.sequenceDiagram(), nil
	case StyleFlowchart:
		if orientation != OrientationTD && orientation != OrientationLR {
			return "", faults.New(faults.DelegateExecution, "unknown flowchart orientation: %s", orientation)
		}
		return w.flowchart(orientation), nil
	default:
		return "", faults.New(faults.DelegateExecution, "unknown mermaid style: %s", style)
	}
}

func (w *Workflow) participants() []string {
	var names []string
	seen := map[string]bool{}
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	for _, step := range w.Spec.Template.Steps {
		add(step.Agent)
	}
	for _, agent := range w.Spec.Template.Agents {
		add(agent)
	}
	return names
}

func (w *Workflow) sequenceDiagram() string {
	var b strings.Builder
	b.WriteString("sequenceDiagram\n")
	for _, p := range w.participants() {
		fmt.Fprintf(&b, "participant %s\n", p)
	}
	steps := w.Spec.Template.Steps
	for i, step := range steps {
		from := step.Agent
		to := from
		if i+1 < len(steps) {
			to = steps[i+1].Agent
		}
		fmt.Fprintf(&b, "%s->>%s: %s\n", from, to, step.Name)
	}
	return b.String()
}

func (w *Workflow) flowchart(orientation string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "flowchart %s\n", orientation)
	steps := w.Spec.Template.Steps
	for i := 0; i+1 < len(steps); i++ {
		fmt.Fprintf(&b, "%s--> %s\n", steps[i].Agent, steps[i+1].Agent)
	}
	if len(steps) == 1 {
		fmt.Fprintf(&b, "%s\n", steps[0].Agent)
	}
	return b.String()
}
