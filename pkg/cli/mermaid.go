package cli

import (
	"context"

	"maestro/pkg/config"
	"maestro/pkg/faults"
	"maestro/pkg/logx"
	"maestro/pkg/workflow"
	"maestro/pkg/yamlio"
)

// MermaidCmd renders a workflow as mermaid text. Three notations, mutually
// exclusive flags, sequence diagram by default. Agent bindings are not
// needed for rendering.
type MermaidCmd struct {
	inv *Invocation
}

func (c *MermaidCmd) Name() string { return "mermaid" }

// notation resolves the style and orientation from the flags.
func (c *MermaidCmd) notation() (style, orientation string) {
	switch {
	case c.inv.FlowchartTD:
		return workflow.StyleFlowchart, workflow.OrientationTD
	case c.inv.FlowchartLR:
		return workflow.StyleFlowchart, workflow.OrientationLR
	default:
		return workflow.StyleSequenceDiagram, ""
	}
}

func (c *MermaidCmd) Run(ctx context.Context) error {
	run := config.RunFrom(ctx)

	docs, err := yamlio.ReadDocuments(c.inv.WorkflowFile)
	if err != nil {
		return faults.Wrap(faults.DelegateExecution, err, "Unable to generate mermaid for workflow")
	}

	wf, err := workflow.New(yamlio.First(docs))
	if err != nil {
		return faults.Wrap(faults.DelegateExecution, err, "Unable to generate mermaid for workflow")
	}

	style, orientation := c.notation()
	out, err := wf.ToMermaid(style, orientation)
	if err != nil {
		return faults.Wrap(faults.DelegateExecution, err, "Unable to generate mermaid for workflow")
	}

	if !run.Silent {
		logx.Ok("Created mermaid for workflow")
	}
	logx.Print("%s", out)
	return nil
}
