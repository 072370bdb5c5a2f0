package cli

import (
	"context"

	"maestro/internal/supervisor"
	"maestro/pkg/config"
	"maestro/pkg/faults"
	"maestro/pkg/logx"
)

// MetaAgentsCmd spawns the meta-agent generation UI as a detached child,
// fire-and-forget like the deploy fallback.
type MetaAgentsCmd struct {
	inv *Invocation
}

func (c *MetaAgentsCmd) Name() string { return "meta-agents" }

func (c *MetaAgentsCmd) Run(ctx context.Context) error {
	run := config.RunFrom(ctx)

	if _, err := supervisor.LaunchMetaAgentsUI(ctx, c.inv.TextFile); err != nil {
		return faults.Wrap(faults.DelegateExecution, err, "Unable to run meta-agents")
	}
	if !run.Silent {
		logx.Ok("Running meta-agents")
	}
	return nil
}
