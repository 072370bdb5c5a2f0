package cli

import (
	"context"

	"maestro/internal/supervisor"
	"maestro/pkg/faults"
)

// CleanCmd sweeps the host process table for UI processes this tool spawned
// and terminates them. Best-effort: no handle registry exists, so the sweep
// matches on command-line identity.
type CleanCmd struct {
	inv *Invocation
}

func (c *CleanCmd) Name() string { return "clean" }

func (c *CleanCmd) Run(ctx context.Context) error {
	if err := supervisor.Reap(ctx); err != nil {
		return faults.Wrap(faults.DelegateExecution, err, "Unable to clean")
	}
	return nil
}
