package cli

import (
	"context"

	"maestro/pkg/agent"
	"maestro/pkg/config"
	"maestro/pkg/logx"
	"maestro/pkg/yamlio"
)

// CreateCmd parses an agents file and registers its definitions in the local
// registry. Failures are reported but the command still exits 0; callers can
// re-run create without the earlier attempt failing the pipeline. See
// DESIGN.md for why this asymmetry is kept.
type CreateCmd struct {
	inv *Invocation

	// openStore is swappable in tests.
	openStore func() (*agent.Store, error)
}

func (c *CreateCmd) Name() string { return "create" }

func (c *CreateCmd) Run(ctx context.Context) error {
	run := config.RunFrom(ctx)

	err := c.create(ctx)
	if err != nil {
		if run.Verbose {
			logx.Trace(err)
		}
		logx.Errorf("Unable to create agents: %v", err)
	}
	return nil
}

func (c *CreateCmd) create(ctx context.Context) error {
	docs, err := yamlio.ReadDocuments(c.inv.AgentsFile)
	if err != nil {
		return err
	}

	open := c.openStore
	if open == nil {
		open = defaultOpenStore
	}
	store, err := open()
	if err != nil {
		return err
	}
	defer store.Close()

	return agent.NewRegistrar(store).CreateAgents(ctx, docs)
}

func defaultOpenStore() (*agent.Store, error) {
	path, err := config.AgentDBPath()
	if err != nil {
		return nil, err
	}
	return agent.OpenStore(path)
}
