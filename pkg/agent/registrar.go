package agent

import (
	"context"

	"maestro/pkg/config"
	"maestro/pkg/faults"
	"maestro/pkg/logx"
)

// Registrar persists agent definitions from configuration documents into the
// local registry.
type Registrar struct {
	store  *Store
	logger *logx.Logger
}

// NewRegistrar wraps an open store.
func NewRegistrar(store *Store) *Registrar {
	return &Registrar{store: store, logger: logx.NewLogger("registrar")}
}

// CreateAgents decodes every agent document in docs and saves it. Under
// dry-run the definitions are decoded but not persisted. Failures are
// DelegateExecution faults.
func (r *Registrar) CreateAgents(ctx context.Context, docs []any) error {
	defs, err := DecodeAll(docs)
	if err != nil {
		return faults.Wrap(faults.DelegateExecution, err, "could not decode agent definitions")
	}
	if len(defs) == 0 {
		return faults.New(faults.DelegateExecution, "no agent definitions found")
	}

	run := config.RunFrom(ctx)
	for i := range defs {
		def := &defs[i]
		if run.DryRun {
			r.logger.Info("dry run: skipping registration of agent %s", def.Metadata.Name)
			continue
		}
		if err := r.store.Save(ctx, def); err != nil {
			return faults.Wrap(faults.DelegateExecution, err, "could not register agent %s", def.Metadata.Name)
		}
		if !run.Silent {
			logx.Ok("Created agent: %s", def.Metadata.Name)
		}
	}
	return nil
}
