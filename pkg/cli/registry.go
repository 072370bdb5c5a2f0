package cli

import "maestro/pkg/faults"

// builder constructs the handler for one subcommand from the invocation.
type builder func(inv *Invocation) Command

// Registry maps command kinds to handler builders. It is built once at
// startup and routing over it is total: every declared kind has exactly one
// handler, and resolving anything else is an InvalidCommand fault.
type Registry struct {
	order    []Kind
	builders map[Kind]builder
}

// NewRegistry builds the dispatch table for all seven commands in their
// fixed priority order.
func NewRegistry() *Registry {
	r := &Registry{builders: make(map[Kind]builder)}
	r.register(KindValidate, func(inv *Invocation) Command { return &ValidateCmd{inv: inv} })
	r.register(KindCreate, func(inv *Invocation) Command { return &CreateCmd{inv: inv} })
	r.register(KindRun, func(inv *Invocation) Command { return &RunCmd{inv: inv} })
	r.register(KindDeploy, func(inv *Invocation) Command { return &DeployCmd{inv: inv} })
	r.register(KindMermaid, func(inv *Invocation) Command { return &MermaidCmd{inv: inv} })
	r.register(KindMetaAgents, func(inv *Invocation) Command { return &MetaAgentsCmd{inv: inv} })
	r.register(KindClean, func(inv *Invocation) Command { return &CleanCmd{inv: inv} })
	return r
}

func (r *Registry) register(k Kind, b builder) {
	r.order = append(r.order, k)
	r.builders[k] = b
}

// Kinds returns the registered kinds in priority order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, len(r.order))
	copy(out, r.order)
	return out
}

// Resolve returns the handler builder for a kind. An unknown kind is an
// InvalidCommand fault: a routing contract violation, not a user error, and
// the one fault callers let propagate.
func (r *Registry) Resolve(k Kind) (builder, error) {
	b, ok := r.builders[k]
	if !ok {
		return nil, faults.New(faults.InvalidCommand, "invalid command: %s", k)
	}
	return b, nil
}
