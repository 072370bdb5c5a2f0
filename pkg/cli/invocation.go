package cli

import (
	"maestro/pkg/config"
	"maestro/pkg/deploy"
)

// Invocation carries the parsed flags and positionals of one command run.
// It is populated once by the flag parser and read-only afterwards.
type Invocation struct {
	// Global flags, shared by every command.
	Verbose bool
	Silent  bool
	DryRun  bool

	// validate
	SchemaFile string
	YamlFile   string

	// create / run / deploy
	AgentsFile   string
	WorkflowFile string
	Env          []string

	// run
	Prompt bool

	// deploy
	Deploy deploy.Flags

	// mermaid
	SequenceDiagram bool
	FlowchartTD     bool
	FlowchartLR     bool

	// meta-agents
	TextFile string
}

// RunConfig converts the global flags into the context-threaded settings.
func (inv *Invocation) RunConfig() config.Run {
	return config.Run{Verbose: inv.Verbose, Silent: inv.Silent, DryRun: inv.DryRun}
}
