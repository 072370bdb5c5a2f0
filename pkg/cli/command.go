// Package cli wires the maestro command surface: a cobra front end over an
// enum-keyed dispatch table of command handlers.
package cli

import (
	"context"

	"maestro/pkg/config"
	"maestro/pkg/faults"
	"maestro/pkg/logx"
)

// Kind identifies one maestro subcommand. The declaration order is the fixed
// routing priority.
type Kind int

const (
	KindValidate Kind = iota
	KindCreate
	KindRun
	KindDeploy
	KindMermaid
	KindMetaAgents
	KindClean
)

func (k Kind) String() string {
	switch k {
	case KindValidate:
		return "validate"
	case KindCreate:
		return "create"
	case KindRun:
		return "run"
	case KindDeploy:
		return "deploy"
	case KindMermaid:
		return "mermaid"
	case KindMetaAgents:
		return "meta-agents"
	case KindClean:
		return "clean"
	default:
		return "unknown"
	}
}

// Command is the contract every subcommand handler implements.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// Execute runs a handler and converts its outcome to a process exit code.
// This is the catch-log-convert boundary: any fault from the handler body or
// its delegates is reported as a one-line message (full chain under
// --verbose) and becomes a non-zero code. Nothing escapes.
func Execute(ctx context.Context, cmd Command) int {
	err := cmd.Run(ctx)
	if err == nil {
		return 0
	}
	run := config.RunFrom(ctx)
	if run.Verbose {
		logx.Trace(err)
	}
	logx.Errorf("%v", err)
	return faults.ExitCode(err)
}
