// Package config carries the invocation-scoped settings shared by every
// command. The settings are threaded through context so collaborators read
// them explicitly instead of consulting process globals; the one exception is
// the DRY_RUN environment marker, exported once per invocation for external
// collaborators that cannot see the context.
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DotDir is the tool's per-user directory under $HOME.
	DotDir = ".maestro"

	// AgentDBFile is the SQLite file holding the local agent registry.
	AgentDBFile = "agents.db"

	// DryRunEnv is the marker consumed by external collaborators to skip
	// side-effecting actions. Set, never read back, by this tool.
	DryRunEnv = "DRY_RUN"
)

// Run holds the cross-cutting flags of one invocation. Immutable after parse.
type Run struct {
	Verbose bool
	Silent  bool
	DryRun  bool
}

type ctxKey struct{}

// WithRun attaches the invocation settings to a context.
func WithRun(ctx context.Context, r Run) context.Context {
	return context.WithValue(ctx, ctxKey{}, r)
}

// RunFrom extracts the invocation settings, zero-valued when absent.
func RunFrom(ctx context.Context) Run {
	if r, ok := ctx.Value(ctxKey{}).(Run); ok {
		return r
	}
	return Run{}
}

// Export publishes the dry-run marker to the process environment when set.
// Called at most once per invocation, before any collaborator runs.
func (r Run) Export() error {
	if !r.DryRun {
		return nil
	}
	if err := os.Setenv(DryRunEnv, "true"); err != nil {
		return fmt.Errorf("failed to set %s: %w", DryRunEnv, err)
	}
	return nil
}

// AgentDBPath resolves the agent registry path, creating the dot directory
// if needed.
func AgentDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	dir := filepath.Join(home, DotDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return filepath.Join(dir, AgentDBFile), nil
}
