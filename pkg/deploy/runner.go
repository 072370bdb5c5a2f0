package deploy

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"maestro/pkg/logx"
)

// CommandRunner abstracts the shell-outs so tests can capture them.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
	LookPath(name string) (string, error)
}

// execRunner runs real commands and captures combined output.
type execRunner struct {
	logger *logx.Logger
}

func newExecRunner() *execRunner {
	return &execRunner{logger: logx.NewLogger("deploy-exec")}
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	r.logger.Debug("exec: %s %s", name, strings.Join(args, " "))
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("%s %s failed: %w: %s", name, strings.Join(args, " "), err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

func (r *execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}
