package workflow

import (
	"context"

	"github.com/google/uuid"

	"maestro/pkg/agent"
	"maestro/pkg/config"
	"maestro/pkg/faults"
	"maestro/pkg/logx"
)

// Runner invokes a single agent with a prompt and returns its output.
type Runner interface {
	Invoke(ctx context.Context, def agent.Definition, prompt string) (string, error)
}

// Engine runs a workflow's steps sequentially, feeding each step's output
// into the next as its prompt. The run blocks until the last step completes;
// there is no cancellation surface beyond the context.
type Engine struct {
	wf     *Workflow
	agents map[string]agent.Definition
	runner Runner
	logger *logx.Logger
}

// NewEngine binds a workflow to its agent definitions and a runner.
func NewEngine(wf *Workflow, defs []agent.Definition, runner Runner) *Engine {
	agents := make(map[string]agent.Definition, len(defs))
	for _, def := range defs {
		agents[def.Metadata.Name] = def
	}
	return &Engine{
		wf:     wf,
		agents: agents,
		runner: runner,
		logger: logx.NewLogger("engine"),
	}
}

// Run executes every step in order. Failures are DelegateExecution faults.
func (e *Engine) Run(ctx context.Context) error {
	runID := uuid.NewString()
	e.logger.Info("running workflow %s (run %s)", e.wf.Metadata.Name, runID)

	steps := e.wf.Spec.Template.Steps
	if len(steps) == 0 {
		return faults.New(faults.DelegateExecution, "workflow %s has no steps", e.wf.Metadata.Name)
	}

	run := config.RunFrom(ctx)
	prompt := e.wf.Spec.Template.Prompt
	for _, step := range steps {
		def, ok := e.agents[step.Agent]
		if !ok {
			return faults.New(faults.DelegateExecution, "step %s references unknown agent: %s", step.Name, step.Agent)
		}

		if run.DryRun {
			e.logger.Info("dry run: skipping step %s (agent %s)", step.Name, step.Agent)
			continue
		}

		out, err := e.runner.Invoke(ctx, def, prompt)
		if err != nil {
			return faults.Wrap(faults.DelegateExecution, err, "step %s failed", step.Name)
		}
		e.logger.Debug("step %s produced %d bytes", step.Name, len(out))
		prompt = out
	}

	if !run.DryRun {
		logx.Print("%s", prompt)
	}
	return nil
}
