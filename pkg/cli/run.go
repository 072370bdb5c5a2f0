package cli

import (
	"bufio"
	"context"
	"os"
	"strings"

	"golang.org/x/term"

	"maestro/pkg/agent"
	"maestro/pkg/faults"
	"maestro/pkg/logx"
	"maestro/pkg/workflow"
	"maestro/pkg/yamlio"
)

// RunCmd executes a workflow: an optional agents file, a required workflow
// file, and an optional operator prompt injected into the first workflow
// document. The engine run is awaited; there is no cancellation surface once
// it starts.
type RunCmd struct {
	inv *Invocation

	// runner and stdin are swappable in tests.
	runner workflow.Runner
	stdin  *bufio.Reader
}

func (c *RunCmd) Name() string { return "run" }

func (c *RunCmd) Run(ctx context.Context) error {
	defs, err := c.loadAgents(ctx)
	if err != nil {
		return faults.Wrap(faults.DelegateExecution, err, "Unable to run workflow")
	}

	wfDocs, err := yamlio.ReadDocuments(c.inv.WorkflowFile)
	if err != nil {
		return faults.Wrap(faults.DelegateExecution, err, "Unable to run workflow")
	}
	if len(wfDocs) == 0 {
		return faults.New(faults.DelegateExecution, "Unable to run workflow: no documents in %s", c.inv.WorkflowFile)
	}

	if c.inv.Prompt {
		prompt, err := c.readPrompt()
		if err != nil {
			return faults.Wrap(faults.DelegateExecution, err, "Unable to run workflow")
		}
		if err := workflow.InjectPrompt(wfDocs[0], prompt); err != nil {
			return faults.Wrap(faults.DelegateExecution, err, "Unable to run workflow")
		}
	}

	wf, err := workflow.New(wfDocs[0])
	if err != nil {
		return faults.Wrap(faults.DelegateExecution, err, "Unable to run workflow")
	}

	runner := c.runner
	if runner == nil {
		runner = workflow.NewOpenAIRunner()
	}
	if err := workflow.NewEngine(wf, defs, runner).Run(ctx); err != nil {
		return faults.Wrap(faults.DelegateExecution, err, "Unable to run workflow")
	}
	return nil
}

// loadAgents reads the agents file when given, otherwise falls back to the
// local registry.
func (c *RunCmd) loadAgents(ctx context.Context) ([]agent.Definition, error) {
	if c.inv.AgentsFile != "" && c.inv.AgentsFile != "None" {
		docs, err := yamlio.ReadDocuments(c.inv.AgentsFile)
		if err != nil {
			return nil, err
		}
		return agent.DecodeAll(docs)
	}

	store, err := defaultOpenStore()
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.List(ctx)
}

// readPrompt asks the operator for one line of input.
func (c *RunCmd) readPrompt() (string, error) {
	in := c.stdin
	if in == nil {
		in = bufio.NewReader(os.Stdin)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		logx.Print("Enter your prompt: ")
	}
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
