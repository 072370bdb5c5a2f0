package cli

import (
	"context"

	"maestro/internal/supervisor"
	"maestro/pkg/config"
	"maestro/pkg/deploy"
	"maestro/pkg/faults"
	"maestro/pkg/logx"
)

// DeployCmd resolves the deployment backend from the target flags and drives
// it: docker and kubernetes delegate to the deployer, everything else spawns
// the interactive streamlit UI as a detached child.
type DeployCmd struct {
	inv *Invocation

	// deployer is swappable in tests.
	deployer *deploy.Deployer
}

func (c *DeployCmd) Name() string { return "deploy" }

func (c *DeployCmd) Run(ctx context.Context) error {
	run := config.RunFrom(ctx)

	env := deploy.BuildEnv(c.inv.Env, c.inv.Deploy.AutoPrompt)
	target := deploy.ResolveTarget(c.inv.Deploy)

	d := c.deployer
	if d == nil {
		d = deploy.NewDeployer()
	}

	var err error
	switch target {
	case deploy.TargetDocker:
		err = d.DeployDocker(ctx, c.inv.AgentsFile, c.inv.WorkflowFile, env, c.inv.Deploy.ResolvedURL())
	case deploy.TargetKubernetes:
		err = d.DeployKubernetes(ctx, c.inv.AgentsFile, c.inv.WorkflowFile, env)
	default:
		_, err = supervisor.LaunchDeployUI(ctx, c.inv.AgentsFile, c.inv.WorkflowFile)
	}
	if err != nil {
		return faults.Wrap(faults.DelegateExecution, err, "Unable to deploy workflow")
	}

	if !run.Silent {
		logx.Ok("Workflow deployed: %s", deploy.URLFor(target))
	}
	return nil
}
