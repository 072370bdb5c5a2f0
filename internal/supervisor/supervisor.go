// Package supervisor launches and reaps the detached streamlit UI processes
// maestro starts. Spawns are launch-and-abandon: the parent keeps no handle,
// so cleanup works by re-scanning the live process table and matching on
// command-line identity rather than on owned children.
package supervisor

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"maestro/pkg/config"
	"maestro/pkg/faults"
	"maestro/pkg/logx"
)

const streamlitBin = "streamlit"

// UI entrypoint scripts, resolved relative to the working directory.
const (
	DeployScript     = "cli/streamlit_deploy.py"
	MetaAgentsScript = "cli/streamlit_meta_agents_deploy.py"
)

// StreamlitArgs returns the fixed argv used to serve a UI script: chrome
// hidden, toolbar minimal, then the script and its positional file arguments.
func StreamlitArgs(script string, files ...string) []string {
	args := []string{"run", "--ui.hideTopBar", "True", "--client.toolbarMode", "minimal", script}
	return append(args, files...)
}

// LaunchDeployUI spawns the deployment UI for the two configuration files.
func LaunchDeployUI(ctx context.Context, agentsFile, workflowFile string) (int, error) {
	return launch(ctx, DeployScript, agentsFile, workflowFile)
}

// LaunchMetaAgentsUI spawns the meta-agent generation UI for one text file.
func LaunchMetaAgentsUI(ctx context.Context, textFile string) (int, error) {
	return launch(ctx, MetaAgentsScript, textFile)
}

// launch starts the child detached and releases the handle immediately. The
// parent never waits on or stops this process; the table-scanning reaper is
// the only lifecycle management it gets.
func launch(ctx context.Context, script string, files ...string) (int, error) {
	logger := logx.NewLogger("supervisor")

	run := config.RunFrom(ctx)
	if run.DryRun {
		logger.Info("dry run: skipping launch of %s", script)
		return 0, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return 0, faults.Wrap(faults.ProcessSpawn, err, "could not resolve working directory")
	}

	cmd := exec.Command(streamlitBin, StreamlitArgs(filepath.Join(cwd, script), files...)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return 0, faults.Wrap(faults.ProcessSpawn, err, "could not start %s", script)
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		logger.Warn("could not release process %d: %v", pid, err)
	}
	logger.Info("launched %s (pid %d)", script, pid)
	return pid, nil
}
