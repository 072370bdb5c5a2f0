package supervisor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maestro/pkg/config"
)

func TestShouldTerminate(t *testing.T) {
	tests := []struct {
		name    string
		cmdline []string
		want    bool
	}{
		{"streamlit run app", []string{"python", "streamlit", "run", "app.py"}, true},
		{"streamlit path in second token", []string{"python3", "/usr/bin/streamlit", "run", "deploy.py", "a.yaml"}, true},
		{"too few tokens", []string{"streamlit", "run", "app.py"}, false},
		{"second token unrelated", []string{"python", "manage.py", "run", "server"}, false},
		{"empty", nil, false},
		{"streamlit in wrong position", []string{"bash", "-c", "streamlit", "run"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldTerminate(tt.cmdline))
		})
	}
}

func TestStreamlitArgs(t *testing.T) {
	args := StreamlitArgs("cli/streamlit_deploy.py", "agents.yaml", "workflow.yaml")
	assert.Equal(t, []string{
		"run",
		"--ui.hideTopBar", "True",
		"--client.toolbarMode", "minimal",
		"cli/streamlit_deploy.py",
		"agents.yaml", "workflow.yaml",
	}, args)
}

func TestLaunchDryRun(t *testing.T) {
	ctx := config.WithRun(context.Background(), config.Run{DryRun: true})

	pid, err := LaunchDeployUI(ctx, "agents.yaml", "workflow.yaml")
	require.NoError(t, err)
	assert.Zero(t, pid)

	pid, err = LaunchMetaAgentsUI(ctx, "prompt.txt")
	require.NoError(t, err)
	assert.Zero(t, pid)
}

func TestReapToleratesTable(t *testing.T) {
	// The sweep must complete on a live host without error even though
	// individual processes may vanish mid-scan.
	require.NoError(t, Reap(context.Background()))
}
