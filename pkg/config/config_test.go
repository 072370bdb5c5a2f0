package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunContextRoundTrip(t *testing.T) {
	ctx := WithRun(context.Background(), Run{Verbose: true, DryRun: true})

	got := RunFrom(ctx)
	assert.True(t, got.Verbose)
	assert.True(t, got.DryRun)
	assert.False(t, got.Silent)
}

func TestRunFromMissing(t *testing.T) {
	got := RunFrom(context.Background())
	assert.Equal(t, Run{}, got)
}

func TestExportDryRunMarker(t *testing.T) {
	t.Setenv(DryRunEnv, "")
	require.NoError(t, os.Unsetenv(DryRunEnv))

	require.NoError(t, Run{}.Export())
	_, set := os.LookupEnv(DryRunEnv)
	assert.False(t, set, "marker must not be set without --dry-run")

	require.NoError(t, Run{DryRun: true}.Export())
	assert.Equal(t, "true", os.Getenv(DryRunEnv))
}

func TestAgentDBPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := AgentDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, DotDir, AgentDBFile), path)

	info, err := os.Stat(filepath.Join(home, DotDir))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
