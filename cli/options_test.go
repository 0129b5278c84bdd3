package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/biocomp/phyloflow/workflow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveOptionsLayering(t *testing.T) {
	profile := filepath.Join(t.TempDir(), "cluster.yaml")
	require.NoError(t, os.WriteFile(profile, []byte(`
nodes: [2, 2, 2, 2]
env-file: profile.env
monitor: true
`), 0644))

	flags := phyloflowCmd.PersistentFlags()
	require.NoError(t, flags.Set("profile", profile))
	require.NoError(t, flags.Set("monitor-interval", "45s"))

	opts, err := resolveOptions(flags)
	require.NoError(t, err)

	// From the profile.
	assert.Equal(t, []int{2, 2, 2, 2}, opts.Nodes)
	assert.Equal(t, "profile.env", opts.EnvFile)
	assert.True(t, opts.Monitor)

	// Changed flags override the profile, unchanged ones do not.
	assert.Equal(t, workflow.Duration(45*time.Second), opts.MonitorInterval)
	assert.Equal(t, workflow.DefaultInterface, opts.Interface)

	// Lists absent from the profile keep their defaults.
	assert.Equal(t, workflow.DefaultOptions().Partitions, opts.Partitions)
}
