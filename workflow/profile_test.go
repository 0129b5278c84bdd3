package workflow

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cluster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadProfileMergesOverDefaults(t *testing.T) {
	path := writeProfile(t, `
partitions: [cpu, cpu, cpu, cpu_long]
nodes: [2, 8, 2, 2]
monitor: true
monitor-interval: 1m
`)

	opts, err := LoadProfile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"cpu", "cpu", "cpu", "cpu_long"}, opts.Partitions)
	assert.Equal(t, []int{2, 8, 2, 2}, opts.Nodes)
	assert.True(t, opts.Monitor)
	assert.Equal(t, Duration(time.Minute), opts.MonitorInterval)

	// Fields absent from the profile keep their defaults.
	assert.Equal(t, DefaultOptions().CoresPerNode, opts.CoresPerNode)
	assert.Equal(t, DefaultOptions().Walltime, opts.Walltime)
	assert.Equal(t, DefaultEnvFile, opts.EnvFile)
	assert.Equal(t, DefaultInterface, opts.Interface)
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read cluster profile")
}

func TestLoadProfileInvalidYaml(t *testing.T) {
	path := writeProfile(t, "nodes: {oops")
	_, err := LoadProfile(path)
	assert.ErrorContains(t, err, "failed to parse cluster profile")
}

func TestLoadProfileInvalidDuration(t *testing.T) {
	path := writeProfile(t, "monitor-interval: thirty")
	_, err := LoadProfile(path)
	assert.ErrorContains(t, err, "invalid duration 'thirty'")
}

func TestDurationYamlRoundTrip(t *testing.T) {
	buf, err := yaml.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, "1m30s\n", string(buf))

	var d Duration
	require.NoError(t, yaml.Unmarshal([]byte("1m30s"), &d))
	assert.Equal(t, Duration(90*time.Second), d)
}
