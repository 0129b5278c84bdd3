package workflow

import (
	"log/slog"
	"time"
)

const (
	// DefaultEnvFile is the worker environment setup file read when Options
	// does not name one.
	DefaultEnvFile = "workflow.env"
	// DefaultInterface is the network interface workers use to reach the
	// submit host (Infiniband on the target cluster).
	DefaultInterface = "ib0"
)

// Options are the inputs of the configuration builder. The four resource
// lists are parallel: entry i parameterizes pool i of the fixed pool layout.
type Options struct {
	Partitions   []string `yaml:"partitions"`
	Nodes        []int    `yaml:"nodes"`
	CoresPerNode []int    `yaml:"cores-per-node"`
	Walltime     []string `yaml:"walltime"`

	// Monitor attaches the resource monitoring hub to the run.
	Monitor bool `yaml:"monitor"`
	// MonitorInterval is the resource monitoring sampling interval.
	MonitorInterval Duration `yaml:"monitor-interval"`

	// EnvFile is the environment setup script injected into every pool.
	EnvFile string `yaml:"env-file"`
	// Interface is the network interface workers use to reach the submit host.
	Interface string `yaml:"interface"`
	// Address skips interface resolution when set.
	Address string `yaml:"address"`

	// Logger for builder diagnostics. Defaults to slog.Default().
	Logger *slog.Logger `yaml:"-"`
}

// DefaultOptions returns the resource layout the pipeline uses on the target
// cluster: short partitions for the three main pools, the long partition for
// the last one.
func DefaultOptions() Options {
	return Options{
		Partitions:      []string{"sequana_cpu", "sequana_cpu", "sequana_cpu", "sequana_cpu_long"},
		Nodes:           []int{1, 4, 1, 1},
		CoresPerNode:    []int{48, 48, 48, 48},
		Walltime:        []string{"03:00:00", "04:00:00", "06:00:00", "06:00:00"},
		MonitorInterval: Duration(30 * time.Second),
		EnvFile:         DefaultEnvFile,
		Interface:       DefaultInterface,
	}
}
