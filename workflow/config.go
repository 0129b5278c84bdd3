// Package workflow builds the worker pool configuration consumed by the
// parallel workflow engine, and synchronizes on the task handles it returns.
package workflow

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration with human readable YAML encoding.
type Duration time.Duration

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration '%s': %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// PortRange is the range of ports a pool may use for internal coordination
// between the submit host and its workers. Ranges of different pools must not
// overlap.
type PortRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Launcher starts worker processes across the nodes allocated to a block.
type Launcher struct {
	// Overrides is appended verbatim to the launcher command line.
	Overrides string `yaml:"overrides"`
}

// Provider describes how a pool acquires its nodes from the job scheduler.
type Provider struct {
	Partition     string   `yaml:"partition"`
	NodesPerBlock int      `yaml:"nodes-per-block"`
	InitBlocks    int      `yaml:"init-blocks"`
	MaxBlocks     int      `yaml:"max-blocks"`
	Parallelism   int      `yaml:"parallelism"`
	Walltime      string   `yaml:"walltime"`
	CmdTimeout    Duration `yaml:"cmd-timeout"`
	// WorkerInit is the environment setup script run before workers start.
	WorkerInit string   `yaml:"worker-init"`
	MoveFiles  bool     `yaml:"move-files"`
	Launcher   Launcher `yaml:"launcher"`
}

// Executor is one isolated worker pool bound to a single scheduler partition.
type Executor struct {
	Label          string    `yaml:"label"`
	Address        string    `yaml:"address"`
	MaxWorkers     int       `yaml:"max-workers"`
	CoresPerWorker int       `yaml:"cores-per-worker"`
	WorkerDebug    bool      `yaml:"worker-debug"`
	PortRange      PortRange `yaml:"port-range"`
	Provider       Provider  `yaml:"provider"`
}

// Monitoring describes the resource monitoring hub attached to a run.
type Monitoring struct {
	WorkflowName       string   `yaml:"workflow-name"`
	HubAddress         string   `yaml:"hub-address"`
	HubPort            int      `yaml:"hub-port"`
	ResourceMonitoring bool     `yaml:"resource-monitoring"`
	Debug              bool     `yaml:"debug"`
	Interval           Duration `yaml:"interval"`
}

// Config is the complete engine configuration for one workflow run.
// It is built once by New and must be treated as read-only afterwards.
type Config struct {
	Name      string     `yaml:"name"`
	Executors []Executor `yaml:"executors"`
	// Monitoring is nil when monitoring is disabled.
	Monitoring *Monitoring `yaml:"monitoring,omitempty"`
}
