package workflow

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/samber/lo"
)

// NumPools is the number of worker pools in a configuration.
const NumPools = 4

const (
	monitoringHubPort = 60001
	cmdTimeout        = Duration(2 * time.Minute)
)

type pool struct {
	label          string
	coresPerWorker int
	ports          PortRange
}

// poolLayout is the fixed per-pool geometry. The first pool runs
// single-threaded tool invocations, the others run the multi-core
// phylogenetics tools. The resource lists in Options are positional against
// this table.
var poolLayout = [NumPools]pool{
	{"single_thread", 1, PortRange{50000, 55000}},
	{"raxml", 6, PortRange{55000, 60000}},
	{"snaq", 6, PortRange{40000, 45000}},
	{"snaq_l", 6, PortRange{45000, 50000}},
}

// New builds the engine configuration for one workflow run. It reads the
// worker environment setup file and injects its contents verbatim into every
// pool; a missing file is reported as-is. The returned Config always holds
// exactly NumPools executors.
func New(name string, opts Options) (*Config, error) {
	if err := Validate(opts); err != nil {
		return nil, fmt.Errorf("invalid workflow options: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	env, err := os.ReadFile(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read worker environment file: %w", err)
	}
	workerInit := string(env)
	logger.Debug("Worker environment loaded", "file", envFile, "bytes", len(env))

	address := opts.Address
	if address == "" {
		iface := opts.Interface
		if iface == "" {
			iface = DefaultInterface
		}
		if address, err = AddressByInterface(iface); err != nil {
			return nil, err
		}
	}

	config := &Config{
		Name: name,
		Executors: lo.Map(poolLayout[:], func(p pool, i int) Executor {
			return Executor{
				Label:          p.label,
				Address:        address,
				MaxWorkers:     opts.CoresPerNode[i],
				CoresPerWorker: p.coresPerWorker,
				WorkerDebug:    false,
				PortRange:      p.ports,
				Provider: Provider{
					Partition:     opts.Partitions[i],
					NodesPerBlock: opts.Nodes[i],
					InitBlocks:    1,
					MaxBlocks:     1,
					Parallelism:   1,
					Walltime:      opts.Walltime[i],
					CmdTimeout:    cmdTimeout,
					WorkerInit:    workerInit,
					MoveFiles:     false,
					Launcher:      Launcher{Overrides: fmt.Sprintf("-c %d", opts.CoresPerNode[i])},
				},
			}
		}),
	}

	if opts.Monitor {
		config.Monitoring = &Monitoring{
			WorkflowName:       name,
			HubAddress:         address,
			HubPort:            monitoringHubPort,
			ResourceMonitoring: true,
			Debug:              false,
			Interval:           opts.MonitorInterval,
		}
	}

	logger.Info("Workflow configuration built",
		"name", name,
		"address", address,
		"executors", len(config.Executors),
		"monitoring", opts.Monitor,
	)
	return config, nil
}
