package workflow

import (
	"errors"
	"fmt"
	"regexp"
)

// Slurm walltime: HH:MM:SS, optionally with a leading day count (D-HH:MM:SS).
var walltimeRegex = regexp.MustCompile(`^(\d+-)?\d{1,2}:\d{2}:\d{2}$`)

// Validate checks the builder inputs before any file or network access.
func Validate(opts Options) error {
	lists := []struct {
		name string
		len  int
	}{
		{"partitions", len(opts.Partitions)},
		{"nodes", len(opts.Nodes)},
		{"cores-per-node", len(opts.CoresPerNode)},
		{"walltime", len(opts.Walltime)},
	}
	for _, list := range lists {
		if list.len != NumPools {
			return fmt.Errorf("%s must have exactly %d entries, got %d", list.name, NumPools, list.len)
		}
	}

	for i, partition := range opts.Partitions {
		if partition == "" {
			return fmt.Errorf("partitions[%d] must not be empty", i)
		}
	}
	for i, nodes := range opts.Nodes {
		if nodes < 1 {
			return fmt.Errorf("nodes[%d] must be greater than 0", i)
		}
	}
	for i, cores := range opts.CoresPerNode {
		if cores < 1 {
			return fmt.Errorf("cores-per-node[%d] must be greater than 0", i)
		}
	}
	for i, walltime := range opts.Walltime {
		if !walltimeRegex.MatchString(walltime) {
			return fmt.Errorf("walltime[%d] '%s' is not a valid walltime", i, walltime)
		}
	}

	if opts.Monitor && opts.MonitorInterval <= 0 {
		return errors.New("monitor-interval must be greater than 0")
	}

	return nil
}
