package workflow

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadProfile reads a YAML cluster profile and returns it merged over
// DefaultOptions, so a profile only needs to name the fields it changes.
func LoadProfile(path string) (Options, error) {
	opts := DefaultOptions()

	buf, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("failed to read cluster profile: %w", err)
	}
	if err = yaml.Unmarshal(buf, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse cluster profile '%s': %w", path, err)
	}

	return opts, nil
}
