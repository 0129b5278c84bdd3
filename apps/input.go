package apps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FindDataArchive returns the path of the tar archive holding the nexus input
// data inside dir. When dir is readable but holds no archive, the returned
// error is a *MissingDataError.
func FindDataArchive(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read input directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".tar") || strings.HasSuffix(name, ".tar.gz") {
			return filepath.Join(dir, name), nil
		}
	}

	return "", &MissingDataError{InputDir: dir, Message: DefaultMissingDataMessage}
}
