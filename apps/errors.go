// Package apps contains helpers shared by the pipeline applications that run
// on the configured worker pools.
package apps

import "fmt"

// DefaultMissingDataMessage explains the most common input problem: the stage
// preparing the phylip data expects a tar archive with the nexus files.
const DefaultMissingDataMessage = "Unable to find a tar file with the nexus data."

// MissingDataError reports that the expected input data archive is absent
// from the directory an application was pointed at.
type MissingDataError struct {
	InputDir string
	Message  string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("%s -> %s", e.InputDir, e.Message)
}
