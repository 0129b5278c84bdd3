package apps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingDataErrorText(t *testing.T) {
	err := &MissingDataError{InputDir: "/scratch/run42/input", Message: "no archive here"}
	assert.EqualError(t, err, "/scratch/run42/input -> no archive here")
}

func TestMissingDataErrorDefaultMessage(t *testing.T) {
	err := &MissingDataError{InputDir: "/data", Message: DefaultMissingDataMessage}
	assert.EqualError(t, err, "/data -> Unable to find a tar file with the nexus data.")
}
