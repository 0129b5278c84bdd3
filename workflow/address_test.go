package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressByInterfaceUnknown(t *testing.T) {
	address, err := AddressByInterface("definitely-not-an-interface0")
	assert.Empty(t, address)
	assert.ErrorContains(t, err, "failed to resolve network interface 'definitely-not-an-interface0'")
}
