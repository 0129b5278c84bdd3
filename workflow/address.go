package workflow

import (
	"fmt"
	"net"
)

// AddressByInterface returns the first IPv4 address assigned to the named
// network interface. Worker pools advertise this address so that compute
// nodes reach the submit host over the right fabric.
func AddressByInterface(name string) (string, error) {
	iface, err := net.InterfaceByName(name)
	if err != nil {
		return "", fmt.Errorf("failed to resolve network interface '%s': %w", name, err)
	}

	addrs, err := iface.Addrs()
	if err != nil {
		return "", fmt.Errorf("failed to list addresses of interface '%s': %w", name, err)
	}

	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok {
			if ip := ipnet.IP.To4(); ip != nil {
				return ip.String(), nil
			}
		}
	}

	return "", fmt.Errorf("interface '%s' has no IPv4 address", name)
}
