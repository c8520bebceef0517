// Package configs holds the immutable configuration values for the
// benchmark client and server. A configuration is constructed once, from
// defaults, an optional YAML file and command line flags, validated, and
// then passed by reference into every component.
package configs

import (
	"fmt"
	"net"
	"strconv"
)

// Supported transport kinds. The names double as the network argument for
// the net package.
const (
	TransportTCP  = "tcp"
	TransportUnix = "unix"
)

// ClientConfig describes one benchmark client run.
type ClientConfig struct {
	Host        string `yaml:"host"`         // Server host, or socket path for unix transport
	Port        uint16 `yaml:"port"`         // Server port, ignored for unix transport
	Transport   string `yaml:"transport"`    // "tcp" or "unix"
	NumRequests uint64 `yaml:"num-requests"` // Number of requests to issue
	DataFile    string `yaml:"data-file"`    // Path to the pre-generated data file
	OutputFile  string `yaml:"output-file"`  // Raw latency dump destination
	Verify      bool   `yaml:"verify"`       // Exchange and check checksums
	ZeroCopy    bool   `yaml:"zero-copy"`    // Send payloads without a staging copy
}

// DefaultClientConfig returns the client defaults before file and flag
// overrides are applied.
func DefaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Transport:   TransportTCP,
		NumRequests: 1000,
		DataFile:    "benchmark_data.bin",
		OutputFile:  "latencies.bin",
		Verify:      true,
	}
}

// Address returns the dial address for the configured transport.
func (c *ClientConfig) Address() string {
	if c.Transport == TransportUnix {
		return c.Host
	}

	return net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port)))
}

// Validate checks the configuration before any connection is attempted.
func (c *ClientConfig) Validate() error {
	if c.Transport != TransportTCP && c.Transport != TransportUnix {
		return fmt.Errorf("transport must be %q or %q, got %q", TransportTCP, TransportUnix, c.Transport)
	}

	if c.Host == "" {
		return fmt.Errorf("no server host or socket path provided")
	}

	if c.DataFile == "" {
		return fmt.Errorf("no data file provided")
	}

	if c.OutputFile == "" {
		return fmt.Errorf("no output file provided")
	}

	return nil
}
