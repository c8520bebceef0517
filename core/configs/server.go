package configs

import (
	"fmt"
	"net"
	"strconv"
)

// ServerConfig describes one benchmark server run.
type ServerConfig struct {
	Transport    string `yaml:"transport"`     // "tcp" or "unix"
	Seed         int64  `yaml:"seed"`          // Seed for the response corpus PRNG
	NumResponses int    `yaml:"num-responses"` // Corpus size, also the request budget per session
	MinLength    int    `yaml:"min-length"`    // Minimum response body size in bytes
	MaxLength    int    `yaml:"max-length"`    // Maximum response body size in bytes
	Host         string `yaml:"host"`          // Bind host for TCP transport
	Port         uint16 `yaml:"port"`          // Bind port for TCP transport
	SocketPath   string `yaml:"socket-path"`   // Path for the unix domain socket
	Verify       bool   `yaml:"verify"`        // Exchange and check checksums
}

// DefaultServerConfig returns the server defaults before file and flag
// overrides are applied.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Transport:    TransportTCP,
		Seed:         1234,
		NumResponses: 100,
		MinLength:    1024,
		MaxLength:    1024 * 1024,
		Host:         "127.0.0.1",
		Port:         8080,
		SocketPath:   "/tmp/latbench.sock",
		Verify:       true,
	}
}

// Address returns the bind address for the configured transport.
func (c *ServerConfig) Address() string {
	if c.Transport == TransportUnix {
		return c.SocketPath
	}

	return net.JoinHostPort(c.Host, strconv.Itoa(int(c.Port)))
}

// Validate checks the structural configuration. The min/max length
// relation is deliberately left to corpus generation so an invalid corpus
// aborts the server before a listener is bound.
func (c *ServerConfig) Validate() error {
	if c.Transport != TransportTCP && c.Transport != TransportUnix {
		return fmt.Errorf("transport must be %q or %q, got %q", TransportTCP, TransportUnix, c.Transport)
	}

	if c.Transport == TransportUnix && c.SocketPath == "" {
		return fmt.Errorf("no socket path provided for unix transport")
	}

	if c.MinLength < 0 || c.MaxLength < 0 {
		return fmt.Errorf("body lengths must not be negative")
	}

	return nil
}
