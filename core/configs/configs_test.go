package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientConfigValidate(t *testing.T) {
	config := DefaultClientConfig()
	config.Host = "127.0.0.1"
	require.NoError(t, config.Validate())

	config.Transport = "udp"
	assert.Error(t, config.Validate())

	config.Transport = TransportTCP
	config.Host = ""
	assert.Error(t, config.Validate())
}

func TestClientConfigAddress(t *testing.T) {
	config := DefaultClientConfig()
	config.Host = "10.0.0.5"
	config.Port = 9000
	assert.Equal(t, "10.0.0.5:9000", config.Address())

	config.Transport = TransportUnix
	config.Host = "/tmp/bench.sock"
	assert.Equal(t, "/tmp/bench.sock", config.Address())
}

func TestServerConfigValidate(t *testing.T) {
	config := DefaultServerConfig()
	require.NoError(t, config.Validate())

	config.Transport = "udp"
	assert.Error(t, config.Validate())

	config = DefaultServerConfig()
	config.Transport = TransportUnix
	config.SocketPath = ""
	assert.Error(t, config.Validate())

	config = DefaultServerConfig()
	config.MinLength = -1
	assert.Error(t, config.Validate())
}

func TestServerConfigAddress(t *testing.T) {
	config := DefaultServerConfig()
	assert.Equal(t, "127.0.0.1:8080", config.Address())

	config.Transport = TransportUnix
	assert.Equal(t, "/tmp/latbench.sock", config.Address())
}
