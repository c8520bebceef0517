package communication

import (
	"fmt"
	"net"
	"os"

	"go.uber.org/zap"
)

// Listen binds a listener for the benchmark server. For the unix transport
// a stale socket file left by a previous run is removed before binding.
func Listen(transport string, addr string) (net.Listener, error) {
	if transport == "unix" {
		// A previous run that crashed leaves the socket file behind
		// and the bind would fail with EADDRINUSE.
		os.Remove(addr)
	}

	listener, err := net.Listen(transport, addr)

	if err != nil {
		return nil, fmt.Errorf("failed to listen over %s on %s: %w", transport, addr, err)
	}

	return listener, nil
}

// AcceptOne waits for a single client connection. Accepted TCP connections
// disable Nagle so small request frames are not delayed by the kernel.
func AcceptOne(listener net.Listener) (*Conn, error) {
	conn, err := listener.Accept()

	if err != nil {
		return nil, err
	}

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		if err := tcpConn.SetNoDelay(true); err != nil {
			zap.L().Warn("failed to set TCP_NODELAY on accepted socket",
				zap.Error(err))
		}
	}

	return NewConn(conn), nil
}
