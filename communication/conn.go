package communication

import (
	"bufio"
	"fmt"
	"io"
	"net"
)

// Conn wraps a connected byte stream with buffered framing. The same
// session code runs over TCP and unix domain sockets; the only difference
// between the two transports is how the underlying net.Conn is obtained.
type Conn struct {
	conn   net.Conn
	reader *bufio.Reader
	writer *bufio.Writer
}

// NewConn wraps an established connection.
func NewConn(conn net.Conn) *Conn {
	return &Conn{
		conn:   conn,
		reader: bufio.NewReader(conn),
		writer: bufio.NewWriter(conn),
	}
}

// Dial connects to a benchmark server. The transport is either "tcp", with
// addr as host:port, or "unix", with addr as a socket path.
func Dial(transport string, addr string) (*Conn, error) {
	conn, err := net.Dial(transport, addr)

	if err != nil {
		return nil, fmt.Errorf("failed to connect over %s to %s: %w", transport, addr, err)
	}

	return NewConn(conn), nil
}

// WriteMessage frames the given body segments as one message and sends it.
// Segments are written in order without an intermediate copy, so callers
// can pass a payload and its trailer pieces separately.
func (c *Conn) WriteMessage(keepAlive bool, segments ...[]byte) error {
	var length uint64

	for _, segment := range segments {
		length += uint64(len(segment))
	}

	header := EncodeHeader(MessageHeader{Length: length, KeepAlive: keepAlive})

	if _, err := c.writer.Write(header[:]); err != nil {
		return err
	}

	for _, segment := range segments {
		if _, err := c.writer.Write(segment); err != nil {
			return err
		}
	}

	return c.writer.Flush()
}

// ReadHeader blocks until a full frame header is available. A connection
// closed cleanly between messages surfaces as io.EOF; a close in the middle
// of a header is a PartialMessageError.
func (c *Conn) ReadHeader() (MessageHeader, error) {
	var buf [HeaderSize]byte

	n, err := io.ReadFull(c.reader, buf[:])

	if err == io.EOF {
		return MessageHeader{}, io.EOF
	}

	if err == io.ErrUnexpectedEOF {
		return MessageHeader{}, &PartialMessageError{Read: uint64(n), Declared: HeaderSize}
	}

	if err != nil {
		return MessageHeader{}, err
	}

	return DecodeHeader(buf), nil
}

// ReadBody reads exactly the declared number of body bytes into a buffer
// sized up front. Short reads are retried until the length is satisfied; a
// peer close before that is a PartialMessageError.
func (c *Conn) ReadBody(length uint64) ([]byte, error) {
	body := make([]byte, length)

	n, err := io.ReadFull(c.reader, body)

	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return nil, &PartialMessageError{Read: uint64(n), Declared: length}
	}

	if err != nil {
		return nil, err
	}

	return body, nil
}

// Shutdown closes the write side of the connection, signalling the peer
// that no further messages follow while leaving the read side open.
func (c *Conn) Shutdown() error {
	switch conn := c.conn.(type) {
	case *net.TCPConn:
		return conn.CloseWrite()
	case *net.UnixConn:
		return conn.CloseWrite()
	default:
		return nil
	}
}

// RemoteAddr reports the peer address for logging.
func (c *Conn) RemoteAddr() string {
	return c.conn.RemoteAddr().String()
}

// Close tears the connection down.
func (c *Conn) Close() error {
	return c.conn.Close()
}
