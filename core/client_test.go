package core

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"latbench/communication"
	"latbench/core/configs"
)

func testDataSet() *DataSet {
	return &DataSet{
		RequestCount: 2,
		Sizes:        []uint64{4, 4},
		DataBlock:    []byte("abcdXYZ9"),
	}
}

// runAgainstFakeServer drives one client session over an in-memory pipe
// while the given function plays the server side.
func runAgainstFakeServer(t *testing.T, config *configs.ClientConfig, serve func(*communication.Conn)) (*ClientSession, error) {
	t.Helper()

	clientEnd, serverEnd := net.Pipe()
	t.Cleanup(func() {
		clientEnd.Close()
		serverEnd.Close()
	})

	go serve(communication.NewConn(serverEnd))

	session := NewClientSession(communication.NewConn(clientEnd), config, testDataSet())

	return session, session.Run()
}

func echoRequest(t *testing.T, conn *communication.Conn) []byte {
	t.Helper()

	header, err := conn.ReadHeader()
	require.NoError(t, err)

	body, err := conn.ReadBody(header.Length)
	require.NoError(t, err)

	return body
}

func TestClientRecordsLatencyWithoutChecksumTrailer(t *testing.T) {
	config := configs.DefaultClientConfig()
	config.NumRequests = 1

	// A verifying client receiving a response too short for a checksum
	// trailer must warn, skip the comparison and still record a latency
	// from the trailing 19 bytes.
	session, err := runAgainstFakeServer(t, config, func(conn *communication.Conn) {
		echoRequest(t, conn)

		timestamp := appendTimestamp(nil, time.Now().UnixNano()-1000)
		require.NoError(t, conn.WriteMessage(false, timestamp))
	})

	require.NoError(t, err)

	entries := session.Latencies().Entries()
	require.Len(t, entries, 1)
	assert.Greater(t, entries[0], int64(0))
}

func TestClientSkipsRecordOnTinyResponse(t *testing.T) {
	config := configs.DefaultClientConfig()
	config.NumRequests = 1

	session, err := runAgainstFakeServer(t, config, func(conn *communication.Conn) {
		echoRequest(t, conn)

		require.NoError(t, conn.WriteMessage(false, []byte("abc")))
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), session.Latencies().Entries()[0])
}

func TestClientZeroesEntryOnUnparseableTimestamp(t *testing.T) {
	config := configs.DefaultClientConfig()
	config.NumRequests = 1
	config.Verify = false

	session, err := runAgainstFakeServer(t, config, func(conn *communication.Conn) {
		echoRequest(t, conn)

		require.NoError(t, conn.WriteMessage(false, []byte("xxxxxxxxxxxxxxxxxxx")))
	})

	require.NoError(t, err)
	assert.Equal(t, int64(0), session.Latencies().Entries()[0])
}

func TestClientVerifiesResponseChecksum(t *testing.T) {
	config := configs.DefaultClientConfig()
	config.NumRequests = 1

	corpus := []byte("response body")

	session, err := runAgainstFakeServer(t, config, func(conn *communication.Conn) {
		body := echoRequest(t, conn)

		// the request itself carries payload + checksum hex
		require.Len(t, body, 4+ChecksumHexSize)
		payload := body[:4]
		sum, sumErr := ParseChecksumHex(body[4:])
		require.NoError(t, sumErr)
		require.Equal(t, Checksum(0, payload), sum)

		sumHex := AppendChecksumHex(nil, Checksum(0, corpus))
		timestamp := appendTimestamp(nil, time.Now().UnixNano())
		require.NoError(t, conn.WriteMessage(false, corpus, sumHex, timestamp))
	})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, session.Latencies().Entries()[0], int64(0))
}

func TestClientStopsOnPeerClose(t *testing.T) {
	config := configs.DefaultClientConfig()
	config.NumRequests = 2

	_, err := runAgainstFakeServer(t, config, func(conn *communication.Conn) {
		echoRequest(t, conn)
		conn.Close()
	})

	require.Error(t, err)
}
