package core

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"latbench/communication"
	"latbench/core/configs"
	"latbench/core/results"
)

// ClientSession drives the request/response loop against one server
// connection. Each request walks the same states: compose a payload slice,
// send it, receive the full declared response, extract the trailer and
// record the latency. Protocol anomalies in a response are warnings and the
// loop continues; transport errors stop the session immediately, with no
// retry and no reconnect.
type ClientSession struct {
	conn      *communication.Conn
	config    *configs.ClientConfig
	data      *DataSet
	latencies *results.LatencyRecorder
	staging   []byte
}

// NewClientSession prepares a session over an established connection.
func NewClientSession(conn *communication.Conn, config *configs.ClientConfig, data *DataSet) *ClientSession {
	return &ClientSession{
		conn:      conn,
		config:    config,
		data:      data,
		latencies: results.NewLatencyRecorder(config.NumRequests),
	}
}

// Latencies exposes the recorder after (or during) a run.
func (s *ClientSession) Latencies() *results.LatencyRecorder {
	return s.latencies
}

// Run issues the configured number of requests in a strict ping-pong.
func (s *ClientSession) Run() error {
	for i := uint64(0); i < s.config.NumRequests; i++ {
		if err := s.exchange(i); err != nil {
			return err
		}
	}

	return nil
}

// exchange performs one request/response round trip.
func (s *ClientSession) exchange(i uint64) error {
	payload := s.data.Payload(i)
	keepAlive := i+1 < s.config.NumRequests

	var err error
	switch {
	case s.config.Verify:
		// The checksum trailer is logically part of the payload; the
		// declared frame length tells the server where it ends.
		sumHex := AppendChecksumHex(nil, Checksum(0, payload))
		err = s.conn.WriteMessage(keepAlive, payload, sumHex)
	case s.config.ZeroCopy:
		err = s.conn.WriteMessage(keepAlive, payload)
	default:
		s.staging = append(s.staging[:0], payload...)
		err = s.conn.WriteMessage(keepAlive, s.staging)
	}

	if err != nil {
		return fmt.Errorf("failed to send request %d: %w", i, err)
	}

	header, err := s.conn.ReadHeader()
	if err != nil {
		return fmt.Errorf("failed to read response header %d: %w", i, err)
	}

	body, err := s.conn.ReadBody(header.Length)
	if err != nil {
		return fmt.Errorf("failed to read response body %d: %w", i, err)
	}

	receiveTime := time.Now().UnixNano()

	s.extractTrailer(i, body, receiveTime)

	return nil
}

// extractTrailer verifies the response and records its latency. Nothing in
// here is fatal: a malformed trailer invalidates this entry only.
func (s *ClientSession) extractTrailer(i uint64, body []byte, receiveTime int64) {
	if len(body) < TimestampSize {
		zap.L().Warn("response too short for timestamp trailer",
			zap.Uint64("request", i),
			zap.Int("length", len(body)))
		return
	}

	if s.config.Verify {
		s.verifyChecksum(i, body)
	}

	sendTime, err := parseTimestamp(body[len(body)-TimestampSize:])

	if err != nil {
		zap.L().Warn("response timestamp cannot be parsed",
			zap.Uint64("request", i),
			zap.Error(err))
		return
	}

	s.latencies.Record(i, receiveTime-sendTime)
}

func (s *ClientSession) verifyChecksum(i uint64, body []byte) {
	if len(body) < VerifiedTrailerSize {
		zap.L().Warn("response too short for checksum trailer",
			zap.Uint64("request", i),
			zap.Int("length", len(body)))
		return
	}

	payloadEnd := len(body) - VerifiedTrailerSize

	expected, err := ParseChecksumHex(body[payloadEnd : payloadEnd+ChecksumHexSize])

	if err != nil {
		zap.L().Warn("response checksum cannot be parsed",
			zap.Uint64("request", i),
			zap.Error(err))
		return
	}

	if sum := Checksum(0, body[:payloadEnd]); sum != expected {
		zap.L().Warn("response checksum mismatch",
			zap.Uint64("request", i),
			zap.String("expected", fmt.Sprintf("%016X", expected)),
			zap.String("computed", fmt.Sprintf("%016X", sum)))
	}
}
