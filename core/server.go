package core

import (
	"errors"
	"io"
	"net"
	"time"

	"go.uber.org/zap"

	"latbench/communication"
	"latbench/core/configs"
)

// Server owns the response corpus and the listener. It accepts exactly one
// connection per run and serves it to completion; a second connection would
// skew the measurement of the first.
type Server struct {
	config   *configs.ServerConfig
	corpus   *ResponseCorpus
	listener net.Listener
}

// NewServer generates the corpus and binds the listener. An invalid corpus
// configuration aborts before any listener exists.
func NewServer(config *configs.ServerConfig) (*Server, error) {
	corpus, err := GenerateCorpus(config.Seed, config.NumResponses, config.MinLength, config.MaxLength)

	if err != nil {
		return nil, err
	}

	zap.L().Info("generated response corpus",
		zap.Int("responses", corpus.Len()),
		zap.Int("min-length", config.MinLength),
		zap.Int("max-length", config.MaxLength))

	listener, err := communication.Listen(config.Transport, config.Address())

	if err != nil {
		return nil, err
	}

	return &Server{
		config:   config,
		corpus:   corpus,
		listener: listener,
	}, nil
}

// Addr reports the bound listener address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Close releases the listener.
func (s *Server) Close() error {
	return s.listener.Close()
}

// Serve accepts a single connection and runs the session on it. The
// listener is closed when the session ends.
func (s *Server) Serve() error {
	defer s.listener.Close()

	conn, err := communication.AcceptOne(s.listener)

	if err != nil {
		return err
	}
	defer conn.Close()

	zap.L().Info("serving connection", zap.String("peer", conn.RemoteAddr()))

	err = s.session(conn)

	if shutdownErr := conn.Shutdown(); shutdownErr != nil {
		zap.L().Warn("failed to shut down connection", zap.Error(shutdownErr))
	}

	return err
}

// session answers requests until the response budget is exhausted, the
// peer stops asking for connection reuse, or an I/O error occurs.
func (s *Server) session(conn *communication.Conn) error {
	served := 0

	for {
		header, err := conn.ReadHeader()

		if errors.Is(err, io.EOF) {
			// peer closed between requests
			return nil
		}

		if err != nil {
			return err
		}

		body, err := conn.ReadBody(header.Length)

		if err != nil {
			return err
		}

		if s.config.Verify && len(body) >= ChecksumHexSize {
			s.verifyRequest(served, body)
		}

		if err := s.respond(conn); err != nil {
			return err
		}

		served++

		if served >= s.config.NumResponses {
			zap.L().Info("response budget exhausted", zap.Int("served", served))
			return nil
		}

		if !header.KeepAlive {
			return nil
		}
	}
}

// verifyRequest splits the trailing checksum hex off the request body and
// compares it against a digest of the rest. A mismatch is only a warning;
// the request is still answered.
func (s *Server) verifyRequest(served int, body []byte) {
	payload := body[:len(body)-ChecksumHexSize]

	received, err := ParseChecksumHex(body[len(body)-ChecksumHexSize:])

	if err != nil {
		zap.L().Warn("request checksum cannot be parsed",
			zap.Int("request", served),
			zap.Error(err))
		return
	}

	if Checksum(0, payload) != received {
		zap.L().Warn("request checksum mismatch", zap.Int("request", served))
	}
}

// respond sends the representative corpus body followed by the trailer:
// the optional checksum hex, then the send-time timestamp as the final 19
// bytes.
func (s *Server) respond(conn *communication.Conn) error {
	body := s.corpus.Body(0)
	timestamp := appendTimestamp(nil, time.Now().UnixNano())

	if s.config.Verify {
		sumHex := AppendChecksumHex(nil, Checksum(0, body))
		return conn.WriteMessage(false, body, sumHex, timestamp)
	}

	return conn.WriteMessage(false, body, timestamp)
}
