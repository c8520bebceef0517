// This file defines the wire frame exchanged between the benchmark client
// and server. Every message is a declared-length body preceded by a fixed
// size header, so the sessions never have to guess where a body ends.

// Package communication provides the byte-stream transport between the
// benchmark client and server. It frames messages with a declared body
// length, retries partial reads until the declared length is satisfied and
// exposes the same blocking interface over TCP and unix domain sockets.
package communication

import (
	"encoding/binary"
)

// HeaderSize is the fixed length of a frame header on the wire: an 8-byte
// big-endian body length followed by one flag byte.
const HeaderSize = 9

const flagKeepAlive = 0x01

// MessageHeader describes one framed message.
type MessageHeader struct {
	Length    uint64 // declared body length in bytes
	KeepAlive bool   // sender wants the connection kept open afterwards
}

// EncodeHeader renders the header into its fixed wire form.
func EncodeHeader(header MessageHeader) [HeaderSize]byte {
	var buf [HeaderSize]byte

	binary.BigEndian.PutUint64(buf[:8], header.Length)

	if header.KeepAlive {
		buf[8] |= flagKeepAlive
	}

	return buf
}

// DecodeHeader parses a frame header from its fixed wire form.
func DecodeHeader(buf [HeaderSize]byte) MessageHeader {
	return MessageHeader{
		Length:    binary.BigEndian.Uint64(buf[:8]),
		KeepAlive: buf[8]&flagKeepAlive != 0,
	}
}
