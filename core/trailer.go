package core

import (
	"strconv"
)

// Every response body ends with a fixed-width trailer that is consumed by
// stripping known-length suffixes: optionally 16 checksum hex bytes, then
// always 19 ASCII decimal bytes holding the server send time in epoch
// nanoseconds. Epoch nanoseconds are 19 digits wide from 2001 until 2262,
// so the literal decimal rendering is fixed width in practice.
const (
	// TimestampSize is the width of the decimal nanosecond timestamp.
	TimestampSize = 19

	// VerifiedTrailerSize is the full trailer width when checksum
	// verification is enabled.
	VerifiedTrailerSize = ChecksumHexSize + TimestampSize
)

func appendTimestamp(dst []byte, nanos int64) []byte {
	return strconv.AppendInt(dst, nanos, 10)
}

func parseTimestamp(trailer []byte) (int64, error) {
	return strconv.ParseInt(string(trailer), 10, 64)
}
