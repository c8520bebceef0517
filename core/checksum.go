// Package core implements the benchmark protocol itself: the test-data
// format, the rotate-XOR checksum, the response corpus and the per-request
// client and server state machines.
package core

import (
	"fmt"
	"math/bits"
	"strconv"
)

// ChecksumHexSize is the rendered width of a checksum inside a message
// trailer: 16 uppercase hex characters.
const ChecksumHexSize = 16

// Checksum digests a byte range: for every byte the accumulator is rotated
// right by 7 bits and XORed with the byte. A fresh digest starts from seed
// 0; passing a previous result as the seed continues the digest across
// non-contiguous ranges, which equals a one-pass digest of their
// concatenation.
func Checksum(seed uint64, data []byte) uint64 {
	acc := seed

	for _, b := range data {
		acc = bits.RotateLeft64(acc, -7) ^ uint64(b)
	}

	return acc
}

// AppendChecksumHex appends the trailer form of a checksum to dst.
func AppendChecksumHex(dst []byte, sum uint64) []byte {
	return fmt.Appendf(dst, "%016X", sum)
}

// ParseChecksumHex parses the trailer form of a checksum.
func ParseChecksumHex(hex []byte) (uint64, error) {
	if len(hex) != ChecksumHexSize {
		return 0, fmt.Errorf("checksum hex has length %d, want %d", len(hex), ChecksumHexSize)
	}

	return strconv.ParseUint(string(hex), 16, 64)
}
