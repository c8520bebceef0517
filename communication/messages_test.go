package communication

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderRoundTrip(t *testing.T) {
	headers := []MessageHeader{
		{Length: 0, KeepAlive: false},
		{Length: 1, KeepAlive: true},
		{Length: 1 << 20, KeepAlive: true},
		{Length: ^uint64(0), KeepAlive: false},
	}

	for _, header := range headers {
		assert.Equal(t, header, DecodeHeader(EncodeHeader(header)))
	}
}

func TestHeaderWireLayout(t *testing.T) {
	encoded := EncodeHeader(MessageHeader{Length: 0x0102030405060708, KeepAlive: true})

	// big-endian length, then the flag byte
	assert.Equal(t,
		[HeaderSize]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x01},
		encoded)
}
