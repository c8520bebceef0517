package core

import (
	"fmt"
	"math/rand"
)

// ResponseCorpus holds the server's precomputed response bodies: one shared
// buffer of pseudorandom printable bytes and a set of (offset, length)
// slices into it. Immutable once generated.
type ResponseCorpus struct {
	sharedBuffer []byte
	slices       []bodySlice
}

type bodySlice struct {
	offset int
	length int
}

// GenerateCorpus builds a corpus deterministically from the seed: the
// shared buffer is filled first, then lengths and offsets are drawn in
// slice order, so the same seed reproduces byte-identical responses across
// runs. minLength greater than maxLength is a fatal configuration error.
func GenerateCorpus(seed int64, numResponses int, minLength int, maxLength int) (*ResponseCorpus, error) {
	if minLength > maxLength {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("min-length %d exceeds max-length %d", minLength, maxLength),
		}
	}

	if numResponses < 1 {
		return nil, &ConfigError{
			Reason: fmt.Sprintf("num-responses %d, need at least 1", numResponses),
		}
	}

	rng := rand.New(rand.NewSource(seed))

	sharedBuffer := make([]byte, maxLength)
	for i := range sharedBuffer {
		// printable ASCII, 32..126
		sharedBuffer[i] = byte(32 + rng.Intn(95))
	}

	slices := make([]bodySlice, numResponses)
	for i := range slices {
		length := minLength + rng.Intn(maxLength-minLength+1)

		offset := 0
		if maxLength > length {
			offset = rng.Intn(maxLength - length + 1)
		}

		slices[i] = bodySlice{offset: offset, length: length}
	}

	return &ResponseCorpus{sharedBuffer: sharedBuffer, slices: slices}, nil
}

// Len reports the number of response slices in the corpus.
func (c *ResponseCorpus) Len() int {
	return len(c.slices)
}

// Body returns response body i as a view into the shared buffer.
func (c *ResponseCorpus) Body(i int) []byte {
	s := c.slices[i]
	return c.sharedBuffer[s.offset : s.offset+s.length]
}
