// Package results records and analyses the measured latencies. Each entry
// is the client receive time minus the server send time embedded in the
// response trailer, in nanoseconds. Entries are persisted verbatim as
// little-endian signed 64-bit integers in request order, the layout the
// analysis tooling expects.
package results

import (
	"encoding/binary"
	"os"

	"go.uber.org/zap"
)

// LatencyRecorder is a fixed-size, write-once array of latency entries.
// The size is fixed before the request loop starts; entries for failed
// extractions simply stay zero.
type LatencyRecorder struct {
	entries []int64
}

// NewLatencyRecorder allocates a recorder for the given request count.
func NewLatencyRecorder(numRequests uint64) *LatencyRecorder {
	return &LatencyRecorder{
		entries: make([]int64, numRequests),
	}
}

// Record stores the latency for request index i.
func (r *LatencyRecorder) Record(i uint64, deltaNanos int64) {
	r.entries[i] = deltaNanos
}

// Entries exposes the recorded values in request order.
func (r *LatencyRecorder) Entries() []int64 {
	return r.entries
}

// WriteFile dumps the entries as raw little-endian int64 values.
func (r *LatencyRecorder) WriteFile(path string) error {
	buf := make([]byte, 0, 8*len(r.entries))

	for _, entry := range r.entries {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(entry))
	}

	return os.WriteFile(path, buf, 0644)
}

// ReadLatencyFile loads a raw latency dump back into memory. A file size
// that is not a multiple of 8 is logged and the trailing fragment is
// dropped.
func ReadLatencyFile(path string) ([]int64, error) {
	content, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	if len(content)%8 != 0 {
		zap.L().Warn("latency file size is not a multiple of 8, dropping trailing bytes",
			zap.String("path", path),
			zap.Int("size", len(content)))
	}

	entries := make([]int64, len(content)/8)
	for i := range entries {
		entries[i] = int64(binary.LittleEndian.Uint64(content[i*8:]))
	}

	return entries, nil
}
