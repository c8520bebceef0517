package core

import (
	"encoding/binary"
	"os"
)

// DataSet is the immutable parsed form of a benchmark data file. The file
// layout is fixed for compatibility with existing data files: an 8-byte
// little-endian request count, that many 8-byte little-endian sizes, and
// the remaining bytes as the shared data block request payloads are sliced
// from.
type DataSet struct {
	RequestCount uint64   // Number of size entries in the file
	Sizes        []uint64 // Requested payload length per request index
	DataBlock    []byte   // Source of payload slices, may be empty
}

// LoadDataSet reads a whole benchmark data file into memory and decodes
// it. Only structural completeness is checked here; payload sizes larger
// than the data block surface at request time, not load time.
func LoadDataSet(path string) (*DataSet, error) {
	raw, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return decodeDataSet(path, raw)
}

func decodeDataSet(path string, raw []byte) (*DataSet, error) {
	if len(raw) < 8 {
		return nil, &TruncatedDataError{
			Path:      path,
			Segment:   "request count",
			Expected:  8,
			Remaining: len(raw),
		}
	}

	count := binary.LittleEndian.Uint64(raw)
	remain := raw[8:]

	if count > uint64(len(remain))/8 {
		return nil, &TruncatedDataError{
			Path:      path,
			Segment:   "sizes",
			Expected:  int(count) * 8,
			Remaining: len(remain),
		}
	}

	sizes := make([]uint64, count)
	for i := range sizes {
		sizes[i] = binary.LittleEndian.Uint64(remain[i*8:])
	}

	return &DataSet{
		RequestCount: count,
		Sizes:        sizes,
		DataBlock:    remain[count*8:],
	}, nil
}

// Payload returns the request body for request index i. Indices wrap over
// the sizes sequence, so more requests than size entries can be issued. A
// size exceeding the data block is truncated to whatever remains.
func (d *DataSet) Payload(i uint64) []byte {
	if len(d.Sizes) == 0 {
		return nil
	}

	size := d.Sizes[i%uint64(len(d.Sizes))]

	if size > uint64(len(d.DataBlock)) {
		size = uint64(len(d.DataBlock))
	}

	return d.DataBlock[:size]
}

// WriteDataSet persists a data set in the benchmark file layout, making
// the encoder and the loader share one definition of the format.
func WriteDataSet(path string, sizes []uint64, dataBlock []byte) error {
	buf := make([]byte, 0, 8+8*len(sizes)+len(dataBlock))

	buf = binary.LittleEndian.AppendUint64(buf, uint64(len(sizes)))
	for _, size := range sizes {
		buf = binary.LittleEndian.AppendUint64(buf, size)
	}
	buf = append(buf, dataBlock...)

	return os.WriteFile(path, buf, 0644)
}
