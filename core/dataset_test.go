package core

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, content, 0644))

	return path
}

func TestLoadDataSetRejectsShortHeader(t *testing.T) {
	path := writeTempFile(t, []byte{1, 2, 3, 4})

	_, err := LoadDataSet(path)

	var truncated *TruncatedDataError
	require.ErrorAs(t, err, &truncated)
	assert.Equal(t, "request count", truncated.Segment)
}

func TestLoadDataSetRejectsTruncatedSizes(t *testing.T) {
	// declares 3 sizes but only carries 2
	content := make([]byte, 8+16)
	binary.LittleEndian.PutUint64(content, 3)

	path := writeTempFile(t, content)

	_, err := LoadDataSet(path)

	var truncated *TruncatedDataError
	require.ErrorAs(t, err, &truncated)
	assert.Equal(t, "sizes", truncated.Segment)
}

func TestDataSetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, WriteDataSet(path, []uint64{4, 4}, []byte("abcdXYZ9")))

	data, err := LoadDataSet(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(2), data.RequestCount)
	assert.Equal(t, []uint64{4, 4}, data.Sizes)
	assert.Equal(t, []byte("abcdXYZ9"), data.DataBlock)
}

func TestLoadDataSetEmptyBlock(t *testing.T) {
	content := make([]byte, 8)
	path := writeTempFile(t, content)

	data, err := LoadDataSet(path)
	require.NoError(t, err)

	assert.Empty(t, data.Sizes)
	assert.Empty(t, data.DataBlock)
	assert.Nil(t, data.Payload(0))
}

func TestPayloadWrapsAndTruncates(t *testing.T) {
	data := &DataSet{
		RequestCount: 2,
		Sizes:        []uint64{4, 100},
		DataBlock:    []byte("abcdXYZ9"),
	}

	assert.Equal(t, []byte("abcd"), data.Payload(0))

	// size exceeds the data block, truncated to what remains
	assert.Equal(t, []byte("abcdXYZ9"), data.Payload(1))

	// indices wrap over the sizes sequence
	assert.Equal(t, []byte("abcd"), data.Payload(2))
}

func TestTruncatedDataErrorMessage(t *testing.T) {
	err := error(&TruncatedDataError{Path: "x.bin", Segment: "sizes", Expected: 24, Remaining: 16})

	var truncated *TruncatedDataError
	assert.True(t, errors.As(err, &truncated))
	assert.Contains(t, err.Error(), "sizes")
}
