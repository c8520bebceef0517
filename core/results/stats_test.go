package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeExcludesNegatives(t *testing.T) {
	raw := []int64{-5, -1}
	for i := int64(0); i < 1000; i++ {
		raw = append(raw, i)
	}

	summary := Summarize(raw)
	require.NotNil(t, summary)

	assert.Equal(t, 1002, summary.Total)
	assert.Equal(t, 2, summary.Excluded)
	assert.Equal(t, float64(0), summary.Min)
	assert.Equal(t, float64(999), summary.Max)

	assert.InDelta(t, 499.5, summary.P50, 1.0)
	assert.InDelta(t, 899.0, summary.P90, 1.5)
	assert.InDelta(t, 989.0, summary.P99, 1.5)
	assert.InDelta(t, 998.0, summary.P999, 1.5)
}

func TestSummarizeSmallSampleFallsBackToMax(t *testing.T) {
	summary := Summarize([]int64{5, 10, 15})
	require.NotNil(t, summary)

	assert.Equal(t, float64(15), summary.P90)
	assert.Equal(t, float64(15), summary.P99)
	assert.Equal(t, float64(15), summary.P999)
}

func TestSummarizeNilWithoutValidPoints(t *testing.T) {
	assert.Nil(t, Summarize(nil))
	assert.Nil(t, Summarize([]int64{-1, -2}))
}

func TestFormatNanos(t *testing.T) {
	assert.Equal(t, "500 ns", FormatNanos(500))
	assert.Equal(t, "1.5 µs", FormatNanos(1500))
	assert.Equal(t, "2.500 ms", FormatNanos(2_500_000))
}

func TestRenderMentionsDumpName(t *testing.T) {
	summary := Summarize([]int64{1, 2, 3})
	require.NotNil(t, summary)

	report := summary.Render("latencies_tcp.bin")
	assert.Contains(t, report, "latencies_tcp.bin")
	assert.Contains(t, report, "Total data points: 3")
}
