package results

import (
	"fmt"
	"sort"
	"strings"
)

// Summary holds the distribution of one latency dump. Negative entries are
// artifacts of unsynchronised clocks or failed trailer extraction and are
// excluded before the quantiles are computed.
type Summary struct {
	Total    int // Data points in the dump
	Excluded int // Negative values excluded from the analysis

	Min  float64
	P25  float64
	P50  float64
	P75  float64
	P90  float64
	P99  float64
	P999 float64
	Max  float64
}

// Summarize analyses raw latency entries. It returns nil when no valid
// data points remain after exclusion.
func Summarize(raw []int64) *Summary {
	valid := make([]float64, 0, len(raw))
	excluded := 0

	for _, value := range raw {
		if value >= 0 {
			valid = append(valid, float64(value))
		} else {
			excluded++
		}
	}

	if len(valid) == 0 {
		return nil
	}

	sort.Float64s(valid)

	summary := &Summary{
		Total:    len(raw),
		Excluded: excluded,
		Min:      valid[0],
		P25:      quantile(valid, 0.25),
		P50:      quantile(valid, 0.50),
		P75:      quantile(valid, 0.75),
		Max:      valid[len(valid)-1],
	}

	// High percentiles are meaningless on tiny samples; fall back to the
	// maximum like the original analysis tooling.
	summary.P90 = summary.Max
	summary.P99 = summary.Max
	summary.P999 = summary.Max

	if len(valid) >= 10 {
		summary.P90 = quantile(valid, 0.90)
	}
	if len(valid) >= 100 {
		summary.P99 = quantile(valid, 0.99)
	}
	if len(valid) >= 1000 {
		summary.P999 = quantile(valid, 0.999)
	}

	return summary
}

// quantile interpolates linearly between the two nearest order statistics
// of an already sorted sample.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}

	position := q * float64(len(sorted)-1)
	lower := int(position)
	fraction := position - float64(lower)

	if lower+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	return sorted[lower] + fraction*(sorted[lower+1]-sorted[lower])
}

// FormatNanos renders a nanosecond value at a human scale.
func FormatNanos(nanos float64) string {
	switch {
	case nanos >= 1_000_000:
		return fmt.Sprintf("%.3f ms", nanos/1_000_000)
	case nanos >= 1_000:
		return fmt.Sprintf("%.1f µs", nanos/1_000)
	default:
		return fmt.Sprintf("%.0f ns", nanos)
	}
}

// Render formats the summary as a report block for one named dump.
func (s *Summary) Render(name string) string {
	var b strings.Builder

	separator := strings.Repeat("-", len(name)+18)

	fmt.Fprintf(&b, "--- Analysis for: %s ---\n", name)
	fmt.Fprintf(&b, "Total data points: %d\n", s.Total)
	fmt.Fprintf(&b, "Excluded negative values: %d\n", s.Excluded)
	fmt.Fprintln(&b, separator)
	fmt.Fprintf(&b, "Min:          %s\n", FormatNanos(s.Min))
	fmt.Fprintf(&b, "P25 (Q1):     %s\n", FormatNanos(s.P25))
	fmt.Fprintf(&b, "P50 (Median): %s\n", FormatNanos(s.P50))
	fmt.Fprintf(&b, "P75 (Q3):     %s\n", FormatNanos(s.P75))
	fmt.Fprintf(&b, "P90:          %s\n", FormatNanos(s.P90))
	fmt.Fprintf(&b, "P99:          %s\n", FormatNanos(s.P99))
	fmt.Fprintf(&b, "P99.9:        %s\n", FormatNanos(s.P999))
	fmt.Fprintf(&b, "Max:          %s\n", FormatNanos(s.Max))
	b.WriteString(separator)

	return b.String()
}
