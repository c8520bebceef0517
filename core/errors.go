package core

import (
	"fmt"
)

// TruncatedDataError occurs when the benchmark data file ends before a
// declared segment is complete.
type TruncatedDataError struct {
	Path      string // The file being loaded
	Segment   string // Which segment was cut short
	Expected  int    // Bytes the segment needs
	Remaining int    // Bytes left in the file
}

// ConfigError occurs when a configuration value combination cannot produce
// a runnable benchmark.
type ConfigError struct {
	Reason string
}

// Error message for a truncated data file.
func (e *TruncatedDataError) Error() string {
	return fmt.Sprintf("%s: truncated %s segment: need %d bytes, %d remain",
		e.Path, e.Segment, e.Expected, e.Remaining)
}

// Error message for an invalid configuration.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}
