package communication

import (
	"fmt"
)

// PartialMessageError is returned when the peer closes the connection
// before the declared body length has been satisfied.
type PartialMessageError struct {
	Read     uint64 // Bytes actually read before the close
	Declared uint64 // Bytes the frame header declared
}

// ProtocolError is returned when the peer sends bytes that cannot be
// interpreted as a frame.
type ProtocolError struct {
	Reason string // Description of the malformed input
}

// Error message when a peer closed mid-body.
func (e *PartialMessageError) Error() string {
	return fmt.Sprintf("connection closed after %d of %d declared bytes", e.Read, e.Declared)
}

// Error message for malformed frames.
func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error: %s", e.Reason)
}
