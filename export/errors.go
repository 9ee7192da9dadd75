package export

import "fmt"

// SerializationError reports a graph that could not be re-encoded in a
// target format.
type SerializationError struct {
	Format Format
	Err    error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialize as %s: %v", e.Format, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }
