package ingest

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat reports a file extension outside the fixed
// extension-to-format mapping.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ParseError reports a source file the underlying decoder rejected.
type ParseError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s as %s: %v", e.Path, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
