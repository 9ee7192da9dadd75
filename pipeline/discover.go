// Package pipeline drives the conversion of every matching ontology source
// file under a source root into its deployment artifacts: three
// serializations plus the HTML catalogue, written under a mirrored
// directory structure.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNoInputFiles reports an empty discovery result. Callers treat it as a
// clean non-zero exit, not a crash.
var ErrNoInputFiles = errors.New("no matching source files")

// Discover returns the paths of all files under sourceDir whose extension
// matches basis (without leading dot), relative to sourceDir and sorted for
// deterministic processing order.
func Discover(sourceDir, basis string) ([]string, error) {
	pattern := "**/*." + basis
	matches, err := doublestar.Glob(os.DirFS(sourceDir), pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: *.%s under %s", ErrNoInputFiles, basis, sourceDir)
	}
	sort.Strings(matches)
	return matches, nil
}
