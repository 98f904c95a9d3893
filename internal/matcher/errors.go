package matcher

import (
	"errors"
	"fmt"
)

// ErrNoInput is returned when the text or the subtext is empty. No search is
// run, which is distinct from a search that found no occurrences.
var ErrNoInput = errors.New("matcher: empty text or subtext, no search performed")

// NullArgumentError reports a required argument that was not provided.
type NullArgumentError struct {
	Name string
}

func (e *NullArgumentError) Error() string {
	return fmt.Sprintf("matcher: required argument %q is missing", e.Name)
}
