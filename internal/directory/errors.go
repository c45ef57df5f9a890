package directory

import (
	"errors"
	"fmt"
)

// ErrFetchFailure is matched by every error Fetch returns.
var ErrFetchFailure = errors.New("fetch failure")

// FetchError describes why a directory fetch failed.
type FetchError struct {
	Op         string // "request", "status", "decode"
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("directory %s %s: status %d", e.Op, e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("directory %s %s: %v", e.Op, e.URL, e.Err)
	default:
		return fmt.Sprintf("directory %s %s failed", e.Op, e.URL)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports ErrFetchFailure for every FetchError.
func (e *FetchError) Is(target error) bool { return target == ErrFetchFailure }
