package youtube

import (
	"errors"
	"fmt"
)

// ErrNotFound means the channel search returned an empty result set. This is
// a normal outcome of looking up by display name, not an upstream fault, and
// is never retried.
var ErrNotFound = errors.New("channel not found")

// UpstreamError covers every non-2xx answer and transport failure from the
// video platform's API, including quota exhaustion (403/429). Retry policy,
// if any, belongs to the caller.
type UpstreamError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("youtube %s returned %d", e.Endpoint, e.Status)
	}
	return fmt.Sprintf("youtube %s failed: %v", e.Endpoint, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
