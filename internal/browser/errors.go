package browser

import (
	"fmt"
	"time"
)

// LaunchError means the automation backend itself could not be started:
// no usable Chrome binary, or the process refused to come up (sandboxing
// rejected by the host, broken install). Fatal for the request, never retried.
type LaunchError struct {
	Err error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("browser launch failed: %v", e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// NavigationTimeoutError means the page did not settle within the deadline.
// This is the dominant real-world failure mode and callers need to tell it
// apart from extraction failures.
type NavigationTimeoutError struct {
	URL     string
	Timeout time.Duration
	Err     error
}

func (e *NavigationTimeoutError) Error() string {
	return fmt.Sprintf("navigation to %s did not settle within %s: %v", e.URL, e.Timeout, e.Err)
}

func (e *NavigationTimeoutError) Unwrap() error { return e.Err }

// ElementNotFoundError means a selector never appeared. The scraped site's
// markup is not a versioned contract, so this signals the extraction scripts
// no longer match the page layout rather than a transient fault.
type ElementNotFoundError struct {
	Selector string
	Timeout  time.Duration
	Err      error
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("element %q not found within %s: %v", e.Selector, e.Timeout, e.Err)
}

func (e *ElementNotFoundError) Unwrap() error { return e.Err }
