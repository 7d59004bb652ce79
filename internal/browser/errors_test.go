package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestErrorKindsAreDistinguishable(t *testing.T) {
	var launch error = &LaunchError{Err: errors.New("exec: no chrome")}
	var nav error = &NavigationTimeoutError{URL: "https://x.com/u", Timeout: 10 * time.Second, Err: context.DeadlineExceeded}
	var elem error = &ElementNotFoundError{Selector: "article", Timeout: 10 * time.Second, Err: context.DeadlineExceeded}

	var le *LaunchError
	var ne *NavigationTimeoutError
	var ee *ElementNotFoundError

	if !errors.As(launch, &le) {
		t.Error("LaunchError not matched by errors.As")
	}
	if !errors.As(nav, &ne) {
		t.Error("NavigationTimeoutError not matched by errors.As")
	}
	if !errors.As(elem, &ee) {
		t.Error("ElementNotFoundError not matched by errors.As")
	}

	// Wrapping must survive fmt.Errorf chains the way handlers use them.
	wrapped := fmt.Errorf("scrape failed: %w", nav)
	if !errors.As(wrapped, &ne) {
		t.Error("wrapped NavigationTimeoutError not matched")
	}
	if errors.As(wrapped, &ee) {
		t.Error("NavigationTimeoutError must not match ElementNotFoundError")
	}
}

func TestErrorsUnwrapToCause(t *testing.T) {
	nav := &NavigationTimeoutError{URL: "https://x.com/u", Timeout: time.Second, Err: context.DeadlineExceeded}
	if !errors.Is(nav, context.DeadlineExceeded) {
		t.Error("NavigationTimeoutError should unwrap to its cause")
	}
}

func TestElementNotFoundMessageNamesSelector(t *testing.T) {
	err := &ElementNotFoundError{Selector: "div[data-testid=\"UserDescription\"]", Timeout: time.Second}
	if got := err.Error(); !strings.Contains(got, "UserDescription") {
		t.Errorf("error message %q should name the selector", got)
	}
}
