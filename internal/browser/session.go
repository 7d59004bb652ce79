// Package browser wraps chromedp in a scoped, single-use automation session:
// one browser process, one page context, released on every exit path.
package browser

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/chromedp/chromedp"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Options configures a session at open time.
type Options struct {
	// ChromeBin overrides binary discovery when set.
	ChromeBin string
	// NoSandbox disables the Chrome sandbox (required in most containers).
	NoSandbox bool
	// NavigationTimeout bounds Navigate and Extract. Zero means 10s.
	NavigationTimeout time.Duration
}

// Session owns one isolated browser process and page context. Sessions are
// never shared across requests and never pooled; Close is idempotent and must
// be called on every path, typically via defer.
type Session struct {
	ctx         context.Context
	cancelPage  context.CancelFunc
	cancelAlloc context.CancelFunc
	navTimeout  time.Duration
	closeOnce   sync.Once
}

// Open launches an isolated headless browser parented on ctx, so cancelling
// the request tears the process down even if the caller forgets Close.
// Returns a *LaunchError when the process cannot be started.
func Open(ctx context.Context, opts Options) (*Session, error) {
	navTimeout := opts.NavigationTimeout
	if navTimeout <= 0 {
		navTimeout = 10 * time.Second
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(userAgent),
	)
	if opts.NoSandbox {
		allocOpts = append(allocOpts,
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-setuid-sandbox", true),
		)
	}
	if bin := findChromeBinary(opts.ChromeBin); bin != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(bin))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	pageCtx, cancelPage := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(func(string, ...interface{}) {}))

	// chromedp starts the process lazily; force it now so launch failures
	// surface here instead of inside the first navigation.
	if err := chromedp.Run(pageCtx); err != nil {
		cancelPage()
		cancelAlloc()
		return nil, &LaunchError{Err: err}
	}

	return &Session{
		ctx:         pageCtx,
		cancelPage:  cancelPage,
		cancelAlloc: cancelAlloc,
		navTimeout:  navTimeout,
	}, nil
}

// Navigate loads url and blocks until the document body is ready or the
// navigation timeout elapses. Timeout maps to *NavigationTimeoutError.
func (s *Session) Navigate(url string) error {
	tctx, cancel := context.WithTimeout(s.ctx, s.navTimeout)
	defer cancel()

	err := chromedp.Run(tctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &NavigationTimeoutError{URL: url, Timeout: s.navTimeout, Err: err}
		}
		return fmt.Errorf("navigate %s: %w", url, err)
	}
	return nil
}

// WaitForElement blocks until selector is visible or timeout elapses, in
// which case it returns *ElementNotFoundError.
func (s *Session) WaitForElement(selector string, timeout time.Duration) error {
	tctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	if err := chromedp.Run(tctx, chromedp.WaitVisible(selector, chromedp.ByQuery)); err != nil {
		return &ElementNotFoundError{Selector: selector, Timeout: timeout, Err: err}
	}
	return nil
}

// Extract evaluates a read-only script against the loaded DOM and decodes the
// result into out. Scripts must not mutate page state.
func (s *Session) Extract(script string, out interface{}) error {
	tctx, cancel := context.WithTimeout(s.ctx, s.navTimeout)
	defer cancel()

	return chromedp.Run(tctx, chromedp.Evaluate(script, out))
}

// Close terminates the page context and the browser process. Safe to call
// multiple times and after a failed step.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.cancelPage()
		s.cancelAlloc()
	})
}

// findChromeBinary locates a Chrome/Chromium binary, preferring an explicit
// override.
func findChromeBinary(override string) string {
	if override != "" {
		return override
	}

	names := []string{"google-chrome-stable", "google-chrome", "chromium", "chromium-browser"}
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	paths := []string{
		"/usr/bin/google-chrome-stable",
		"/usr/bin/google-chrome",
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/snap/bin/chromium",
		"/opt/google/chrome/google-chrome",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
