package scraper

import "fmt"

// Failure reasons carried by ScrapeError. Handlers only branch on the broad
// class; the wrapped cause keeps the detail.
const (
	ReasonLaunch     = "launch"
	ReasonNavigation = "navigation"
	ReasonLayout     = "layout"
	ReasonExtraction = "extraction"
)

// ScrapeError is the single failure type a profile scrape surfaces. Reason is
// one of the constants above; Err is the underlying browser error.
type ScrapeError struct {
	Username string
	Reason   string
	Err      error
}

func (e *ScrapeError) Error() string {
	return fmt.Sprintf("scrape %q failed (%s): %v", e.Username, e.Reason, e.Err)
}

func (e *ScrapeError) Unwrap() error { return e.Err }
