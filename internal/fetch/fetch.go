package fetch

import (
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"
)

// Page is the result of one successful fetch. Transient, never persisted.
type Page struct {
	StatusCode int
	Body       string
}

// Client wraps a synchronous Colly collector as a plain fetch primitive:
// one URL in, status code and body text out. URL deduplication and traversal
// order are owned by the caller, so revisit checks and robots.txt handling
// are disabled on the collector.
type Client struct {
	collector *colly.Collector
	last      Page
	lastErr   error
}

// NewClient creates a fetch client with a fixed, non-retrying request timeout.
// A Client is not safe for concurrent use; each crawl task owns its own.
func NewClient(timeout time.Duration) *Client {
	f := &Client{}

	c := colly.NewCollector(
		colly.AllowURLRevisit(),
		colly.IgnoreRobotsTxt(),
	)
	c.SetRequestTimeout(timeout)

	c.OnResponse(func(r *colly.Response) {
		f.last = Page{StatusCode: r.StatusCode, Body: string(r.Body)}
		f.lastErr = nil
	})

	c.OnError(func(r *colly.Response, err error) {
		// HTTP error statuses still carry a usable response; only
		// transport-level failures surface as errors to the caller.
		if r != nil && r.StatusCode != 0 {
			f.last = Page{StatusCode: r.StatusCode, Body: string(r.Body)}
			f.lastErr = nil
			return
		}
		f.lastErr = err
	})

	f.collector = c
	return f
}

// Fetch retrieves rawURL and returns its status code and body text.
// A non-nil error means the request produced no response at all
// (timeout, DNS failure, connection refused); non-200 statuses are
// returned in the Page for the caller to interpret.
func (f *Client) Fetch(rawURL string) (Page, error) {
	f.last = Page{}
	f.lastErr = nil

	err := f.collector.Visit(rawURL)

	if f.lastErr != nil {
		return Page{}, f.lastErr
	}
	if f.last.StatusCode == 0 {
		if err != nil {
			return Page{}, err
		}
		return Page{}, fmt.Errorf("no response for %s", rawURL)
	}
	return f.last, nil
}
