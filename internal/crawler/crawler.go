package crawler

import (
	"context"
	"net/http"
	"sort"

	"github.com/sirupsen/logrus"
)

// Status describes the lifecycle of one domain crawl
type Status int

const (
	StatusReady Status = iota
	StatusRunning
	StatusCompleted
	StatusAborted
)

// String returns a human-readable status name
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Result is the outcome of one domain crawl. On an aborted crawl the email
// and visited sets hold whatever was collected before the abort; partial
// results are preserved, not discarded.
type Result struct {
	Domain  string
	Emails  map[string]struct{}
	Visited map[string]struct{}
	Status  Status
}

// SortedEmails returns the found emails as a sorted slice
func (r Result) SortedEmails() []string {
	emails := make([]string, 0, len(r.Emails))
	for e := range r.Emails {
		emails = append(emails, e)
	}
	sort.Strings(emails)
	return emails
}

// DomainCrawler runs a breadth-first crawl of a single seed domain. It owns
// its frontier and visited set exclusively; no other task touches them.
type DomainCrawler struct {
	domain     string
	maxURLs    int
	fetcher    Fetcher
	normalizer *Normalizer
	status     Status

	// onPage reports (fetched, failed) page counts for metrics; may be nil
	onPage func(fetched, failed int)
}

// NewDomainCrawler creates a crawler for one seed domain
func NewDomainCrawler(domain string, maxURLs int, fetcher Fetcher, normalizer *Normalizer, onPage func(fetched, failed int)) *DomainCrawler {
	return &DomainCrawler{
		domain:     domain,
		maxURLs:    maxURLs,
		fetcher:    fetcher,
		normalizer: normalizer,
		status:     StatusReady,
		onPage:     onPage,
	}
}

// Status returns the crawl's current lifecycle state
func (dc *DomainCrawler) Status() Status {
	return dc.status
}

// Run drains the frontier in FIFO order until it is exhausted, the page
// budget is reached, the context is cancelled, or a page answers with a
// non-200 status. The non-200 case aborts the whole domain even though the
// frontier may still hold candidates; this fail-fast policy is intentional.
func (dc *DomainCrawler) Run(ctx context.Context) Result {
	dc.status = StatusRunning

	frontier := NewFrontier(dc.domain)
	visited := make(map[string]struct{})
	emails := make(map[string]struct{})

	for frontier.Len() > 0 && len(visited) < dc.maxURLs {
		select {
		case <-ctx.Done():
			logrus.Warnf("Crawl of %s interrupted, keeping partial results", dc.domain)
			return dc.finish(StatusAborted, emails, visited)
		default:
		}

		current, _ := frontier.Pop()
		visited[current] = struct{}{}

		if !IsValid(current) {
			logrus.Warnf("Skipping invalid URL: %s", current)
			continue
		}

		logrus.Infof("[%d] Processing %s", len(visited), current)

		page, err := dc.fetcher.Fetch(current)
		if err != nil {
			// Timed-out or unreachable URLs are abandoned, never retried
			logrus.Warnf("Request failed for %s: %v", current, err)
			dc.reportPage(0, 1)
			continue
		}

		if page.StatusCode != http.StatusOK {
			logrus.Warnf("Got status %d for %s, aborting crawl of %s", page.StatusCode, current, dc.domain)
			dc.reportPage(0, 1)
			return dc.finish(StatusAborted, emails, visited)
		}

		dc.reportPage(1, 0)

		for email := range ExtractEmails(page.Body) {
			emails[email] = struct{}{}
		}

		links, err := ExtractLinks(page.Body)
		if err != nil {
			logrus.Warnf("Failed to parse %s: %v", current, err)
			continue
		}

		baseURL, pathPrefix := SplitBase(current)
		for _, href := range links {
			if href == "" {
				continue
			}
			link := dc.normalizer.Resolve(baseURL, pathPrefix, href)

			if frontier.Contains(link) {
				continue
			}
			if _, seen := visited[link]; seen {
				continue
			}
			if dc.normalizer.IsExcluded(link) {
				continue
			}
			frontier.Push(link)
		}
	}

	return dc.finish(StatusCompleted, emails, visited)
}

func (dc *DomainCrawler) finish(status Status, emails, visited map[string]struct{}) Result {
	dc.status = status
	return Result{
		Domain:  dc.domain,
		Emails:  emails,
		Visited: visited,
		Status:  status,
	}
}

func (dc *DomainCrawler) reportPage(fetched, failed int) {
	if dc.onPage != nil {
		dc.onPage(fetched, failed)
	}
}
