package crawler

import "mailminer/internal/fetch"

// Fetcher retrieves a URL and returns its status code and body text.
// A non-nil error means no response was produced (timeout, connection
// failure); HTTP error statuses come back in the Page.
type Fetcher interface {
	Fetch(rawURL string) (fetch.Page, error)
}

// EmailStore persists deduplicated (domain, email) pairs. Implementations
// must absorb duplicate pairs silently and serialize concurrent writers.
type EmailStore interface {
	UpsertEmails(domain string, emails []string) error
	MarkEmpty(domain string) error
}
