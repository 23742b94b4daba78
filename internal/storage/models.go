package storage

import "time"

// EmailRecord is one persisted (domain, email) pair. The pair itself is the
// identifying key; the same address under two domains yields two records.
type EmailRecord struct {
	Domain string
	Email  string
}

// Metrics tracks harvest statistics for export on exit
type Metrics struct {
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	DomainsCompleted  int       `json:"domains_completed"`
	DomainsAborted    int       `json:"domains_aborted"`
	DomainsFailed     int       `json:"domains_failed"`
	PagesFetched      int       `json:"pages_fetched"`
	PagesFailed       int       `json:"pages_failed"`
	EmailsFound       int       `json:"emails_found"`
	TerminationReason string    `json:"termination_reason"`
}
