package metrics

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"mailminer/internal/storage"
)

// Tracker holds and manages harvest metrics
type Tracker struct {
	mu   sync.Mutex
	data storage.Metrics
}

// NewTracker creates a new metrics tracker
func NewTracker() *Tracker {
	return &Tracker{
		data: storage.Metrics{
			StartTime: time.Now(),
		},
	}
}

// IncrementDomainsCompleted increments the completed-domains counter
func (t *Tracker) IncrementDomainsCompleted() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.DomainsCompleted++
}

// IncrementDomainsAborted increments the aborted-domains counter
func (t *Tracker) IncrementDomainsAborted() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.DomainsAborted++
}

// IncrementDomainsFailed increments the crashed-domains counter
func (t *Tracker) IncrementDomainsFailed() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.DomainsFailed++
}

// IncrementPagesFetched increments the successful fetch counter
func (t *Tracker) IncrementPagesFetched() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.PagesFetched++
}

// IncrementPagesFailed increments the failed fetch counter
func (t *Tracker) IncrementPagesFailed() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.PagesFailed++
}

// AddEmailsFound adds n to the found-emails counter
func (t *Tracker) AddEmailsFound(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.data.EmailsFound += n
}

// GetSnapshot returns a copy of current metrics
func (t *Tracker) GetSnapshot() storage.Metrics {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.data
}

// WriteToFile exports metrics to a JSON file
func (t *Tracker) WriteToFile(path, reason string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Finalize metrics
	t.data.EndTime = time.Now()
	t.data.TerminationReason = reason

	// Marshal to JSON
	jsonData, err := json.MarshalIndent(t.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metrics: %w", err)
	}

	// Write to file
	if err := os.WriteFile(path, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}

	return nil
}

// LogProgress prints current metrics to console (for periodic updates)
func (t *Tracker) LogProgress() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	return fmt.Sprintf("Domains: %d completed, %d aborted, %d failed | Pages: %d fetched, %d failed | Emails: %d",
		t.data.DomainsCompleted,
		t.data.DomainsAborted,
		t.data.DomainsFailed,
		t.data.PagesFetched,
		t.data.PagesFailed,
		t.data.EmailsFound,
	)
}
