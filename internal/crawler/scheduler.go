package crawler

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"mailminer/internal/config"
)

// Scheduler fans seed domains out over a fixed-size worker pool, one domain
// per unit of work, and persists each crawl's findings. Concurrency of 1
// degenerates to a sequential pass; there is no separate single-threaded
// code path.
type Scheduler struct {
	cfg        *config.Config
	store      EmailStore
	newFetcher func() Fetcher
	normalizer *Normalizer

	metricsCallback func(domainsCompleted, domainsAborted, domainsFailed, pagesFetched, pagesFailed, emailsFound int)
}

// NewScheduler creates a scheduler. newFetcher is called once per domain so
// every crawl task owns its own fetch client.
func NewScheduler(cfg *config.Config, store EmailStore, newFetcher func() Fetcher, metricsCallback func(int, int, int, int, int, int)) *Scheduler {
	return &Scheduler{
		cfg:             cfg,
		store:           store,
		newFetcher:      newFetcher,
		normalizer:      NewNormalizer(cfg.ExcludedExtensions),
		metricsCallback: metricsCallback,
	}
}

// Run crawls all domains and blocks until every submitted unit of work has
// finished. Completion order across domains is unspecified. A crash in one
// domain's crawl never aborts the others; all such failures are joined into
// the returned error once the pool drains.
func (s *Scheduler) Run(ctx context.Context, domains []string) error {
	jobs := make(chan string, len(domains))
	for _, domain := range domains {
		jobs <- domain
	}
	close(jobs)

	var (
		wg    sync.WaitGroup
		errMu sync.Mutex
		errs  []error
	)

	logrus.Infof("Starting %d crawl workers for %d domains", s.cfg.Concurrency, len(domains))

	for i := 0; i < s.cfg.Concurrency; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for domain := range jobs {
				select {
				case <-ctx.Done():
					// Leave unstarted domains unattempted so the store
					// never claims a crawl that was not made
					logrus.Infof("Worker %d: skipping %s, shutdown in progress", id, domain)
					continue
				default:
				}

				if err := s.crawlDomain(ctx, id, domain); err != nil {
					errMu.Lock()
					errs = append(errs, err)
					errMu.Unlock()
				}
			}
		}(i + 1)
	}

	wg.Wait()
	return errors.Join(errs...)
}

// crawlDomain runs one domain's crawl and persists its outcome. Panics are
// contained here so a single misbehaving domain cannot take down the pool.
func (s *Scheduler) crawlDomain(ctx context.Context, workerID int, domain string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("Worker %d: crawl of %s crashed: %v", workerID, domain, r)
			s.reportMetrics(0, 0, 1, 0, 0, 0)
			err = fmt.Errorf("crawl of %s crashed: %v", domain, r)
		}
	}()

	logrus.Infof("Worker %d: processing domain %s", workerID, domain)

	dc := NewDomainCrawler(domain, s.cfg.MaxURLsPerDomain, s.newFetcher(), s.normalizer, func(fetched, failed int) {
		s.reportMetrics(0, 0, 0, fetched, failed, 0)
	})
	result := dc.Run(ctx)

	switch result.Status {
	case StatusCompleted:
		s.reportMetrics(1, 0, 0, 0, 0, 0)
	case StatusAborted:
		s.reportMetrics(0, 1, 0, 0, 0, 0)
	}

	// Aborted crawls still persist whatever they collected
	if len(result.Emails) > 0 {
		s.reportMetrics(0, 0, 0, 0, 0, len(result.Emails))
		if err := s.store.UpsertEmails(domain, result.SortedEmails()); err != nil {
			return fmt.Errorf("failed to store emails for %s: %w", domain, err)
		}
		logrus.Infof("Worker %d: stored %d emails for %s (%s, %d URLs visited)",
			workerID, len(result.Emails), domain, result.Status, len(result.Visited))
		return nil
	}

	logrus.Infof("Worker %d: no emails found for %s (%s, %d URLs visited)",
		workerID, domain, result.Status, len(result.Visited))
	if err := s.store.MarkEmpty(domain); err != nil {
		return fmt.Errorf("failed to mark %s empty: %w", domain, err)
	}
	return nil
}

func (s *Scheduler) reportMetrics(completed, aborted, failed, fetched, fetchFailed, emails int) {
	if s.metricsCallback != nil {
		s.metricsCallback(completed, aborted, failed, fetched, fetchFailed, emails)
	}
}
