package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"mailminer/internal/config"
	"mailminer/internal/crawler"
	"mailminer/internal/fetch"
	"mailminer/internal/metrics"
	"mailminer/internal/storage"
	"mailminer/internal/version"
)

func main() {
	// Configure logging
	logrus.SetLevel(logrus.InfoLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	// Parse command-line flags
	cfg := config.New()
	flag.StringVar(&cfg.InputFile, "inputfile", "", "File containing list of domains (one per line)")
	flag.StringVar(&cfg.InputFile, "i", "", "Shorthand for -inputfile")
	flag.IntVar(&cfg.MaxURLsPerDomain, "maxurls", cfg.MaxURLsPerDomain, "Maximum number of URLs to process per domain")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database file")
	flag.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "Number of workers for concurrent domain processing")
	flag.IntVar(&cfg.Concurrency, "t", cfg.Concurrency, "Shorthand for -concurrency")
	flag.Parse()

	logrus.Infof("Mail Miner v%s starting...", version.Version)

	if cfg.InputFile == "" {
		fmt.Println("Please provide a file with a list of domains using -inputfile")
		flag.Usage()
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	// Load seed domains
	domains, err := config.LoadDomains(cfg.InputFile)
	if err != nil {
		logrus.Fatalf("Failed to load domains: %v", err)
	}
	if len(domains) == 0 {
		logrus.Fatalf("No valid domains found in %s", cfg.InputFile)
	}

	logrus.Infof("Configuration loaded: domains=%d, maxurls=%d, concurrency=%d",
		len(domains), cfg.MaxURLsPerDomain, cfg.Concurrency)

	// Initialize storage
	store, err := storage.NewStorage(cfg.DBPath)
	if err != nil {
		logrus.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	logrus.Infof("Database initialized: %s", cfg.DBPath)

	// Initialize metrics tracker
	tracker := metrics.NewTracker()

	// Metrics callback for the scheduler
	metricsCallback := func(domainsCompleted, domainsAborted, domainsFailed, pagesFetched, pagesFailed, emailsFound int) {
		if domainsCompleted > 0 {
			tracker.IncrementDomainsCompleted()
		}
		if domainsAborted > 0 {
			tracker.IncrementDomainsAborted()
		}
		if domainsFailed > 0 {
			tracker.IncrementDomainsFailed()
		}
		if pagesFetched > 0 {
			tracker.IncrementPagesFetched()
		}
		if pagesFailed > 0 {
			tracker.IncrementPagesFailed()
		}
		if emailsFound > 0 {
			tracker.AddEmailsFound(emailsFound)
		}
	}

	// Initialize scheduler; every crawl task gets its own fetch client
	timeout := time.Duration(cfg.RequestTimeoutMs) * time.Millisecond
	newFetcher := func() crawler.Fetcher {
		return fetch.NewClient(timeout)
	}
	sched := crawler.NewScheduler(cfg, store, newFetcher, metricsCallback)

	// Setup signal handler: cancel the crawl context so in-flight domains
	// stop at their next iteration boundary with partial results intact
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	terminationReason := "completed"
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		logrus.Warnf("Received signal %v, stopping crawls...", sig)
		terminationReason = "signal"
		cancel()
	}()

	// Start progress logger
	stopProgress := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Duration(cfg.ProgressIntervalSec) * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				logrus.Info(tracker.LogProgress())
			case <-stopProgress:
				return
			}
		}
	}()

	// Run the crawl
	schedErr := sched.Run(ctx, domains)
	close(stopProgress)

	if schedErr != nil {
		logrus.Errorf("One or more domain crawls failed: %v", schedErr)
	}

	// Final progress log
	logrus.Info("Final stats: " + tracker.LogProgress())

	// Write metrics to file
	if err := tracker.WriteToFile(cfg.MetricsPath, terminationReason); err != nil {
		logrus.Errorf("Failed to write metrics: %v", err)
	} else {
		logrus.Infof("Metrics written to %s", cfg.MetricsPath)
	}

	// Print summary
	total, err := store.CountRecords()
	if err != nil {
		logrus.Warnf("Failed to count stored records: %v", err)
	} else {
		logrus.Infof("All emails have been saved to %s (%d records total)", cfg.DBPath, total)
	}

	if schedErr != nil {
		store.Close()
		os.Exit(1)
	}
}
