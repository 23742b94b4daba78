package storage

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// EmptyMarker is the sentinel email value recorded for a domain that was
// crawled but yielded no addresses. It keeps "attempted but empty"
// distinguishable from "never attempted".
const EmptyMarker = "0"

// Storage handles all database operations. Writes are serialized through an
// internal mutex so concurrent crawl workers never interleave transactions.
type Storage struct {
	db      *sql.DB
	writeMu sync.Mutex
}

// NewStorage creates a new Storage instance, opening/creating the DB and initializing schema
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	storage := &Storage{db: db}

	// Initialize schema
	if err := storage.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return storage, nil
}

// initSchema creates the emails table if it doesn't exist
func (s *Storage) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS emails (
		domain TEXT,
		email TEXT,
		UNIQUE(domain, email)
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// UpsertEmails inserts the given (domain, email) pairs in one transaction.
// Pairs that already exist are ignored, never surfaced as errors.
func (s *Storage) UpsertEmails(domain string, emails []string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO emails (domain, email) VALUES (?, ?)")
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, email := range emails {
		if _, err := stmt.Exec(domain, email); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert email: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit emails: %w", err)
	}
	return nil
}

// MarkEmpty records the sentinel row for a domain that was crawled but
// produced no emails
func (s *Storage) MarkEmpty(domain string) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	_, err := s.db.Exec("INSERT OR IGNORE INTO emails (domain, email) VALUES (?, ?)", domain, EmptyMarker)
	if err != nil {
		return fmt.Errorf("failed to mark domain empty: %w", err)
	}
	return nil
}

// GetEmails returns all email values stored for a domain, sentinel included
func (s *Storage) GetEmails(domain string) ([]string, error) {
	rows, err := s.db.Query("SELECT email FROM emails WHERE domain = ? ORDER BY email", domain)
	if err != nil {
		return nil, fmt.Errorf("failed to query emails: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan email: %w", err)
		}
		emails = append(emails, email)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating emails: %w", err)
	}

	return emails, nil
}

// CountRecords returns the total number of stored rows, sentinels included
func (s *Storage) CountRecords() (int, error) {
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM emails").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}
