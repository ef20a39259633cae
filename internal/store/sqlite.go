package store

import (
	"database/sql"
	"fmt"

	"crustacean/tracker/internal/domain"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	item TEXT NOT NULL,
	price INTEGER NOT NULL
);`

type sqliteStore struct {
	db         *sql.DB
	categories []domain.Category
	opts       options
	records    []domain.HistoryRecord
}

// NewSQLiteStore returns a HistoryStore backed by an embedded sqlite
// database at path. The contract matches the CSV store; Save rewrites the
// table from the in-memory set inside one transaction.
func NewSQLiteStore(path string, categories []domain.Category, opts ...Option) (HistoryStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database %s: %w", path, err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	s := &sqliteStore{
		db:         db,
		categories: categories,
		records:    make([]domain.HistoryRecord, 0),
	}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s, nil
}

func (s *sqliteStore) Load() ([]domain.HistoryRecord, error) {
	rows, err := s.db.Query(`SELECT date, item, price FROM history ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	records := make([]domain.HistoryRecord, 0)
	for rows.Next() {
		var record domain.HistoryRecord
		var item string
		if err := rows.Scan(&record.Date, &item, &record.Price); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		record.Item = domain.Category(item)
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}

	s.records = records
	return s.records, nil
}

func (s *sqliteStore) Append(date string, prices map[domain.Category]int) {
	s.records = appendRecords(s.records, s.categories, date, prices, s.opts.upsert)
}

func (s *sqliteStore) Replace(records []domain.HistoryRecord) {
	s.records = records
}

func (s *sqliteStore) Records() []domain.HistoryRecord {
	return s.records
}

func (s *sqliteStore) Save() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin history transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM history`); err != nil {
		return fmt.Errorf("failed to clear history table: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO history (date, item, price) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare history insert: %w", err)
	}
	defer stmt.Close()

	for _, record := range s.records {
		if _, err := stmt.Exec(record.Date, record.Item.String(), record.Price); err != nil {
			return fmt.Errorf("failed to insert history record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}
