package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"crustacean/tracker/internal/domain"
)

var csvHeader = []string{"date", "item", "price"}

type csvStore struct {
	path       string
	categories []domain.Category
	opts       options
	records    []domain.HistoryRecord
}

// NewCSVStore returns a HistoryStore backed by a flat comma-delimited file
// with a header row. Save replaces the file atomically (temp file + rename).
func NewCSVStore(path string, categories []domain.Category, opts ...Option) HistoryStore {
	s := &csvStore{
		path:       path,
		categories: categories,
		records:    make([]domain.HistoryRecord, 0),
	}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

func (s *csvStore) Load() ([]domain.HistoryRecord, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.records = make([]domain.HistoryRecord, 0)
			return s.records, nil
		}
		return nil, fmt.Errorf("failed to open history file %s: %w", s.path, err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read history file %s: %w", s.path, err)
	}

	records := make([]domain.HistoryRecord, 0, len(rows))
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) < 3 {
			return nil, fmt.Errorf("malformed history row %d in %s", i+1, s.path)
		}

		price, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("malformed price in history row %d: %w", i+1, err)
		}

		records = append(records, domain.HistoryRecord{
			Date:  row[0],
			Item:  domain.Category(row[1]),
			Price: price,
		})
	}

	s.records = records
	return s.records, nil
}

func (s *csvStore) Append(date string, prices map[domain.Category]int) {
	s.records = appendRecords(s.records, s.categories, date, prices, s.opts.upsert)
}

func (s *csvStore) Replace(records []domain.HistoryRecord) {
	s.records = records
}

func (s *csvStore) Records() []domain.HistoryRecord {
	return s.records
}

func (s *csvStore) Save() error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp history file: %w", err)
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)
	if err := writer.Write(csvHeader); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write history header: %w", err)
	}
	for _, record := range s.records {
		row := []string{record.Date, record.Item.String(), strconv.Itoa(record.Price)}
		if err := writer.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("failed to write history row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to flush history file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp history file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace history file %s: %w", s.path, err)
	}

	return nil
}
