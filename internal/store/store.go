package store

import "crustacean/tracker/internal/domain"

// HistoryStore accumulates (date, item, price) records across runs. Load
// reads the full persisted set into memory, Append adds today's prices, and
// Save overwrites the backing storage with the in-memory set. Callers are
// responsible for calling Save after Append.
type HistoryStore interface {
	Load() ([]domain.HistoryRecord, error)
	Append(date string, prices map[domain.Category]int)
	Replace(records []domain.HistoryRecord)
	Records() []domain.HistoryRecord
	Save() error
}

// Option configures a store implementation.
type Option func(*options)

type options struct {
	upsert bool
}

// WithUpsert makes Append replace an existing (date, item) record instead of
// appending a duplicate row, so re-ingesting the same day's data is
// idempotent. The default keeps plain append semantics.
func WithUpsert() Option {
	return func(o *options) {
		o.upsert = true
	}
}

// appendRecords implements the shared Append semantics over an in-memory
// record slice, iterating categories in their configured order.
func appendRecords(records []domain.HistoryRecord, categories []domain.Category, date string, prices map[domain.Category]int, upsert bool) []domain.HistoryRecord {
	for _, category := range categories {
		price, ok := prices[category]
		if !ok {
			continue
		}

		record := domain.HistoryRecord{Date: date, Item: category, Price: price}

		if upsert {
			replaced := false
			for i := range records {
				if records[i].Date == date && records[i].Item == category {
					records[i] = record
					replaced = true
					break
				}
			}
			if replaced {
				continue
			}
		}

		records = append(records, record)
	}

	return records
}
