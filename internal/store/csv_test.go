package store

import (
	"os"
	"path/filepath"
	"testing"

	"crustacean/tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempCSVPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "crustacean_prices.csv")
}

func TestCSVStoreLoadMissingFile(t *testing.T) {
	s := NewCSVStore(tempCSVPath(t), domain.Categories)

	records, err := s.Load()

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCSVStoreRoundTrip(t *testing.T) {
	path := tempCSVPath(t)

	s := NewCSVStore(path, domain.Categories)
	_, err := s.Load()
	require.NoError(t, err)

	s.Append("20250522", map[domain.Category]int{
		domain.CategorySnowCrab: 35000,
		domain.CategoryRedCrab:  12000,
	})
	require.NoError(t, s.Save())

	reloaded := NewCSVStore(path, domain.Categories)
	records, err := reloaded.Load()

	require.NoError(t, err)
	assert.Equal(t, s.Records(), records)
	assert.Equal(t, []domain.HistoryRecord{
		{Date: "20250522", Item: domain.CategorySnowCrab, Price: 35000},
		{Date: "20250522", Item: domain.CategoryRedCrab, Price: 12000},
	}, records)
}

func TestCSVStoreWritesHeader(t *testing.T) {
	path := tempCSVPath(t)

	s := NewCSVStore(path, domain.Categories)
	s.Append("20250522", map[domain.Category]int{domain.CategorySnowCrab: 35000})
	require.NoError(t, s.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "date,item,price\n")
}

func TestCSVStoreAppendFollowsCategoryOrder(t *testing.T) {
	s := NewCSVStore(tempCSVPath(t), domain.Categories)

	s.Append("20250522", map[domain.Category]int{
		domain.CategoryHorsehair: 40000,
		domain.CategorySnowCrab:  35000,
		domain.CategoryBlueCrab:  18000,
	})

	records := s.Records()
	require.Len(t, records, 3)
	assert.Equal(t, domain.CategorySnowCrab, records[0].Item)
	assert.Equal(t, domain.CategoryBlueCrab, records[1].Item)
	assert.Equal(t, domain.CategoryHorsehair, records[2].Item)
}

func TestCSVStoreDuplicateAppendKeepsBothRows(t *testing.T) {
	// Plain append semantics: re-ingesting the same date duplicates rows.
	s := NewCSVStore(tempCSVPath(t), domain.Categories)

	prices := map[domain.Category]int{domain.CategorySnowCrab: 35000}
	s.Append("20250522", prices)
	s.Append("20250522", prices)

	assert.Len(t, s.Records(), 2)
}

func TestCSVStoreUpsertReplacesSameDateItem(t *testing.T) {
	s := NewCSVStore(tempCSVPath(t), domain.Categories, WithUpsert())

	s.Append("20250522", map[domain.Category]int{domain.CategorySnowCrab: 35000})
	s.Append("20250522", map[domain.Category]int{domain.CategorySnowCrab: 33000})
	s.Append("20250523", map[domain.Category]int{domain.CategorySnowCrab: 36000})

	records := s.Records()
	require.Len(t, records, 2)
	assert.Equal(t, 33000, records[0].Price)
	assert.Equal(t, "20250523", records[1].Date)
}

func TestCSVStoreSaveOverwritesWholeFile(t *testing.T) {
	path := tempCSVPath(t)

	s := NewCSVStore(path, domain.Categories)
	s.Append("20250522", map[domain.Category]int{domain.CategorySnowCrab: 35000})
	require.NoError(t, s.Save())

	s.Replace([]domain.HistoryRecord{
		{Date: "20250523", Item: domain.CategoryRedCrab, Price: 11000},
	})
	require.NoError(t, s.Save())

	reloaded := NewCSVStore(path, domain.Categories)
	records, err := reloaded.Load()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.CategoryRedCrab, records[0].Item)
}

func TestCSVStoreLoadMalformedPrice(t *testing.T) {
	path := tempCSVPath(t)
	require.NoError(t, os.WriteFile(path, []byte("date,item,price\n20250522,대게,not-a-number\n"), 0o644))

	s := NewCSVStore(path, domain.Categories)
	_, err := s.Load()

	assert.Error(t, err)
}
