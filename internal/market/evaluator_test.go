package market

import (
	"fmt"
	"testing"

	"crustacean/tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func history(item domain.Category, prices ...int) []domain.HistoryRecord {
	records := make([]domain.HistoryRecord, 0, len(prices))
	for i, price := range prices {
		records = append(records, domain.HistoryRecord{
			Date:  fmt.Sprintf("2025060%d", i+1),
			Item:  item,
			Price: price,
		})
	}
	return records
}

func TestEvaluateAlertsBelowThreshold(t *testing.T) {
	records := history(domain.CategorySnowCrab, 100, 100)
	today := map[domain.Category]int{domain.CategorySnowCrab: 80}

	alerts := Evaluate(records, today, domain.Categories, 0.85)

	require.Len(t, alerts, 1)
	assert.Equal(t, domain.CategorySnowCrab, alerts[0].Item)
	assert.Equal(t, 80, alerts[0].TodayPrice)
	assert.InDelta(t, 100.0, alerts[0].Mean, 1e-9)
}

func TestEvaluateNoAlertAboveThreshold(t *testing.T) {
	records := history(domain.CategorySnowCrab, 100, 100)
	today := map[domain.Category]int{domain.CategorySnowCrab: 90}

	alerts := Evaluate(records, today, domain.Categories, 0.85)

	assert.Empty(t, alerts)
}

func TestEvaluateThresholdBoundaryInclusive(t *testing.T) {
	records := history(domain.CategoryRedCrab, 100, 100)
	today := map[domain.Category]int{domain.CategoryRedCrab: 85}

	alerts := Evaluate(records, today, domain.Categories, 0.85)

	require.Len(t, alerts, 1)
}

func TestEvaluateRequiresTwoHistoryRecords(t *testing.T) {
	records := history(domain.CategoryKingCrab, 100)
	today := map[domain.Category]int{domain.CategoryKingCrab: 1}

	alerts := Evaluate(records, today, domain.Categories, 0.85)

	assert.Empty(t, alerts)
}

func TestEvaluateSkipsCategoriesMissingToday(t *testing.T) {
	records := history(domain.CategoryBlueCrab, 100, 100)

	alerts := Evaluate(records, nil, domain.Categories, 0.85)

	assert.Empty(t, alerts)
}

func TestEvaluateFollowsCategoryOrder(t *testing.T) {
	records := append(
		history(domain.CategoryHorsehair, 100, 100),
		history(domain.CategorySnowCrab, 100, 100)...,
	)
	today := map[domain.Category]int{
		domain.CategoryHorsehair: 10,
		domain.CategorySnowCrab:  10,
	}

	alerts := Evaluate(records, today, domain.Categories, 0.85)

	require.Len(t, alerts, 2)
	assert.Equal(t, domain.CategorySnowCrab, alerts[0].Item)
	assert.Equal(t, domain.CategoryHorsehair, alerts[1].Item)
}

func TestEvaluateMeanIsNotTruncated(t *testing.T) {
	// Mean 150.5; threshold 0.85 puts the cutoff at 127.925.
	records := history(domain.CategorySnowCrab, 100, 201)
	today := map[domain.Category]int{domain.CategorySnowCrab: 127}

	alerts := Evaluate(records, today, domain.Categories, 0.85)

	require.Len(t, alerts, 1)
	assert.InDelta(t, 150.5, alerts[0].Mean, 1e-9)
}
