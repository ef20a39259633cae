package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInferSameDay(t *testing.T) {
	today := time.Date(2025, 5, 22, 14, 0, 0, 0, time.UTC)

	date, err := Infer(today, 5, 22)

	require.NoError(t, err)
	assert.Equal(t, "20250522", date)
}

func TestInferUpcomingDateKeepsCurrentYear(t *testing.T) {
	today := time.Date(2025, 5, 22, 0, 0, 0, 0, time.UTC)

	date, err := Infer(today, 11, 3)

	require.NoError(t, err)
	assert.Equal(t, "20251103", date)
}

func TestInferPassedDateRollsToNextYear(t *testing.T) {
	today := time.Date(2025, 5, 22, 0, 0, 0, 0, time.UTC)

	date, err := Infer(today, 1, 10)

	require.NoError(t, err)
	assert.Equal(t, "20260110", date)
}

func TestInferEarlierDayInSameMonthRollsToNextYear(t *testing.T) {
	today := time.Date(2025, 5, 22, 0, 0, 0, 0, time.UTC)

	date, err := Infer(today, 5, 21)

	require.NoError(t, err)
	assert.Equal(t, "20260521", date)
}

func TestInferRejectsInvalidDates(t *testing.T) {
	today := time.Date(2025, 5, 22, 0, 0, 0, 0, time.UTC)

	_, err := Infer(today, 13, 1)
	assert.Error(t, err)

	_, err = Infer(today, 2, 30)
	assert.Error(t, err)

	_, err = Infer(today, 0, 0)
	assert.Error(t, err)
}

func TestFromContent(t *testing.T) {
	today := time.Date(2025, 5, 22, 0, 0, 0, 0, time.UTC)

	date, ok := FromContent(today, "🦀 줄포상회 5월 22일 시세표입니다")

	require.True(t, ok)
	assert.Equal(t, "20250522", date)
}

func TestFromContentWithoutSpaceBetweenMonthAndDay(t *testing.T) {
	today := time.Date(2025, 5, 22, 0, 0, 0, 0, time.UTC)

	date, ok := FromContent(today, "6월3일 시세표")

	require.True(t, ok)
	assert.Equal(t, "20250603", date)
}

func TestFromContentNoDateMention(t *testing.T) {
	today := time.Date(2025, 5, 22, 0, 0, 0, 0, time.UTC)

	_, ok := FromContent(today, "오늘의 시세표입니다")

	assert.False(t, ok)
}
