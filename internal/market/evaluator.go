package market

import "crustacean/tracker/internal/domain"

// DefaultThreshold alerts when today's price is 15% or more below the
// historical mean.
const DefaultThreshold = 0.85

// Evaluate compares today's price per category against the mean of all
// stored prices for that category and returns the qualifying alerts in
// tracked-category order. A category needs at least two history records
// before it can alert; categories with no price today are skipped.
func Evaluate(history []domain.HistoryRecord, today map[domain.Category]int, categories []domain.Category, threshold float64) []domain.Alert {
	alerts := make([]domain.Alert, 0)

	for _, category := range categories {
		count := 0
		sum := 0
		for _, record := range history {
			if record.Item == category {
				count++
				sum += record.Price
			}
		}
		if count < 2 {
			continue
		}

		todayPrice, ok := today[category]
		if !ok {
			continue
		}

		mean := float64(sum) / float64(count)
		if float64(todayPrice) <= mean*threshold {
			alerts = append(alerts, domain.Alert{
				Item:       category,
				TodayPrice: todayPrice,
				Mean:       mean,
			})
		}
	}

	return alerts
}
