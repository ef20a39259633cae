package market

import "crustacean/tracker/internal/domain"

// Summarize reduces each category's price list to min/mid/max. Categories
// with no prices that day are omitted. Mid is the mean truncated toward
// zero by integer division, not rounded.
func Summarize(grouped *Grouped) []domain.CategorySummary {
	summaries := make([]domain.CategorySummary, 0, len(grouped.Categories()))

	for _, category := range grouped.Categories() {
		prices := grouped.Prices(category)
		if len(prices) == 0 {
			continue
		}

		min, max, sum := prices[0], prices[0], 0
		for _, price := range prices {
			if price < min {
				min = price
			}
			if price > max {
				max = price
			}
			sum += price
		}

		summaries = append(summaries, domain.CategorySummary{
			Item: category,
			Min:  min,
			Mid:  sum / len(prices),
			Max:  max,
		})
	}

	return summaries
}

// MinPrices maps each summarized category to its lowest observed price,
// the figure the alerting policy treats as "today's price".
func MinPrices(summaries []domain.CategorySummary) map[domain.Category]int {
	prices := make(map[domain.Category]int, len(summaries))
	for _, summary := range summaries {
		prices[summary.Item] = summary.Min
	}
	return prices
}
