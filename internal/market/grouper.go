package market

import (
	"strings"

	"crustacean/tracker/internal/domain"
)

// Grouped holds per-category price lists for one day, in tracked-category
// order. Categories with no matches are present with an empty list.
type Grouped struct {
	categories []domain.Category
	prices     map[domain.Category][]int
}

// Group buckets parsed entries by tracked category. A category matches when
// its label is a substring of the entry's item name, so an item like
// "대게킹크랩" contributes to both groups. Append order follows entry order.
func Group(entries []domain.PriceEntry, categories []domain.Category) *Grouped {
	grouped := &Grouped{
		categories: categories,
		prices:     make(map[domain.Category][]int, len(categories)),
	}
	for _, category := range categories {
		grouped.prices[category] = []int{}
	}

	for _, entry := range entries {
		for _, category := range categories {
			if strings.Contains(entry.Item, category.String()) {
				grouped.prices[category] = append(grouped.prices[category], entry.Price)
			}
		}
	}

	return grouped
}

// Prices returns the price list for one category, nil for untracked labels.
func (g *Grouped) Prices(category domain.Category) []int {
	return g.prices[category]
}

// Categories returns the tracked set in its configured order.
func (g *Grouped) Categories() []domain.Category {
	return g.categories
}
