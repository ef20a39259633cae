package domain

// CategorySummary reduces one category's prices for a single day.
// Mid is the arithmetic mean truncated toward zero.
type CategorySummary struct {
	Item Category `json:"item"`
	Min  int      `json:"min"`
	Mid  int      `json:"mid"`
	Max  int      `json:"max"`
}
