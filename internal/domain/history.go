package domain

// HistoryRecord is one persisted (date, category, price) fact.
// Date is in YYYYMMDD form.
type HistoryRecord struct {
	Date  string   `json:"date"`
	Item  Category `json:"item"`
	Price int      `json:"price"`
}
