package domain

// PriceEntry is one (item, unit, price) observation parsed from a posting.
// Price is in whole won.
type PriceEntry struct {
	Item  string `json:"item"`
	Unit  string `json:"unit"`
	Price int    `json:"price"`
}
