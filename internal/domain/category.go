package domain

// Category is one of the tracked crustacean varieties.
type Category string

func (c Category) String() string {
	return string(c)
}

const (
	CategorySnowCrab  Category = "대게"
	CategoryKingCrab  Category = "킹크랩"
	CategoryRedCrab   Category = "홍게"
	CategoryBlueCrab  Category = "꽃게"
	CategoryHorsehair Category = "털게"
)

// Categories is the default tracked set, in report order.
var Categories = []Category{
	CategorySnowCrab,
	CategoryKingCrab,
	CategoryRedCrab,
	CategoryBlueCrab,
	CategoryHorsehair,
}

// CategoriesFromStrings converts a configured label list into categories,
// preserving order.
func CategoriesFromStrings(labels []string) []Category {
	categories := make([]Category, 0, len(labels))
	for _, label := range labels {
		categories = append(categories, Category(label))
	}
	return categories
}
