package models

// Product categories. Drawn uniformly at catalog generation time.
var Categories = []string{
	"Electronics",
	"Clothing",
	"Home & Garden",
	"Sports",
	"Books",
}

// Product is one catalog entry. Immutable once generated; Cost never
// exceeds Price.
type Product struct {
	ID       string
	Name     string
	Category string
	Price    float64
	Cost     float64
}
