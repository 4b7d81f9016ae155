// Package noise corrupts a finished transaction set to mimic upstream
// data-quality defects.
package noise

import (
	"fmt"
	"math"

	"shopforge/internal/models"
	"shopforge/internal/rng"
)

// Injector rewrites the amount of a fixed fraction of transactions into a
// currency-prefixed string.
type Injector struct {
	rate float64
}

// NewInjector creates an injector corrupting the given fraction of rows.
func NewInjector(rate float64) *Injector {
	return &Injector{rate: rate}
}

// Apply corrupts an exact-count random subset of txs in place and returns
// the number of rows touched.
func (i *Injector) Apply(src *rng.Source, txs []models.Transaction) int {
	count := int(math.Round(i.rate * float64(len(txs))))
	if count <= 0 {
		return 0
	}

	perm := src.Perm(len(txs))
	for _, idx := range perm[:count] {
		txs[idx].AmountRaw = fmt.Sprintf("$%.2f", txs[idx].Amount)
	}
	return count
}
