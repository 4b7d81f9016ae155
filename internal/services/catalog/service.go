// Package catalog generates the product catalog a synthesis run sells from.
package catalog

import (
	"errors"
	"fmt"
	"math"

	"shopforge/internal/models"
	"shopforge/internal/rng"
)

// Service errors
var (
	ErrInvalidSize   = errors.New("catalog size must be positive")
	ErrInvalidBounds = errors.New("invalid price or margin bounds")
)

// Config holds the catalog generation bounds.
type Config struct {
	PriceMin  float64
	PriceMax  float64
	MarginMin float64
	MarginMax float64
}

type Service struct {
	cfg Config
}

// NewService creates a catalog generator, filling in default bounds where
// unset.
func NewService(cfg Config) (*Service, error) {
	if cfg.PriceMax == 0 {
		cfg.PriceMin, cfg.PriceMax = 10, 500
	}
	if cfg.MarginMax == 0 {
		cfg.MarginMin, cfg.MarginMax = 0.4, 0.7
	}
	if cfg.PriceMin <= 0 || cfg.PriceMax < cfg.PriceMin ||
		cfg.MarginMin <= 0 || cfg.MarginMax < cfg.MarginMin || cfg.MarginMax > 1 {
		return nil, ErrInvalidBounds
	}
	return &Service{cfg: cfg}, nil
}

// Generate produces exactly n products with sequential identifiers.
func (s *Service) Generate(src *rng.Source, n int) ([]models.Product, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}

	products := make([]models.Product, 0, n)
	for i := 1; i <= n; i++ {
		category := models.Categories[src.Intn(len(models.Categories))]
		price := round2(src.FloatBetween(s.cfg.PriceMin, s.cfg.PriceMax))
		cost := round2(price * src.FloatBetween(s.cfg.MarginMin, s.cfg.MarginMax))

		products = append(products, models.Product{
			ID:       fmt.Sprintf("PROD%04d", i),
			Name:     src.ProductName(),
			Category: category,
			Price:    price,
			Cost:     cost,
		})
	}
	return products, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
