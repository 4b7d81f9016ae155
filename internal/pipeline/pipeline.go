// Package pipeline wires the generation stages into one synthesis run:
// catalog, then roster, then month-by-month transactions, then noise.
package pipeline

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"shopforge/internal/config"
	"shopforge/internal/models"
	"shopforge/internal/output"
	"shopforge/internal/rng"
	"shopforge/internal/services/catalog"
	"shopforge/internal/services/identity"
	"shopforge/internal/services/noise"
	"shopforge/internal/services/risk"
	"shopforge/internal/services/synthesis"
)

// Run executes one full synthesis run. Every stage draws from a single
// source seeded with cfg.Seed, so equal configs produce equal datasets
// (the manifest run ID aside).
func Run(cfg config.Config, log zerolog.Logger) (output.Dataset, error) {
	src := rng.New(cfg.Seed)

	catalogSvc, err := catalog.NewService(catalog.Config{
		PriceMin:  cfg.PriceMin,
		PriceMax:  cfg.PriceMax,
		MarginMin: cfg.MarginMin,
		MarginMax: cfg.MarginMax,
	})
	if err != nil {
		return output.Dataset{}, fmt.Errorf("catalog service: %w", err)
	}
	products, err := catalogSvc.Generate(src, cfg.CatalogSize)
	if err != nil {
		return output.Dataset{}, fmt.Errorf("generate catalog: %w", err)
	}
	log.Info().Int("products", len(products)).Msg("catalog generated")

	identitySvc, err := identity.NewService(identity.Config{
		SignupStart:        cfg.SignupStart,
		SignupEnd:          cfg.SignupEnd,
		NewCustomerCutoff:  cfg.NewCustomerCutoff,
		DuplicateEmailRate: cfg.DuplicateEmailRate,
	})
	if err != nil {
		return output.Dataset{}, fmt.Errorf("identity service: %w", err)
	}
	customers, err := identitySvc.Generate(src, cfg.RosterSize)
	if err != nil {
		return output.Dataset{}, fmt.Errorf("generate roster: %w", err)
	}
	log.Info().Int("customers", len(customers)).Msg("roster generated")

	synthSvc, err := synthesis.NewService(products, customers,
		risk.NewService(risk.Config{Clamp: cfg.ClampFraudProbability}),
		synthesis.Config{
			PrimaryPromoDay:      cfg.PrimaryPromoDay,
			SecondaryPromoDay:    cfg.SecondaryPromoDay,
			FreshShippingRate:    cfg.FreshShippingRate,
			MissingOrderTimeRate: cfg.MissingOrderTimeRate,
			MissingShippingRate:  cfg.MissingShippingRate,
		}, log)
	if err != nil {
		return output.Dataset{}, fmt.Errorf("synthesis service: %w", err)
	}

	ctr := synthesis.NewCounter()
	var (
		transactions []models.Transaction
		reports      []synthesis.MonthReport
	)
	for _, plan := range cfg.Months {
		monthTxs, report, err := synthSvc.GenerateMonth(src, ctr, plan)
		if err != nil {
			return output.Dataset{}, fmt.Errorf("generate %s: %w", plan.Start.Format("2006-01"), err)
		}
		transactions = append(transactions, monthTxs...)
		reports = append(reports, report)
	}

	corrupted := noise.NewInjector(cfg.AmountCorruptionRate).Apply(src, transactions)
	log.Info().Int("rows", corrupted).Msg("amount noise injected")

	return output.Dataset{
		RunID:         uuid.NewString(),
		Seed:          cfg.Seed,
		Products:      products,
		Customers:     customers,
		Transactions:  transactions,
		Months:        reports,
		CorruptedRows: corrupted,
	}, nil
}
