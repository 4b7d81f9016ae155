// Package synthesis is the revenue-targeted transaction generator. For each
// calendar day of a month plan it samples customer/product pairs until the
// day's revenue target is met, delegating fraud labeling to the risk model.
package synthesis

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"shopforge/internal/config"
	"shopforge/internal/models"
	"shopforge/internal/rng"
	"shopforge/internal/services/risk"
)

type Service struct {
	catalog []models.Product
	roster  []models.Customer
	risk    *risk.Service
	cfg     Config
	log     zerolog.Logger

	// maxDraws bounds the per-day sampling loop. Lowered in tests.
	maxDraws int
}

// NewService creates a synthesizer over fully materialized catalog and
// roster collections. Both must be non-empty.
func NewService(catalog []models.Product, roster []models.Customer, riskModel *risk.Service, cfg Config, log zerolog.Logger) (*Service, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}
	return &Service{
		catalog:  catalog,
		roster:   roster,
		risk:     riskModel,
		cfg:      cfg,
		log:      log,
		maxDraws: maxDrawsPerDay,
	}, nil
}

// GenerateMonth emits transactions for every day of the plan. Each day
// stops at first overshoot of its target; the final transaction is never
// trimmed to fit.
func (s *Service) GenerateMonth(src *rng.Source, ctr *Counter, plan config.MonthPlan) ([]models.Transaction, MonthReport, error) {
	if plan.End.Before(plan.Start) {
		return nil, MonthReport{}, fmt.Errorf("%w: %s..%s", ErrInvalidPlan,
			plan.Start.Format("2006-01-02"), plan.End.Format("2006-01-02"))
	}

	days := int(plan.End.Sub(plan.Start).Hours()/24) + 1
	dailyBase := plan.TargetRevenue / float64(days)

	var (
		txs     []models.Transaction
		revenue float64
	)
	for day := plan.Start; !day.After(plan.End); day = day.AddDate(0, 0, 1) {
		target := dailyBase * s.DayMultiplier(day)

		var dayRevenue float64
		draws := 0
		for dayRevenue < target {
			if draws >= s.maxDraws {
				return nil, MonthReport{}, fmt.Errorf("%w: day %s, target %.2f after %d draws",
					ErrTargetUnreachable, day.Format("2006-01-02"), target, draws)
			}
			draws++

			tx := s.sample(src, ctr, day)
			dayRevenue += tx.Amount
			txs = append(txs, tx)
		}
		revenue += dayRevenue
	}

	report := MonthReport{
		Label:        plan.Start.Format("January 2006"),
		Transactions: len(txs),
		Revenue:      round2(revenue),
	}
	s.log.Info().
		Str("month", report.Label).
		Int("transactions", report.Transactions).
		Float64("revenue", report.Revenue).
		Msg("month generated")

	return txs, report, nil
}

// DayMultiplier returns the target multiplier for a calendar day.
func (s *Service) DayMultiplier(day time.Time) float64 {
	switch {
	case sameDay(day, s.cfg.PrimaryPromoDay):
		return primaryPromoMultiplier
	case sameDay(day, s.cfg.SecondaryPromoDay):
		return secondaryPromoMultiplier
	case day.Weekday() == time.Saturday || day.Weekday() == time.Sunday:
		return weekendMultiplier
	default:
		return 1.0
	}
}

func (s *Service) sample(src *rng.Source, ctr *Counter, day time.Time) models.Transaction {
	customer := s.roster[src.Intn(len(s.roster))]
	product := s.catalog[src.Intn(len(s.catalog))]

	quantity := src.IntBetween(minQuantity, maxQuantity)
	amount := round2(product.Price * float64(quantity))

	shipping := customer.ShippingAddress
	if src.Float64() < s.cfg.FreshShippingRate {
		shipping = src.Address()
	}

	orderTime := s.sampleOrderTime(src)
	if src.Float64() < s.cfg.MissingOrderTimeRate {
		orderTime = ""
	}
	if src.Float64() < s.cfg.MissingShippingRate {
		shipping = ""
	}

	channel := models.AcquisitionChannels[src.Intn(len(models.AcquisitionChannels))]

	assessment := s.risk.Assess(src, risk.Context{
		Amount:     amount,
		OrderDate:  day,
		SignupDate: customer.SignupDate,
		Channel:    channel,
	})

	return models.Transaction{
		ID:                 fmt.Sprintf("TXN%06d", ctr.Next()),
		CustomerID:         customer.ID,
		ProductID:          product.ID,
		OrderDate:          day,
		OrderTime:          orderTime,
		Amount:             amount,
		Quantity:           quantity,
		PaymentMethod:      models.PaymentMethods[src.Intn(len(models.PaymentMethods))],
		ShippingAddress:    shipping,
		BillingAddress:     customer.BillingAddress,
		AcquisitionChannel: channel,
		IsFraud:            assessment.IsFraud,
		ChargebackDate:     assessment.ChargebackDate,
		DeviceType:         models.DeviceTypes[src.Intn(len(models.DeviceTypes))],
		IPAddress:          src.IPv4(),
	}
}

// sampleOrderTime draws a clock time from a normal distribution peaking
// mid-afternoon, clipped to the day.
func (s *Service) sampleOrderTime(src *rng.Source) string {
	hour := int(src.NormFloat64()*orderHourStddev + orderHourMean)
	if hour < 0 {
		hour = 0
	}
	if hour > 23 {
		hour = 23
	}
	minute := src.Intn(60)
	return fmt.Sprintf("%02d:%02d:00", hour, minute)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
