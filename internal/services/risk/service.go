// Package risk derives fraud labels for synthesized transactions by
// stacking multiplicative risk factors onto a base rate.
package risk

import (
	"time"

	"shopforge/internal/models"
	"shopforge/internal/rng"
)

// Config holds the risk factor set. Zero-valued fields fall back to the
// default composition.
type Config struct {
	// Clamp caps the composed probability at 1. Off by default: the
	// compounded factors are allowed to exceed 1, making the fraud draw
	// certain.
	Clamp bool

	BaseRate      float64
	HighValueRate float64
	LowValueRate  float64

	HighValueThreshold float64
	LowValueThreshold  float64

	WeekendMultiplier     float64
	NewCustomerMultiplier float64
	RecencyWindowDays     int

	LowRiskChannelFactor  float64
	HighRiskChannelFactor float64
}

// Context is the slice of a candidate transaction the model scores.
type Context struct {
	Amount     float64
	OrderDate  time.Time
	SignupDate time.Time
	Channel    string
}

// Assessment is the model's output for one transaction.
type Assessment struct {
	Probability    float64
	IsFraud        bool
	ChargebackDate *time.Time
}

type Service struct {
	cfg Config
}

// NewService creates a fraud risk model, filling in the default factor set
// where cfg leaves fields unset.
func NewService(cfg Config) *Service {
	if cfg.BaseRate == 0 {
		cfg.BaseRate = defaultBaseRate
	}
	if cfg.HighValueRate == 0 {
		cfg.HighValueRate = defaultHighValueRate
	}
	if cfg.LowValueRate == 0 {
		cfg.LowValueRate = defaultLowValueRate
	}
	if cfg.HighValueThreshold == 0 {
		cfg.HighValueThreshold = defaultHighValueThreshold
	}
	if cfg.LowValueThreshold == 0 {
		cfg.LowValueThreshold = defaultLowValueThreshold
	}
	if cfg.WeekendMultiplier == 0 {
		cfg.WeekendMultiplier = defaultWeekendMultiplier
	}
	if cfg.NewCustomerMultiplier == 0 {
		cfg.NewCustomerMultiplier = defaultNewCustomerMultiplier
	}
	if cfg.RecencyWindowDays == 0 {
		cfg.RecencyWindowDays = defaultRecencyWindowDays
	}
	if cfg.LowRiskChannelFactor == 0 {
		cfg.LowRiskChannelFactor = defaultLowRiskChannelFactor
	}
	if cfg.HighRiskChannelFactor == 0 {
		cfg.HighRiskChannelFactor = defaultHighRiskChannelFactor
	}
	return &Service{cfg: cfg}
}

// Assess composes the fraud probability for ctx, draws the fraud flag and,
// for most fraudulent orders, schedules a chargeback 30-60 days out.
func (s *Service) Assess(src *rng.Source, ctx Context) Assessment {
	p := s.Probability(ctx)

	a := Assessment{Probability: p}
	a.IsFraud = src.Float64() < p
	if a.IsFraud && src.Float64() < chargebackRate {
		d := ctx.OrderDate.AddDate(0, 0, src.IntBetween(chargebackMinDays, chargebackMaxDays))
		a.ChargebackDate = &d
	}
	return a
}

// Probability composes the risk factors without drawing. Value tier first,
// then weekend and recency multipliers, channel adjustment last.
func (s *Service) Probability(ctx Context) float64 {
	p := s.cfg.BaseRate
	switch {
	case ctx.Amount > s.cfg.HighValueThreshold:
		p = s.cfg.HighValueRate
	case ctx.Amount < s.cfg.LowValueThreshold:
		p = s.cfg.LowValueRate
	}

	if isWeekend(ctx.OrderDate) {
		p *= s.cfg.WeekendMultiplier
	}
	if daysBetween(ctx.SignupDate, ctx.OrderDate) < s.cfg.RecencyWindowDays {
		p *= s.cfg.NewCustomerMultiplier
	}

	switch ctx.Channel {
	case models.ChannelEmail:
		p *= s.cfg.LowRiskChannelFactor
	case models.ChannelPaidSearch:
		p *= s.cfg.HighRiskChannelFactor
	}

	if s.cfg.Clamp && p > 1 {
		p = 1
	}
	return p
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
