// Package identity generates the customer roster a synthesis run draws
// buyers from.
package identity

import (
	"errors"
	"fmt"
	"time"

	"shopforge/internal/models"
	"shopforge/internal/rng"
)

// Service errors
var (
	ErrInvalidSize   = errors.New("roster size must be positive")
	ErrInvalidWindow = errors.New("signup window end precedes start")
)

// Config holds the roster generation parameters.
type Config struct {
	SignupStart       time.Time
	SignupEnd         time.Time
	NewCustomerCutoff time.Time
	// DuplicateEmailRate is the probability that a customer reuses the
	// immediately preceding customer's email.
	DuplicateEmailRate float64
}

type Service struct {
	cfg Config
}

// NewService creates a roster generator.
func NewService(cfg Config) (*Service, error) {
	if cfg.SignupEnd.Before(cfg.SignupStart) {
		return nil, ErrInvalidWindow
	}
	return &Service{cfg: cfg}, nil
}

// Generate produces exactly m customers with sequential identifiers.
// Duplicate emails only ever chain to the adjacent previous record.
func (s *Service) Generate(src *rng.Source, m int) ([]models.Customer, error) {
	if m <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, m)
	}

	windowDays := int(s.cfg.SignupEnd.Sub(s.cfg.SignupStart).Hours()/24) + 1

	customers := make([]models.Customer, 0, m)
	for i := 1; i <= m; i++ {
		signup := s.cfg.SignupStart.AddDate(0, 0, src.Intn(windowDays))

		var email string
		if i > 1 && src.Float64() < s.cfg.DuplicateEmailRate {
			email = customers[len(customers)-1].Email
		} else {
			email = src.Email()
		}

		customers = append(customers, models.Customer{
			ID:              fmt.Sprintf("CUST%05d", i),
			Name:            src.Name(),
			Email:           email,
			Phone:           src.Phone(),
			SignupDate:      signup,
			BillingAddress:  src.Address(),
			ShippingAddress: src.Address(),
			Type:            Classify(signup, s.cfg.NewCustomerCutoff),
		})
	}
	return customers, nil
}

// Classify derives the customer type from the signup date alone.
func Classify(signup, cutoff time.Time) string {
	if signup.Before(cutoff) {
		return models.CustomerTypeReturning
	}
	return models.CustomerTypeNew
}
