package models

import "time"

// Customer type classifications
const (
	CustomerTypeNew       = "new"
	CustomerTypeReturning = "returning"
)

// Customer is one roster entry. Immutable once generated. Email may be
// shared with the immediately preceding customer to simulate duplicate
// identities in the source data.
type Customer struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	SignupDate      time.Time
	BillingAddress  string
	ShippingAddress string
	Type            string
}
