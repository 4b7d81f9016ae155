package synthesis

import "time"

// Config holds the synthesizer's sampling parameters.
type Config struct {
	PrimaryPromoDay   time.Time
	SecondaryPromoDay time.Time

	// FreshShippingRate is the probability an order ships to a freshly
	// generated address instead of the customer's own.
	FreshShippingRate float64
	// MissingOrderTimeRate and MissingShippingRate inject missing fields
	// at creation time.
	MissingOrderTimeRate float64
	MissingShippingRate  float64
}

// MonthReport summarizes one generated month.
type MonthReport struct {
	Label        string  `json:"label"`
	Transactions int     `json:"transactions"`
	Revenue      float64 `json:"revenue"`
}
