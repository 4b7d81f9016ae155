package models

import "time"

// Acquisition channels
const (
	ChannelPaidSearch = "Paid Search"
	ChannelOrganic    = "Organic"
	ChannelSocial     = "Social"
	ChannelEmail      = "Email"
)

var AcquisitionChannels = []string{
	ChannelPaidSearch,
	ChannelOrganic,
	ChannelSocial,
	ChannelEmail,
}

var PaymentMethods = []string{
	"Credit Card",
	"Debit Card",
	"PayPal",
	"Apple Pay",
}

var DeviceTypes = []string{
	"Desktop",
	"Mobile",
	"Tablet",
}

// Transaction is one synthesized order. CustomerID and ProductID reference
// generated entities by identifier only.
type Transaction struct {
	ID                 string
	CustomerID         string
	ProductID          string
	OrderDate          time.Time
	OrderTime          string // "15:04:05", empty when missing
	Amount             float64
	AmountRaw          string // corrupted textual amount, overrides Amount on output
	Quantity           int
	PaymentMethod      string
	ShippingAddress    string // empty when missing
	BillingAddress     string
	AcquisitionChannel string
	IsFraud            bool
	ChargebackDate     *time.Time // set only for a fraction of fraudulent orders
	DeviceType         string
	IPAddress          string
}
