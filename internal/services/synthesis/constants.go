package synthesis

// Day-target multipliers
const (
	primaryPromoMultiplier   = 3.0
	secondaryPromoMultiplier = 2.5
	weekendMultiplier        = 1.2
)

// Per-transaction sampling
const (
	minQuantity = 1
	maxQuantity = 3

	// Order times cluster around mid-afternoon.
	orderHourMean   = 14.0
	orderHourStddev = 4.0
)

// maxDrawsPerDay bounds the sampling loop so a misconfigured target can
// never spin forever.
const maxDrawsPerDay = 1_000_000
