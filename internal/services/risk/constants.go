package risk

// Default fraud probability composition
const (
	defaultBaseRate      = 0.021
	defaultHighValueRate = 0.051
	defaultLowValueRate  = 0.008

	defaultHighValueThreshold = 500.0
	defaultLowValueThreshold  = 100.0

	defaultWeekendMultiplier     = 3.2
	defaultNewCustomerMultiplier = 1.5
	defaultRecencyWindowDays     = 30

	defaultLowRiskChannelFactor  = 0.43
	defaultHighRiskChannelFactor = 1.52
)

// Chargeback scheduling
const (
	chargebackRate    = 0.9
	chargebackMinDays = 30
	chargebackMaxDays = 60
)
