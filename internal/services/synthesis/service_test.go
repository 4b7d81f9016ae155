package synthesis

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopforge/internal/config"
	"shopforge/internal/models"
	"shopforge/internal/rng"
	"shopforge/internal/services/risk"
)

func testCatalog() []models.Product {
	prices := []float64{30, 60, 120, 240}
	products := make([]models.Product, 0, len(prices))
	for i, price := range prices {
		products = append(products, models.Product{
			ID:       fmt.Sprintf("PROD%04d", i+1),
			Name:     fmt.Sprintf("Product %d", i+1),
			Category: models.Categories[i%len(models.Categories)],
			Price:    price,
			Cost:     price * 0.5,
		})
	}
	return products
}

func testRoster() []models.Customer {
	customers := make([]models.Customer, 0, 6)
	for i := 0; i < 6; i++ {
		customers = append(customers, models.Customer{
			ID:              fmt.Sprintf("CUST%05d", i+1),
			Name:            fmt.Sprintf("Customer %d", i+1),
			Email:           fmt.Sprintf("customer%d@example.com", i+1),
			Phone:           "555-0100",
			SignupDate:      time.Date(2024, time.Month(i+1), 15, 0, 0, 0, 0, time.UTC),
			BillingAddress:  fmt.Sprintf("%d Billing St", i+1),
			ShippingAddress: fmt.Sprintf("%d Shipping Ave", i+1),
			Type:            models.CustomerTypeReturning,
		})
	}
	return customers
}

func testService(t *testing.T, cfg Config) *Service {
	t.Helper()
	svc, err := NewService(testCatalog(), testRoster(), risk.NewService(risk.Config{}), cfg, zerolog.Nop())
	require.NoError(t, err)
	return svc
}

// February 2025 has 28 days and no promo days in range, matching the
// revenue scenario from the calibration requirements.
func febPlan(target float64) config.MonthPlan {
	return config.MonthPlan{
		Start:         time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
		TargetRevenue: target,
	}
}

func TestService_GenerateMonth_RevenueTargets(t *testing.T) {
	svc := testService(t, Config{
		PrimaryPromoDay:   time.Date(2024, 11, 29, 0, 0, 0, 0, time.UTC),
		SecondaryPromoDay: time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC),
	})

	plan := febPlan(100_000)
	txs, report, err := svc.GenerateMonth(rng.New(42), NewCounter(), plan)
	require.NoError(t, err)
	require.NotEmpty(t, txs)

	dailyBase := plan.TargetRevenue / 28

	// Transactions are emitted in day order; walk consecutive runs per day
	// and check first-overshoot termination against each day's target.
	var total float64
	i := 0
	for i < len(txs) {
		day := txs[i].OrderDate
		var dayRevenue float64
		var last models.Transaction
		for i < len(txs) && txs[i].OrderDate.Equal(day) {
			dayRevenue += txs[i].Amount
			last = txs[i]
			i++
		}
		target := dailyBase * svc.DayMultiplier(day)

		assert.GreaterOrEqual(t, dayRevenue, target, "day %s under target", day.Format("2006-01-02"))
		assert.Less(t, dayRevenue-last.Amount, target,
			"day %s kept sampling past its target", day.Format("2006-01-02"))
		total += dayRevenue
	}

	assert.GreaterOrEqual(t, total, plan.TargetRevenue)
	assert.Equal(t, len(txs), report.Transactions)
	assert.InDelta(t, total, report.Revenue, 0.01)
}

func TestService_DayMultiplier(t *testing.T) {
	primary := time.Date(2024, 11, 29, 0, 0, 0, 0, time.UTC)
	secondary := time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC)
	svc := testService(t, Config{PrimaryPromoDay: primary, SecondaryPromoDay: secondary})

	tests := []struct {
		name string
		day  time.Time
		want float64
	}{
		{"primary promo day", primary, 3.0},
		{"secondary promo day", secondary, 2.5},
		{"saturday", time.Date(2024, 11, 16, 0, 0, 0, 0, time.UTC), 1.2},
		{"sunday", time.Date(2024, 11, 17, 0, 0, 0, 0, time.UTC), 1.2},
		{"plain weekday", time.Date(2024, 11, 13, 0, 0, 0, 0, time.UTC), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.DayMultiplier(tt.day))
		})
	}
}

func TestService_GenerateMonth_SequentialIDsAcrossMonths(t *testing.T) {
	svc := testService(t, Config{})
	src := rng.New(42)
	ctr := NewCounter()

	octPlan := config.MonthPlan{
		Start:         time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC),
		TargetRevenue: 20_000,
	}
	novPlan := config.MonthPlan{
		Start:         time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC),
		TargetRevenue: 20_000,
	}

	oct, _, err := svc.GenerateMonth(src, ctr, octPlan)
	require.NoError(t, err)
	nov, _, err := svc.GenerateMonth(src, ctr, novPlan)
	require.NoError(t, err)

	all := append(append([]models.Transaction{}, oct...), nov...)
	for i, tx := range all {
		assert.Equal(t, fmt.Sprintf("TXN%06d", i+1), tx.ID, "identifiers must not reset between months")
	}

	for _, tx := range oct {
		assert.False(t, tx.OrderDate.Before(octPlan.Start))
		assert.False(t, tx.OrderDate.After(octPlan.End))
	}
}

func TestService_GenerateMonth_TransactionFields(t *testing.T) {
	svc := testService(t, Config{
		FreshShippingRate:    0.15,
		MissingOrderTimeRate: 0.05,
		MissingShippingRate:  0.03,
	})

	txs, _, err := svc.GenerateMonth(rng.New(42), NewCounter(), febPlan(100_000))
	require.NoError(t, err)

	priceByID := map[string]float64{}
	for _, p := range testCatalog() {
		priceByID[p.ID] = p.Price
	}
	customerByID := map[string]models.Customer{}
	for _, c := range testRoster() {
		customerByID[c.ID] = c
	}

	timeRe := regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d:00$`)
	var missingTimes int
	for _, tx := range txs {
		price, ok := priceByID[tx.ProductID]
		require.True(t, ok, "product reference %s must resolve", tx.ProductID)
		customer, ok := customerByID[tx.CustomerID]
		require.True(t, ok, "customer reference %s must resolve", tx.CustomerID)

		assert.Contains(t, []int{1, 2, 3}, tx.Quantity)
		assert.InDelta(t, price*float64(tx.Quantity), tx.Amount, 0.005)
		assert.Positive(t, tx.Amount)

		assert.Equal(t, customer.BillingAddress, tx.BillingAddress)
		assert.Contains(t, models.PaymentMethods, tx.PaymentMethod)
		assert.Contains(t, models.AcquisitionChannels, tx.AcquisitionChannel)
		assert.Contains(t, models.DeviceTypes, tx.DeviceType)
		assert.NotEmpty(t, tx.IPAddress)

		if tx.OrderTime == "" {
			missingTimes++
		} else {
			assert.Regexp(t, timeRe, tx.OrderTime)
		}

		if tx.ChargebackDate != nil {
			assert.True(t, tx.IsFraud, "chargeback implies fraud")
			days := int(tx.ChargebackDate.Sub(tx.OrderDate).Hours() / 24)
			assert.GreaterOrEqual(t, days, 30)
			assert.LessOrEqual(t, days, 60)
		}
	}

	// Around 5% of order times are nulled inline.
	assert.Greater(t, missingTimes, 0)
	assert.Less(t, float64(missingTimes)/float64(len(txs)), 0.15)
}

func TestService_GenerateMonth_Deterministic(t *testing.T) {
	cfg := Config{
		FreshShippingRate:    0.15,
		MissingOrderTimeRate: 0.05,
		MissingShippingRate:  0.03,
	}

	first, firstReport, err := testService(t, cfg).GenerateMonth(rng.New(42), NewCounter(), febPlan(50_000))
	require.NoError(t, err)
	second, secondReport, err := testService(t, cfg).GenerateMonth(rng.New(42), NewCounter(), febPlan(50_000))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, firstReport, secondReport)
}

func TestService_GenerateMonth_ZeroTarget(t *testing.T) {
	svc := testService(t, Config{})

	txs, report, err := svc.GenerateMonth(rng.New(1), NewCounter(), febPlan(0))
	require.NoError(t, err)
	assert.Empty(t, txs)
	assert.Zero(t, report.Transactions)
	assert.Zero(t, report.Revenue)
}

func TestService_GenerateMonth_TargetUnreachable(t *testing.T) {
	// A catalog of free products can never accumulate revenue, so a
	// positive target must trip the draw bound instead of spinning.
	freeCatalog := []models.Product{
		{ID: "PROD0001", Name: "Giveaway", Category: "Books", Price: 0, Cost: 0},
	}
	svc, err := NewService(freeCatalog, testRoster(), risk.NewService(risk.Config{}), Config{}, zerolog.Nop())
	require.NoError(t, err)
	svc.maxDraws = 500

	plan := config.MonthPlan{
		Start:         time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		TargetRevenue: 1000,
	}
	_, _, err = svc.GenerateMonth(rng.New(1), NewCounter(), plan)
	assert.ErrorIs(t, err, ErrTargetUnreachable)
}

func TestService_GenerateMonth_InvalidPlan(t *testing.T) {
	svc := testService(t, Config{})

	plan := config.MonthPlan{
		Start:         time.Date(2024, 10, 31, 0, 0, 0, 0, time.UTC),
		End:           time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
		TargetRevenue: 1000,
	}
	_, _, err := svc.GenerateMonth(rng.New(1), NewCounter(), plan)
	assert.ErrorIs(t, err, ErrInvalidPlan)
}

func TestNewService_Preconditions(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		_, err := NewService(nil, testRoster(), risk.NewService(risk.Config{}), Config{}, zerolog.Nop())
		assert.ErrorIs(t, err, ErrEmptyCatalog)
	})

	t.Run("empty roster", func(t *testing.T) {
		_, err := NewService(testCatalog(), nil, risk.NewService(risk.Config{}), Config{}, zerolog.Nop())
		assert.ErrorIs(t, err, ErrEmptyRoster)
	})
}
