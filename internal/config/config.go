package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const dateLayout = "2006-01-02"

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetInt64Env returns an int64 environment variable or a default value.
func GetInt64Env(key string, defaultVal int64) int64 {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetFloatEnv returns a float environment variable or a default value.
func GetFloatEnv(key string, defaultVal float64) float64 {
	if val, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

// GetBoolEnv returns a bool environment variable or a default value.
func GetBoolEnv(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

// GetDateEnv returns a YYYY-MM-DD environment variable or a default value.
func GetDateEnv(key string, defaultVal time.Time) time.Time {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.Parse(dateLayout, val); err == nil {
			return d
		}
	}
	return defaultVal
}

// MonthPlan is one calendar month of synthesis with its revenue target.
type MonthPlan struct {
	Start         time.Time
	End           time.Time
	TargetRevenue float64
}

// Config holds every parameter of a synthesis run. A run is fully
// reproducible from Seed plus the rest of the fields.
type Config struct {
	Seed        int64
	CatalogSize int
	RosterSize  int

	PriceMin  float64
	PriceMax  float64
	MarginMin float64
	MarginMax float64

	SignupStart        time.Time
	SignupEnd          time.Time
	NewCustomerCutoff  time.Time
	DuplicateEmailRate float64

	Months            []MonthPlan
	PrimaryPromoDay   time.Time
	SecondaryPromoDay time.Time

	FreshShippingRate    float64
	MissingOrderTimeRate float64
	MissingShippingRate  float64
	AmountCorruptionRate float64

	ClampFraudProbability bool

	OutputDir string
}

// Load builds a Config from the environment, falling back to the default
// Q4 2024 calendar.
func Load() (Config, error) {
	cfg := Config{
		Seed:        GetInt64Env("SEED", 42),
		CatalogSize: GetIntEnv("CATALOG_SIZE", 500),
		RosterSize:  GetIntEnv("ROSTER_SIZE", 10000),

		PriceMin:  GetFloatEnv("PRICE_MIN", 10),
		PriceMax:  GetFloatEnv("PRICE_MAX", 500),
		MarginMin: GetFloatEnv("MARGIN_MIN", 0.4),
		MarginMax: GetFloatEnv("MARGIN_MAX", 0.7),

		SignupStart:        GetDateEnv("SIGNUP_START", date(2024, 1, 1)),
		SignupEnd:          GetDateEnv("SIGNUP_END", date(2024, 9, 30)),
		NewCustomerCutoff:  GetDateEnv("NEW_CUSTOMER_CUTOFF", date(2024, 9, 1)),
		DuplicateEmailRate: GetFloatEnv("DUPLICATE_EMAIL_RATE", 0.02),

		PrimaryPromoDay:   GetDateEnv("PROMO_PRIMARY", date(2024, 11, 29)),
		SecondaryPromoDay: GetDateEnv("PROMO_SECONDARY", date(2024, 12, 2)),

		FreshShippingRate:    GetFloatEnv("FRESH_SHIPPING_RATE", 0.15),
		MissingOrderTimeRate: GetFloatEnv("MISSING_ORDER_TIME_RATE", 0.05),
		MissingShippingRate:  GetFloatEnv("MISSING_SHIPPING_RATE", 0.03),
		AmountCorruptionRate: GetFloatEnv("AMOUNT_CORRUPTION_RATE", 0.02),

		ClampFraudProbability: GetBoolEnv("FRAUD_CLAMP_PROBABILITY", false),

		OutputDir: GetEnv("OUTPUT_DIR", "data/raw"),
	}

	months, err := ParseMonthPlans(GetEnv("MONTH_TARGETS",
		"2024-10:1850000,2024-11:2100000,2024-12:2450000"))
	if err != nil {
		return Config{}, err
	}
	cfg.Months = months

	return cfg, nil
}

// ParseMonthPlans parses a "YYYY-MM:target[,YYYY-MM:target...]" list into
// calendar-month plans.
func ParseMonthPlans(list string) ([]MonthPlan, error) {
	var plans []MonthPlan
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		month, targetStr, ok := strings.Cut(entry, ":")
		if !ok {
			return nil, fmt.Errorf("month plan %q: want YYYY-MM:target", entry)
		}
		start, err := time.Parse("2006-01", month)
		if err != nil {
			return nil, fmt.Errorf("month plan %q: %w", entry, err)
		}
		target, err := strconv.ParseFloat(targetStr, 64)
		if err != nil {
			return nil, fmt.Errorf("month plan %q: %w", entry, err)
		}
		plans = append(plans, MonthPlan{
			Start:         start,
			End:           start.AddDate(0, 1, -1),
			TargetRevenue: target,
		})
	}
	if len(plans) == 0 {
		return nil, fmt.Errorf("month plan list %q is empty", list)
	}
	return plans, nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
