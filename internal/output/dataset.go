package output

import (
	"shopforge/internal/models"
	"shopforge/internal/services/synthesis"
)

// Dataset is one complete synthesis run ready to persist.
type Dataset struct {
	RunID         string
	Seed          int64
	Products      []models.Product
	Customers     []models.Customer
	Transactions  []models.Transaction
	Months        []synthesis.MonthReport
	CorruptedRows int
}

// Manifest is the run summary written next to the CSV files.
type Manifest struct {
	RunID         string                  `json:"run_id"`
	Seed          int64                   `json:"seed"`
	Products      int                     `json:"products"`
	Customers     int                     `json:"customers"`
	Transactions  int                     `json:"transactions"`
	FraudCount    int                     `json:"fraud_count"`
	FraudRate     float64                 `json:"fraud_rate"`
	CleanRevenue  float64                 `json:"clean_revenue"`
	CorruptedRows int                     `json:"corrupted_rows"`
	Months        []synthesis.MonthReport `json:"months"`
}

// BuildManifest aggregates the dataset into its manifest.
func BuildManifest(ds Dataset) Manifest {
	m := Manifest{
		RunID:         ds.RunID,
		Seed:          ds.Seed,
		Products:      len(ds.Products),
		Customers:     len(ds.Customers),
		Transactions:  len(ds.Transactions),
		CorruptedRows: ds.CorruptedRows,
		Months:        ds.Months,
	}
	for _, tx := range ds.Transactions {
		if tx.IsFraud {
			m.FraudCount++
		}
		// Corrupted rows keep their numeric amount out of the revenue
		// figure, matching how a naive consumer would sum the column.
		if tx.AmountRaw == "" {
			m.CleanRevenue += tx.Amount
		}
	}
	if m.Transactions > 0 {
		m.FraudRate = float64(m.FraudCount) / float64(m.Transactions)
	}
	return m
}
