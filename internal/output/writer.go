// Package output persists a finished dataset as CSV files plus a JSON
// manifest. Writes are atomic at the run level: files are staged in a
// temporary directory and renamed into place only when all of them exist.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"

	"shopforge/internal/models"
)

const (
	productsFile     = "products.csv"
	customersFile    = "customers.csv"
	transactionsFile = "transactions.csv"
	manifestFile     = "manifest.json"

	dateLayout = "2006-01-02"
)

var productHeader = []string{"product_id", "product_name", "category", "price", "cost"}

var customerHeader = []string{
	"customer_id", "customer_name", "email", "phone", "signup_date",
	"billing_address", "shipping_address", "customer_type",
}

var transactionHeader = []string{
	"transaction_id", "customer_id", "product_id", "order_date", "order_time",
	"amount", "quantity", "payment_method", "shipping_address",
	"billing_address", "acquisition_channel", "is_fraud", "chargeback_date",
	"device_type", "ip_address",
}

type Writer struct {
	log zerolog.Logger
}

// NewWriter creates a dataset writer.
func NewWriter(log zerolog.Logger) *Writer {
	return &Writer{log: log}
}

// Write persists ds under dir, replacing any previous dataset there. On
// error no partial output is left behind.
func (w *Writer) Write(dir string, ds Dataset) error {
	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("create output parent: %w", err)
	}

	staging, err := os.MkdirTemp(parent, ".shopforge-")
	if err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	defer os.RemoveAll(staging)

	if err := writeCSV(filepath.Join(staging, productsFile), productHeader, len(ds.Products), func(i int) []string {
		return productRow(ds.Products[i])
	}); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(staging, customersFile), customerHeader, len(ds.Customers), func(i int) []string {
		return customerRow(ds.Customers[i])
	}); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(staging, transactionsFile), transactionHeader, len(ds.Transactions), func(i int) []string {
		return transactionRow(ds.Transactions[i])
	}); err != nil {
		return err
	}
	if err := writeManifest(filepath.Join(staging, manifestFile), BuildManifest(ds)); err != nil {
		return err
	}

	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("remove previous dataset: %w", err)
	}
	if err := os.Rename(staging, dir); err != nil {
		return fmt.Errorf("move dataset into place: %w", err)
	}

	w.log.Info().
		Str("dir", dir).
		Int("products", len(ds.Products)).
		Int("customers", len(ds.Customers)).
		Int("transactions", len(ds.Transactions)).
		Msg("dataset written")
	return nil
}

// createFile is swapped out in tests to exercise staging failures.
var createFile = os.Create

func writeCSV(path string, header []string, n int, row func(i int) []string) error {
	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write %s header: %w", filepath.Base(path), err)
	}
	for i := 0; i < n; i++ {
		if err := cw.Write(row(i)); err != nil {
			return fmt.Errorf("write %s row %d: %w", filepath.Base(path), i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

func writeManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

func productRow(p models.Product) []string {
	return []string{
		p.ID,
		p.Name,
		p.Category,
		formatAmount(p.Price),
		formatAmount(p.Cost),
	}
}

func customerRow(c models.Customer) []string {
	return []string{
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
		c.SignupDate.Format(dateLayout),
		c.BillingAddress,
		c.ShippingAddress,
		c.Type,
	}
}

func transactionRow(t models.Transaction) []string {
	amount := formatAmount(t.Amount)
	if t.AmountRaw != "" {
		amount = t.AmountRaw
	}
	chargeback := ""
	if t.ChargebackDate != nil {
		chargeback = t.ChargebackDate.Format(dateLayout)
	}
	return []string{
		t.ID,
		t.CustomerID,
		t.ProductID,
		t.OrderDate.Format(dateLayout),
		t.OrderTime,
		amount,
		strconv.Itoa(t.Quantity),
		t.PaymentMethod,
		t.ShippingAddress,
		t.BillingAddress,
		t.AcquisitionChannel,
		strconv.FormatBool(t.IsFraud),
		chargeback,
		t.DeviceType,
		t.IPAddress,
	}
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
