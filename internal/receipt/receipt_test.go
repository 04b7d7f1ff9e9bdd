package receipt

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/deekxa/tillpoint/domain"
)

func sampleBill() domain.Bill {
	return domain.Bill{
		ID:     "b-1",
		Number: 42,
		Lines: []domain.CartLine{
			{ItemID: "espresso", Name: "Espresso", UnitPrice: 100, Quantity: 2},
			{ItemID: "croissant", Name: "Croissant", UnitPrice: 50, Quantity: 1},
		},
		Subtotal:       250,
		Discount:       domain.Discount{Type: domain.DiscountPercentage, Value: 10},
		DiscountAmount: 25,
		TaxRate:        0.10,
		Tax:            22.5,
		Total:          247.5,
		PaymentMethod:  domain.PaymentMixed,
		PaymentSplit:   &domain.PaymentSplit{Cash: 100, Online: 147.5},
		CustomerName:   "Walk-in",
		CreatedAt:      time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC),
	}
}

func TestRender(t *testing.T) {
	got := Render(sampleBill())

	for _, want := range []string{
		"Bill #42",
		"Customer: Walk-in",
		"Espresso  100.00 x 2 = 200.00",
		"Croissant  50.00 x 1 = 50.00",
		"Subtotal: 250.00",
		"Discount: -25.00",
		"Tax: 22.50",
		"Total: 247.50",
		"Paid: mixed (cash 100.00, online 147.50)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("receipt missing %q\n%s", want, got)
		}
	}
}

func TestRenderOmitsZeroDiscount(t *testing.T) {
	bill := sampleBill()
	bill.Discount = domain.Discount{}
	bill.DiscountAmount = 0

	if got := Render(bill); strings.Contains(got, "Discount") {
		t.Errorf("zero discount should not be printed:\n%s", got)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, []domain.Bill{sampleBill()}); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}

	row := rows[1]
	if row[1] != "42" {
		t.Errorf("number = %q, want 42", row[1])
	}
	// Currency columns carry exactly two decimals.
	for _, col := range []int{4, 5, 6, 7} {
		if !strings.Contains(row[col], ".") || len(row[col])-strings.Index(row[col], ".") != 3 {
			t.Errorf("column %d = %q, want two decimal places", col, row[col])
		}
	}
	if row[7] != "247.50" {
		t.Errorf("total = %q, want 247.50", row[7])
	}
}
