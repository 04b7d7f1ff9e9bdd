package pricing

import (
	"errors"
	"testing"

	"github.com/deekxa/tillpoint/domain"
)

func TestComputeBill(t *testing.T) {
	tests := []struct {
		name     string
		lines    []domain.CartLine
		discount domain.Discount
		taxRate  float64
		want     domain.BillTotals
		wantErr  error
	}{
		{
			name: "percentage discount with tax",
			lines: []domain.CartLine{
				{UnitPrice: 100, Quantity: 2},
				{UnitPrice: 50, Quantity: 1},
			},
			discount: domain.Discount{Type: domain.DiscountPercentage, Value: 10},
			taxRate:  0.10,
			want:     domain.BillTotals{Subtotal: 250, DiscountAmount: 25, Tax: 22.5, Total: 247.5},
		},
		{
			name: "no discount",
			lines: []domain.CartLine{
				{UnitPrice: 100, Quantity: 2},
			},
			discount: domain.Discount{Type: domain.DiscountNone},
			taxRate:  0.13,
			want:     domain.BillTotals{Subtotal: 200, DiscountAmount: 0, Tax: 26, Total: 226},
		},
		{
			name: "empty discount type treated as none",
			lines: []domain.CartLine{
				{UnitPrice: 10, Quantity: 1},
			},
			taxRate: 0,
			want:    domain.BillTotals{Subtotal: 10, Total: 10},
		},
		{
			name: "percentage above 100 clamps to subtotal",
			lines: []domain.CartLine{
				{UnitPrice: 80, Quantity: 1},
			},
			discount: domain.Discount{Type: domain.DiscountPercentage, Value: 150},
			taxRate:  0.10,
			want:     domain.BillTotals{Subtotal: 80, DiscountAmount: 80, Tax: 0, Total: 0},
		},
		{
			name: "negative percentage clamps to zero",
			lines: []domain.CartLine{
				{UnitPrice: 80, Quantity: 1},
			},
			discount: domain.Discount{Type: domain.DiscountPercentage, Value: -20},
			taxRate:  0,
			want:     domain.BillTotals{Subtotal: 80, DiscountAmount: 0, Tax: 0, Total: 80},
		},
		{
			name: "fixed amount above subtotal clamps to subtotal",
			lines: []domain.CartLine{
				{UnitPrice: 30, Quantity: 1},
			},
			discount: domain.Discount{Type: domain.DiscountAmount, Value: 50},
			taxRate:  0.10,
			want:     domain.BillTotals{Subtotal: 30, DiscountAmount: 30, Tax: 0, Total: 0},
		},
		{
			name: "negative fixed amount clamps to zero",
			lines: []domain.CartLine{
				{UnitPrice: 30, Quantity: 1},
			},
			discount: domain.Discount{Type: domain.DiscountAmount, Value: -5},
			taxRate:  0,
			want:     domain.BillTotals{Subtotal: 30, DiscountAmount: 0, Tax: 0, Total: 30},
		},
		{
			name:    "empty cart is a zero bill",
			lines:   nil,
			taxRate: 0.13,
			want:    domain.BillTotals{},
		},
		{
			name: "negative unit price rejected",
			lines: []domain.CartLine{
				{UnitPrice: -1, Quantity: 1},
			},
			wantErr: domain.ErrValidation,
		},
		{
			name: "negative quantity rejected",
			lines: []domain.CartLine{
				{UnitPrice: 1, Quantity: -1},
			},
			wantErr: domain.ErrValidation,
		},
		{
			name: "negative tax rate rejected",
			lines: []domain.CartLine{
				{UnitPrice: 1, Quantity: 1},
			},
			taxRate: -0.1,
			wantErr: domain.ErrValidation,
		},
		{
			name: "unknown discount type rejected",
			lines: []domain.CartLine{
				{UnitPrice: 1, Quantity: 1},
			},
			discount: domain.Discount{Type: "bogus", Value: 1},
			wantErr:  domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeBill(tt.lines, tt.discount, tt.taxRate)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ComputeBill() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got != tt.want {
				t.Errorf("ComputeBill() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeBillRoundsHalfUp(t *testing.T) {
	lines := []domain.CartLine{{UnitPrice: 0.335, Quantity: 1}}

	got, err := ComputeBill(lines, domain.Discount{}, 0)
	if err != nil {
		t.Fatalf("ComputeBill() error = %v", err)
	}
	if got.Total != 0.34 {
		t.Errorf("Total = %v, want 0.34", got.Total)
	}
}

func TestComputeBillNoMidCalculationRounding(t *testing.T) {
	// Three lines of 0.1*3 accumulate exactly; a float sum would drift.
	lines := []domain.CartLine{
		{UnitPrice: 0.1, Quantity: 3},
		{UnitPrice: 0.1, Quantity: 3},
		{UnitPrice: 0.1, Quantity: 3},
	}

	got, err := ComputeBill(lines, domain.Discount{}, 0)
	if err != nil {
		t.Fatalf("ComputeBill() error = %v", err)
	}
	if got.Subtotal != 0.9 {
		t.Errorf("Subtotal = %v, want 0.9", got.Subtotal)
	}
}

func TestComputeBillIdempotent(t *testing.T) {
	lines := []domain.CartLine{
		{UnitPrice: 19.99, Quantity: 3},
		{UnitPrice: 4.35, Quantity: 7},
	}
	discount := domain.Discount{Type: domain.DiscountPercentage, Value: 12.5}

	first, err := ComputeBill(lines, discount, 0.13)
	if err != nil {
		t.Fatalf("ComputeBill() error = %v", err)
	}
	second, err := ComputeBill(lines, discount, 0.13)
	if err != nil {
		t.Fatalf("ComputeBill() error = %v", err)
	}
	if first != second {
		t.Errorf("repeated computation differs: %+v vs %+v", first, second)
	}
}

func TestComputeBillTaxRateIsExplicit(t *testing.T) {
	// The same cart under the two rates the till might be configured
	// with must price differently; nothing is hardcoded.
	lines := []domain.CartLine{{UnitPrice: 100, Quantity: 1}}

	atTen, err := ComputeBill(lines, domain.Discount{}, 0.10)
	if err != nil {
		t.Fatalf("ComputeBill() error = %v", err)
	}
	atThirteen, err := ComputeBill(lines, domain.Discount{}, 0.13)
	if err != nil {
		t.Fatalf("ComputeBill() error = %v", err)
	}
	if atTen.Total != 110 || atThirteen.Total != 113 {
		t.Errorf("totals = %v and %v, want 110 and 113", atTen.Total, atThirteen.Total)
	}
}
