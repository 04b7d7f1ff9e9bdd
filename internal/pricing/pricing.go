// Package pricing turns a cart of line items into bill totals. The
// arithmetic runs in exact decimal form; only the values leaving the
// engine are rounded, so recomputation with the same inputs always
// yields the same output.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/deekxa/tillpoint/domain"
)

var hundred = decimal.NewFromInt(100)

// ComputeBill prices the cart under the given discount and tax rate.
// The tax rate is always an explicit parameter; the engine has no
// default. An empty cart prices to a zero bill, not an error.
func ComputeBill(lines []domain.CartLine, discount domain.Discount, taxRate float64) (domain.BillTotals, error) {
	if taxRate < 0 {
		return domain.BillTotals{}, &domain.ValidationError{Field: "tax_rate", Reason: "must not be negative"}
	}

	subtotal := decimal.Zero
	for i, line := range lines {
		if line.UnitPrice < 0 {
			return domain.BillTotals{}, &domain.ValidationError{
				Field:  fmt.Sprintf("lines[%d].unit_price", i),
				Reason: "must not be negative",
			}
		}
		if line.Quantity < 0 {
			return domain.BillTotals{}, &domain.ValidationError{
				Field:  fmt.Sprintf("lines[%d].quantity", i),
				Reason: "must not be negative",
			}
		}
		subtotal = subtotal.Add(decimal.NewFromFloat(line.UnitPrice).Mul(decimal.NewFromFloat(line.Quantity)))
	}

	discountAmount, err := discountOn(subtotal, discount)
	if err != nil {
		return domain.BillTotals{}, err
	}

	taxable := subtotal.Sub(discountAmount)
	tax := taxable.Mul(decimal.NewFromFloat(taxRate))
	total := taxable.Add(tax)

	rawSubtotal, _ := subtotal.Float64()
	return domain.BillTotals{
		Subtotal:       rawSubtotal,
		DiscountAmount: round2(discountAmount),
		Tax:            round2(tax),
		Total:          round2(total),
	}, nil
}

// discountOn resolves the discount against the subtotal. Out-of-range
// values clamp: percentages to [0,100], fixed amounts to [0, subtotal].
func discountOn(subtotal decimal.Decimal, d domain.Discount) (decimal.Decimal, error) {
	switch d.Type {
	case domain.DiscountNone, "":
		return decimal.Zero, nil
	case domain.DiscountPercentage:
		pct := d.Value
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		return subtotal.Mul(decimal.NewFromFloat(pct)).Div(hundred), nil
	case domain.DiscountAmount:
		if d.Value <= 0 {
			return decimal.Zero, nil
		}
		amount := decimal.NewFromFloat(d.Value)
		if amount.GreaterThan(subtotal) {
			return subtotal, nil
		}
		return amount, nil
	default:
		return decimal.Zero, &domain.ValidationError{Field: "discount.type", Reason: "must be none, percentage or amount"}
	}
}

// round2 rounds to 2 decimal places, half up. Used only on values that
// leave the engine.
func round2(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
