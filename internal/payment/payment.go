// Package payment validates how a bill is settled against its computed
// total.
package payment

import (
	"math"

	"github.com/deekxa/tillpoint/domain"
)

// Tolerance within which a split payment must match the bill total.
const Tolerance = 0.01

// Validate checks the tendered payment against the total. Cash and card
// settle the full amount by definition; a mixed payment must carry a
// split whose parts sum to the total within a cent.
func Validate(method domain.PaymentMethod, total float64, split *domain.PaymentSplit) error {
	switch method {
	case domain.PaymentCash, domain.PaymentCard:
		return nil
	case domain.PaymentMixed:
		if split == nil {
			return &domain.ValidationError{Field: "payment_split", Reason: "is required for mixed payments"}
		}
		tendered := split.Cash + split.Online
		if math.Abs(tendered-total) >= Tolerance {
			return &domain.PaymentMismatchError{Required: total, Tendered: tendered}
		}
		return nil
	default:
		return &domain.ValidationError{Field: "payment_method", Reason: "must be cash, card or mixed"}
	}
}

// SplitEvenly proposes a half-and-half split of the total. The result
// still goes through Validate like any other split.
func SplitEvenly(total float64) domain.PaymentSplit {
	return domain.PaymentSplit{Cash: total / 2, Online: total / 2}
}
