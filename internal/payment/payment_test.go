package payment

import (
	"errors"
	"testing"

	"github.com/deekxa/tillpoint/domain"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		method  domain.PaymentMethod
		total   float64
		split   *domain.PaymentSplit
		wantErr error
	}{
		{
			name:   "cash always valid",
			method: domain.PaymentCash,
			total:  247.5,
		},
		{
			name:   "card always valid",
			method: domain.PaymentCard,
			total:  99.99,
		},
		{
			name:   "matching split accepted",
			method: domain.PaymentMixed,
			total:  247.5,
			split:  &domain.PaymentSplit{Cash: 100, Online: 147.5},
		},
		{
			name:    "short split rejected",
			method:  domain.PaymentMixed,
			total:   247.5,
			split:   &domain.PaymentSplit{Cash: 100, Online: 100},
			wantErr: domain.ErrPaymentMismatch,
		},
		{
			name:   "sub-cent difference tolerated",
			method: domain.PaymentMixed,
			total:  100,
			split:  &domain.PaymentSplit{Cash: 50, Online: 50.009},
		},
		{
			name:    "one-cent difference rejected",
			method:  domain.PaymentMixed,
			total:   100,
			split:   &domain.PaymentSplit{Cash: 50, Online: 50.011},
			wantErr: domain.ErrPaymentMismatch,
		},
		{
			name:    "mixed without split rejected",
			method:  domain.PaymentMixed,
			total:   10,
			wantErr: domain.ErrValidation,
		},
		{
			name:    "unknown method rejected",
			method:  "cheque",
			total:   10,
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.method, tt.total, tt.split)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMismatchCarriesRequiredTotal(t *testing.T) {
	err := Validate(domain.PaymentMixed, 247.5, &domain.PaymentSplit{Cash: 100, Online: 100})

	var mismatch *domain.PaymentMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("error = %v, want *PaymentMismatchError", err)
	}
	if mismatch.Required != 247.5 {
		t.Errorf("Required = %v, want 247.5", mismatch.Required)
	}
	if mismatch.Tendered != 200 {
		t.Errorf("Tendered = %v, want 200", mismatch.Tendered)
	}
}

func TestSplitEvenly(t *testing.T) {
	split := SplitEvenly(247.5)
	if split.Cash != 123.75 || split.Online != 123.75 {
		t.Errorf("SplitEvenly(247.5) = %+v", split)
	}

	// The helper proposes amounts; it does not bypass validation.
	if err := Validate(domain.PaymentMixed, 247.5, &split); err != nil {
		t.Errorf("even split failed validation: %v", err)
	}
}
