// Package billing finalizes sales. Checkout prices the cart, validates
// the payment, consumes stock and persists the bill; the stock mutation
// and the bill write are one logical transaction, so a failure in
// either leaves neither applied.
package billing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/deekxa/tillpoint/domain"
	"github.com/deekxa/tillpoint/internal/inventory"
	"github.com/deekxa/tillpoint/internal/ledger"
	"github.com/deekxa/tillpoint/internal/payment"
	"github.com/deekxa/tillpoint/internal/pricing"
	"github.com/deekxa/tillpoint/internal/store"
)

const billCounterID = "bill_number"

// Service owns the bill lifecycle and the purchase intake path.
type Service struct {
	docs   store.Documents
	inv    *inventory.Store
	ledger *ledger.Ledger

	// counterMu serializes bill number allocation; uniqueness of the
	// bill id itself does not depend on it.
	counterMu sync.Mutex
}

// New constructs a Service over the shared document store.
func New(docs store.Documents, inv *inventory.Store, l *ledger.Ledger) *Service {
	return &Service{docs: docs, inv: inv, ledger: l}
}

// CheckoutRequest is a cart ready to be finalized.
type CheckoutRequest struct {
	Lines        []domain.CartLine    `json:"lines"`
	Discount     domain.Discount      `json:"discount"`
	TaxRate      float64              `json:"tax_rate"`
	Method       domain.PaymentMethod `json:"payment_method"`
	Split        *domain.PaymentSplit `json:"payment_split,omitempty"`
	CustomerName string               `json:"customer_name,omitempty"`
}

// Checkout finalizes a sale. Selling a composed product consumes every
// ingredient's stock by its recipe quantity times the sold quantity;
// simple products and raw items consume their own stock record.
func (s *Service) Checkout(ctx context.Context, req CheckoutRequest) (*domain.Bill, error) {
	if len(req.Lines) == 0 {
		return nil, &domain.ValidationError{Field: "lines", Reason: "at least one line is required"}
	}

	totals, err := pricing.ComputeBill(req.Lines, req.Discount, req.TaxRate)
	if err != nil {
		return nil, err
	}
	if err := payment.Validate(req.Method, totals.Total, req.Split); err != nil {
		return nil, err
	}

	consumptions, err := s.consumptionFor(ctx, req.Lines)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.ConsumeForSale(ctx, consumptions); err != nil {
		return nil, err
	}

	bill := &domain.Bill{
		ID:             uuid.NewString(),
		Lines:          req.Lines,
		Subtotal:       totals.Subtotal,
		Discount:       req.Discount,
		DiscountAmount: totals.DiscountAmount,
		TaxRate:        req.TaxRate,
		Tax:            totals.Tax,
		Total:          totals.Total,
		PaymentMethod:  req.Method,
		PaymentSplit:   req.Split,
		CustomerName:   req.CustomerName,
		CreatedAt:      time.Now().UTC(),
	}

	bill.Number, err = s.nextBillNumber(ctx)
	if err == nil {
		err = s.docs.Put(ctx, store.CollectionBills, bill.ID, bill)
	}
	if err != nil {
		// The sale did not complete; put the consumed stock back.
		if rerr := s.ledger.Restore(ctx, consumptions); rerr != nil {
			log.Printf("failed to restore stock after aborted checkout: %v", rerr)
		}
		return nil, err
	}
	return bill, nil
}

// consumptionFor resolves each cart line to the inventory deltas its
// sale requires. A line id that matches no product sells the inventory
// item with that id directly.
func (s *Service) consumptionFor(ctx context.Context, lines []domain.CartLine) ([]ledger.Consumption, error) {
	var out []ledger.Consumption
	for i, line := range lines {
		if line.Quantity <= 0 {
			return nil, &domain.ValidationError{
				Field:  fmt.Sprintf("lines[%d].quantity", i),
				Reason: "must be positive",
			}
		}

		var product domain.Product
		err := store.GetInto(ctx, s.docs, store.CollectionProducts, line.ItemID, &product)
		switch {
		case err == nil:
			if !product.Available {
				return nil, &domain.ValidationError{
					Field:  fmt.Sprintf("lines[%d].item_id", i),
					Reason: "product is switched off",
				}
			}
			if product.Composed() {
				for _, ing := range product.Ingredients {
					out = append(out, ledger.Consumption{ItemID: ing.ItemID, Quantity: ing.Quantity * line.Quantity})
				}
			} else {
				out = append(out, ledger.Consumption{ItemID: product.ID, Quantity: line.Quantity})
			}
		case errors.Is(err, domain.ErrNotFound):
			if _, err := s.inv.Get(ctx, line.ItemID); err != nil {
				return nil, err
			}
			out = append(out, ledger.Consumption{ItemID: line.ItemID, Quantity: line.Quantity})
		default:
			return nil, err
		}
	}
	return out, nil
}

// nextBillNumber allocates the next monotonic bill number from a
// counter document.
func (s *Service) nextBillNumber(ctx context.Context) (int64, error) {
	s.counterMu.Lock()
	defer s.counterMu.Unlock()

	var c struct {
		Next int64 `json:"next"`
	}
	err := store.GetInto(ctx, s.docs, store.CollectionCounters, billCounterID, &c)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return 0, err
	}

	c.Next++
	if err := s.docs.Put(ctx, store.CollectionCounters, billCounterID, c); err != nil {
		return 0, err
	}
	return c.Next, nil
}

// GetBill returns one persisted bill.
func (s *Service) GetBill(ctx context.Context, id string) (domain.Bill, error) {
	var bill domain.Bill
	if err := store.GetInto(ctx, s.docs, store.CollectionBills, id, &bill); err != nil {
		return domain.Bill{}, err
	}
	return bill, nil
}

// ListBills returns all persisted bills, newest first.
func (s *Service) ListBills(ctx context.Context) ([]domain.Bill, error) {
	raw, err := s.docs.List(ctx, store.CollectionBills)
	if err != nil {
		return nil, err
	}

	bills := make([]domain.Bill, 0, len(raw))
	for id, doc := range raw {
		var bill domain.Bill
		if err := json.Unmarshal(doc, &bill); err != nil {
			return nil, fmt.Errorf("decode bill %s: %w", id, err)
		}
		bills = append(bills, bill)
	}
	sort.Slice(bills, func(i, j int) bool { return bills[i].Number > bills[j].Number })
	return bills, nil
}

// DeleteBill removes a persisted bill. This is the only transition out
// of the persisted state.
func (s *Service) DeleteBill(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, store.CollectionBills, id)
}

// PurchaseRequest records goods received into stock.
type PurchaseRequest struct {
	ItemID   string  `json:"item_id"`
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unit_cost"`
	Supplier string  `json:"supplier,omitempty"`
}

// ReceivePurchase increments the item's stock and persists the purchase
// record. A failed record write reverts the stock increment.
func (s *Service) ReceivePurchase(ctx context.Context, req PurchaseRequest) (*domain.Purchase, error) {
	if req.ItemID == "" {
		return nil, &domain.ValidationError{Field: "item_id", Reason: "is required"}
	}
	if req.UnitCost < 0 {
		return nil, &domain.ValidationError{Field: "unit_cost", Reason: "must not be negative"}
	}

	if err := s.ledger.IncrementForReceipt(ctx, req.ItemID, req.Quantity); err != nil {
		return nil, err
	}

	purchase := &domain.Purchase{
		ID:        uuid.NewString(),
		ItemID:    req.ItemID,
		Quantity:  req.Quantity,
		UnitCost:  req.UnitCost,
		Supplier:  req.Supplier,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.docs.Put(ctx, store.CollectionPurchases, purchase.ID, purchase); err != nil {
		if _, derr := s.inv.ApplyDelta(ctx, req.ItemID, -req.Quantity); derr != nil {
			log.Printf("failed to revert stock after aborted purchase: %v", derr)
		}
		return nil, err
	}
	return purchase, nil
}
