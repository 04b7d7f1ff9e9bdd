package domain

import "time"

// DiscountType selects how a bill-level discount is interpreted.
type DiscountType string

const (
	DiscountNone       DiscountType = "none"
	DiscountPercentage DiscountType = "percentage"
	DiscountAmount     DiscountType = "amount"
)

// Discount is the single per-bill discount: a percentage of the
// subtotal or a fixed amount. Values outside the valid range are
// clamped, not rejected.
type Discount struct {
	Type  DiscountType `json:"type"`
	Value float64      `json:"value"`
}

// CartLine is one priced position on a bill. ItemID references either a
// product or an inventory item sold directly.
type CartLine struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  float64 `json:"quantity"`
}

// BillTotals is the computed monetary summary of a cart. Subtotal
// carries full precision; DiscountAmount, Tax and Total are rounded to
// 2 decimals, half up, at the point they leave the pricing engine.
type BillTotals struct {
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	Tax            float64 `json:"tax"`
	Total          float64 `json:"total"`
}

// PaymentMethod is how a bill was settled.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "cash"
	PaymentCard  PaymentMethod = "card"
	PaymentMixed PaymentMethod = "mixed"
)

// PaymentSplit settles one bill across cash and online tender. The two
// amounts must sum to the bill total within a cent.
type PaymentSplit struct {
	Cash   float64 `json:"cash"`
	Online float64 `json:"online"`
}

// Bill is the immutable record of a finalized sale. Once persisted it
// is never updated, only deleted.
type Bill struct {
	ID            string        `json:"id"`
	Number        int64         `json:"number"`
	Lines         []CartLine    `json:"lines"`
	Subtotal      float64       `json:"subtotal"`
	Discount      Discount      `json:"discount"`
	DiscountAmount float64      `json:"discount_amount"`
	TaxRate       float64       `json:"tax_rate"`
	Tax           float64       `json:"tax"`
	Total         float64       `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	PaymentSplit  *PaymentSplit `json:"payment_split,omitempty"`
	CustomerName  string        `json:"customer_name,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Purchase records received goods that increased inventory stock.
type Purchase struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	Quantity  float64   `json:"quantity"`
	UnitCost  float64   `json:"unit_cost"`
	Supplier  string    `json:"supplier,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
