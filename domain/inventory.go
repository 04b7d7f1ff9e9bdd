package domain

// InventoryItem is a stocked raw material or directly sellable unit.
// StockQuantity is mutated only through the stock ledger and never goes
// negative.
type InventoryItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	StockQuantity float64 `json:"stock_quantity"`
	UnitPrice     float64 `json:"unit_price"`
	ReorderLevel  float64 `json:"reorder_level"`
}

// LowStock reports whether the item has fallen to or below its reorder
// threshold.
func (i InventoryItem) LowStock() bool {
	return i.StockQuantity <= i.ReorderLevel
}

// Ingredient is one inventory requirement of a composed product:
// Quantity of the referenced item is consumed per unit of product sold.
type Ingredient struct {
	ItemID   string  `json:"item_id"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// Product is a sellable catalog entry. A product with no ingredients is
// simple: it sells straight from the inventory record sharing its ID.
// Available is the manual on/off switch; effective sellability also
// requires the recipe check to pass.
type Product struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Price       float64      `json:"price"`
	Cost        float64      `json:"cost"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
	Available   bool         `json:"available"`
}

// Composed reports whether selling the product consumes ingredient
// stock rather than its own.
func (p Product) Composed() bool {
	return len(p.Ingredients) > 0
}
