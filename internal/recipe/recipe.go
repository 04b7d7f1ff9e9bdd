// Package recipe answers whether a composed product can currently be
// fulfilled from raw-ingredient stock. The check is a pure read over a
// snapshot of inventory and is recomputed on every call; inventory
// moves underneath it, so results must never be cached.
package recipe

import "github.com/deekxa/tillpoint/domain"

// Reasons an ingredient blocks fulfillment.
const (
	ReasonNotFound     = "not found"
	ReasonInsufficient = "insufficient"
)

// MissingIngredient describes one blocking ingredient.
type MissingIngredient struct {
	ItemID    string  `json:"item_id"`
	Name      string  `json:"name,omitempty"`
	Reason    string  `json:"reason"`
	Required  float64 `json:"required"`
	Available float64 `json:"available"`
	Unit      string  `json:"unit,omitempty"`
}

// Availability is the result of a fulfillment check.
type Availability struct {
	CanMake bool                `json:"can_make"`
	Missing []MissingIngredient `json:"missing,omitempty"`
}

// CanMake checks whether one unit of the product can be fulfilled from
// the given inventory snapshot. A product with no ingredients is always
// makeable; its own stock record governs sellability instead.
func CanMake(product domain.Product, inventory []domain.InventoryItem) Availability {
	return CanMakeQuantity(product, 1, inventory)
}

// CanMakeQuantity checks fulfillment of qty units, scaling every
// ingredient requirement accordingly.
func CanMakeQuantity(product domain.Product, qty float64, inventory []domain.InventoryItem) Availability {
	byID := make(map[string]domain.InventoryItem, len(inventory))
	for _, item := range inventory {
		byID[item.ID] = item
	}

	var missing []MissingIngredient
	for _, ing := range product.Ingredients {
		required := ing.Quantity * qty
		item, ok := byID[ing.ItemID]
		if !ok {
			missing = append(missing, MissingIngredient{
				ItemID:   ing.ItemID,
				Reason:   ReasonNotFound,
				Required: required,
				Unit:     ing.Unit,
			})
			continue
		}
		if item.StockQuantity < required {
			missing = append(missing, MissingIngredient{
				ItemID:    ing.ItemID,
				Name:      item.Name,
				Reason:    ReasonInsufficient,
				Required:  required,
				Available: item.StockQuantity,
				Unit:      ing.Unit,
			})
		}
	}

	return Availability{CanMake: len(missing) == 0, Missing: missing}
}

// Sellable is the effective sellability of a product: the manual
// availability switch and the recipe check must both pass.
func Sellable(product domain.Product, inventory []domain.InventoryItem) bool {
	return product.Available && CanMake(product, inventory).CanMake
}
