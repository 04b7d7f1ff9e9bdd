package recipe

import (
	"testing"

	"github.com/deekxa/tillpoint/domain"
)

func TestCanMake(t *testing.T) {
	inventory := []domain.InventoryItem{
		{ID: "dough", Name: "Pizza Dough", Unit: "kg", StockQuantity: 0.2},
		{ID: "cheese", Name: "Mozzarella", Unit: "kg", StockQuantity: 5},
	}

	tests := []struct {
		name        string
		product     domain.Product
		wantCanMake bool
		wantMissing []MissingIngredient
	}{
		{
			name:        "no ingredients is always makeable",
			product:     domain.Product{ID: "water", Name: "Bottled Water"},
			wantCanMake: true,
		},
		{
			name: "all ingredients in stock",
			product: domain.Product{
				ID: "toast",
				Ingredients: []domain.Ingredient{
					{ItemID: "cheese", Quantity: 0.05, Unit: "kg"},
				},
			},
			wantCanMake: true,
		},
		{
			name: "insufficient ingredient reported with amounts",
			product: domain.Product{
				ID: "pizza",
				Ingredients: []domain.Ingredient{
					{ItemID: "dough", Quantity: 0.3, Unit: "kg"},
					{ItemID: "cheese", Quantity: 0.1, Unit: "kg"},
				},
			},
			wantCanMake: false,
			wantMissing: []MissingIngredient{
				{ItemID: "dough", Name: "Pizza Dough", Reason: ReasonInsufficient, Required: 0.3, Available: 0.2, Unit: "kg"},
			},
		},
		{
			name: "unknown ingredient reported as not found",
			product: domain.Product{
				ID: "calzone",
				Ingredients: []domain.Ingredient{
					{ItemID: "ham", Quantity: 0.1, Unit: "kg"},
				},
			},
			wantCanMake: false,
			wantMissing: []MissingIngredient{
				{ItemID: "ham", Reason: ReasonNotFound, Required: 0.1, Unit: "kg"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanMake(tt.product, inventory)
			if got.CanMake != tt.wantCanMake {
				t.Fatalf("CanMake = %v, want %v", got.CanMake, tt.wantCanMake)
			}
			if len(got.Missing) != len(tt.wantMissing) {
				t.Fatalf("Missing = %+v, want %+v", got.Missing, tt.wantMissing)
			}
			for i, want := range tt.wantMissing {
				if got.Missing[i] != want {
					t.Errorf("Missing[%d] = %+v, want %+v", i, got.Missing[i], want)
				}
			}
		})
	}
}

func TestCanMakeQuantityScalesRequirements(t *testing.T) {
	inventory := []domain.InventoryItem{
		{ID: "dough", Name: "Pizza Dough", Unit: "kg", StockQuantity: 1},
	}
	product := domain.Product{
		ID: "pizza",
		Ingredients: []domain.Ingredient{
			{ItemID: "dough", Quantity: 0.3, Unit: "kg"},
		},
	}

	if got := CanMakeQuantity(product, 3, inventory); !got.CanMake {
		t.Errorf("3 units should be makeable from 1kg, got %+v", got.Missing)
	}

	got := CanMakeQuantity(product, 4, inventory)
	if got.CanMake {
		t.Fatal("4 units need 1.2kg and must not be makeable from 1kg")
	}
	want := MissingIngredient{
		ItemID: "dough", Name: "Pizza Dough", Reason: ReasonInsufficient,
		Required: 1.2, Available: 1, Unit: "kg",
	}
	if len(got.Missing) != 1 || got.Missing[0] != want {
		t.Errorf("Missing = %+v, want [%+v]", got.Missing, want)
	}
}

func TestSellableHonorsManualSwitch(t *testing.T) {
	inventory := []domain.InventoryItem{
		{ID: "cheese", Name: "Mozzarella", Unit: "kg", StockQuantity: 5},
	}
	product := domain.Product{
		ID:        "toast",
		Available: false,
		Ingredients: []domain.Ingredient{
			{ItemID: "cheese", Quantity: 0.05, Unit: "kg"},
		},
	}

	if Sellable(product, inventory) {
		t.Error("switched-off product must not be sellable even with stock")
	}

	product.Available = true
	if !Sellable(product, inventory) {
		t.Error("available product with stock must be sellable")
	}
}
