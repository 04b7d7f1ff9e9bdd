package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/deekxa/tillpoint/internal/api"
	"github.com/deekxa/tillpoint/internal/billing"
	"github.com/deekxa/tillpoint/internal/catalog"
	"github.com/deekxa/tillpoint/internal/config"
	"github.com/deekxa/tillpoint/internal/database"
	"github.com/deekxa/tillpoint/internal/inventory"
	"github.com/deekxa/tillpoint/internal/ledger"
	"github.com/deekxa/tillpoint/internal/migrations"
	"github.com/deekxa/tillpoint/internal/seed"
	"github.com/deekxa/tillpoint/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	db := database.Connect(cfg.DatabaseDSN)
	defer db.Close()

	migrations.Run(db)

	docs := store.NewSQL(db)
	seed.LoadInventory(context.Background(), docs, cfg.CatalogCSV)

	inv := inventory.New(docs)
	products := catalog.New(docs)
	stockLedger := ledger.New(inv)
	billingSvc := billing.New(docs, inv, stockLedger)

	handler := api.New(db, inv, products, billingSvc, cfg.Secret, cfg.TaxRate)

	log.Printf("tillpoint server starting on :%s", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, handler.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
