package seed

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/deekxa/tillpoint/domain"
	"github.com/deekxa/tillpoint/internal/store"
)

// LoadInventory ingests the catalog CSV into the inventory collection,
// leaving items that already exist untouched. Expected columns:
// id, name, unit, stock_quantity, unit_price, reorder_level.
func LoadInventory(ctx context.Context, docs store.Documents, csvPath string) {
	file, err := os.Open(csvPath)
	if err != nil {
		log.Printf("unable to load inventory catalog %s: %v", csvPath, err)
		return
	}
	defer file.Close()

	reader := csv.NewReader(file)
	// Skip header
	if _, err := reader.Read(); err != nil {
		log.Printf("unable to read inventory header: %v", err)
		return
	}

	rows := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Printf("unable to read inventory row: %v", err)
			continue
		}
		if len(record) < 6 {
			continue
		}

		item := domain.InventoryItem{
			ID:   strings.TrimSpace(record[0]),
			Name: strings.TrimSpace(record[1]),
			Unit: strings.TrimSpace(record[2]),
		}
		if item.ID == "" || item.Name == "" {
			continue
		}
		item.StockQuantity = parseAmount(record[3])
		item.UnitPrice = parseAmount(record[4])
		item.ReorderLevel = parseAmount(record[5])

		if _, err := docs.Get(ctx, store.CollectionInventory, item.ID); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("unable to check inventory item %s: %v", item.ID, err)
			continue
		}

		if err := docs.Put(ctx, store.CollectionInventory, item.ID, item); err != nil {
			log.Printf("unable to insert inventory item %s: %v", item.ID, err)
		} else {
			rows++
		}
	}

	log.Printf("seeded inventory catalog with %d rows", rows)
}

func parseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
