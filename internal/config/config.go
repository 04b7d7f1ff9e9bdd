package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds application configuration values.
type Config struct {
	Secret      string
	DatabaseDSN string
	HTTPPort    string
	TaxRate     float64
	CatalogCSV  string
}

// Load reads configuration from environment variables with reasonable
// defaults. The tax rate here is only the server default applied when a
// checkout request does not name one; the pricing engine itself always
// takes the rate as a parameter.
func Load() Config {
	secret := os.Getenv("SECRET")
	if secret == "" {
		secret = "dev_secret"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}
	if _, err := strconv.Atoi(port); err != nil {
		log.Printf("invalid HTTP_PORT value %q, defaulting to 8080", port)
		port = "8080"
	}

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		dsn = "tillpoint.db"
	}

	taxRate := 0.10
	if raw := os.Getenv("TAX_RATE"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			log.Printf("invalid TAX_RATE value %q, defaulting to 0.10", raw)
		} else {
			taxRate = parsed
		}
	}

	catalogCSV := os.Getenv("CATALOG_CSV")
	if catalogCSV == "" {
		catalogCSV = "assets/inventory.csv"
	}

	return Config{
		Secret:      secret,
		DatabaseDSN: dsn,
		HTTPPort:    port,
		TaxRate:     taxRate,
		CatalogCSV:  catalogCSV,
	}
}
