// load-loan-products replaces the loan product catalogue with the offers
// from an XLSX workbook.
//
// It uses the database configured for the backend:
//
//	DB_DSN=data/pocketledger.db go run ./cmd/load-loan-products -file complete_loan_product_dataset.xlsx
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pocketledger/backend/internal/config"
	"github.com/pocketledger/backend/internal/importer"
	"github.com/pocketledger/backend/internal/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var errNoProducts = errors.New("the workbook contains no valid loan products, the catalogue is unchanged")

// categoryCount is the number of loan products in a category.
type categoryCount struct {
	Category models.LoanCategory
	Count    int64
}

func main() {
	file := flag.String("file", "", "XLSX workbook to read the catalogue from")
	sheet := flag.String("sheet", importer.DefaultSheet, "sheet of the workbook with one offer per row")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	counts, err := run(*file, *sheet)
	if err != nil {
		log.Fatal().Err(err).Msg("load-loan-products")
	}

	for _, c := range counts {
		log.Info().Str("category", string(c.Category)).Int64("count", c.Count).Msg("loaded")
	}
}

func run(file, sheet string) ([]categoryCount, error) {
	if file == "" {
		return nil, fmt.Errorf("-file must be set")
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	result, err := importer.LoanProducts(f, sheet)
	if err != nil {
		return nil, err
	}

	for _, skipped := range result.Skipped {
		log.Warn().Str("file", file).Int("row", skipped.Row).Err(skipped.Err).Msg("skipped")
	}

	if len(result.Products) == 0 {
		return nil, errNoProducts
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	switch cfg.DBDriver {
	case "postgres":
		err = models.ConnectPostgres(cfg.DBDSN)
	default:
		err = os.MkdirAll(filepath.Dir(cfg.DBDSN), os.ModePerm)
		if err == nil {
			err = models.Connect(cfg.DBDSN)
		}
	}
	if err != nil {
		return nil, err
	}

	err = models.ReplaceLoanProducts(models.DB, result.Products)
	if err != nil {
		return nil, err
	}

	var counts []categoryCount
	err = models.DB.Model(&models.LoanProduct{}).
		Select("category, count(*) AS count").
		Group("category").
		Order("category").
		Scan(&counts).Error

	return counts, err
}
