// Package importer reads the loan product catalogue from XLSX workbooks.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the sheet the catalogue is read from by default.
const DefaultSheet = "sample_emis"

// Column names in the header row of the sheet.
const (
	ItemCategory = "item_category"
	ItemID       = "item_id"
	ItemModel    = "item_model"
	LoanType     = "loan_type"
	LoanAmount   = "loan_amount"
	LTVPercent   = "ltv_pct"
	BankName     = "bank_name"
	RatePerAnnum = "rate_p.a"
	TenureMonths = "tenure_months"
	EMI          = "emi"
)

var requiredColumns = []string{ItemCategory, ItemID, LoanAmount, BankName, EMI}

// defaultLTV is the loan to value ratio in percent assumed for rows without one.
var defaultLTV = decimal.NewFromInt(90)

var hundred = decimal.NewFromInt(100)

var ErrNoHeader = errors.New("the sheet has no header row")

// RowError is a row that could not be imported.
type RowError struct {
	Row int // 1-based, as shown by spreadsheet applications
	Err error
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Err)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// Result is the outcome of reading a catalogue.
type Result struct {
	Products []models.LoanProduct
	Skipped  []RowError
}

// LoanProducts reads the loan products from sheet.
//
// The price of an item is derived from the loan amount and the loan to value
// ratio of the first offer for it. Rows that do not form a valid loan product
// are skipped and reported.
func LoanProducts(r io.Reader, sheet string) (Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("could not open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Result{}, fmt.Errorf("could not read sheet %s: %w", sheet, err)
	}

	if len(rows) == 0 {
		return Result{}, ErrNoHeader
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return Result{}, fmt.Errorf("the sheet has no %s column", name)
		}
	}

	result := Result{Products: []models.LoanProduct{}}
	prices := make(map[string]decimal.Decimal)

	for i, row := range rows[1:] {
		rec := record{columns: columns, row: row}
		if rec.empty() {
			continue
		}

		product, err := rec.product(prices)
		if err == nil {
			product.Normalize()
			err = product.Validate()
		}

		if err != nil {
			result.Skipped = append(result.Skipped, RowError{Row: i + 2, Err: err})
			continue
		}

		result.Products = append(result.Products, product)
	}

	return result, nil
}

// record is one data row of the sheet.
type record struct {
	columns map[string]int
	row     []string
}

// get returns the trimmed cell of the column. GetRows omits trailing
// empty cells, so missing cells are empty.
func (r record) get(column string) string {
	i, ok := r.columns[column]
	if !ok || i >= len(r.row) {
		return ""
	}

	return strings.TrimSpace(r.row[i])
}

func (r record) empty() bool {
	for _, cell := range r.row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}

	return true
}

// number parses the cell of the column, falling back to def for empty cells.
func (r record) number(column string, def decimal.Decimal) (decimal.Decimal, error) {
	cell := r.get(column)
	if cell == "" {
		return def, nil
	}

	d, err := decimal.NewFromString(cell)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s could not be parsed to a decimal: %q", column, cell)
	}

	return d, nil
}

func (r record) product(prices map[string]decimal.Decimal) (models.LoanProduct, error) {
	itemCategory := strings.ToLower(r.get(ItemCategory))
	loanType := strings.ToLower(r.get(LoanType))

	itemID, err := r.number(ItemID, decimal.Zero)
	if err != nil {
		return models.LoanProduct{}, err
	}

	emi, err := r.number(EMI, decimal.Zero)
	if err != nil {
		return models.LoanProduct{}, err
	}

	rate, err := r.number(RatePerAnnum, decimal.Zero)
	if err != nil {
		return models.LoanProduct{}, err
	}

	tenure, err := r.number(TenureMonths, decimal.Zero)
	if err != nil {
		return models.LoanProduct{}, err
	}

	key := itemCategory + "_" + itemID.String()
	price, ok := prices[key]
	if !ok {
		amount, err := r.number(LoanAmount, decimal.Zero)
		if err != nil {
			return models.LoanProduct{}, err
		}

		ltv, err := r.number(LTVPercent, defaultLTV)
		if err != nil {
			return models.LoanProduct{}, err
		}

		if !ltv.IsPositive() {
			return models.LoanProduct{}, fmt.Errorf("%s must be greater than zero", LTVPercent)
		}

		price = amount.Mul(hundred).DivRound(ltv, 2)
		prices[key] = price
	}

	return models.LoanProduct{
		ItemID:       itemID.Truncate(0).String(),
		Category:     category(itemCategory, loanType),
		ModelName:    modelName(itemCategory, loanType, r.get(ItemModel)),
		Price:        price,
		EMI:          emi,
		BankName:     r.get(BankName),
		InterestRate: rate,
		TenureMonths: int(tenure.IntPart()),
	}, nil
}

// category maps the item category of the sheet to a loan category. Loan
// examples are classified by their loan type.
func category(itemCategory, loanType string) models.LoanCategory {
	switch itemCategory {
	case "two_wheeler", "four_wheeler", "electronics":
		return models.LoanCategory(itemCategory)
	case "loan_example":
		switch loanType {
		case "home_loan", "gold_loan":
			return models.LoanCategory(loanType)
		default:
			return models.LoanPersonalLoan
		}
	default:
		return models.LoanElectronics
	}
}

// modelName names loan examples after their loan type.
func modelName(itemCategory, loanType, itemModel string) string {
	if itemCategory == "loan_example" {
		switch loanType {
		case "home_loan":
			return "Home Loan"
		case "personal_loan":
			return "Personal Loan"
		case "gold_loan":
			return "Gold Loan"
		default:
			return "Loan Product"
		}
	}

	if itemModel == "" {
		return "Unknown"
	}

	return itemModel
}
