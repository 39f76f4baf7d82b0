// Package export writes transactions to XLSX workbooks.
package export

import (
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/currency"
)

const (
	TransactionsSheet = "Transactions"
	SummarySheet      = "Summary"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var transactionHeaders = []string{"Date", "Kind", "Category", "Description", "Amount"}

// Filename returns the download name of a workbook created at t.
func Filename(t time.Time) string {
	return fmt.Sprintf("transactions_%s.xlsx", t.Format("20060102_150405"))
}

// Symbol returns the currency symbol for the unit.
func Symbol(unit currency.Unit) string {
	return fmt.Sprintf("%s", currency.Symbol(unit))
}

// Write streams the transactions into a workbook and writes it to w.
//
// The workbook has one row per transaction and a summary sheet with the
// totals per kind and per category.
func Write(w io.Writer, unit currency.Unit, transactions iter.Seq2[models.Transaction, error]) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TransactionsSheet); err != nil {
		return err
	}

	summaryIndex, err := f.NewSheet(SummarySheet)
	if err != nil {
		return err
	}

	amountStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: numberFormat(unit)})
	if err != nil {
		return err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := header(f, TransactionsSheet, headerStyle, transactionHeaders); err != nil {
		return err
	}

	s := newSummary()
	row := 2
	for t, err := range transactions {
		if err != nil {
			return err
		}

		cell, _ := excelize.CoordinatesToCellName(1, row)
		err = f.SetSheetRow(TransactionsSheet, cell, &[]any{
			t.Date.Format(time.DateOnly),
			string(t.Kind),
			t.Category.DisplayName(),
			t.Description,
			t.Signed().InexactFloat64(),
		})
		if err != nil {
			return fmt.Errorf("writing row %d: %w", row, err)
		}

		s.add(t)
		row++
	}

	if row > 2 {
		if err := f.SetCellStyle(TransactionsSheet, "E2", fmt.Sprintf("E%d", row-1), amountStyle); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(TransactionsSheet, "D", "D", 40); err != nil {
		return err
	}

	if err := s.write(f, headerStyle, amountStyle); err != nil {
		return err
	}

	f.SetActiveSheet(summaryIndex)
	return f.Write(w)
}

func numberFormat(unit currency.Unit) *string {
	format := fmt.Sprintf(`"%s" #,##0.00;-"%s" #,##0.00`, Symbol(unit), Symbol(unit))
	return &format
}

func header(f *excelize.File, sheet string, style int, headers []string) error {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	return f.SetCellStyle(sheet, "A1", last, style)
}

type categoryKey struct {
	kind     models.Kind
	category models.Category
}

type summary struct {
	count      int
	totals     map[models.Kind]decimal.Decimal
	categories map[categoryKey]decimal.Decimal
}

func newSummary() *summary {
	return &summary{
		totals:     map[models.Kind]decimal.Decimal{},
		categories: map[categoryKey]decimal.Decimal{},
	}
}

func (s *summary) add(t models.Transaction) {
	s.count++
	s.totals[t.Kind] = s.totals[t.Kind].Add(t.Amount)

	key := categoryKey{t.Kind, t.Category}
	s.categories[key] = s.categories[key].Add(t.Amount)
}

// write fills the summary sheet. Categories are listed in configuration order.
func (s *summary) write(f *excelize.File, headerStyle, amountStyle int) error {
	income := s.totals[models.KindIncome]
	expense := s.totals[models.KindExpense]

	rows := [][]any{
		{"Transactions", s.count},
		{"Total income", income.InexactFloat64()},
		{"Total expense", expense.InexactFloat64()},
		{"Balance", income.Sub(expense).InexactFloat64()},
		{},
		{"Kind", "Category", "Amount"},
	}

	for _, kind := range []models.Kind{models.KindIncome, models.KindExpense} {
		for _, category := range models.Categories[kind] {
			amount, ok := s.categories[categoryKey{kind, category}]
			if !ok {
				continue
			}
			rows = append(rows, []any{string(kind), category.DisplayName(), amount.InexactFloat64()})
		}
	}

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SummarySheet, cell, &r); err != nil {
			return err
		}
	}

	if err := f.SetCellStyle(SummarySheet, "B2", "B4", amountStyle); err != nil {
		return err
	}

	if err := f.SetCellStyle(SummarySheet, "A6", "C6", headerStyle); err != nil {
		return err
	}

	if len(rows) > 6 {
		return f.SetCellStyle(SummarySheet, "C7", fmt.Sprintf("C%d", len(rows)), amountStyle)
	}

	return nil
}
