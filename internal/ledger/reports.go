package ledger

import (
	"cmp"
	"context"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// BudgetOverview is the budget progress of a period with its totals.
type BudgetOverview struct {
	Period          types.Period        `json:"period"`
	Budgets         []BudgetProgress    `json:"budgets"`
	TotalBudgeted   decimal.Decimal     `json:"totalBudgeted" example:"1500"`
	TotalSpent      decimal.Decimal     `json:"totalSpent" example:"1200"` // Spend in budgeted categories only
	TotalRemaining  decimal.Decimal     `json:"totalRemaining" example:"300"`
	OverallPercent  decimal.NullDecimal `json:"overallPercent" swaggertype:"primitive,string" example:"80"` // null if nothing is budgeted
	BudgetCount     int                 `json:"budgetCount" example:"3"`
	OverBudgetCount int                 `json:"overBudgetCount" example:"1"`
	Totals          Totals              `json:"totals"` // All income and expense of the month
}

// BudgetOverview returns the budget progress of the period with totals
// over all budgets and over all transactions of the month.
func (e *Engine) BudgetOverview(ctx context.Context, owner string, month, year int) (BudgetOverview, error) {
	period, err := types.NewPeriod(month, year)
	if err != nil {
		return BudgetOverview{}, err
	}

	var progress []BudgetProgress
	var totals Totals

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		progress, err = e.budgetProgress(gctx, owner, period)
		return err
	})

	g.Go(func() (err error) {
		totals, err = e.totals(gctx, owner, monthFilter(period.ToMonth()))
		return err
	})

	if err := g.Wait(); err != nil {
		return BudgetOverview{}, err
	}

	o := BudgetOverview{
		Period:        period,
		Budgets:       progress,
		TotalBudgeted: decimal.Zero,
		TotalSpent:    decimal.Zero,
		BudgetCount:   len(progress),
		Totals:        totals,
	}

	for _, p := range progress {
		o.TotalBudgeted = o.TotalBudgeted.Add(p.LimitAmount)
		o.TotalSpent = o.TotalSpent.Add(p.ActualSpend)
		if p.IsOverBudget {
			o.OverBudgetCount++
		}
	}

	o.TotalRemaining = o.TotalBudgeted.Sub(o.TotalSpent)
	if !o.TotalBudgeted.IsZero() {
		o.OverallPercent = decimal.NewNullDecimal(o.TotalSpent.Div(o.TotalBudgeted).Mul(hundred))
	}

	return o, nil
}

// CategoryTotal is the sum of one category.
type CategoryTotal struct {
	Category models.Category `json:"category" example:"food"`
	Name     string          `json:"name" example:"Food"`
	Amount   decimal.Decimal `json:"amount" example:"200"`
	Count    int             `json:"count" example:"2"`
	Share    decimal.Decimal `json:"share" example:"40"` // Percentage of the total of the kind
}

// CategoryBreakdown is the distribution of one kind of transactions over categories.
type CategoryBreakdown struct {
	Period     types.Period    `json:"period"`
	Kind       models.Kind     `json:"kind" example:"expense"`
	Total      decimal.Decimal `json:"total" example:"500"`
	Categories []CategoryTotal `json:"categories"`
}

// CategoryBreakdown sums the transactions of one kind in the month per
// category. Categories are ordered by amount descending, then by name.
func (e *Engine) CategoryBreakdown(ctx context.Context, owner string, kind models.Kind, month types.Month) (CategoryBreakdown, error) {
	if !kind.Valid() {
		return CategoryBreakdown{}, models.ErrKindInvalid
	}

	filter := monthFilter(month)
	filter.Kind = kind

	sums := make(map[models.Category]*CategoryTotal)
	breakdown := CategoryBreakdown{
		Period:     month.Period(),
		Kind:       kind,
		Total:      decimal.Zero,
		Categories: []CategoryTotal{},
	}

	for t, err := range e.store.Transactions(ctx, owner, filter) {
		if err != nil {
			return CategoryBreakdown{}, err
		}

		s, ok := sums[t.Category]
		if !ok {
			s = &CategoryTotal{Category: t.Category, Name: t.Category.DisplayName(), Amount: decimal.Zero}
			sums[t.Category] = s
		}

		s.Amount = s.Amount.Add(t.Amount)
		s.Count++
		breakdown.Total = breakdown.Total.Add(t.Amount)
	}

	for _, s := range sums {
		s.Share = s.Amount.Div(breakdown.Total).Mul(hundred).Round(2)
		breakdown.Categories = append(breakdown.Categories, *s)
	}

	slices.SortFunc(breakdown.Categories, func(a, b CategoryTotal) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})

	return breakdown, nil
}

// MonthTrend are the totals of one month.
type MonthTrend struct {
	Month   types.Month     `json:"month" swaggertype:"primitive,string" example:"2024-03"`
	Income  decimal.Decimal `json:"income" example:"2000"`
	Expense decimal.Decimal `json:"expense" example:"1500"`
	Savings decimal.Decimal `json:"savings" example:"500"` // Income minus expense
}

// MonthlyTrends returns the totals of the months consecutive months ending
// with until, oldest first. Months without transactions have zero totals.
func (e *Engine) MonthlyTrends(ctx context.Context, owner string, until types.Month, months int) ([]MonthTrend, error) {
	if months < 1 || months > MaxTrendMonths {
		return nil, ErrInvalidTrendRange
	}

	first := until.AddDate(0, -(months - 1))
	trends := make([]MonthTrend, months)
	for i := range trends {
		trends[i] = MonthTrend{Month: first.AddDate(0, i), Income: decimal.Zero, Expense: decimal.Zero}
	}

	filter := Filter{From: first.Start(), Until: until.LastDay()}
	for t, err := range e.store.Transactions(ctx, owner, filter) {
		if err != nil {
			return nil, err
		}

		m := types.MonthOf(t.Date)
		i := first.MonthsUntil(m)
		if i < 0 || i >= months {
			continue
		}

		switch t.Kind {
		case models.KindIncome:
			trends[i].Income = trends[i].Income.Add(t.Amount)
		case models.KindExpense:
			trends[i].Expense = trends[i].Expense.Add(t.Amount)
		}
	}

	for i := range trends {
		trends[i].Savings = trends[i].Income.Sub(trends[i].Expense)
	}

	return trends, nil
}

// ActiveMonths returns every month with at least one transaction of the
// owner, newest first.
func (e *Engine) ActiveMonths(ctx context.Context, owner string) ([]types.Month, error) {
	months := []types.Month{}
	for t, err := range e.store.Transactions(ctx, owner, Filter{}) {
		if err != nil {
			return nil, err
		}

		// Transactions are ordered by date, equal months are adjacent
		if len(months) == 0 || !months[len(months)-1].Contains(t.Date) {
			months = append(months, types.MonthOf(t.Date))
		}
	}

	return months, nil
}
