// Package ledger computes read-only summaries over the transactions and
// budgets of one owner.
package ledger

import (
	"cmp"
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultRecent is the number of transactions in a dashboard summary.
	DefaultRecent = 10

	// MaxTrendMonths is the longest range MonthlyTrends accepts.
	MaxTrendMonths = 24
)

// ErrInvalidTrendRange is returned when MonthlyTrends is called for too few or too many months.
var ErrInvalidTrendRange = fmt.Errorf("the number of months must be between 1 and %d", MaxTrendMonths)

var hundred = decimal.NewFromInt(100)

// Engine computes summaries from a Store. It holds no state of its own.
type Engine struct {
	store  Store
	recent int
}

// NewEngine returns an engine reading from store. recent is the number of
// transactions in dashboard summaries, DefaultRecent if it is not positive.
func NewEngine(store Store, recent int) *Engine {
	if recent <= 0 {
		recent = DefaultRecent
	}

	return &Engine{store: store, recent: recent}
}

// Transactions yields the matching transactions of the owner, newest first.
//
// The sequence is lazy and can be iterated any number of times.
func (e *Engine) Transactions(ctx context.Context, owner string, filter Filter) iter.Seq2[models.Transaction, error] {
	return e.store.Transactions(ctx, owner, filter)
}

// Totals are the sums of one set of transactions.
type Totals struct {
	Income  decimal.Decimal `json:"income" example:"2000"`
	Expense decimal.Decimal `json:"expense" example:"200"`
}

// Balance is income minus expense.
func (t Totals) Balance() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

func (t *Totals) add(transaction models.Transaction) {
	switch transaction.Kind {
	case models.KindIncome:
		t.Income = t.Income.Add(transaction.Amount)
	case models.KindExpense:
		t.Expense = t.Expense.Add(transaction.Amount)
	}
}

// totals sums all transactions matching the filter.
func (e *Engine) totals(ctx context.Context, owner string, filter Filter) (Totals, error) {
	totals := Totals{Income: decimal.Zero, Expense: decimal.Zero}
	for t, err := range e.store.Transactions(ctx, owner, filter) {
		if err != nil {
			return Totals{}, err
		}
		totals.add(t)
	}

	return totals, nil
}

// monthFilter matches all transactions in the month.
func monthFilter(month types.Month) Filter {
	return Filter{From: month.Start(), Until: month.LastDay()}
}

// DashboardSummary is the overview of one calendar month.
type DashboardSummary struct {
	Period             types.Period         `json:"period"`
	TotalIncome        decimal.Decimal      `json:"totalIncome" example:"2000"`
	TotalExpense       decimal.Decimal      `json:"totalExpense" example:"200"`
	Balance            decimal.Decimal      `json:"balance" example:"1800"` // Income minus expense, may be negative
	RecentTransactions []models.Transaction `json:"recentTransactions"`     // Latest transactions dated on or before the requested date
}

// DashboardSummary sums the transactions of the month containing asOf and
// lists the latest transactions dated on or before asOf.
func (e *Engine) DashboardSummary(ctx context.Context, owner string, asOf time.Time) (DashboardSummary, error) {
	month := types.MonthOf(asOf)

	var totals Totals
	recent := make([]models.Transaction, 0, e.recent)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totals, err = e.totals(gctx, owner, monthFilter(month))
		return err
	})

	g.Go(func() error {
		for t, err := range e.store.Transactions(gctx, owner, Filter{Until: asOf}) {
			if err != nil {
				return err
			}

			recent = append(recent, t)
			if len(recent) == e.recent {
				break
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return DashboardSummary{}, err
	}

	return DashboardSummary{
		Period:             month.Period(),
		TotalIncome:        totals.Income,
		TotalExpense:       totals.Expense,
		Balance:            totals.Balance(),
		RecentTransactions: recent,
	}, nil
}

// BudgetProgress compares one budget with the actual spending.
type BudgetProgress struct {
	BudgetID     uint64              `json:"budgetId" example:"3"`
	Category     models.Category     `json:"category" example:"food"`
	LimitAmount  decimal.Decimal     `json:"limitAmount" example:"100"`
	ActualSpend  decimal.Decimal     `json:"actualSpend" example:"200"`
	Remaining    decimal.Decimal     `json:"remaining" example:"-100"`                                 // Limit minus actual spend, may be negative
	PercentUsed  decimal.NullDecimal `json:"percentUsed" swaggertype:"primitive,string" example:"200"` // null if the limit is zero
	IsOverBudget bool                `json:"isOverBudget" example:"true"`                              // Actual spend is strictly greater than the limit
}

// NewBudgetProgress computes the progress of a budget for the given spend.
func NewBudgetProgress(budget models.Budget, actual decimal.Decimal) BudgetProgress {
	p := BudgetProgress{
		BudgetID:     budget.ID,
		Category:     budget.Category,
		LimitAmount:  budget.LimitAmount,
		ActualSpend:  actual,
		Remaining:    budget.LimitAmount.Sub(actual),
		IsOverBudget: actual.GreaterThan(budget.LimitAmount),
	}

	if !budget.LimitAmount.IsZero() {
		p.PercentUsed = decimal.NewNullDecimal(actual.Div(budget.LimitAmount).Mul(hundred))
	}

	return p
}

// BudgetProgress computes the progress of every budget the owner has for
// the period, ordered by category.
func (e *Engine) BudgetProgress(ctx context.Context, owner string, month, year int) ([]BudgetProgress, error) {
	period, err := types.NewPeriod(month, year)
	if err != nil {
		return nil, err
	}

	return e.budgetProgress(ctx, owner, period)
}

func (e *Engine) budgetProgress(ctx context.Context, owner string, period types.Period) ([]BudgetProgress, error) {
	budgets, err := e.store.Budgets(ctx, owner, period)
	if err != nil {
		return nil, err
	}

	progress := make([]BudgetProgress, 0, len(budgets))
	if len(budgets) == 0 {
		return progress, nil
	}

	spend, err := e.spendByCategory(ctx, owner, period.ToMonth())
	if err != nil {
		return nil, err
	}

	for _, b := range budgets {
		actual, ok := spend[b.Category]
		if !ok {
			actual = decimal.Zero
		}
		progress = append(progress, NewBudgetProgress(b, actual))
	}

	slices.SortFunc(progress, func(a, b BudgetProgress) int {
		return cmp.Compare(a.Category, b.Category)
	})

	return progress, nil
}

// spendByCategory sums the expenses of the month per category.
func (e *Engine) spendByCategory(ctx context.Context, owner string, month types.Month) (map[models.Category]decimal.Decimal, error) {
	filter := monthFilter(month)
	filter.Kind = models.KindExpense

	spend := make(map[models.Category]decimal.Decimal)
	for t, err := range e.store.Transactions(ctx, owner, filter) {
		if err != nil {
			return nil, err
		}
		spend[t.Category] = spend[t.Category].Add(t.Amount)
	}

	return spend, nil
}
