package ledger

import (
	"cmp"
	"context"
	"iter"
	"time"

	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/types"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// DefaultPageSize is the number of transactions a DBStore reads per query.
const DefaultPageSize = 100

// Filter restricts the transactions of an owner. Zero values do not filter.
type Filter struct {
	Kind     models.Kind
	Category models.Category

	// From and Until are inclusive calendar dates
	From  time.Time
	Until time.Time

	// Description is a glob pattern, matched against the whole description
	Description string
}

// Match reports if the transaction passes the filter.
func (f Filter) Match(t models.Transaction) bool {
	if f.Kind != "" && t.Kind != f.Kind {
		return false
	}

	if f.Category != "" && t.Category != f.Category {
		return false
	}

	if !f.From.IsZero() && t.Date.Before(day(f.From)) {
		return false
	}

	if !f.Until.IsZero() && t.Date.After(day(f.Until)) {
		return false
	}

	if f.Description != "" && !glob.Glob(f.Description, t.Description) {
		return false
	}

	return true
}

// day returns midnight UTC of the calendar day of t.
func day(t time.Time) time.Time {
	year, month, d := t.Date()
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Store is the read side of the ledger and budget stores.
type Store interface {
	// Transactions yields the matching transactions of the owner ordered
	// by date descending, then by ID descending.
	Transactions(ctx context.Context, owner string, filter Filter) iter.Seq2[models.Transaction, error]

	// Budgets returns all budgets of the owner for the period.
	Budgets(ctx context.Context, owner string, period types.Period) ([]models.Budget, error)
}

// DBStore reads from the database with keyset pagination.
type DBStore struct {
	DB       *gorm.DB
	PageSize int
}

// NewDBStore returns a DBStore with the default page size.
func NewDBStore(db *gorm.DB) DBStore {
	return DBStore{DB: db, PageSize: DefaultPageSize}
}

func (s DBStore) Transactions(ctx context.Context, owner string, filter Filter) iter.Seq2[models.Transaction, error] {
	pageSize := s.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return func(yield func(models.Transaction, error) bool) {
		var last *models.Transaction

		for {
			if err := ctx.Err(); err != nil {
				yield(models.Transaction{}, err)
				return
			}

			query := s.DB.WithContext(ctx).Scopes(models.OwnedBy(owner), filterScope(filter))
			if last != nil {
				query = query.Where("date < ? OR (date = ? AND id < ?)", last.Date, last.Date, last.ID)
			}

			var page []models.Transaction
			err := query.Order("date DESC, id DESC").Limit(pageSize).Find(&page).Error
			if err != nil {
				yield(models.Transaction{}, err)
				return
			}

			for _, t := range page {
				// The description glob is not expressible in SQL for all drivers
				if filter.Description != "" && !glob.Glob(filter.Description, t.Description) {
					continue
				}

				if !yield(t, nil) {
					return
				}
			}

			if len(page) < pageSize {
				return
			}
			last = &page[len(page)-1]
		}
	}
}

// filterScope applies all conditions of the filter that the database can evaluate.
func filterScope(filter Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Kind != "" {
			db = db.Where("kind = ?", filter.Kind)
		}

		if filter.Category != "" {
			db = db.Where("category = ?", filter.Category)
		}

		if !filter.From.IsZero() {
			db = db.Where("date >= ?", day(filter.From))
		}

		if !filter.Until.IsZero() {
			db = db.Where("date <= ?", day(filter.Until))
		}

		return db
	}
}

func (s DBStore) Budgets(ctx context.Context, owner string, period types.Period) ([]models.Budget, error) {
	var budgets []models.Budget
	err := s.DB.WithContext(ctx).
		Scopes(models.OwnedBy(owner)).
		Where(&models.Budget{Year: period.Year, Month: period.Month}).
		Find(&budgets).Error
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

// MemoryStore holds a fixed snapshot of transactions and budgets.
type MemoryStore struct {
	transactions []models.Transaction
	budgets      []models.Budget
}

// NewMemoryStore copies the transactions and budgets into a new MemoryStore.
func NewMemoryStore(transactions []models.Transaction, budgets []models.Budget) *MemoryStore {
	s := &MemoryStore{
		transactions: slices.Clone(transactions),
		budgets:      slices.Clone(budgets),
	}

	slices.SortStableFunc(s.transactions, Newest)
	return s
}

func (s *MemoryStore) Transactions(ctx context.Context, owner string, filter Filter) iter.Seq2[models.Transaction, error] {
	return func(yield func(models.Transaction, error) bool) {
		for _, t := range s.transactions {
			if err := ctx.Err(); err != nil {
				yield(models.Transaction{}, err)
				return
			}

			if t.Owner != owner || !filter.Match(t) {
				continue
			}

			if !yield(t, nil) {
				return
			}
		}
	}
}

func (s *MemoryStore) Budgets(_ context.Context, owner string, period types.Period) ([]models.Budget, error) {
	budgets := []models.Budget{}
	for _, b := range s.budgets {
		if b.Owner == owner && b.Period() == period {
			budgets = append(budgets, b)
		}
	}

	return budgets, nil
}

// Newest orders transactions by date descending, then by ID descending.
func Newest(a, b models.Transaction) int {
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}

	return cmp.Compare(b.ID, a.ID)
}
