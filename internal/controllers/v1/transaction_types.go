package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type TransactionEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"14.03" minimum:"0.01" multipleOf:"0.01"` // The amount of the transaction, always positive
	Kind        models.Kind     `json:"kind" example:"expense" enums:"income,expense"`           // The direction of the transaction
	Category    models.Category `json:"category" example:"food"`                                 // The category, must be valid for the kind
	Date        time.Time       `json:"date" example:"2024-03-15T00:00:00Z"`                     // Date of the transaction. The time is ignored
	Description string          `json:"description" example:"Lunch" default:""`                  // A description
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model(owner string) models.Transaction {
	return models.Transaction{
		Owner:       owner,
		Amount:      editable.Amount,
		Kind:        editable.Kind,
		Category:    editable.Category,
		Date:        editable.Date,
		Description: editable.Description,
	}
}

// apply sets the fields of the transaction that are named in fields.
func (editable TransactionEditable) apply(transaction *models.Transaction, fields []string) {
	if slices.Contains(fields, "Amount") {
		transaction.Amount = editable.Amount
	}

	if slices.Contains(fields, "Kind") {
		transaction.Kind = editable.Kind
	}

	if slices.Contains(fields, "Category") {
		transaction.Category = editable.Category
	}

	if slices.Contains(fields, "Date") {
		transaction.Date = editable.Date
	}

	if slices.Contains(fields, "Description") {
		transaction.Description = editable.Description
	}
}

type TransactionLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/transactions/17"` // The transaction itself
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Amount:      model.Amount,
			Kind:        model.Kind,
			Category:    model.Category,
			Date:        model.Date,
			Description: model.Description,
		},
		Links: TransactionLinks{
			Self: self(c, "transactions", model.ID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                                      // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid positive integer"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                                // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid positive integer"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                                      // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"amount must be greater than zero"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                             // The Transaction data, if creation was successful
}

type TransactionQueryFilter struct {
	Kind        string    `form:"kind" filterField:"false"`                                            // Kind of the transactions
	Category    string    `form:"category" filterField:"false"`                                        // Category of the transactions
	FromDate    time.Time `form:"fromDate" time_format:"2006-01-02" time_utc:"1" filterField:"false"`  // From this date
	UntilDate   time.Time `form:"untilDate" time_format:"2006-01-02" time_utc:"1" filterField:"false"` // Until this date
	Description string    `form:"description" filterField:"false"`                                     // Glob pattern the description must match
	Offset      uint      `form:"offset" filterField:"false"`                                          // The offset of the first Transaction returned. Defaults to 0.
	Limit       int       `form:"limit" filterField:"false"`                                           // Maximum number of transactions to return. Defaults to 50.
}

// filter converts the query to a ledger filter.
func (f TransactionQueryFilter) filter() (ledger.Filter, error) {
	kind := models.Kind(f.Kind)
	if kind != "" && !kind.Valid() {
		return ledger.Filter{}, errKindInvalid
	}

	category := models.Category(f.Category)
	if category != "" && !models.KindIncome.Allows(category) && !models.KindExpense.Allows(category) {
		return ledger.Filter{}, errCategoryInvalid
	}

	return ledger.Filter{
		Kind:        kind,
		Category:    category,
		From:        f.FromDate,
		Until:       f.UntilDate,
		Description: f.Description,
	}, nil
}
