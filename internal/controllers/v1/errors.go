package v1

import (
	"errors"
	"net/http"

	"github.com/pocketledger/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid positive integer"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errKindInvalid     = errors.New("the kind parameter must be one of 'income', 'expense'")
	errCategoryInvalid = errors.New("the category parameter is not a known category")
	errLimitInvalid    = errors.New("the limit parameter must be between 1 and 100")

	errLoanCategoryInvalid = errors.New("the category parameter is not a known loan category")
)
