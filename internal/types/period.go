package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPeriod is returned for a month outside of 1-12 or a year outside of 1-9999.
var ErrInvalidPeriod = errors.New("the period is invalid, the month must be between 1 and 12 and the year between 1 and 9999")

// Period identifies a budget cycle.
type Period struct {
	Year  int `json:"year" example:"2024"`
	Month int `json:"month" example:"1"`
}

// NewPeriod returns a validated Period.
func NewPeriod(month, year int) (Period, error) {
	p := Period{Year: year, Month: month}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}

	return p, nil
}

// Validate checks that month and year are in calendar range.
func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 || p.Year < 1 || p.Year > 9999 {
		return fmt.Errorf("%w: month %d, year %d", ErrInvalidPeriod, p.Month, p.Year)
	}

	return nil
}

// ToMonth converts the period to a Month. The period must be valid.
func (p Period) ToMonth() Month {
	return NewMonth(p.Year, time.Month(p.Month))
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}
