// Package types implements special types for pocketledger.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Month is a month in a specific year.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// String returns the time formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the YYYY-MM representation of the month.
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", m.String())), nil
}

var fullDate = regexp.MustCompile("^[0-9]{4}-[0-9]{2}-[0-9]{2}$")

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// YYYY-MM, YYYY-MM-DD and RFC3339 strings are accepted. Everything
// except the year and month is ignored.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	if len(value) == len("2006-01") {
		month, err := ParseMonth(value)
		if err != nil {
			return err
		}
		*m = month
		return nil
	}

	pattern := time.RFC3339
	if fullDate.MatchString(value) {
		pattern = time.DateOnly
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*m = NewMonth(t.Year(), t.Month())
	return nil
}

// MonthOf returns the Month in which a time occurs, in UTC.
func MonthOf(t time.Time) Month {
	year, month, _ := t.Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return MonthOf(t), nil
}

// Scan writes the value from the database. NULL is the zero month.
func (m *Month) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	if err != nil || !nullTime.Valid {
		*m = Month{}
		return err
	}

	*m = MonthOf(nullTime.Time.UTC())
	return nil
}

// Value returns the value for the SQL driver to write to the database.
// The zero month is written as NULL.
func (m Month) Value() (driver.Value, error) {
	if m.IsZero() {
		return nil, nil
	}

	year, month, _ := time.Time(m).Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm the type.
func (Month) GormDataType() string {
	return "date"
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// MonthsUntil returns the number of months from m to n. It is negative if n
// is before m.
func (m Month) MonthsUntil(n Month) int {
	pm, pn := m.Period(), n.Period()
	return (pn.Year-pm.Year)*12 + pn.Month - pm.Month
}

// Contains reports whether the time instant is in the month.
func (m Month) Contains(t time.Time) bool {
	return t.Year() == time.Time(m).Year() && t.Month() == time.Time(m).Month()
}

// Start is the first instant of the month.
func (m Month) Start() time.Time {
	return time.Time(m)
}

// End is the first instant of the following month.
func (m Month) End() time.Time {
	return time.Time(m.AddDate(0, 1))
}

// LastDay is the date of the last day of the month.
func (m Month) LastDay() time.Time {
	return m.End().AddDate(0, 0, -1)
}

// Period returns the budget period of the month.
func (m Month) Period() Period {
	return Period{Year: time.Time(m).Year(), Month: int(time.Time(m).Month())}
}
