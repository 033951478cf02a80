// Package types implements calendar value types shared across the application.
package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Month is a calendar month in a specific year.
type Month time.Time

// NewMonth returns the Month for the given year and month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// MonthOf returns the Month containing t.
func MonthOf(t time.Time) Month {
	return NewMonth(t.Year(), t.Month())
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	t := time.Time(m)
	return fmt.Sprintf("%04d-%02d", t.Year(), t.Month())
}

// Year returns the calendar year.
func (m Month) Year() int {
	return time.Time(m).Year()
}

// Month returns the calendar month.
func (m Month) Month() time.Month {
	return time.Time(m).Month()
}

// AddMonths returns the month n months after m. Negative n goes backwards.
func (m Month) AddMonths(n int) Month {
	t := time.Time(m).AddDate(0, n, 0)
	return NewMonth(t.Year(), t.Month())
}

// Equal reports whether two Months are the same calendar month.
func (m Month) Equal(o Month) bool {
	return m.Year() == o.Year() && m.Month() == o.Month()
}

// Before reports whether m is earlier than o.
func (m Month) Before(o Month) bool {
	return time.Time(m).Before(time.Time(o))
}

// Contains reports whether the given date falls inside this month.
func (m Month) Contains(d Date) bool {
	return m.Equal(MonthOf(d.Time()))
}

// MarshalJSON implements the json.Marshaler interface.
func (m Month) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface, accepting the
// YYYY-MM form produced by MarshalJSON.
func (m *Month) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	if value == "" {
		return nil
	}
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return fmt.Errorf("parse month %q: %w", value, err)
	}
	*m = NewMonth(t.Year(), t.Month())
	return nil
}
