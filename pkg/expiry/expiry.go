// Package expiry models card expiry dates as selected through paired
// month/year form inputs. An expiry date names a calendar month; the card
// stays valid through the last day of that month, leap years included.
package expiry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidMonth is returned when the month input is not a number or is outside 1-12.
	ErrInvalidMonth = errors.New("invalid expiry month")

	// ErrInvalidYear is returned when the year input is not a number or is outside 1-9999.
	ErrInvalidYear = errors.New("invalid expiry year")

	// ErrDatePassed is returned when the expiry date lies before the current date.
	ErrDatePassed = errors.New("expiry date has passed")
)

// Date is a card expiry month in a calendar year.
type Date struct {
	Month time.Month
	Year  int
}

// New checks the month and year ranges and returns the expiry date.
func New(year int, month time.Month) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, ErrInvalidMonth
	}
	if year < 1 || year > 9999 {
		return Date{}, ErrInvalidYear
	}
	return Date{Month: month, Year: year}, nil
}

// ParseMonth parses a month form input into a calendar month.
func ParseMonth(s string) (time.Month, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 12 {
		return 0, ErrInvalidMonth
	}
	return time.Month(n), nil
}

// ParseYear parses a year form input.
func ParseYear(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 9999 {
		return 0, ErrInvalidYear
	}
	return n, nil
}

// Parse builds an expiry date from the raw month and year form inputs.
func Parse(monthStr, yearStr string) (Date, error) {
	month, err := ParseMonth(monthStr)
	if err != nil {
		return Date{}, err
	}
	year, err := ParseYear(yearStr)
	if err != nil {
		return Date{}, err
	}
	return Date{Month: month, Year: year}, nil
}

// LastDay returns the last calendar day of the expiry month.
func (d Date) LastDay() int {
	return d.EndOfMonth().Day()
}

// EndOfMonth returns midnight UTC on the last day of the expiry month.
// Day zero of the following month normalizes to the last day of this one.
func (d Date) EndOfMonth() time.Time {
	return time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC)
}

// ExpiredAt reports whether the expiry date is strictly before the calendar
// date of at. The last day of the expiry month has not passed until the day
// after it.
func (d Date) ExpiredAt(at time.Time) bool {
	today := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
	return d.EndOfMonth().Before(today)
}

// Expired reports whether the expiry date has passed as of the current date.
func (d Date) Expired() bool {
	return d.ExpiredAt(time.Now())
}

// Validate returns ErrDatePassed when the expiry date lies before the
// calendar date of at, and nil otherwise.
func (d Date) Validate(at time.Time) error {
	if d.ExpiredAt(at) {
		return ErrDatePassed
	}
	return nil
}

// IsZero reports whether d carries no date at all.
func (d Date) IsZero() bool {
	return d.Month == 0 && d.Year == 0
}

// String formats the expiry as it appears on a card face, MM/YY.
func (d Date) String() string {
	return fmt.Sprintf("%02d/%02d", int(d.Month), d.Year%100)
}
