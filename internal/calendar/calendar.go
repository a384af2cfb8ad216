// Package calendar holds the proleptic Gregorian arithmetic the date wheels rely on.
package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// IsLeapYear reports whether year has a February 29th.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month (1..12) of year.
// The month range is the caller's responsibility.
func DaysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// Date is a plain calendar date with no time or zone attached.
type Date struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Valid reports whether d names a real Gregorian date.
func (d Date) Valid() bool {
	if d.Year < 0 || d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= DaysInMonth(d.Year, d.Month)
}

// String renders d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Dotted renders d as DD.MM.YYYY.
func (d Date) Dotted() string {
	return fmt.Sprintf("%02d.%02d.%04d", d.Day, d.Month, d.Year)
}

var reDateOnly = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// ParseDate parses a YYYY-MM-DD string and rejects dates that do not exist.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	m := reDateOnly.FindStringSubmatch(s)
	if m == nil {
		return Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	out := Date{Day: d, Month: mo, Year: y}
	if !out.Valid() {
		return Date{}, fmt.Errorf("invalid date %q (no such day in the Gregorian calendar)", s)
	}
	return out, nil
}
