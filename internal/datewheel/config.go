package datewheel

import (
	"datewheel-cli/internal/monthname"
)

const (
	DefaultVisibleItems = 3

	DefaultMinYear = 1900
	DefaultMaxYear = 2050

	DefaultYear  = 2000
	DefaultMonth = 8
	DefaultDay   = 15
)

// Config is the host-facing configuration of a Picker.
type Config struct {
	Day          int              `json:"day,omitempty"`
	Month        int              `json:"month,omitempty"`
	Year         int              `json:"year,omitempty"`
	MinYear      int              `json:"minYear,omitempty"`
	MaxYear      int              `json:"maxYear,omitempty"`
	VisibleItems int              `json:"visibleItems,omitempty"`
	Locale       monthname.Locale `json:"locale,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Day:          DefaultDay,
		Month:        DefaultMonth,
		Year:         DefaultYear,
		MinYear:      DefaultMinYear,
		MaxYear:      DefaultMaxYear,
		VisibleItems: DefaultVisibleItems,
		Locale:       monthname.Default,
	}
}

// Merge returns c with every zero field taken from base. Use Overrides when
// an explicit zero must survive.
func (c Config) Merge(base Config) Config {
	if c.Day == 0 {
		c.Day = base.Day
	}
	if c.Month == 0 {
		c.Month = base.Month
	}
	if c.Year == 0 {
		c.Year = base.Year
	}
	if c.MinYear == 0 {
		c.MinYear = base.MinYear
	}
	if c.MaxYear == 0 {
		c.MaxYear = base.MaxYear
	}
	if c.VisibleItems == 0 {
		c.VisibleItems = base.VisibleItems
	}
	if c.Locale == "" {
		c.Locale = base.Locale
	}
	return c
}

// Overrides is a partial Config. Nil fields are unset, so an explicit zero
// (a minYear of 0) is kept apart from "not given".
type Overrides struct {
	Day          *int              `json:"day,omitempty"`
	Month        *int              `json:"month,omitempty"`
	Year         *int              `json:"year,omitempty"`
	MinYear      *int              `json:"minYear,omitempty"`
	MaxYear      *int              `json:"maxYear,omitempty"`
	VisibleItems *int              `json:"visibleItems,omitempty"`
	Locale       *monthname.Locale `json:"locale,omitempty"`
}

// Apply returns base with every set field of o written over it.
func (o Overrides) Apply(base Config) Config {
	set := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
		}
	}
	set(&base.Day, o.Day)
	set(&base.Month, o.Month)
	set(&base.Year, o.Year)
	set(&base.MinYear, o.MinYear)
	set(&base.MaxYear, o.MaxYear)
	set(&base.VisibleItems, o.VisibleItems)
	if o.Locale != nil {
		base.Locale = *o.Locale
	}
	return base
}

// Over returns o with every unset field taken from base.
func (o Overrides) Over(base Overrides) Overrides {
	if o.Day == nil {
		o.Day = base.Day
	}
	if o.Month == nil {
		o.Month = base.Month
	}
	if o.Year == nil {
		o.Year = base.Year
	}
	if o.MinYear == nil {
		o.MinYear = base.MinYear
	}
	if o.MaxYear == nil {
		o.MaxYear = base.MaxYear
	}
	if o.VisibleItems == nil {
		o.VisibleItems = base.VisibleItems
	}
	if o.Locale == nil {
		o.Locale = base.Locale
	}
	return o
}

// Validate checks c the same way the individual setters would.
func (c Config) Validate() error {
	if err := validateBounds(c.MinYear, c.MaxYear); err != nil {
		return err
	}
	if c.Year < c.MinYear || c.Year > c.MaxYear {
		return errArg("year", c.Year, "should be between minYear and maxYear")
	}
	if c.Month < 1 || c.Month > 12 {
		return errArg("month", c.Month, "should be between 1 and 12")
	}
	if c.Day < 1 || c.Day > 31 {
		return errArg("day", c.Day, "should be between 1 and 31")
	}
	if c.VisibleItems < 1 {
		return errArg("visible item count", c.VisibleItems, "should be at least 1")
	}
	if !monthname.IsSupported(c.Locale) {
		_, err := monthname.ParseLocale(string(c.Locale))
		return &argError{name: "locale", value: c.Locale, cause: err}
	}
	return nil
}

func validateBounds(minYear, maxYear int) error {
	if minYear < 0 {
		return errArg("minYear", minYear, "should be non-negative")
	}
	if maxYear < 0 {
		return errArg("maxYear", maxYear, "should be non-negative")
	}
	if minYear > maxYear {
		return errArg("minYear", minYear, "should be <= maxYear")
	}
	return nil
}
