// Package monthname resolves localized month labels for the month wheel.
//
// Only a fixed allow-list of locales is recognized; there is no negotiation or
// fallback.
package monthname

import (
	"errors"
	"fmt"
	"strings"
)

type Locale string

const (
	EnUS Locale = "en-US"
	RuRU Locale = "ru-RU"
)

// Default is the locale a new Provider starts with.
const Default = EnUS

var (
	ErrUnsupportedLocale = errors.New("unsupported locale")
	ErrInvalidMonth      = errors.New("invalid month")
)

var tables = map[Locale][12]string{
	EnUS: {
		"january", "february", "march", "april", "may", "june",
		"july", "august", "september", "october", "november", "december",
	},
	RuRU: {
		"январь", "февраль", "март", "апрель", "май", "июнь",
		"июль", "август", "сентябрь", "октябрь", "ноябрь", "декабрь",
	},
}

// Supported returns the allow-list in a stable order.
func Supported() []Locale {
	return []Locale{EnUS, RuRU}
}

func IsSupported(l Locale) bool {
	_, ok := tables[l]
	return ok
}

// ParseLocale accepts the exact "language-REGION" identifiers of the allow-list.
func ParseLocale(s string) (Locale, error) {
	l := Locale(strings.TrimSpace(s))
	if !IsSupported(l) {
		return "", fmt.Errorf("%w: %q (supported: %s, %s)", ErrUnsupportedLocale, s, EnUS, RuRU)
	}
	return l, nil
}

// NameFor returns the label of month (1..12) in locale l.
func NameFor(l Locale, month int) (string, error) {
	tbl, ok := tables[l]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, string(l))
	}
	if month < 1 || month > 12 {
		return "", fmt.Errorf("%w: %d (expected 1..12)", ErrInvalidMonth, month)
	}
	return tbl[month-1], nil
}

// Provider holds the active locale for a single picker.
type Provider struct {
	locale Locale
}

func NewProvider() *Provider {
	return &Provider{locale: Default}
}

func (p *Provider) Locale() Locale {
	return p.locale
}

// SetLocale switches the active locale. An unsupported value leaves it unchanged.
func (p *Provider) SetLocale(l Locale) error {
	if !IsSupported(l) {
		return fmt.Errorf("%w: %q", ErrUnsupportedLocale, string(l))
	}
	p.locale = l
	return nil
}

// Name returns the label of month in the active locale.
func (p *Provider) Name(month int) (string, error) {
	return NameFor(p.locale, month)
}
