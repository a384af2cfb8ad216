package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"datewheel-cli/internal/calendar"
	"datewheel-cli/internal/monthname"

	"github.com/spf13/cobra"
)

type dateInfo struct {
	Date        calendar.Date    `json:"date"`
	Weekday     string           `json:"weekday"`
	MonthName   string           `json:"monthName"`
	Locale      monthname.Locale `json:"locale"`
	LeapYear    bool             `json:"leapYear"`
	DaysInMonth int              `json:"daysInMonth"`
	InRange     bool             `json:"inRange"`
}

func newDateInfo(d calendar.Date, l monthname.Locale, minYear, maxYear int) dateInfo {
	name, _ := monthname.NameFor(l, d.Month)
	return dateInfo{
		Date:        d,
		Weekday:     strings.ToLower(time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC).Weekday().String()),
		MonthName:   name,
		Locale:      l,
		LeapYear:    calendar.IsLeapYear(d.Year),
		DaysInMonth: calendar.DaysInMonth(d.Year, d.Month),
		InRange:     d.Year >= minYear && d.Year <= maxYear,
	}
}

func (i dateInfo) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s, %d %s %d\n", i.Date.Dotted(), i.Weekday, i.Date.Day, i.MonthName, i.Date.Year)
	leap := "common year"
	if i.LeapYear {
		leap = "leap year"
	}
	fmt.Fprintf(&b, "%s, %d days in month", leap, i.DaysInMonth)
	if !i.InRange {
		b.WriteString(", outside the selectable years")
	}
	return b.String()
}

func newCheckCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check <YYYY-MM-DD>",
		Short: "Validate a date and describe it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := calendar.ParseDate(args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			cfg, err := app.pickerConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": newDateInfo(d, cfg.Locale, cfg.MinYear, cfg.MaxYear)})
		},
	}
}

type monthDays struct {
	Year     int  `json:"year"`
	Month    int  `json:"month"`
	Days     int  `json:"days"`
	LeapYear bool `json:"leapYear"`
}

func (m monthDays) Text() string { return strconv.Itoa(m.Days) }

func newDaysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "days <year> <month>",
		Short: "Print the number of days in a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil || year < 0 {
				return writeErr(cmd, fmt.Errorf("invalid year: %q", args[0]))
			}
			month, err := strconv.Atoi(args[1])
			if err != nil || month < 1 || month > 12 {
				return writeErr(cmd, fmt.Errorf("invalid month: %q (expected 1-12)", args[1]))
			}
			return writeOut(cmd, app, map[string]any{"data": monthDays{
				Year:     year,
				Month:    month,
				Days:     calendar.DaysInMonth(year, month),
				LeapYear: calendar.IsLeapYear(year),
			}})
		},
	}
}

type monthLabel struct {
	Month int    `json:"month"`
	Name  string `json:"name"`
}

type monthList struct {
	Locale monthname.Locale `json:"locale"`
	Months []monthLabel     `json:"months"`
}

func (m monthList) Text() string {
	lines := make([]string, 0, len(m.Months))
	for _, ml := range m.Months {
		lines = append(lines, fmt.Sprintf("%02d %s", ml.Month, ml.Name))
	}
	return strings.Join(lines, "\n")
}

func newMonthsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List month names for the selected locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.pickerConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			out := monthList{Locale: cfg.Locale, Months: make([]monthLabel, 0, 12)}
			for m := 1; m <= 12; m++ {
				name, err := monthname.NameFor(cfg.Locale, m)
				if err != nil {
					return writeErr(cmd, err)
				}
				out.Months = append(out.Months, monthLabel{Month: m, Name: name})
			}
			return writeOut(cmd, app, map[string]any{"data": out})
		},
	}
}

type localeList struct {
	Locales []monthname.Locale `json:"locales"`
	Default monthname.Locale   `json:"default"`
}

func (l localeList) Text() string {
	lines := make([]string, 0, len(l.Locales))
	for _, loc := range l.Locales {
		s := string(loc)
		if loc == l.Default {
			s += " (default)"
		}
		lines = append(lines, s)
	}
	return strings.Join(lines, "\n")
}

func newLocalesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List supported month name locales",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, map[string]any{"data": localeList{
				Locales: monthname.Supported(),
				Default: monthname.Default,
			}})
		},
	}
}
