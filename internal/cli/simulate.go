package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"datewheel-cli/internal/calendar"
	"datewheel-cli/internal/datewheel"
	"datewheel-cli/internal/monthname"

	"github.com/spf13/cobra"
)

var errBadOp = errors.New("invalid op")

type simEvent struct {
	Op  int           `json:"op"`
	Old calendar.Date `json:"old"`
	New calendar.Date `json:"new"`
}

type simResult struct {
	Events          []simEvent       `json:"events"`
	Date            calendar.Date    `json:"date"`
	LastSelectedDay int              `json:"lastSelectedDay"`
	MinYear         int              `json:"minYear"`
	MaxYear         int              `json:"maxYear"`
	VisibleItems    int              `json:"visibleItems"`
	Locale          monthname.Locale `json:"locale"`
}

func (r simResult) Text() string {
	var b strings.Builder
	for _, ev := range r.Events {
		fmt.Fprintf(&b, "op %d: %s -> %s\n", ev.Op, ev.Old.Dotted(), ev.New.Dotted())
	}
	fmt.Fprintf(&b, "final: %s (last selected day %d, years %d-%d, %d rows, %s)",
		r.Date.Dotted(), r.LastSelectedDay, r.MinYear, r.MaxYear, r.VisibleItems, r.Locale)
	return b.String()
}

func newSimulateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "simulate <op>...",
		Short: "Apply picker operations in order and print the change events",
		Long: strings.TrimSpace(`
Ops:
  day=N  month=N  year=N      programmatic setters
  bounds=MIN:MAX              change the selectable years
  visible=N  locale=L         presentation
  scroll-day=±N               move a wheel like a user drag
  scroll-month=±N
  scroll-year=±N

Ops run against a picker built from the flags. The first failing op stops the
run; its 1-based index is reported.
`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, app, verboseLogger(cmd, app))
			if err != nil {
				return writeErr(cmd, err)
			}
			defer s.Close()

			res := simResult{Events: []simEvent{}}
			opIndex := 0
			rec := datewheel.NewListener(func(_ *datewheel.Picker, old, new calendar.Date) error {
				res.Events = append(res.Events, simEvent{Op: opIndex, Old: old, New: new})
				return nil
			})
			if err := s.picker.AddListener(rec); err != nil {
				return writeErr(cmd, err)
			}

			for i, raw := range args {
				opIndex = i + 1
				if err := applyOp(s, raw); err != nil {
					return writeErr(cmd, fmt.Errorf("op %d (%s): %w", opIndex, raw, err))
				}
			}

			p := s.picker
			res.Date = p.Date()
			res.LastSelectedDay = p.LastSelectedDay()
			res.MinYear = p.MinYear()
			res.MaxYear = p.MaxYear()
			res.VisibleItems = p.VisibleItems()
			res.Locale = p.Locale()
			return writeOut(cmd, app, map[string]any{"data": res})
		},
	}
}

func applyOp(s *session, raw string) error {
	name, val, ok := strings.Cut(strings.TrimSpace(raw), "=")
	if !ok {
		return fmt.Errorf("%w: expected name=value", errBadOp)
	}
	p := s.picker

	switch name {
	case "locale":
		return p.SetLocale(monthname.Locale(strings.TrimSpace(val)))
	case "bounds":
		lo, hi, ok := strings.Cut(val, ":")
		if !ok {
			return fmt.Errorf("%w: bounds expects MIN:MAX", errBadOp)
		}
		minYear, err := atoiOp(lo)
		if err != nil {
			return err
		}
		maxYear, err := atoiOp(hi)
		if err != nil {
			return err
		}
		return p.SetMinMaxYears(minYear, maxYear)
	}

	n, err := atoiOp(val)
	if err != nil {
		return err
	}
	switch name {
	case "day":
		return p.SetDay(n)
	case "month":
		return p.SetMonth(n)
	case "year":
		return p.SetYear(n)
	case "visible":
		return p.SetVisibleItems(n)
	case "scroll-day":
		return s.wheels.Day.Scroll(n)
	case "scroll-month":
		return s.wheels.Month.Scroll(n)
	case "scroll-year":
		return s.wheels.Year.Scroll(n)
	default:
		return fmt.Errorf("%w: unknown op %q", errBadOp, name)
	}
}

func atoiOp(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", errBadOp, s)
	}
	return n, nil
}
