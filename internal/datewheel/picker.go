// Package datewheel keeps three selectable lists (day, month, year) in step so
// that together they always name a real Gregorian date.
//
// Month and year changes arriving through the lists recompute the valid day
// range and relocate the day when the range shrinks or grows back. The day the
// user last picked explicitly is remembered across transient truncations, so
// Jan 31 -> Feb -> Mar lands on the 31st again.
package datewheel

import (
	"datewheel-cli/internal/calendar"
	"datewheel-cli/internal/monthname"
	"datewheel-cli/internal/wheel"
)

type listID int

const (
	dayList listID = iota
	monthList
	yearList
)

// Lists are the three collaborators a Picker drives.
type Lists struct {
	Day   wheel.List
	Month wheel.List
	Year  wheel.List
}

// Wheels are the in-memory lists built by NewWithWheels.
type Wheels struct {
	Day   *wheel.Wheel
	Month *wheel.Wheel
	Year  *wheel.Wheel
}

// Host is notified when the picker needs re-measuring.
type Host interface {
	RequestLayout()
}

// Picker keeps a day, month and year list consistent with each other and
// notifies listeners of every net change of the selected date.
type Picker struct {
	lists Lists

	minYear int
	maxYear int

	// Last day picked explicitly; relocation never writes it.
	lastSelectedDay int

	// Committed selection, consistent between operations.
	sel calendar.Date

	names     *monthname.Provider
	host      Host
	listeners notifier

	quiet [3]bool
}

// New binds a picker to externally supplied lists and positions them on cfg.
func New(cfg Config, lists Lists) (*Picker, error) {
	if lists.Day == nil || lists.Month == nil || lists.Year == nil {
		return nil, errArg("lists", lists, "day, month and year lists are required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Picker{
		lists:   lists,
		minYear: cfg.MinYear,
		maxYear: cfg.MaxYear,
		names:   monthname.NewProvider(),
	}
	if err := p.names.SetLocale(cfg.Locale); err != nil {
		return nil, &argError{name: "locale", value: cfg.Locale, cause: err}
	}

	day := min(cfg.Day, calendar.DaysInMonth(cfg.Year, cfg.Month))
	lists.Year.SetRange(cfg.MinYear, cfg.MaxYear)
	lists.Month.SetRange(1, 12)
	lists.Day.SetRange(1, calendar.DaysInMonth(cfg.Year, cfg.Month))

	// Positioning happens before our own observers are attached.
	if err := firstErr(
		lists.Year.SetCurrent(cfg.Year-cfg.MinYear),
		lists.Month.SetCurrent(cfg.Month-1),
		lists.Day.SetCurrent(day-1),
	); err != nil {
		return nil, err
	}
	for _, l := range []wheel.List{lists.Day, lists.Month, lists.Year} {
		l.SetVisibleCount(cfg.VisibleItems)
	}

	p.sel = calendar.Date{Day: day, Month: cfg.Month, Year: cfg.Year}
	p.lastSelectedDay = day

	lists.Year.OnChange(func(_, newIndex int) error {
		if p.quiet[yearList] {
			return nil
		}
		return p.yearChanged(p.minYear + newIndex)
	})
	lists.Month.OnChange(func(_, newIndex int) error {
		if p.quiet[monthList] {
			return nil
		}
		return p.monthChanged(newIndex + 1)
	})
	lists.Day.OnChange(func(_, newIndex int) error {
		if p.quiet[dayList] {
			return nil
		}
		return p.dayPicked(newIndex + 1)
	})
	return p, nil
}

// NewWithWheels builds a picker over three fresh in-memory wheels.
func NewWithWheels(cfg Config) (*Picker, Wheels, error) {
	w := Wheels{
		Day:   wheel.New(1, 31),
		Month: wheel.New(1, 12),
		Year:  wheel.New(cfg.MinYear, cfg.MaxYear),
	}
	p, err := New(cfg, Lists{Day: w.Day, Month: w.Month, Year: w.Year})
	if err != nil {
		return nil, Wheels{}, err
	}
	return p, w, nil
}

// Day, Month, Year and Date report the committed selection.
func (p *Picker) Day() int            { return p.sel.Day }
func (p *Picker) Month() int          { return p.sel.Month }
func (p *Picker) Year() int           { return p.sel.Year }
func (p *Picker) Date() calendar.Date { return p.sel }

// MinYear and MaxYear bound the year list, inclusive.
func (p *Picker) MinYear() int { return p.minYear }
func (p *Picker) MaxYear() int { return p.maxYear }

// LastSelectedDay is the day last picked on the day list itself. Relocation
// after a month or year change never writes it.
func (p *Picker) LastSelectedDay() int { return p.lastSelectedDay }

// Lists returns the bound lists; changing them is the user interaction path.
func (p *Picker) Lists() Lists { return p.lists }

// Locale is the active month name locale.
func (p *Picker) Locale() monthname.Locale { return p.names.Locale() }

// VisibleItems is the row count shared by all three lists.
func (p *Picker) VisibleItems() int { return p.lists.Day.VisibleCount() }

// MonthName labels month in the active locale.
func (p *Picker) MonthName(month int) (string, error) {
	return p.names.Name(month)
}

// SetHost sets the receiver of layout requests; nil disables them.
func (p *Picker) SetHost(h Host) { p.host = h }

// SetDay selects day, capped at the length of the current month.
func (p *Picker) SetDay(day int) error {
	if day < 1 || day > 31 {
		return errArg("day", day, "should be between 1 and 31")
	}
	applied := min(day, calendar.DaysInMonth(p.sel.Year, p.sel.Month))
	// An unmoved list reports no pick, so the remembered day stays as is.
	if applied-1 == p.lists.Day.Current() {
		return nil
	}
	return p.lists.Day.SetCurrent(applied - 1)
}

// SetMonth selects month (1..12) through the month list, relocating the day
// when the month length changes.
func (p *Picker) SetMonth(month int) error {
	if month < 1 || month > 12 {
		return errArg("month", month, "should be between 1 and 12")
	}
	return p.lists.Month.SetCurrent(month - 1)
}

// SetYear selects a year within [MinYear, MaxYear].
func (p *Picker) SetYear(year int) error {
	if year < p.minYear || year > p.maxYear {
		return errArg("year", year, "should be between minYear and maxYear")
	}
	return p.lists.Year.SetCurrent(year - p.minYear)
}

// SetMinMaxYears replaces the selectable year range. A year outside the new
// range moves to minYear.
func (p *Picker) SetMinMaxYears(minYear, maxYear int) error {
	if err := validateBounds(minYear, maxYear); err != nil {
		return err
	}
	if minYear == p.minYear && maxYear == p.maxYear {
		return nil
	}

	year := p.sel.Year
	p.minYear, p.maxYear = minYear, maxYear
	p.lists.Year.SetRange(minYear, maxYear)

	target := year
	if year < minYear || year > maxYear {
		target = minYear
	}
	err := p.silently(yearList, func() error {
		return p.lists.Year.SetCurrent(target - minYear)
	})
	if target == year {
		return err
	}
	return firstErr(err, p.yearChanged(target))
}

// SetVisibleItems sets the row count of all three lists and asks the host
// for a new layout.
func (p *Picker) SetVisibleItems(count int) error {
	if count < 1 {
		return errArg("visible item count", count, "should be at least 1")
	}
	p.lists.Day.SetVisibleCount(count)
	p.lists.Month.SetVisibleCount(count)
	p.lists.Year.SetVisibleCount(count)
	if p.host != nil {
		p.host.RequestLayout()
	}
	return nil
}

// SetLocale switches month labels. The returned error matches both
// ErrInvalidArgument and monthname.ErrUnsupportedLocale.
func (p *Picker) SetLocale(l monthname.Locale) error {
	if err := p.names.SetLocale(l); err != nil {
		return &argError{name: "locale", value: l, cause: err}
	}
	if inv, ok := p.lists.Month.(interface{ Invalidate() }); ok {
		inv.Invalidate()
	}
	return nil
}

// AddListener and RemoveListener manage date change listeners. Listeners
// are identified by handle equality.
func (p *Picker) AddListener(l Listener) error    { return p.listeners.add(l) }
func (p *Picker) RemoveListener(l Listener) error { return p.listeners.remove(l) }

func (p *Picker) yearChanged(newYear int) error {
	old := p.sel
	var err error
	if old.Month == 2 && calendar.IsLeapYear(old.Year) != calendar.IsLeapYear(newYear) {
		prev := calendar.DaysInMonth(old.Year, 2)
		next := calendar.DaysInMonth(newYear, 2)
		if prev != next {
			err = p.reflowDays(prev, next)
		}
	}
	p.sel = calendar.Date{Day: p.currentDay(), Month: old.Month, Year: newYear}
	return firstErr(err, p.fire(old))
}

func (p *Picker) monthChanged(newMonth int) error {
	old := p.sel
	var err error
	prev := calendar.DaysInMonth(old.Year, old.Month)
	next := calendar.DaysInMonth(old.Year, newMonth)
	if prev != next {
		err = p.reflowDays(prev, next)
	}
	p.sel = calendar.Date{Day: p.currentDay(), Month: newMonth, Year: old.Year}
	return firstErr(err, p.fire(old))
}

func (p *Picker) dayPicked(newDay int) error {
	old := p.sel
	p.lastSelectedDay = newDay
	p.sel.Day = newDay
	return p.fire(old)
}

// reflowDays resizes the day list and relocates the selection without going
// through the day-picked path.
func (p *Picker) reflowDays(prev, next int) error {
	current := p.currentDay()
	p.lists.Day.SetRange(1, next)
	target, ok := relocateDay(prev, next, current, p.lastSelectedDay)
	if !ok {
		return nil
	}
	return p.silently(dayList, func() error {
		return p.lists.Day.SetCurrent(target - 1)
	})
}

// relocateDay decides where the day selection goes when the month length
// changes from prev to next days.
func relocateDay(prev, next, current, lastSelected int) (int, bool) {
	switch {
	case prev > next:
		if current > next {
			return next, true
		}
	case prev < next:
		if current != lastSelected {
			return min(lastSelected, next), true
		}
	}
	return 0, false
}

// silently runs fn with the observer of list muted; the previous state is
// restored on every exit path, panics included.
func (p *Picker) silently(id listID, fn func() error) error {
	prev := p.quiet[id]
	p.quiet[id] = true
	defer func() { p.quiet[id] = prev }()
	return fn()
}

func (p *Picker) currentDay() int { return p.lists.Day.Current() + 1 }

func (p *Picker) fire(old calendar.Date) error {
	if old == p.sel {
		return nil
	}
	return p.listeners.notify(p, old, p.sel)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
