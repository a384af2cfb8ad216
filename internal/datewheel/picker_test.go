package datewheel

import (
	"testing"

	"datewheel-cli/internal/calendar"
	"datewheel-cli/internal/monthname"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type event struct {
	old calendar.Date
	new calendar.Date
}

type recorder struct {
	events []event
}

func (r *recorder) DateChanged(_ *Picker, old, new calendar.Date) error {
	r.events = append(r.events, event{old, new})
	return nil
}

func (r *recorder) take() []event {
	out := r.events
	r.events = nil
	return out
}

func date(d, m, y int) calendar.Date { return calendar.Date{Day: d, Month: m, Year: y} }

func newTestPicker(t *testing.T, cfg Config) (*Picker, Wheels, *recorder) {
	t.Helper()
	p, w, err := NewWithWheels(cfg)
	require.NoError(t, err)
	rec := &recorder{}
	require.NoError(t, p.AddListener(rec))
	return p, w, rec
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	p, w, _ := newTestPicker(t, DefaultConfig())

	assert.Equal(t, date(15, 8, 2000), p.Date())
	assert.Equal(t, 1900, p.MinYear())
	assert.Equal(t, 2050, p.MaxYear())
	assert.Equal(t, 3, p.VisibleItems())
	assert.Equal(t, monthname.EnUS, p.Locale())
	assert.Equal(t, 15, p.LastSelectedDay())

	assert.Equal(t, 15, w.Day.Value())
	assert.Equal(t, 31, w.Day.Max())
	assert.Equal(t, 8, w.Month.Value())
	assert.Equal(t, 2000, w.Year.Value())
}

func TestNew_ClampsInitialDay(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Day, cfg.Month, cfg.Year = 31, 2, 2001
	p, w, _ := newTestPicker(t, cfg)

	assert.Equal(t, date(28, 2, 2001), p.Date())
	assert.Equal(t, 28, w.Day.Max())
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	mutate := []func(*Config){
		func(c *Config) { c.Day = 0 },
		func(c *Config) { c.Day = 32 },
		func(c *Config) { c.Month = 13 },
		func(c *Config) { c.Year = 1800 },
		func(c *Config) { c.MinYear = -1 },
		func(c *Config) { c.MinYear, c.MaxYear = 2010, 2000 },
		func(c *Config) { c.VisibleItems = 0 },
		func(c *Config) { c.Locale = "de-DE" },
	}
	for i, fn := range mutate {
		cfg := DefaultConfig()
		fn(&cfg)
		_, _, err := NewWithWheels(cfg)
		assert.ErrorIs(t, err, ErrInvalidArgument, "case %d", i)
	}

	_, err := New(DefaultConfig(), Lists{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSetDay_ClampsAndRemembers(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Month = 4
	p, _, rec := newTestPicker(t, cfg)

	require.NoError(t, p.SetDay(31))
	assert.Equal(t, 30, p.Day())
	assert.Equal(t, 30, p.LastSelectedDay())
	assert.Equal(t, []event{{date(15, 4, 2000), date(30, 4, 2000)}}, rec.take())

	// Same value: no event.
	require.NoError(t, p.SetDay(30))
	assert.Empty(t, rec.take())
	assert.Equal(t, 30, p.LastSelectedDay())

	for _, bad := range []int{0, -3, 32} {
		assert.ErrorIs(t, p.SetDay(bad), ErrInvalidArgument)
	}
	assert.Equal(t, 30, p.Day())
	assert.Empty(t, rec.take())
}

func TestSetDay_ClampedToCurrentDayKeepsLastSelectedDay(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Day, cfg.Month, cfg.Year = 31, 1, 2001
	p, _, rec := newTestPicker(t, cfg)

	require.NoError(t, p.SetMonth(2))
	assert.Equal(t, date(28, 2, 2001), p.Date())
	assert.Equal(t, 31, p.LastSelectedDay())

	// 31 clamps to the 28th the list already shows: nothing is picked.
	require.NoError(t, p.SetDay(31))
	assert.Equal(t, 31, p.LastSelectedDay())

	require.NoError(t, p.SetMonth(3))
	assert.Equal(t, date(31, 3, 2001), p.Date())
	assert.Equal(t, []event{
		{date(31, 1, 2001), date(28, 2, 2001)},
		{date(28, 2, 2001), date(31, 3, 2001)},
	}, rec.take())
}

func TestSetMonth_ShrinkThenRestoreLastSelectedDay(t *testing.T) {
	t.Parallel()

	p, _, rec := newTestPicker(t, DefaultConfig())

	require.NoError(t, p.SetDay(31))
	require.NoError(t, p.SetMonth(9))
	assert.Equal(t, date(30, 9, 2000), p.Date())
	assert.Equal(t, 31, p.LastSelectedDay())

	require.NoError(t, p.SetMonth(10))
	assert.Equal(t, date(31, 10, 2000), p.Date())

	assert.Equal(t, []event{
		{date(15, 8, 2000), date(31, 8, 2000)},
		{date(31, 8, 2000), date(30, 9, 2000)},
		{date(30, 9, 2000), date(31, 10, 2000)},
	}, rec.take())
}

func TestSetMonth_ThroughFebruaryCapsRestoredDay(t *testing.T) {
	t.Parallel()

	p, _, rec := newTestPicker(t, DefaultConfig())

	require.NoError(t, p.SetMonth(1))
	require.NoError(t, p.SetDay(31))
	require.NoError(t, p.SetMonth(2))
	assert.Equal(t, date(29, 2, 2000), p.Date())

	require.NoError(t, p.SetMonth(4))
	assert.Equal(t, date(30, 4, 2000), p.Date())
	assert.Equal(t, 31, p.LastSelectedDay())

	require.NoError(t, p.SetMonth(5))
	assert.Equal(t, date(31, 5, 2000), p.Date())
	assert.Len(t, rec.take(), 5)
}

func TestSetYear_LeapTransitionInFebruary(t *testing.T) {
	t.Parallel()

	p, w, rec := newTestPicker(t, DefaultConfig())

	require.NoError(t, p.SetMonth(2))
	require.NoError(t, p.SetDay(29))
	rec.take()

	require.NoError(t, p.SetYear(2001))
	assert.Equal(t, date(28, 2, 2001), p.Date())
	assert.Equal(t, 28, w.Day.Max())
	assert.Equal(t, 29, p.LastSelectedDay())

	require.NoError(t, p.SetYear(2000))
	assert.Equal(t, date(29, 2, 2000), p.Date())
	assert.Equal(t, 29, w.Day.Max())

	assert.Equal(t, []event{
		{date(29, 2, 2000), date(28, 2, 2001)},
		{date(28, 2, 2001), date(29, 2, 2000)},
	}, rec.take())
}

func TestSetYear_OutsideFebruaryLeavesDays(t *testing.T) {
	t.Parallel()

	p, w, rec := newTestPicker(t, DefaultConfig())

	require.NoError(t, p.SetYear(2001))
	assert.Equal(t, date(15, 8, 2001), p.Date())
	assert.Equal(t, 31, w.Day.Max())
	assert.Equal(t, []event{{date(15, 8, 2000), date(15, 8, 2001)}}, rec.take())

	// 2004 -> 2008 keeps the leap status: nothing to relocate.
	require.NoError(t, p.SetMonth(2))
	require.NoError(t, p.SetYear(2004))
	require.NoError(t, p.SetDay(29))
	rec.take()
	require.NoError(t, p.SetYear(2008))
	assert.Equal(t, date(29, 2, 2008), p.Date())
	assert.Equal(t, []event{{date(29, 2, 2004), date(29, 2, 2008)}}, rec.take())
}

func TestSetYear_RejectsOutOfBounds(t *testing.T) {
	t.Parallel()

	p, _, rec := newTestPicker(t, DefaultConfig())
	assert.ErrorIs(t, p.SetYear(1899), ErrInvalidArgument)
	assert.ErrorIs(t, p.SetYear(2051), ErrInvalidArgument)
	assert.ErrorIs(t, p.SetMonth(0), ErrInvalidArgument)
	assert.ErrorIs(t, p.SetMonth(13), ErrInvalidArgument)
	assert.Equal(t, date(15, 8, 2000), p.Date())
	assert.Empty(t, rec.take())
}

func TestSetMinMaxYears(t *testing.T) {
	t.Parallel()

	t.Run("year outside new bounds moves to min", func(t *testing.T) {
		t.Parallel()
		p, w, rec := newTestPicker(t, DefaultConfig())

		require.NoError(t, p.SetMinMaxYears(1970, 1990))
		assert.Equal(t, date(15, 8, 1970), p.Date())
		assert.Equal(t, 1970, w.Year.Value())
		assert.Equal(t, 1990, w.Year.Max())
		assert.Equal(t, []event{{date(15, 8, 2000), date(15, 8, 1970)}}, rec.take())
	})

	t.Run("year inside new bounds is kept and the list rebuilt", func(t *testing.T) {
		t.Parallel()
		p, w, rec := newTestPicker(t, DefaultConfig())

		require.NoError(t, p.SetMinMaxYears(1990, 2010))
		assert.Equal(t, 2000, p.Year())
		assert.Equal(t, 1990, w.Year.Min())
		assert.Equal(t, 10, w.Year.Current())
		assert.Empty(t, rec.take())

		// The rebuilt list still drives year changes.
		require.NoError(t, w.Year.Scroll(1))
		assert.Equal(t, 2001, p.Year())
		assert.Equal(t, []event{{date(15, 8, 2000), date(15, 8, 2001)}}, rec.take())
	})

	t.Run("forced year triggers the leap relocation", func(t *testing.T) {
		t.Parallel()
		p, _, rec := newTestPicker(t, DefaultConfig())
		require.NoError(t, p.SetMonth(2))
		require.NoError(t, p.SetDay(29))
		rec.take()

		require.NoError(t, p.SetMinMaxYears(2001, 2001))
		assert.Equal(t, date(28, 2, 2001), p.Date())
		assert.Equal(t, []event{{date(29, 2, 2000), date(28, 2, 2001)}}, rec.take())
	})

	t.Run("invalid bounds leave everything unchanged", func(t *testing.T) {
		t.Parallel()
		p, w, rec := newTestPicker(t, DefaultConfig())

		assert.ErrorIs(t, p.SetMinMaxYears(-1, 2000), ErrInvalidArgument)
		assert.ErrorIs(t, p.SetMinMaxYears(1900, -5), ErrInvalidArgument)
		assert.ErrorIs(t, p.SetMinMaxYears(2001, 2000), ErrInvalidArgument)
		assert.Equal(t, 1900, p.MinYear())
		assert.Equal(t, 2050, p.MaxYear())
		assert.Equal(t, 1900, w.Year.Min())
		assert.Empty(t, rec.take())
	})

	t.Run("same bounds are a no-op", func(t *testing.T) {
		t.Parallel()
		p, w, rec := newTestPicker(t, DefaultConfig())
		g := w.Year.Generation()
		require.NoError(t, p.SetMinMaxYears(1900, 2050))
		assert.Equal(t, g, w.Year.Generation())
		assert.Empty(t, rec.take())
	})
}

func TestWheelScroll_IsTheUserPath(t *testing.T) {
	t.Parallel()

	p, w, rec := newTestPicker(t, DefaultConfig())

	// A user drag on the day wheel is an explicit pick.
	require.NoError(t, w.Day.SetCurrent(30))
	assert.Equal(t, 31, p.LastSelectedDay())

	// Relocation never overwrites the remembered day.
	require.NoError(t, w.Month.Scroll(1))
	assert.Equal(t, date(30, 9, 2000), p.Date())
	assert.Equal(t, 31, p.LastSelectedDay())

	require.NoError(t, w.Month.Scroll(1))
	assert.Equal(t, date(31, 10, 2000), p.Date())

	assert.Equal(t, []event{
		{date(15, 8, 2000), date(31, 8, 2000)},
		{date(31, 8, 2000), date(30, 9, 2000)},
		{date(30, 9, 2000), date(31, 10, 2000)},
	}, rec.take())
}

func TestSetVisibleItems_RequestsLayout(t *testing.T) {
	t.Parallel()

	p, w, _ := newTestPicker(t, DefaultConfig())
	host := &fakeHost{}
	p.SetHost(host)

	require.NoError(t, p.SetVisibleItems(5))
	assert.Equal(t, 5, p.VisibleItems())
	assert.Equal(t, 5, w.Month.VisibleCount())
	assert.Equal(t, 5, w.Year.VisibleCount())
	assert.Equal(t, 1, host.layouts)

	assert.ErrorIs(t, p.SetVisibleItems(0), ErrInvalidArgument)
	assert.Equal(t, 5, p.VisibleItems())
	assert.Equal(t, 1, host.layouts)
}

type fakeHost struct{ layouts int }

func (h *fakeHost) RequestLayout() { h.layouts++ }

func TestSetLocale(t *testing.T) {
	t.Parallel()

	p, w, rec := newTestPicker(t, DefaultConfig())
	g := w.Month.Generation()

	require.NoError(t, p.SetLocale(monthname.RuRU))
	assert.Equal(t, monthname.RuRU, p.Locale())
	assert.Equal(t, g+1, w.Month.Generation())
	name, err := p.MonthName(8)
	require.NoError(t, err)
	assert.Equal(t, "август", name)

	err = p.SetLocale("de-DE")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, err, monthname.ErrUnsupportedLocale)
	assert.Equal(t, monthname.RuRU, p.Locale())
	assert.Equal(t, g+1, w.Month.Generation())
	assert.Empty(t, rec.take())
}

func TestRelocateDay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                 string
		prev, next, cur, last int
		want                 int
		ok                   bool
	}{
		{"shrink past end", 31, 30, 31, 31, 30, true},
		{"shrink within range", 31, 28, 15, 15, 0, false},
		{"grow restores remembered", 30, 31, 30, 31, 31, true},
		{"grow caps remembered", 28, 30, 28, 31, 30, true},
		{"grow already on remembered", 28, 31, 20, 20, 0, false},
		{"unchanged", 31, 31, 31, 5, 0, false},
	}
	for _, tt := range tests {
		got, ok := relocateDay(tt.prev, tt.next, tt.cur, tt.last)
		assert.Equal(t, tt.ok, ok, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}
}

func TestSuppressionReleasedAfterPanic(t *testing.T) {
	t.Parallel()

	p, w, rec := newTestPicker(t, DefaultConfig())
	require.NoError(t, p.SetDay(31))
	rec.take()

	explode := true
	w.Day.OnChange(func(_, _ int) error {
		if explode {
			panic("renderer failed")
		}
		return nil
	})

	func() {
		defer func() { _ = recover() }()
		// Grow-back relocation writes to the day wheel while it is muted.
		_ = p.SetMonth(9)
		_ = p.SetMonth(10)
	}()

	explode = false
	require.NoError(t, w.Day.SetCurrent(4))
	assert.Equal(t, 5, p.LastSelectedDay())
	events := rec.take()
	require.NotEmpty(t, events)
	assert.Equal(t, 5, events[len(events)-1].new.Day)
}

func TestEachMutationFiresExactlyOnce(t *testing.T) {
	t.Parallel()

	p, _, rec := newTestPicker(t, DefaultConfig())
	require.NoError(t, p.SetDay(31))
	rec.take()

	// Month change that also forces a day change reports both deltas at once.
	require.NoError(t, p.SetMonth(6))
	assert.Equal(t, []event{{date(31, 8, 2000), date(30, 6, 2000)}}, rec.take())
}
