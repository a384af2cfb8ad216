package datewheel

import (
	"errors"
	"testing"

	"datewheel-cli/internal/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenerRegistryContract(t *testing.T) {
	t.Parallel()

	p, _, err := NewWithWheels(DefaultConfig())
	require.NoError(t, err)

	calls := 0
	l := NewListener(func(*Picker, calendar.Date, calendar.Date) error { calls++; return nil })

	assert.ErrorIs(t, p.AddListener(nil), ErrInvalidArgument)
	var typedNil *recorder
	assert.ErrorIs(t, p.AddListener(typedNil), ErrInvalidArgument)
	assert.ErrorIs(t, p.RemoveListener(nil), ErrInvalidArgument)
	assert.ErrorIs(t, p.RemoveListener(l), ErrInvalidState)

	require.NoError(t, p.AddListener(l))
	assert.ErrorIs(t, p.AddListener(l), ErrInvalidState)
	assert.Equal(t, 1, p.listeners.len())

	require.NoError(t, p.SetDay(20))
	assert.Equal(t, 1, calls)

	require.NoError(t, p.RemoveListener(l))
	assert.ErrorIs(t, p.RemoveListener(l), ErrInvalidState)
	require.NoError(t, p.SetDay(21))
	assert.Equal(t, 1, calls)
}

func TestNotify_UsesSnapshot(t *testing.T) {
	t.Parallel()

	p, _, err := NewWithWheels(DefaultConfig())
	require.NoError(t, err)

	var order []string
	var b Listener = NewListener(func(*Picker, calendar.Date, calendar.Date) error {
		order = append(order, "b")
		return nil
	})
	var a Listener
	a = NewListener(func(p *Picker, _, _ calendar.Date) error {
		order = append(order, "a")
		require.NoError(t, p.RemoveListener(a))
		require.NoError(t, p.AddListener(b))
		return nil
	})
	c := NewListener(func(*Picker, calendar.Date, calendar.Date) error {
		order = append(order, "c")
		return nil
	})
	require.NoError(t, p.AddListener(a))
	require.NoError(t, p.AddListener(c))

	require.NoError(t, p.SetDay(1))
	assert.Equal(t, []string{"a", "c"}, order)

	order = nil
	require.NoError(t, p.SetDay(2))
	assert.Equal(t, []string{"c", "b"}, order)
}

func TestNotify_ListenerErrorStopsFanOut(t *testing.T) {
	t.Parallel()

	p, _, err := NewWithWheels(DefaultConfig())
	require.NoError(t, err)

	boom := errors.New("boom")
	later := 0
	require.NoError(t, p.AddListener(NewListener(func(*Picker, calendar.Date, calendar.Date) error { return boom })))
	require.NoError(t, p.AddListener(NewListener(func(*Picker, calendar.Date, calendar.Date) error { later++; return nil })))

	assert.ErrorIs(t, p.SetMonth(9), boom)
	assert.Equal(t, 0, later)
	// The change itself is committed.
	assert.Equal(t, 9, p.Month())
}

func TestListener_ReentrantMutation(t *testing.T) {
	t.Parallel()

	p, _, err := NewWithWheels(DefaultConfig())
	require.NoError(t, err)

	rec := &recorder{}
	snap := NewListener(func(p *Picker, old, new calendar.Date) error {
		if new.Month == 2 && new.Day != 1 {
			return p.SetDay(1)
		}
		return nil
	})
	require.NoError(t, p.AddListener(snap))
	require.NoError(t, p.AddListener(rec))

	require.NoError(t, p.SetMonth(2))
	assert.Equal(t, date(1, 2, 2000), p.Date())
	assert.Equal(t, 1, p.LastSelectedDay())
	assert.Equal(t, []event{
		{date(15, 2, 2000), date(1, 2, 2000)},
		{date(15, 8, 2000), date(15, 2, 2000)},
	}, rec.take())
}

func TestNewListener_NilFunc(t *testing.T) {
	t.Parallel()

	assert.Nil(t, NewListener(nil))
}
