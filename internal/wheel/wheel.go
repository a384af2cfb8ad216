// Package wheel defines the selectable-list contract the date picker drives,
// plus Wheel, an in-memory list of sequential integers used by the TUI and
// websocket hosts.
package wheel

import (
	"errors"
	"fmt"
)

var ErrIndexOutOfRange = errors.New("wheel index out of range")

// ChangeFunc observes a change of the current index (0-based).
// A non-nil error stops the remaining observers and is returned by the
// call that moved the index.
type ChangeFunc func(oldIndex, newIndex int) error

// List picks one of a range of sequential integers.
type List interface {
	// SetRange replaces the selectable values with min..max. It never notifies.
	SetRange(min, max int)
	Current() int
	// SetCurrent moves to index and notifies observers when the index changed.
	SetCurrent(index int) error
	SetVisibleCount(n int)
	VisibleCount() int
	OnChange(fn ChangeFunc)
}

// Wheel is a non-cyclic List. The zero value is not usable; see New.
type Wheel struct {
	min     int
	max     int
	current int
	visible int

	observers  []ChangeFunc
	generation int
}

var _ List = (*Wheel)(nil)

// New returns a wheel over min..max positioned on min, showing 3 rows.
func New(min, max int) *Wheel {
	if max < min {
		max = min
	}
	return &Wheel{min: min, max: max, visible: 3}
}

func (w *Wheel) Min() int { return w.min }
func (w *Wheel) Max() int { return w.max }

// Len is the number of selectable values.
func (w *Wheel) Len() int { return w.max - w.min + 1 }

// Value is the integer under the current index.
func (w *Wheel) Value() int { return w.min + w.current }

// SetRange replaces the range. The current index is kept, clamped to the new
// length, without notifying; callers that care about the clamped position
// reposition explicitly.
func (w *Wheel) SetRange(min, max int) {
	if max < min {
		max = min
	}
	w.min, w.max = min, max
	if w.current >= w.Len() {
		w.current = w.Len() - 1
	}
	w.generation++
}

func (w *Wheel) Current() int { return w.current }

func (w *Wheel) SetCurrent(index int) error {
	if index < 0 || index >= w.Len() {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, w.Len())
	}
	if index == w.current {
		return nil
	}
	old := w.current
	w.current = index

	// Observers may register further observers; they apply from the next change.
	obs := append([]ChangeFunc(nil), w.observers...)
	for _, fn := range obs {
		if err := fn(old, index); err != nil {
			return err
		}
	}
	return nil
}

// Scroll moves by delta rows, stopping at either end like a user drag would.
func (w *Wheel) Scroll(delta int) error {
	next := w.current + delta
	if next < 0 {
		next = 0
	}
	if next >= w.Len() {
		next = w.Len() - 1
	}
	return w.SetCurrent(next)
}

func (w *Wheel) SetVisibleCount(n int) {
	if n < 1 {
		n = 1
	}
	w.visible = n
	w.generation++
}

func (w *Wheel) VisibleCount() int { return w.visible }

func (w *Wheel) OnChange(fn ChangeFunc) {
	if fn == nil {
		return
	}
	w.observers = append(w.observers, fn)
}

// Invalidate marks the rendered labels stale (e.g. after a locale switch).
func (w *Wheel) Invalidate() { w.generation++ }

// Generation increases whenever the rendered form of the wheel may change
// without the index moving.
func (w *Wheel) Generation() int { return w.generation }

// Row is one visible line of a wheel.
type Row struct {
	Value    int
	Blank    bool
	Selected bool
}

// Window returns VisibleCount rows centered on the current index. Rows past
// either end of the range are blank.
func (w *Wheel) Window() []Row {
	n := w.visible
	start := w.current - (n-1)/2
	rows := make([]Row, 0, n)
	for i := start; i < start+n; i++ {
		if i < 0 || i >= w.Len() {
			rows = append(rows, Row{Blank: true})
			continue
		}
		rows = append(rows, Row{Value: w.min + i, Selected: i == w.current})
	}
	return rows
}
