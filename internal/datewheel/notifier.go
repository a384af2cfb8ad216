package datewheel

import (
	"reflect"

	"datewheel-cli/internal/calendar"
)

// Listener observes date changes. Handles are compared by identity, so
// implementations must be comparable (pointers are the usual choice).
type Listener interface {
	DateChanged(p *Picker, old, new calendar.Date) error
}

type funcListener struct {
	fn func(p *Picker, old, new calendar.Date) error
}

func (f *funcListener) DateChanged(p *Picker, old, new calendar.Date) error {
	return f.fn(p, old, new)
}

// NewListener wraps fn in a distinct handle that can later be removed.
func NewListener(fn func(p *Picker, old, new calendar.Date) error) Listener {
	if fn == nil {
		return nil
	}
	return &funcListener{fn: fn}
}

type notifier struct {
	listeners []Listener
}

func isNilListener(l Listener) bool {
	if l == nil {
		return true
	}
	v := reflect.ValueOf(l)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface, reflect.Slice:
		return v.IsNil()
	}
	return false
}

func (n *notifier) index(l Listener) int {
	for i, x := range n.listeners {
		if x == l {
			return i
		}
	}
	return -1
}

func (n *notifier) add(l Listener) error {
	if isNilListener(l) {
		return errArg("listener", nil, "listener is nil")
	}
	if !reflect.TypeOf(l).Comparable() {
		return errArg("listener", reflect.TypeOf(l), "listener handles must be comparable")
	}
	if n.index(l) >= 0 {
		return &stateError{msg: "listener already registered"}
	}
	n.listeners = append(n.listeners, l)
	return nil
}

func (n *notifier) remove(l Listener) error {
	if isNilListener(l) {
		return errArg("listener", nil, "listener is nil")
	}
	if !reflect.TypeOf(l).Comparable() {
		return &stateError{msg: "listener not registered"}
	}
	i := n.index(l)
	if i < 0 {
		return &stateError{msg: "listener not registered"}
	}
	n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
	return nil
}

func (n *notifier) len() int { return len(n.listeners) }

// notify calls a snapshot of the registry in registration order. The first
// listener error stops the fan-out and is returned.
func (n *notifier) notify(p *Picker, old, new calendar.Date) error {
	if len(n.listeners) == 0 {
		return nil
	}
	snapshot := append([]Listener(nil), n.listeners...)
	for _, l := range snapshot {
		if err := l.DateChanged(p, old, new); err != nil {
			return err
		}
	}
	return nil
}
