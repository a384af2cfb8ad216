package datewheel

import (
	"log"

	"datewheel-cli/internal/calendar"
)

// NewLogListener logs every change as "DD.MM.YYYY -> DD.MM.YYYY".
func NewLogListener(l *log.Logger) Listener {
	if l == nil {
		l = log.Default()
	}
	return NewListener(func(_ *Picker, old, new calendar.Date) error {
		l.Printf("Selected date changed ! %s -> %s", old.Dotted(), new.Dotted())
		return nil
	})
}
