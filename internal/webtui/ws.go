package webtui

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"datewheel-cli/internal/calendar"
	"datewheel-cli/internal/datewheel"
	"datewheel-cli/internal/monthname"
	"datewheel-cli/internal/wheel"

	"github.com/gorilla/websocket"
)

// clientOp is one request frame.
type clientOp struct {
	Op     string `json:"op"`
	Wheel  string `json:"wheel,omitempty"`
	Value  int    `json:"value,omitempty"`
	Min    int    `json:"min,omitempty"`
	Max    int    `json:"max,omitempty"`
	Locale string `json:"locale,omitempty"`
}

type stateFrame struct {
	Type            string           `json:"type"`
	Date            calendar.Date    `json:"date"`
	MonthName       string           `json:"monthName"`
	DaysInMonth     int              `json:"daysInMonth"`
	MinYear         int              `json:"minYear"`
	MaxYear         int              `json:"maxYear"`
	LastSelectedDay int              `json:"lastSelectedDay"`
	VisibleItems    int              `json:"visibleItems"`
	Locale          monthname.Locale `json:"locale"`
}

type changedFrame struct {
	Type string        `json:"type"`
	Old  calendar.Date `json:"old"`
	New  calendar.Date `json:"new"`
}

type errorFrame struct {
	Type  string `json:"type"`
	Op    string `json:"op,omitempty"`
	Error string `json:"error"`
}

var errUnknownOp = errors.New("unknown op")

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  4 * 1024,
	WriteBufferSize: 4 * 1024,
	CheckOrigin: func(r *http.Request) bool {
		origin := strings.TrimSpace(r.Header.Get("Origin"))
		if origin == "" {
			return true
		}
		// Same-origin only.
		host := strings.TrimSpace(r.Host)
		return strings.Contains(origin, "://"+host)
	},
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	s.log.Printf("[DEBUG] connection attempt from %s to %s", r.RemoteAddr, r.URL.Path)
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Printf("[DEBUG] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	p, wheels, err := datewheel.NewWithWheels(s.cfg.Picker)
	if err != nil {
		_ = conn.WriteJSON(errorFrame{Type: "error", Error: err.Error()})
		return
	}

	// Ops run on this goroutine, so change frames are written inline and
	// always precede the state frame of the op that caused them.
	if err := p.AddListener(datewheel.NewListener(func(_ *datewheel.Picker, old, new calendar.Date) error {
		return conn.WriteJSON(changedFrame{Type: "changed", Old: old, New: new})
	})); err != nil {
		s.log.Printf("[WARNING] listener registration failed: %v", err)
		return
	}

	if err := conn.WriteJSON(snapshot(p)); err != nil {
		return
	}

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Printf("[WARNING] read from %s: %v", r.RemoteAddr, err)
			}
			return
		}

		var op clientOp
		if err := json.Unmarshal(data, &op); err != nil {
			if werr := conn.WriteJSON(errorFrame{Type: "error", Error: "invalid frame: " + err.Error()}); werr != nil {
				return
			}
			continue
		}

		if err := apply(p, wheels, op); err != nil {
			s.log.Printf("[DEBUG] op %q rejected: %v", op.Op, err)
			if werr := conn.WriteJSON(errorFrame{Type: "error", Op: op.Op, Error: err.Error()}); werr != nil {
				return
			}
		}
		if err := conn.WriteJSON(snapshot(p)); err != nil {
			return
		}
	}
}

func apply(p *datewheel.Picker, wheels datewheel.Wheels, op clientOp) error {
	switch op.Op {
	case "setDay":
		return p.SetDay(op.Value)
	case "setMonth":
		return p.SetMonth(op.Value)
	case "setYear":
		return p.SetYear(op.Value)
	case "setBounds":
		return p.SetMinMaxYears(op.Min, op.Max)
	case "setVisible":
		return p.SetVisibleItems(op.Value)
	case "setLocale":
		return p.SetLocale(monthname.Locale(strings.TrimSpace(op.Locale)))
	case "scroll":
		w, err := pickWheel(wheels, op.Wheel)
		if err != nil {
			return err
		}
		return w.Scroll(op.Value)
	default:
		return fmt.Errorf("%w: %q", errUnknownOp, op.Op)
	}
}

func pickWheel(wheels datewheel.Wheels, name string) (*wheel.Wheel, error) {
	switch name {
	case "day":
		return wheels.Day, nil
	case "month":
		return wheels.Month, nil
	case "year":
		return wheels.Year, nil
	default:
		return nil, fmt.Errorf("%w: unknown wheel %q", datewheel.ErrInvalidArgument, name)
	}
}

func snapshot(p *datewheel.Picker) stateFrame {
	d := p.Date()
	name, _ := p.MonthName(d.Month)
	return stateFrame{
		Type:            "state",
		Date:            d,
		MonthName:       name,
		DaysInMonth:     calendar.DaysInMonth(d.Year, d.Month),
		MinYear:         p.MinYear(),
		MaxYear:         p.MaxYear(),
		LastSelectedDay: p.LastSelectedDay(),
		VisibleItems:    p.VisibleItems(),
		Locale:          p.Locale(),
	}
}
