package tui

import (
	"fmt"
	"strings"

	"datewheel-cli/internal/calendar"
	"datewheel-cli/internal/datewheel"
	"datewheel-cli/internal/docs"
	"datewheel-cli/internal/monthname"
	"datewheel-cli/internal/wheel"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	pageStep        = 5
	maxVisibleItems = 9
)

type wheelFocus int

const (
	focusDay wheelFocus = iota
	focusMonth
	focusYear
)

// session holds the mutable state shared by every copy of the model. It is
// the picker's host and one of its listeners.
type session struct {
	picker  *datewheel.Picker
	wheels  datewheel.Wheels
	changes int
	layouts int
	last    *dateChange

	metrics columnMetrics
}

type dateChange struct {
	old calendar.Date
	new calendar.Date
}

// columnMetrics caches month labels and the month column width. They are
// rebuilt only after a layout request or a month list invalidation.
type columnMetrics struct {
	valid      bool
	layout     int
	monthGen   int
	monthNames [12]string
	monthWidth int
	builds     int
}

func (s *session) RequestLayout() { s.layouts++ }

func (s *session) measure() *columnMetrics {
	c := &s.metrics
	gen := s.wheels.Month.Generation()
	if c.valid && c.layout == s.layouts && c.monthGen == gen {
		return c
	}
	for month := 1; month <= 12; month++ {
		name, err := s.picker.MonthName(month)
		if err != nil {
			name = fmt.Sprintf("%02d", month)
		}
		c.monthNames[month-1] = name
	}
	c.monthWidth = maxWidth(c.monthNames[:])
	c.valid, c.layout, c.monthGen = true, s.layouts, gen
	c.builds++
	return c
}

func (s *session) DateChanged(_ *datewheel.Picker, old, new calendar.Date) error {
	s.changes++
	s.last = &dateChange{old: old, new: new}
	return nil
}

type pickerModel struct {
	s     *session
	keys  keyMap
	help  help.Model
	focus wheelFocus

	width  int
	height int

	showDocs bool
	flash    string
	quitting bool
}

func newPickerModel(p *datewheel.Picker, wheels datewheel.Wheels) (pickerModel, error) {
	s := &session{picker: p, wheels: wheels}
	p.SetHost(s)
	if err := p.AddListener(s); err != nil {
		return pickerModel{}, err
	}
	return pickerModel{
		s:    s,
		keys: defaultKeyMap(),
		help: help.New(),
	}, nil
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) focused() *wheel.Wheel {
	switch m.focus {
	case focusMonth:
		return m.s.wheels.Month
	case focusYear:
		return m.s.wheels.Year
	default:
		return m.s.wheels.Day
	}
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m pickerModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.flash = ""
	p := m.s.picker

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showDocs = !m.showDocs
		m.help.ShowAll = m.showDocs
	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus + 2) % 3
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % 3
	case key.Matches(msg, m.keys.Up):
		m.setFlash(m.focused().Scroll(-1))
	case key.Matches(msg, m.keys.Down):
		m.setFlash(m.focused().Scroll(1))
	case key.Matches(msg, m.keys.PageUp):
		m.setFlash(m.focused().Scroll(-pageStep))
	case key.Matches(msg, m.keys.PageDown):
		m.setFlash(m.focused().Scroll(pageStep))
	case key.Matches(msg, m.keys.More):
		if n := p.VisibleItems(); n < maxVisibleItems {
			m.setFlash(p.SetVisibleItems(n + 1))
		}
	case key.Matches(msg, m.keys.Fewer):
		if n := p.VisibleItems(); n > 1 {
			m.setFlash(p.SetVisibleItems(n - 1))
		}
	case key.Matches(msg, m.keys.Locale):
		m.setFlash(p.SetLocale(nextLocale(p.Locale())))
	}
	return m, nil
}

func (m *pickerModel) setFlash(err error) {
	if err != nil {
		m.flash = err.Error()
	}
}

func nextLocale(cur monthname.Locale) monthname.Locale {
	all := monthname.Supported()
	for i, l := range all {
		if l == cur {
			return all[(i+1)%len(all)]
		}
	}
	return monthname.Default
}

func (m pickerModel) monthLabel(month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%02d", month)
	}
	return m.s.measure().monthNames[month-1]
}

func (m pickerModel) View() string {
	if m.quitting {
		return ""
	}
	p := m.s.picker

	var b strings.Builder
	b.WriteString(styleTitle().Render("Select a date"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		renderWheel("day", m.s.wheels.Day, func(v int) string { return fmt.Sprintf("%02d", v) }, 2, m.focus == focusDay),
		renderWheel("month", m.s.wheels.Month, func(v int) string { return m.monthLabel(v) }, m.s.measure().monthWidth, m.focus == focusMonth),
		renderWheel("year", m.s.wheels.Year, func(v int) string { return fmt.Sprintf("%04d", v) }, 4, m.focus == focusYear),
	))
	b.WriteString("\n")

	status := fmt.Sprintf("%s  %s %d", p.Date().Dotted(), m.monthLabel(p.Month()), p.Year())
	if c := m.s.last; c != nil {
		status += styleMuted().Render(fmt.Sprintf("   changed %s %s %s", c.old.Dotted(), glyphArrow(), c.new.Dotted()))
	}
	b.WriteString(status)
	b.WriteString("\n")

	if m.flash != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(colorFlashErrorFg).Render(m.flash))
		b.WriteString("\n")
	}

	if m.showDocs {
		if md, ok := docs.Get("keys"); ok {
			width := m.width
			if width <= 0 || width > 80 {
				width = 80
			}
			b.WriteString("\n")
			b.WriteString(RenderMarkdown(md, width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(colorChromeMuted).Render(m.help.View(m.keys)))
	return b.String()
}
