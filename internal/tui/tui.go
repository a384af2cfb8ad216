package tui

import (
	"os"

	"datewheel-cli/internal/calendar"
	"datewheel-cli/internal/datewheel"
	"datewheel-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

type Options struct {
	// Theme carries the optional "tui" section of config.json.
	Theme *store.TUIConfig
	// LogFile receives bubbletea debug output when set.
	LogFile string
}

// Run shows the picker full-screen and returns the date selected on exit.
func Run(p *datewheel.Picker, wheels datewheel.Wheels, opts Options) (calendar.Date, error) {
	applyThemePreference()
	applyColorProfilePreference()
	applyColorOverrides(opts.Theme)
	glyphCfg := ""
	if opts.Theme != nil {
		glyphCfg = opts.Theme.Glyphs
	}
	applyGlyphPreference(os.Getenv("DATEWHEEL_TUI_GLYPHS"), glyphCfg)

	if opts.LogFile != "" {
		f, err := tea.LogToFile(opts.LogFile, "datewheel")
		if err != nil {
			return calendar.Date{}, err
		}
		defer f.Close()
	}

	m, err := newPickerModel(p, wheels)
	if err != nil {
		return calendar.Date{}, err
	}
	defer func() { _ = p.RemoveListener(m.s) }()

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return calendar.Date{}, err
	}
	return p.Date(), nil
}
