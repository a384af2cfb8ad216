package cli

import (
	"fmt"
	"log"
	"os"
	"strings"

	"datewheel-cli/internal/datewheel"
	"datewheel-cli/internal/format"
	"datewheel-cli/internal/monthname"
	"datewheel-cli/internal/store"
	"datewheel-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Day          int
	Month        int
	Year         int
	MinYear      int
	MaxYear      int
	VisibleItems int
	Locale       string

	Journal    string
	LogFile    string
	Verbose    bool
	PrettyJSON bool
	Format     string

	file    *store.GlobalConfig
	changed func(name string) bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "datewheel",
		Short:        "Wheel-style date picker (TUI + scriptable CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Pick a date interactively
  datewheel --day 29 --month 2 --year 2024

  # Check a date (shortcut for: datewheel check 2024-02-29)
  datewheel 2024-02-29

  # Replay picker operations and print the change events
  datewheel simulate day=31 month=9 month=10 --format text
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := store.LoadConfig()
		if err != nil {
			return writeErr(cmd, fmt.Errorf("load config: %w", err))
		}
		app.file = cfg
		app.changed = cmd.Flags().Changed
		if app.Format == "" {
			app.Format = cfg.Format
		}
		if app.Format == "" {
			app.Format = "json"
		}
		if app.Journal == "" {
			app.Journal = cfg.Journal
		}
		return nil
	}

	pf := cmd.PersistentFlags()
	pf.IntVar(&app.Day, "day", 0, "Initial day (1-31; clamped to the month)")
	pf.IntVar(&app.Month, "month", 0, "Initial month (1-12)")
	pf.IntVar(&app.Year, "year", 0, "Initial year")
	pf.IntVar(&app.MinYear, "min-year", 0, "Lowest selectable year")
	pf.IntVar(&app.MaxYear, "max-year", 0, "Highest selectable year")
	pf.IntVar(&app.VisibleItems, "visible", 0, "Rows shown per wheel")
	pf.StringVar(&app.Locale, "locale", envOr("DATEWHEEL_LOCALE", ""), "Month name locale (en-US|ru-RU)")
	pf.StringVar(&app.Journal, "journal", envOr("DATEWHEEL_JOURNAL", ""), "Record changes to this sqlite file ('default' = ~/.datewheel/journal.sqlite)")
	pf.StringVar(&app.LogFile, "log-file", "", "Write TUI debug and change logs to this file")
	pf.BoolVar(&app.Verbose, "verbose", false, "Log every date change to stderr")
	pf.BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	pf.StringVar(&app.Format, "format", envOr("DATEWHEEL_FORMAT", ""), "Output format (json|edn|text)")

	cmd.AddCommand(newCheckCmd(app))
	cmd.AddCommand(newDaysCmd(app))
	cmd.AddCommand(newMonthsCmd(app))
	cmd.AddCommand(newLocalesCmd(app))
	cmd.AddCommand(newSimulateCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newJournalCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newServeCmd(app))

	return cmd
}

// flagConfig holds only what was given on the command line or via env. An
// explicit 0 (for example --min-year 0) is kept.
func (app *App) flagConfig() (datewheel.Overrides, error) {
	var o datewheel.Overrides
	for _, f := range []struct {
		name string
		dst  **int
		val  int
	}{
		{"day", &o.Day, app.Day},
		{"month", &o.Month, app.Month},
		{"year", &o.Year, app.Year},
		{"min-year", &o.MinYear, app.MinYear},
		{"max-year", &o.MaxYear, app.MaxYear},
		{"visible", &o.VisibleItems, app.VisibleItems},
	} {
		if app.changed != nil && app.changed(f.name) {
			v := f.val
			*f.dst = &v
		}
	}
	if strings.TrimSpace(app.Locale) != "" {
		l, err := monthname.ParseLocale(app.Locale)
		if err != nil {
			return datewheel.Overrides{}, err
		}
		o.Locale = &l
	}
	return o, nil
}

// pickerConfig resolves flags > env > config file > defaults.
func (app *App) pickerConfig() (datewheel.Config, error) {
	fo, err := app.flagConfig()
	if err != nil {
		return datewheel.Config{}, err
	}
	cfg := fo.Apply(app.file.PickerConfig())
	if err := cfg.Validate(); err != nil {
		return datewheel.Config{}, err
	}
	return cfg, nil
}

// session is a picker plus whatever listeners the flags asked for.
type session struct {
	picker  *datewheel.Picker
	wheels  datewheel.Wheels
	journal *store.Journal
}

func (s *session) Close() error {
	if s.journal == nil {
		return nil
	}
	return s.journal.Close()
}

func newSession(cmd *cobra.Command, app *App, logger *log.Logger) (*session, error) {
	cfg, err := app.pickerConfig()
	if err != nil {
		return nil, err
	}
	p, wheels, err := datewheel.NewWithWheels(cfg)
	if err != nil {
		return nil, err
	}
	s := &session{picker: p, wheels: wheels}

	if logger != nil {
		if err := p.AddListener(datewheel.NewLogListener(logger)); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(app.Journal) != "" {
		path, err := journalPath(app)
		if err != nil {
			return nil, err
		}
		j, err := store.OpenJournal(cmd.Context(), path)
		if err != nil {
			return nil, err
		}
		if err := p.AddListener(j); err != nil {
			_ = j.Close()
			return nil, err
		}
		s.journal = j
	}
	return s, nil
}

func journalPath(app *App) (string, error) {
	p := strings.TrimSpace(app.Journal)
	if p == "" || p == "default" {
		return store.DefaultJournalPath()
	}
	return p, nil
}

func runTUI(cmd *cobra.Command, app *App) error {
	// bubbletea owns the terminal; change logs only go to --log-file.
	var logger *log.Logger
	if app.LogFile != "" {
		logger = log.Default()
	}
	s, err := newSession(cmd, app, logger)
	if err != nil {
		return writeErr(cmd, err)
	}
	defer s.Close()

	d, err := tui.Run(s.picker, s.wheels, tui.Options{Theme: app.file.TUI, LogFile: app.LogFile})
	if err != nil {
		return writeErr(cmd, err)
	}
	return writeOut(cmd, app, map[string]any{"data": newDateInfo(d, s.picker.Locale(), s.picker.MinYear(), s.picker.MaxYear())})
}

func verboseLogger(cmd *cobra.Command, app *App) *log.Logger {
	if !app.Verbose {
		return nil
	}
	return log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
