package cli

import (
	"fmt"
	"strings"

	"datewheel-cli/internal/datewheel"
	"datewheel-cli/internal/store"

	"github.com/spf13/cobra"
)

type effectiveConfig struct {
	Path    string           `json:"path"`
	Picker  datewheel.Config `json:"picker"`
	Journal string           `json:"journal,omitempty"`
	Format  string           `json:"format"`
}

func (c effectiveConfig) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "config:   %s\n", c.Path)
	fmt.Fprintf(&b, "date:     %02d.%02d.%04d\n", c.Picker.Day, c.Picker.Month, c.Picker.Year)
	fmt.Fprintf(&b, "years:    %d-%d\n", c.Picker.MinYear, c.Picker.MaxYear)
	fmt.Fprintf(&b, "visible:  %d\n", c.Picker.VisibleItems)
	fmt.Fprintf(&b, "locale:   %s\n", c.Picker.Locale)
	journal := c.Journal
	if journal == "" {
		journal = "(off)"
	}
	fmt.Fprintf(&b, "journal:  %s\n", journal)
	fmt.Fprintf(&b, "format:   %s", c.Format)
	return b.String()
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or save picker defaults (~/.datewheel/config.json)",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration (flags > env > file > defaults)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.pickerConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			path, err := store.ConfigPath()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": effectiveConfig{
				Path:    path,
				Picker:  cfg,
				Journal: app.Journal,
				Format:  app.Format,
			}})
		},
	}

	saveCmd := &cobra.Command{
		Use:   "save",
		Short: "Store the given flags as defaults in the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fo, err := app.flagConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			file := *app.file
			prev := datewheel.Overrides{}
			if file.Picker != nil {
				prev = *file.Picker
			}
			merged := fo.Over(prev)
			file.Picker = &merged
			if f := cmd.Flags().Lookup("journal"); f != nil && f.Changed {
				file.Journal = app.Journal
			}
			if f := cmd.Flags().Lookup("format"); f != nil && f.Changed {
				file.Format = app.Format
			}
			if err := store.SaveConfig(&file); err != nil {
				return writeErr(cmd, err)
			}
			path, err := store.ConfigPath()
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"saved": path, "picker": merged.Apply(datewheel.DefaultConfig())}})
		},
	}

	cmd.AddCommand(showCmd, saveCmd)
	return cmd
}
