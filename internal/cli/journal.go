package cli

import (
	"fmt"
	"strings"
	"time"

	"datewheel-cli/internal/store"

	"github.com/spf13/cobra"
)

type journalView struct {
	Path    string               `json:"path"`
	Entries []store.JournalEntry `json:"entries"`
}

func (v journalView) Text() string {
	if len(v.Entries) == 0 {
		return "no changes recorded in " + v.Path
	}
	lines := make([]string, 0, len(v.Entries))
	for _, e := range v.Entries {
		lines = append(lines, fmt.Sprintf("%4d  %s -> %s  %s",
			e.Seq, e.Old.Dotted(), e.New.Dotted(), e.RecordedAt.Format(time.RFC3339)))
	}
	return strings.Join(lines, "\n")
}

func newJournalCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect the change journal (--journal)",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded changes (oldest-first)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := journalPath(app)
			if err != nil {
				return writeErr(cmd, err)
			}
			j, err := store.OpenJournal(cmd.Context(), path)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer j.Close()

			entries, err := j.List(cmd.Context(), limit)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": journalView{Path: path, Entries: entries}})
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 200, "Max entries to return (0 = all)")

	cmd.AddCommand(listCmd)
	return cmd
}
