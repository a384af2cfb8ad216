package cli

import (
	"fmt"
	"strings"

	"datewheel-cli/internal/docs"
	"datewheel-cli/internal/tui"

	"github.com/spf13/cobra"
)

type docTopic struct {
	Topic string `json:"topic"`
	Title string `json:"title"`
}

type docTopics struct {
	Topics []docTopic `json:"topics"`
}

func (d docTopics) Text() string {
	lines := make([]string, 0, len(d.Topics))
	for _, t := range d.Topics {
		lines = append(lines, fmt.Sprintf("%-8s %s", t.Topic, t.Title))
	}
	return strings.Join(lines, "\n")
}

func newDocsCmd(app *App) *cobra.Command {
	var raw bool
	var render bool
	var width int

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show the built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				out := docTopics{Topics: []docTopic{}}
				for _, t := range docs.Topics() {
					out.Topics = append(out.Topics, docTopic{Topic: t, Title: docs.Title(t)})
				}
				return writeOut(cmd, app, map[string]any{"data": out})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `datewheel docs` to list topics)", topic))
			}

			switch {
			case raw:
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			case render:
				_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.RenderMarkdown(body, width))
				return err
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{"topic": topic, "markdown": body}})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no envelope)")
	cmd.Flags().BoolVar(&render, "render", false, "Render markdown for the terminal")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for --render")
	cmd.MarkFlagsMutuallyExclusive("raw", "render")

	return cmd
}
