package cli

import (
	"fmt"
	"log"
	"os"
	"os/signal"

	"datewheel-cli/internal/webtui"

	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve pickers over a websocket (one picker per connection)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.pickerConfig()
			if err != nil {
				return writeErr(cmd, err)
			}
			srv, err := webtui.NewServer(webtui.ServerConfig{
				Addr:   addr,
				Picker: cfg,
				Logger: log.New(cmd.ErrOrStderr(), "", log.LstdFlags),
			})
			if err != nil {
				return writeErr(cmd, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			fmt.Fprintf(cmd.ErrOrStderr(), "serving on http://%s (websocket: /ws)\n", srv.Addr())
			if err := srv.ListenAndServe(ctx); err != nil {
				return writeErr(cmd, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", envOr("DATEWHEEL_ADDR", "127.0.0.1:8417"), "Listen address")
	return cmd
}
