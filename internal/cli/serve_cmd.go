package cli

import (
	"net/http"

	"github.com/dmfalcao/classlog/internal/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = app.Config.Server.Addr
			}

			srv := httpapi.NewServer(app.Sessions, app.Reports, app.Users, app.Logger)
			app.Logger.Info("listening", "addr", addr)
			return http.ListenAndServe(addr, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to server.addr from config)")

	return cmd
}
