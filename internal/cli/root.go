package cli

import (
	"log/slog"

	"github.com/dmfalcao/classlog/internal/config"
	"github.com/dmfalcao/classlog/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Sessions service.SessionService
	Reports  service.ReportService
	Users    service.UserService

	Config *config.Config
	Logger *slog.Logger

	// IsInteractive reports whether stdin is attached to a terminal;
	// interactive forms are offered only when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "classlog" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "classlog",
		Short: "Attendance session tracker and report exporter",
	}

	root.AddCommand(
		newServeCmd(app),
		newSessionCmd(app),
		newReportCmd(app),
		newUserCmd(app),
	)

	return root
}
