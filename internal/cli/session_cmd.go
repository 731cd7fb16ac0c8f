package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmfalcao/classlog/internal/cli/formatter"
	"github.com/dmfalcao/classlog/internal/domain"
	"github.com/dmfalcao/classlog/internal/service"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Open, close and list attendance sessions",
	}

	cmd.AddCommand(
		newSessionOpenCmd(app),
		newSessionCloseCmd(app),
		newSessionListCmd(app),
	)

	return cmd
}

func newSessionOpenCmd(app *App) *cobra.Command {
	var in service.OpenSessionInput

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a session for an activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if in.Date == "" {
				in.Date = domain.FormatCalendarDate(time.Now())
			}
			// Prompt for the remaining fields when running on a terminal
			// and the required flags were omitted.
			if in.ActivityID == "" && app.IsInteractive != nil && app.IsInteractive() {
				if err := openSessionForm(&in).Run(); err != nil {
					return err
				}
			}

			sess, err := app.Sessions.Open(ctx, in)
			if err != nil {
				return err
			}

			fmt.Printf("Opened %s at %s (%s)\n",
				formatter.Bold(sess.Key),
				sess.StartTime,
				formatter.StatusIndicator(sess.Status),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.ActivityID, "activity", "", "Activity ID")
	cmd.Flags().StringVar(&in.OwnerEmail, "owner", "", "Owner email")
	cmd.Flags().StringVar(&in.Subject, "subject", "", "Subject name")
	cmd.Flags().StringVar(&in.Weekday, "weekday", "", "Weekday label")
	cmd.Flags().StringVar(&in.Date, "date", "", "Session date (DD/MM/YYYY, defaults to today)")
	cmd.Flags().StringVar(&in.StartTime, "start", "", "Start time (HH:MM)")

	return cmd
}

func newSessionCloseCmd(app *App) *cobra.Command {
	var in service.CloseSessionInput

	cmd := &cobra.Command{
		Use:   "close",
		Short: "Close the open session for an activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if in.Date == "" {
				in.Date = domain.FormatCalendarDate(time.Now())
			}
			if in.Status == "" {
				in.Status = string(domain.SessionClosed)
			}

			sess, err := app.Sessions.Close(context.Background(), in)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatClosedSession(sess))
			return nil
		},
	}

	cmd.Flags().StringVar(&in.ActivityID, "activity", "", "Activity ID")
	cmd.Flags().StringVar(&in.OwnerEmail, "owner", "", "Owner email")
	cmd.Flags().StringVar(&in.EndTime, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&in.Date, "date", "", "Close date (DD/MM/YYYY, defaults to today)")
	cmd.Flags().StringVar(&in.Status, "status", "", "Closing status label")
	_ = cmd.MarkFlagRequired("activity")
	_ = cmd.MarkFlagRequired("owner")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List open sessions for an owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.ListOpen(context.Background(), owner)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatOpenSessions(owner, sessions))
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Owner email")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}
