package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export all sessions as a spreadsheet workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := app.Reports.BuildReport(context.Background())
			if err != nil {
				return err
			}

			if out == "" {
				out = wb.Filename
			}
			if err := os.WriteFile(out, wb.Bytes, 0644); err != nil {
				return fmt.Errorf("writing workbook: %w", err)
			}

			fmt.Printf("Wrote %s (%d bytes)\n", out, len(wb.Bytes))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output path (defaults to the configured report filename)")

	return cmd
}
