package cli

import (
	"context"
	"fmt"

	"github.com/dmfalcao/classlog/internal/cli/formatter"
	"github.com/dmfalcao/classlog/internal/domain"
	"github.com/dmfalcao/classlog/internal/importer"
	"github.com/spf13/cobra"
)

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
	}

	cmd.AddCommand(
		newUserAddCmd(app),
		newUserListCmd(app),
		newUserImportCmd(app),
	)

	return cmd
}

func newUserAddCmd(app *App) *cobra.Command {
	var email, name, password string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a user account",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := &domain.UserAccount{Email: email, Name: name, Password: password}
			if err := app.Users.Register(context.Background(), u); err != nil {
				return err
			}
			fmt.Printf("Registered %s\n", formatter.Bold(email))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newUserImportCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import accounts and schedules from a roster JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadRosterFile(file)
			if err != nil {
				return err
			}

			if errs := importer.ValidateRoster(schema); len(errs) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "Roster has %d validation error(s):\n", len(errs))
				for _, e := range errs {
					fmt.Fprintf(cmd.ErrOrStderr(), "  - %v\n", e)
				}
				return fmt.Errorf("invalid roster file %s", file)
			}

			n, err := app.Users.ImportRoster(context.Background(), importer.Convert(schema))
			if err != nil {
				return err
			}
			fmt.Printf("Imported %s account(s) from %s\n", formatter.Bold(fmt.Sprintf("%d", n)), file)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "Path to the roster JSON file")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := app.Users.List(context.Background())
			if err != nil {
				return err
			}

			if len(users) == 0 {
				fmt.Println("No users registered.")
				return nil
			}

			headers := []string{"EMAIL", "NAME", "SCHEDULE ENTRIES"}
			rows := make([][]string, 0, len(users))
			for _, u := range users {
				rows = append(rows, []string{
					formatter.Bold(u.Email),
					u.Name,
					fmt.Sprintf("%d", len(u.Schedule)),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	return cmd
}
