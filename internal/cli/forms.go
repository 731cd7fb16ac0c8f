package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dmfalcao/classlog/internal/cli/formatter"
	"github.com/dmfalcao/classlog/internal/domain"
	"github.com/dmfalcao/classlog/internal/service"
)

// classlogHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func classlogHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validateTime(s string) error {
	if s == "" {
		return fmt.Errorf("time is required")
	}
	_, err := domain.ParseTimeOfDay(s)
	return err
}

// openSessionForm collects the open-session fields interactively.
func openSessionForm(in *service.OpenSessionInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Activity ID").
				Placeholder("MATH101").
				Value(&in.ActivityID).
				Validate(validateRequired("activity")),
			huh.NewInput().
				Title("Owner Email").
				Placeholder("student@example.com").
				Value(&in.OwnerEmail).
				Validate(validateRequired("owner email")),
			huh.NewInput().
				Title("Subject").
				Value(&in.Subject),
			huh.NewInput().
				Title("Weekday").
				Placeholder("Mon").
				Value(&in.Weekday),
			huh.NewInput().
				Title("Start Time (HH:MM)").
				Placeholder("08:00").
				Value(&in.StartTime).
				Validate(validateTime),
		),
	).WithTheme(classlogHuhTheme()).WithShowHelp(false)
}
