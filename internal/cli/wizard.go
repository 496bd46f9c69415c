package cli

import (
	"errors"
	"strings"

	"github.com/alexanderramin/aiguide/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// aiguideHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func aiguideHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// logEntryFields holds the values bound to the log entry form.
type logEntryFields struct {
	prompt     string
	output     string
	refinement string
}

var errPromptRequired = errors.New("paste the prompt you used")

func requirePrompt(s string) error {
	if strings.TrimSpace(s) == "" {
		return errPromptRequired
	}
	return nil
}

// newLogEntryView builds the three-step form for one audit log entry.
func newLogEntryView(state *SharedState) *wizardView {
	f := &logEntryFields{}

	title := "Add Next Step"
	if len(state.Session.LogEntries()) == 0 {
		title = "Start your Log"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("1. What did you ask? (Paste Prompt)").
				Placeholder("e.g. Explain the difference between qualitative and quantitative research methods...").
				Validate(requirePrompt).
				Value(&f.prompt),
			huh.NewText().
				Title("2. What did it give you?").
				Placeholder("e.g. It provided a table with 5 key differences...").
				Value(&f.output),
			huh.NewText().
				Title("3. How did you change/verify it?").
				Placeholder("e.g. I verified the examples using the textbook and rewrote the definitions in my own words.").
				Value(&f.refinement),
		),
	).WithTheme(aiguideHuhTheme()).WithShowHelp(false)

	return newWizardView(state, title, form, func() tea.Cmd {
		return applyLogEntry(state, *f)
	})
}

// applyLogEntry appends the form values to the session log. It runs on the
// update loop when the form completes.
func applyLogEntry(state *SharedState, f logEntryFields) tea.Cmd {
	if _, ok := state.Session.AppendLogEntry(f.prompt, f.output, f.refinement); !ok {
		return flash("Entry not added: " + errPromptRequired.Error())
	}
	return flash("✔ Step added")
}
