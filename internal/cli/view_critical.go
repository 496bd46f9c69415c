package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aiguide/internal/cli/formatter"
	"github.com/alexanderramin/aiguide/internal/prompt"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// criticalView lists the critical-thinking prompts. Opening one shows it in
// full; esc goes back to the list through the session.
type criticalView struct {
	state   *SharedState
	prompts []prompt.ThinkingPrompt
	cursor  int
}

func newCriticalView(state *SharedState) *criticalView {
	return &criticalView{state: state, prompts: prompt.CriticalThinking()}
}

func (v *criticalView) ID() ViewID    { return ViewCritical }
func (v *criticalView) Title() string { return "Critical Thinking" }

func (v *criticalView) ShortHelp() []key.Binding {
	if _, open := v.state.Session.ActivePrompt(); open {
		return []key.Binding{
			key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy prompt")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	}
}

func (v *criticalView) Init() tea.Cmd { return nil }

func (v *criticalView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if i, open := v.state.Session.ActivePrompt(); open {
		if keyMsg.String() == "c" {
			return v, copyCmd(v.state, v.prompts[i].Prompt, "critical_prompt")
		}
		return v, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.prompts)-1 {
			v.cursor++
		}
	case "enter":
		if err := v.state.Session.OpenCriticalPrompt(v.cursor); err != nil {
			return v, flash(err.Error())
		}
		return v, sessionChanged()
	}
	return v, nil
}

func (v *criticalView) View() string {
	if i, open := v.state.Session.ActivePrompt(); open {
		return "\n" + formatter.Wrap(formatter.FormatThinkingPrompt(v.prompts[i]), v.state.ContentWidth())
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.Header("Critical Thinking Prompts") + "\n")
	b.WriteString(formatter.Dim("Prompts that make AI challenge your reasoning instead of replacing it.") + "\n\n")

	// Keep the cursor visible when the list is taller than the screen.
	start, end := listWindow(len(v.prompts), v.cursor, v.state.ContentHeight()-4)
	for i := start; i < end; i++ {
		cursor := "  "
		titleStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			titleStyle = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, formatter.StyleHeader.Render(fmt.Sprintf("%2d.", i+1)), titleStyle.Render(v.prompts[i].Title)))
	}
	if i := v.cursor; i < len(v.prompts) {
		b.WriteString("\n" + formatter.Wrap(formatter.Dim(v.prompts[i].When), v.state.ContentWidth()) + "\n")
	}
	return b.String()
}

// listWindow returns the [start, end) range of n rows to render so that
// cursor stays inside a window of height rows. A height below 1 shows all.
func listWindow(n, cursor, height int) (start, end int) {
	if height < 1 || n <= height {
		return 0, n
	}
	start = cursor - height/2
	start = max(start, 0)
	start = min(start, n-height)
	return start, start + height
}
