package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aiguide/internal/cli/formatter"
	"github.com/alexanderramin/aiguide/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type homeCard struct {
	title  string
	desc   string
	action string
	mode   domain.Mode
}

var homeCards = []homeCard{
	{
		title:  "Check Rules",
		desc:   "See if AI is permitted for your specific assignment or research.",
		action: "Start Check",
		mode:   domain.ModeCompliance,
	},
	{
		title:  "Create AI Log",
		desc:   "Generate a visual audit trail to prove your work is your own.",
		action: "Open Logbook",
		mode:   domain.ModeLog,
	},
	{
		title:  "Understand Impact",
		desc:   "How using AI well helps you learn, while bad use hurts you.",
		action: "View Scenarios",
		mode:   domain.ModeAdvice,
	},
}

// homeView is the landing screen with one card per area of the guide.
type homeView struct {
	state  *SharedState
	cursor int
}

func newHomeView(state *SharedState) *homeView {
	return &homeView{state: state}
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "jump")),
	}
}

func (v *homeView) Init() tea.Cmd { return nil }

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(homeCards)-1 {
			v.cursor++
		}
	case "enter":
		return v, v.open(v.cursor)
	case "1", "2", "3":
		return v, v.open(int(keyMsg.String()[0] - '1'))
	}
	return v, nil
}

func (v *homeView) open(i int) tea.Cmd {
	v.cursor = i
	v.state.Session.Enter(homeCards[i].mode)
	return sessionChanged()
}

func (v *homeView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(formatter.Header("Student AI Guide") + "\n")
	b.WriteString(formatter.Dim("Use AI to learn, not to replace your learning.") + "\n\n")

	for i, c := range homeCards {
		cursor := "  "
		titleStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			titleStyle = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, formatter.StyleHeader.Render(fmt.Sprintf("%d.", i+1)), titleStyle.Render(c.title)))
		b.WriteString("     " + formatter.Dim(c.desc) + "\n")
		b.WriteString("     " + formatter.StyleBlue.Render(c.action+" →") + "\n\n")
	}
	return b.String()
}
