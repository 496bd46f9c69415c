package cli

import (
	"github.com/alexanderramin/aiguide/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const declarationHint = "Copy this text and paste it at the top of your assignment or in your appendix."

// declarationView shows the compiled declaration over the log view.
type declarationView struct {
	state *SharedState
	text  string
	pane  scrollPane
}

func newDeclarationView(state *SharedState) *declarationView {
	v := &declarationView{
		state: state,
		text:  state.Session.Declaration(state.App.now()),
		pane:  newScrollPane(state, 3),
	}
	v.pane.setContent(v.text)
	return v
}

func (v *declarationView) ID() ViewID    { return ViewDeclaration }
func (v *declarationView) Title() string { return "Declaration" }

func (v *declarationView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy declaration")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "back to log")),
	}
}

func (v *declarationView) Init() tea.Cmd { return nil }

func (v *declarationView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "c":
			return v, copyCmd(v.state, v.text, "declaration")
		case "enter":
			return v, popView()
		}
	}
	return v, v.pane.update(v.state, msg)
}

func (v *declarationView) View() string {
	return "\n" + formatter.Dim(declarationHint) + "\n\n" + v.pane.view()
}
