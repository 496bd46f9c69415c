package cli

import (
	"strings"

	"github.com/alexanderramin/aiguide/internal/cli/formatter"
	"github.com/alexanderramin/aiguide/internal/domain"
	"github.com/alexanderramin/aiguide/internal/policy"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// impactView contrasts learning with AI against replacing learning with it.
type impactView struct {
	state *SharedState
	pane  scrollPane
}

func newImpactView(state *SharedState) *impactView {
	v := &impactView{state: state, pane: newScrollPane(state, 1)}
	v.pane.setContent(renderImpact())
	return v
}

func renderImpact() string {
	var b strings.Builder
	b.WriteString(formatter.FormatImpact(policy.ImpactScenarios(), policy.ImpactClosing))
	b.WriteString("\n")
	b.WriteString(formatter.StyleBlue.Render("[a] Am I allowed to use AI?") + "  ")
	b.WriteString(formatter.StyleBlue.Render("[t] How to use AI critically") + "\n")
	return b.String()
}

func (v *impactView) ID() ViewID    { return ViewImpact }
func (v *impactView) Title() string { return "Understand Impact" }

func (v *impactView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "check rules")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "critical thinking")),
	}
}

func (v *impactView) Init() tea.Cmd { return nil }

func (v *impactView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "a":
			v.state.Session.Enter(domain.ModeCompliance)
			return v, sessionChanged()
		case "t":
			v.state.Session.Enter(domain.ModeCriticalThinking)
			return v, sessionChanged()
		}
	}
	return v, v.pane.update(v.state, msg)
}

func (v *impactView) View() string {
	return "\n" + v.pane.view()
}
