package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aiguide/internal/auditlog"
	"github.com/alexanderramin/aiguide/internal/cli/formatter"
	"github.com/alexanderramin/aiguide/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// logContexts is the order "t" cycles through.
var logContexts = []domain.LogContext{
	domain.LogGeneric,
	domain.LogAssignment,
	domain.LogResearch,
	domain.LogStudy,
}

// logView shows the audit log timeline with a cursor on one entry.
type logView struct {
	state  *SharedState
	cursor int
	pane   scrollPane
}

func newLogView(state *SharedState) *logView {
	v := &logView{state: state, pane: newScrollPane(state, 1)}
	v.refresh()
	return v
}

func (v *logView) ID() ViewID    { return ViewLog }
func (v *logView) Title() string { return auditlog.Title(v.state.Session.LogContext()) }

func (v *logView) ShortHelp() []key.Binding {
	hints := []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add step")),
	}
	if len(v.state.Session.LogEntries()) > 0 {
		hints = append(hints,
			key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
			key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "declaration")),
		)
	}
	hints = append(hints, key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "log type")))
	return hints
}

func (v *logView) Init() tea.Cmd { return nil }

func (v *logView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionChangedMsg:
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, v.pane.update(v.state, msg)
}

func (v *logView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entries := v.state.Session.LogEntries()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
			v.refresh()
		}
	case "down", "j":
		if v.cursor < len(entries)-1 {
			v.cursor++
			v.refresh()
		}
	case "a":
		return v, pushView(newLogEntryView(v.state))
	case "d":
		if v.cursor < len(entries) {
			v.state.Session.DeleteLogEntry(entries[v.cursor].ID)
			return v, tea.Batch(sessionChanged(), flash("Entry removed"))
		}
	case "g":
		if len(entries) > 0 {
			return v, pushView(newDeclarationView(v.state))
		}
	case "t":
		if err := v.state.Session.SetLogContext(nextLogContext(v.state.Session.LogContext())); err != nil {
			return v, flash(err.Error())
		}
		return v, sessionChanged()
	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		return v, v.pane.update(v.state, msg)
	}
	return v, nil
}

func nextLogContext(ctx domain.LogContext) domain.LogContext {
	for i, c := range logContexts {
		if c == ctx {
			return logContexts[(i+1)%len(logContexts)]
		}
	}
	return domain.LogGeneric
}

// refresh re-renders the timeline and scrolls the selected entry into view.
func (v *logView) refresh() {
	s := v.state.Session
	entries := s.LogEntries()
	if v.cursor >= len(entries) {
		v.cursor = max(len(entries)-1, 0)
	}

	var b strings.Builder
	b.WriteString(formatter.FormatLogHeader(s.LogContext()))
	b.WriteString(formatter.Dim(auditlog.Intro) + "\n\n")

	if len(entries) == 0 {
		b.WriteString(formatter.Bold("Start your Log") + "\n")
		b.WriteString(formatter.Dim("Press a to record the first step of your work with AI.") + "\n")
		v.pane.setContent(b.String())
		return
	}

	selectedLine := 0
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		block := formatter.FormatLogEntry(i+1, e)
		if i == v.cursor {
			selectedLine = strings.Count(b.String(), "\n")
			block = formatter.StyleGreen.Render("▸") + block[1:]
		}
		b.WriteString(block)
	}
	b.WriteString("\n" + formatter.StyleBlue.Render(fmt.Sprintf("[g] Generate declaration (%d steps)", len(entries))) + "\n")

	v.pane.setContent(b.String())
	if h := v.pane.vp.Height; h > 0 {
		if selectedLine < v.pane.vp.YOffset || selectedLine >= v.pane.vp.YOffset+h {
			v.pane.vp.SetYOffset(selectedLine)
		}
	}
}

func (v *logView) View() string {
	return "\n" + v.pane.view()
}
