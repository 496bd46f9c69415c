package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aiguide/internal/cli/formatter"
	"github.com/alexanderramin/aiguide/internal/domain"
	"github.com/alexanderramin/aiguide/internal/wizard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// complianceView walks the three compliance questions and shows the verdict.
// The step is always read from the session. seenStep only records the step
// the cursor belongs to, so the cursor resets when the session moves on.
type complianceView struct {
	state      *SharedState
	cursor     int
	seenStep   domain.Step
	showPrompt bool
	result     scrollPane
}

func newComplianceView(state *SharedState) *complianceView {
	v := &complianceView{
		state:    state,
		seenStep: state.Session.Step(),
		result:   newScrollPane(state, 3),
	}
	v.refresh()
	return v
}

func (v *complianceView) ID() ViewID    { return ViewCompliance }
func (v *complianceView) Title() string { return "Check Rules" }

func (v *complianceView) ShortHelp() []key.Binding {
	if v.state.Session.Step() != domain.StepResult {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
			key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "quick pick")),
		}
	}
	hints := []key.Binding{
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "safe prompt")),
	}
	if v.showPrompt {
		hints = append(hints, key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy prompt")))
	}
	if verdict, err := v.state.Session.Verdict(); err == nil && verdict.ShowsChecklist {
		hints = append(hints, key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "create audit log")))
	}
	return hints
}

func (v *complianceView) Init() tea.Cmd { return nil }

// refresh resets per-step state after the session moved to another step.
func (v *complianceView) refresh() {
	if v.syncStep() == domain.StepResult {
		v.result.setContent(v.renderResult())
	}
}

// syncStep returns the session's current step, resetting the cursor and the
// prompt toggle when it differs from the step they were set on.
func (v *complianceView) syncStep() domain.Step {
	step := v.state.Session.Step()
	if step != v.seenStep {
		v.seenStep = step
		v.cursor = 0
		v.showPrompt = false
	}
	return step
}

func (v *complianceView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionChangedMsg:
		v.refresh()
		return v, nil

	case tea.WindowSizeMsg:
		return v, v.result.update(v.state, msg)

	case tea.KeyMsg:
		step := v.syncStep()
		if step == domain.StepResult {
			return v.updateResult(msg)
		}
		return v.updateQuestion(step, msg)
	}
	return v, nil
}

func (v *complianceView) updateQuestion(step domain.Step, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q, ok := wizard.QuestionFor(step, v.state.Session.Answers())
	if !ok {
		return v, nil
	}

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(q.Options)-1 {
			v.cursor++
		}
	case "enter":
		return v, v.choose(q.Options[v.cursor].Value)
	case "1", "2", "3", "4":
		i := int(msg.String()[0] - '1')
		if i < len(q.Options) {
			return v, v.choose(q.Options[i].Value)
		}
	}
	return v, nil
}

func (v *complianceView) choose(value string) tea.Cmd {
	if err := v.state.Session.Choose(value); err != nil {
		return flash(err.Error())
	}
	return sessionChanged()
}

func (v *complianceView) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "p":
		v.showPrompt = !v.showPrompt
		v.result.setContent(v.renderResult())
		return v, nil
	case "c":
		if !v.showPrompt {
			return v, nil
		}
		return v, copyCmd(v.state, v.state.Session.Prompt(), "prompt")
	case "l":
		verdict, err := v.state.Session.Verdict()
		if err != nil || !verdict.ShowsChecklist {
			return v, nil
		}
		v.state.Session.OpenAuditLog()
		return v, sessionChanged()
	}
	return v, v.result.update(v.state, msg)
}

func (v *complianceView) renderResult() string {
	s := v.state.Session
	verdict, err := s.Verdict()
	if err != nil {
		return formatter.StyleRed.Render("Error: " + err.Error())
	}

	var b strings.Builder
	b.WriteString(formatter.FormatVerdict(s.Answers(), verdict))
	b.WriteString("\n")
	if v.showPrompt {
		b.WriteString(formatter.FormatPrompt(s.Prompt()))
	} else {
		b.WriteString(formatter.Bold("Need help getting started?") + "\n")
		b.WriteString(formatter.Dim("Generate a prompt that follows best practices.") + "  ")
		b.WriteString(formatter.StyleBlue.Render("[p] Generate Safe Prompt") + "\n")
	}
	if verdict.ShowsChecklist {
		b.WriteString("\n" + formatter.StyleBlue.Render("[l] Create Audit Log") + "\n")
	}
	return b.String()
}

func (v *complianceView) View() string {
	step := v.state.Session.Step()
	cursor := v.cursor
	if step != v.seenStep {
		cursor = 0
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s\n\n",
		formatter.StyleHeader.Render(wizard.StepTitle(step)),
		formatter.RenderProgress(wizard.Progress(step), 20)))

	if step == domain.StepResult {
		if step != v.seenStep {
			b.WriteString(v.renderResult())
		} else {
			b.WriteString(v.result.view())
		}
		return b.String()
	}

	q, ok := wizard.QuestionFor(step, v.state.Session.Answers())
	if !ok {
		return b.String()
	}
	b.WriteString(formatter.Bold(fmt.Sprintf("Q%d. %s", q.Number, q.Title)) + "\n")
	if q.Hint != "" {
		b.WriteString(formatter.Dim(q.Hint) + "\n")
	}
	b.WriteString("\n")

	for i, o := range q.Options {
		labelStyle := formatter.StyleFg
		marker := "  "
		if i == cursor {
			marker = formatter.StyleGreen.Render("▸ ")
			labelStyle = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n",
			marker,
			formatter.StyleHeader.Render(fmt.Sprintf("%d.", i+1)),
			labelStyle.Render(o.Label),
			formatter.Dim(o.Description)))
	}
	return b.String()
}
