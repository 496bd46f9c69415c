package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aiguide/internal/domain"
	"github.com/alexanderramin/aiguide/internal/policy"
	"github.com/alexanderramin/aiguide/internal/prompt"
	"github.com/alexanderramin/aiguide/internal/wizard"
)

// FormatAnswers renders the answered questions as "Assignment · Yes (Summative) · Limited Use".
func FormatAnswers(a domain.Answers) string {
	var parts []string
	if a.TaskType != "" {
		parts = append(parts, wizard.OptionLabel(domain.StepTask, string(a.TaskType)))
	}
	if a.MarksStatus != "" {
		parts = append(parts, wizard.OptionLabel(domain.StepMarks, string(a.MarksStatus)))
	}
	if a.ModuleRule != "" {
		parts = append(parts, wizard.OptionLabel(domain.StepRule, string(a.ModuleRule)))
	}
	return strings.Join(parts, " · ")
}

// FormatVerdict renders a resolved verdict with its next steps and, when
// the verdict carries one, the checklist.
func FormatVerdict(a domain.Answers, v policy.Verdict) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", TierIndicator(v.Tier), Bold(v.Headline)))
	b.WriteString(Dim(FormatAnswers(a)))
	b.WriteString("\n\n")

	for _, p := range v.Body {
		b.WriteString(fmt.Sprintf("  %s\n", p))
	}
	b.WriteString("\n")

	b.WriteString(Header("Next Steps"))
	b.WriteString("\n")
	for _, s := range v.NextSteps {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleBlue.Render("→"), s))
	}

	if v.ShowsChecklist {
		b.WriteString("\n")
		b.WriteString(Header(v.ChecklistTitle))
		b.WriteString("\n")
		for _, item := range v.Checklist {
			b.WriteString(fmt.Sprintf("  %s %s\n", Dim("[ ]"), item))
		}
	}

	return b.String()
}

// FormatPromptText renders a prompt template inline, showing each
// placeholder as "insert <name>".
func FormatPromptText(text string) string {
	var b strings.Builder
	for _, seg := range prompt.Segments(text) {
		if seg.Placeholder {
			b.WriteString(StylePlaceholder.Render("insert " + seg.Text))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

// FormatPrompt renders the safe prompt section of a result.
func FormatPrompt(text string) string {
	var b strings.Builder
	b.WriteString(Header("Safe Prompt"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s\n", FormatPromptText(text)))
	if names := prompt.Placeholders(text); len(names) > 0 {
		b.WriteString(Dim(fmt.Sprintf("  Replace before use: %s", strings.Join(names, ", "))))
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf("  %s %s\n", StyleRed.Render("Privacy Warning:"), prompt.PrivacyWarning))
	return b.String()
}

// MatrixRow is one terminal combination and its resolved tier.
type MatrixRow struct {
	Answers domain.Answers
	Tier    domain.RiskTier
}

// FormatMatrix renders every terminal combination as a table.
func FormatMatrix(rows []MatrixRow) string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		rule := "-"
		if r.Answers.ModuleRule != "" {
			rule = wizard.OptionLabel(domain.StepRule, string(r.Answers.ModuleRule))
		}
		cells = append(cells, []string{
			wizard.OptionLabel(domain.StepTask, string(r.Answers.TaskType)),
			wizard.OptionLabel(domain.StepMarks, string(r.Answers.MarksStatus)),
			rule,
			TierIndicator(r.Tier),
		})
	}
	return RenderTable([]string{"TASK", "MARKS", "RULE", "TIER"}, cells)
}
