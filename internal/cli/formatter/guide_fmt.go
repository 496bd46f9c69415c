package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aiguide/internal/domain"
	"github.com/alexanderramin/aiguide/internal/policy"
	"github.com/alexanderramin/aiguide/internal/prompt"
)

// FormatThinkingList renders the numbered critical-thinking catalogue.
func FormatThinkingList(prompts []prompt.ThinkingPrompt) string {
	var b strings.Builder
	b.WriteString(Header("Critical Thinking Prompts"))
	b.WriteString("\n")
	for i, p := range prompts {
		b.WriteString(fmt.Sprintf("  %s %s\n", StyleHeader.Render(fmt.Sprintf("%2d.", i+1)), Bold(p.Title)))
		b.WriteString(fmt.Sprintf("      %s\n", Dim(p.When)))
	}
	return b.String()
}

// FormatThinkingPrompt renders one critical-thinking prompt card.
func FormatThinkingPrompt(p prompt.ThinkingPrompt) string {
	var b strings.Builder
	b.WriteString(Header(p.Title))
	b.WriteString("\n")
	b.WriteString(Dim(p.When))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s\n", FormatPromptText(p.Prompt)))
	return b.String()
}

// FormatScenario renders one impact scenario. The label before the first
// colon of each point is emphasised.
func FormatScenario(s policy.Scenario) string {
	var b strings.Builder
	style := TierStyle(s.Tier)
	mark := "✔"
	if s.Tier != domain.TierSafe {
		mark = "✖"
	}

	b.WriteString(Header(s.Title))
	b.WriteString("\n")
	b.WriteString(style.Render(`"` + s.Tagline + `"`))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s\n", s.Summary))
	for _, p := range s.Points {
		label, rest, ok := strings.Cut(p, ": ")
		if ok {
			p = Bold(label+":") + " " + rest
		}
		b.WriteString(fmt.Sprintf("  %s %s\n", style.Render(mark), p))
	}
	return b.String()
}

// FormatImpact renders both scenarios followed by the closing note.
func FormatImpact(scenarios []policy.Scenario, closing string) string {
	var b strings.Builder
	for _, s := range scenarios {
		b.WriteString(FormatScenario(s))
		b.WriteString("\n")
	}
	b.WriteString(Header("The Choice is Yours"))
	b.WriteString("\n")
	b.WriteString(closing)
	b.WriteString("\n")
	return b.String()
}
