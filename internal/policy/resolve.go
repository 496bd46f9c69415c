// Package policy maps a completed set of answers to a verdict: a risk tier,
// the advice shown to the student and the checklist to tick off before
// submitting.
package policy

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/aiguide/internal/domain"
)

var (
	// ErrNotTerminal indicates answers that are still in progress.
	ErrNotTerminal = errors.New("answers are not complete")

	// ErrUnhandledCombination indicates a terminal combination missing from
	// the resolution table.
	ErrUnhandledCombination = errors.New("unhandled answer combination")
)

// Verdict is the advice for a terminal set of answers.
type Verdict struct {
	Tier           domain.RiskTier
	Headline       string
	Body           []string
	NextSteps      []string
	ShowsChecklist bool
	ChecklistTitle string
	Checklist      []string
}

// key is the tagged form of a terminal answer set. Rule is empty unless
// Marks is yes.
type key struct {
	Task  domain.TaskType
	Marks domain.MarksStatus
	Rule  domain.ModuleRule
}

// Resolve returns the verdict for a. It fails with ErrNotTerminal when a is
// not one of the terminal shapes.
func Resolve(a domain.Answers) (Verdict, error) {
	if err := a.Validate(); err != nil {
		return Verdict{}, fmt.Errorf("resolving %s: %w", a, err)
	}
	if !a.IsTerminal() {
		return Verdict{}, fmt.Errorf("resolving %s: %w", a, ErrNotTerminal)
	}

	k := key{Task: a.TaskType, Marks: a.MarksStatus, Rule: a.ModuleRule}

	var v Verdict
	switch {
	case k.Task == domain.TaskResearch:
		v = researchVerdict()
	case k.Marks == domain.MarksNo:
		v = formativeVerdict(k.Task)
	case k.Marks == domain.MarksUnsure:
		v = unsureVerdict()
	case k.Marks == domain.MarksYes:
		var ok bool
		if v, ok = summativeVerdict(k.Task, k.Rule); !ok {
			return Verdict{}, fmt.Errorf("resolving %s: %w", a, ErrUnhandledCombination)
		}
	default:
		return Verdict{}, fmt.Errorf("resolving %s: %w", a, ErrUnhandledCombination)
	}

	v.NextSteps = nextSteps(k)
	if k.Marks == domain.MarksYes && k.Rule != domain.RuleNone {
		v.ShowsChecklist = true
		v.ChecklistTitle, v.Checklist = checklist(k.Task)
	}
	return v, nil
}

// researchVerdict applies to every research task. Data privacy and invented
// citations outweigh the module rule, so the tier is always danger.
func researchVerdict() Verdict {
	return Verdict{
		Tier:     domain.TierDanger,
		Headline: "Research Ethics & Integrity",
		Body: []string{
			"Research involves high stakes data privacy and ethics.",
			"Privacy (POPIA): Never upload participant names, transcripts, or confidential data to AI.",
			"Fake Data: AI often invents citations. You must verify every single source.",
			"Methodology: If AI helped in design or analysis, it must be disclosed in your methodology.",
		},
	}
}

func formativeVerdict(task domain.TaskType) Verdict {
	body := "Formative work is safe for practice."
	switch task {
	case domain.TaskStudy:
		body += " Use AI to explain concepts or quiz you. The risk here is 'Dependency': if you only read summaries, you won't learn."
	case domain.TaskAssignment:
		body += " Use AI to brainstorm or structure ideas. The risk here is 'Copying': do not let AI write drafts you might accidentally submit later."
	}
	return Verdict{
		Tier:     domain.TierSafe,
		Headline: "The Bottom Line",
		Body:     []string{body},
	}
}

func unsureVerdict() Verdict {
	return Verdict{
		Tier:     domain.TierCaution,
		Headline: "The Bottom Line",
		Body:     []string{"Treat it as Summative. Don't guess. Ask your lecturer."},
	}
}

func summativeVerdict(task domain.TaskType, rule domain.ModuleRule) (Verdict, bool) {
	tier, ok := summativeTier(rule)
	if !ok {
		return Verdict{}, false
	}

	var body []string
	switch task {
	case domain.TaskAssignment:
		p := "This is an important graded task. The main risk is Misrepresentation (Pretending it is yours). " +
			"Pretending AI-generated work is your own is a form of academic misconduct, distinct from just plagiarism."
		switch rule {
		case domain.RuleNone:
			p += " You must produce this work entirely yourself."
		case domain.RuleLimited:
			p += " You can use AI for specific tasks (e.g. grammar) but NOT to write the content."
		case domain.RuleFull:
			p += " You can use AI to support your writing, but you must verify everything and disclose usage."
		}
		body = append(body, p)
	case domain.TaskStudy:
		p := "This is likely an online test or quiz. The main risk is Cheating."
		switch rule {
		case domain.RuleNone:
			p += " Using AI during a test is strictly prohibited and easily detected."
		case domain.RuleLimited:
			p += " Check specific rules. Usually, AI is not allowed during the actual assessment."
		}
		body = append(body, p)
	default:
		return Verdict{}, false
	}
	if rule == domain.RuleUnknown {
		body = append(body, "Unknown Rules = High Risk. Ask your lecturer specifically before starting.")
	}

	return Verdict{Tier: tier, Headline: "The Bottom Line", Body: body}, true
}

func summativeTier(rule domain.ModuleRule) (domain.RiskTier, bool) {
	switch rule {
	case domain.RuleFull:
		return domain.TierSafe, true
	case domain.RuleLimited, domain.RuleUnknown:
		return domain.TierCaution, true
	case domain.RuleNone:
		return domain.TierDanger, true
	}
	return "", false
}

func nextSteps(k key) []string {
	var steps []string
	switch k.Task {
	case domain.TaskResearch:
		steps = append(steps,
			"Check your ethical clearance conditions.",
			"Anonymize all data before any processing.",
			"Verify every citation manually.",
		)
	case domain.TaskAssignment:
		steps = append(steps,
			"Draft your main arguments yourself first.",
			"Keep version history to prove authorship.",
		)
		if k.Marks == domain.MarksYes {
			steps = append(steps, "Disclose AI use in your declaration.")
		}
	case domain.TaskStudy:
		steps = append(steps,
			"Don't just read AI summaries; write notes by hand.",
			"Test yourself 'closed book' after using AI.",
			"If AI explains it, make sure you can re-explain it.",
		)
	}
	if k.Rule == domain.RuleNone || k.Rule == domain.RuleUnknown {
		steps = append(steps, "Do not generate text to copy-paste.")
	}
	return steps
}

func checklist(task domain.TaskType) (string, []string) {
	switch task {
	case domain.TaskResearch:
		return "Ethics Checklist", []string{
			"No participant data shared with AI.",
			"Verified all citations.",
			"Disclosed in Methodology.",
		}
	case domain.TaskAssignment:
		return "Submission Checklist", []string{
			"I wrote the core argument.",
			"I verified all facts/sources.",
			"I disclosed AI use.",
		}
	default:
		return "Submission Checklist", []string{
			"I can explain this without AI.",
			"I did not use AI during the test.",
		}
	}
}
