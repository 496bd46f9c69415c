package formatter

import (
	"testing"

	"github.com/alexanderramin/aiguide/internal/domain"
	"github.com/alexanderramin/aiguide/internal/policy"
	"github.com/alexanderramin/aiguide/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAnswers(t *testing.T) {
	assert.Equal(t, "", FormatAnswers(domain.Answers{}))
	assert.Equal(t, "Research", FormatAnswers(domain.Answers{TaskType: domain.TaskResearch}))
	assert.Equal(t, "Assignment · Yes (Summative) · Unknown", FormatAnswers(domain.Answers{
		TaskType: domain.TaskAssignment, MarksStatus: domain.MarksYes, ModuleRule: domain.RuleUnknown,
	}))
}

func TestFormatVerdict_NoChecklistWhenRuleIsNone(t *testing.T) {
	a := domain.Answers{TaskType: domain.TaskAssignment, MarksStatus: domain.MarksYes, ModuleRule: domain.RuleNone}
	v, err := policy.Resolve(a)
	require.NoError(t, err)

	out := stripANSI(FormatVerdict(a, v))
	assert.Contains(t, out, "● DANGER")
	assert.Contains(t, out, "Do not generate text to copy-paste.")
	assert.NotContains(t, out, "CHECKLIST")
}

func TestFormatVerdict_ResearchShowsEthicsChecklist(t *testing.T) {
	a := domain.Answers{TaskType: domain.TaskResearch, MarksStatus: domain.MarksYes, ModuleRule: domain.RuleFull}
	v, err := policy.Resolve(a)
	require.NoError(t, err)

	out := stripANSI(FormatVerdict(a, v))
	assert.Contains(t, out, "Research Ethics & Integrity")
	assert.Contains(t, out, "ETHICS CHECKLIST")
	assert.Contains(t, out, "[ ] No participant data shared with AI.")
}

func TestFormatPromptText_HighlightsPlaceholders(t *testing.T) {
	got := stripANSI(FormatPromptText("Write to my lecturer about [insert task] in [module]."))
	assert.Equal(t, "Write to my lecturer about insert insert task in insert module.", got)

	assert.Equal(t, "no placeholders", stripANSI(FormatPromptText("no placeholders")))
	assert.Equal(t, "open [bracket", stripANSI(FormatPromptText("open [bracket")))
}

func TestFormatPrompt(t *testing.T) {
	a := domain.Answers{TaskType: domain.TaskStudy, MarksStatus: domain.MarksUnsure}
	out := stripANSI(FormatPrompt(prompt.Generate(a)))
	assert.Contains(t, out, "SAFE PROMPT")
	assert.Contains(t, out, "insert insert specific task")
	assert.Contains(t, out, "Replace before use: insert specific task")

	out = stripANSI(FormatPrompt("Act as a strict tutor."))
	assert.NotContains(t, out, "Replace before use")
}

func TestFormatThinking(t *testing.T) {
	prompts := prompt.CriticalThinking()

	list := stripANSI(FormatThinkingList(prompts))
	assert.Contains(t, list, " 1. Question Assumptions")
	assert.Contains(t, list, "12. Facts Versus Opinions")

	card := stripANSI(FormatThinkingPrompt(prompts[3]))
	assert.Contains(t, card, "TESTING LOGIC")
	assert.Contains(t, card, "My reasoning is: insert your reasoning.")
}

func TestFormatImpact(t *testing.T) {
	out := stripANSI(FormatImpact(policy.ImpactScenarios(), policy.ImpactClosing))
	assert.Contains(t, out, "THE PILOT (EFFECTIVE USE)")
	assert.Contains(t, out, `"AI acts as a tool to help you climb. You build higher."`)
	assert.Contains(t, out, "✔ Expansion: You understand more concepts in less time.")
	assert.Contains(t, out, "THE GHOST (BAD USE)")
	assert.Contains(t, out, "✖ Dependence:")
	assert.Contains(t, out, "THE CHOICE IS YOURS")
	assert.Contains(t, out, policy.ImpactClosing)
}
