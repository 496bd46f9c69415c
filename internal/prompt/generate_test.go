package prompt

import (
	"testing"

	"github.com/alexanderramin/aiguide/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_FormativeStudyIsTutor(t *testing.T) {
	p := Generate(domain.Answers{TaskType: domain.TaskStudy, MarksStatus: domain.MarksNo})
	assert.Contains(t, p, "Act as a strict tutor.")
}

func TestGenerate_SummativeNoneIsStudySchedule(t *testing.T) {
	for _, task := range domain.TaskTypes {
		p := Generate(domain.Answers{TaskType: task, MarksStatus: domain.MarksYes, ModuleRule: domain.RuleNone})
		assert.Equal(t, studySchedule, p, string(task))
		assert.Contains(t, p, "study schedule")
	}
}

func TestGenerate_UnsureIgnoresTask(t *testing.T) {
	for _, task := range domain.TaskTypes {
		p := Generate(domain.Answers{TaskType: task, MarksStatus: domain.MarksUnsure})
		assert.Equal(t, askLecturer, p)
	}
}

func TestGenerate_SpecificTemplates(t *testing.T) {
	tests := []struct {
		a        domain.Answers
		contains string
	}{
		{domain.Answers{TaskType: domain.TaskAssignment, MarksStatus: domain.MarksNo}, "brainstorm 3 different angles"},
		{domain.Answers{TaskType: domain.TaskResearch, MarksStatus: domain.MarksNo}, "reading complex research"},
		{domain.Answers{TaskType: domain.TaskAssignment, MarksStatus: domain.MarksYes, ModuleRule: domain.RuleLimited}, "Do NOT rewrite the content"},
		{domain.Answers{TaskType: domain.TaskStudy, MarksStatus: domain.MarksYes, ModuleRule: domain.RuleLimited}, "5 practice questions"},
		{domain.Answers{TaskType: domain.TaskResearch, MarksStatus: domain.MarksYes, ModuleRule: domain.RuleLimited}, "coding structure"},
		{domain.Answers{TaskType: domain.TaskAssignment, MarksStatus: domain.MarksYes, ModuleRule: domain.RuleFull}, "critical lecturer"},
		{domain.Answers{TaskType: domain.TaskStudy, MarksStatus: domain.MarksYes, ModuleRule: domain.RuleFull}, "real-world analogy"},
		{domain.Answers{TaskType: domain.TaskResearch, MarksStatus: domain.MarksYes, ModuleRule: domain.RuleFull}, "search terms"},
		{domain.Answers{TaskType: domain.TaskStudy, MarksStatus: domain.MarksYes, ModuleRule: domain.RuleUnknown}, "[insert task]"},
	}
	for _, tt := range tests {
		t.Run(tt.a.String(), func(t *testing.T) {
			assert.Contains(t, Generate(tt.a), tt.contains)
		})
	}
}

func TestGenerate_EveryTerminalCombinationHasTemplate(t *testing.T) {
	for _, task := range domain.TaskTypes {
		for _, marks := range []domain.MarksStatus{domain.MarksNo, domain.MarksUnsure} {
			a := domain.Answers{TaskType: task, MarksStatus: marks}
			assert.NotEmpty(t, Generate(a), a.String())
		}
		for _, rule := range domain.ModuleRules {
			a := domain.Answers{TaskType: task, MarksStatus: domain.MarksYes, ModuleRule: rule}
			assert.NotEmpty(t, Generate(a), a.String())
			assert.Equal(t, Generate(a), Generate(a))
		}
	}
}

func TestGenerate_NonTerminalIsEmpty(t *testing.T) {
	assert.Empty(t, Generate(domain.Answers{}))
	assert.Empty(t, Generate(domain.Answers{TaskType: domain.TaskStudy}))
	assert.Empty(t, Generate(domain.Answers{TaskType: domain.TaskStudy, MarksStatus: domain.MarksYes}))
	assert.Empty(t, Generate(domain.Answers{TaskType: domain.TaskStudy, MarksStatus: domain.MarksNo, ModuleRule: domain.RuleFull}))
}

func TestSegments(t *testing.T) {
	got := Segments("Ask if [insert task] is allowed for [module].")
	require.Len(t, got, 5)
	assert.Equal(t, Segment{Text: "Ask if "}, got[0])
	assert.Equal(t, Segment{Text: "insert task", Placeholder: true}, got[1])
	assert.Equal(t, Segment{Text: " is allowed for "}, got[2])
	assert.Equal(t, Segment{Text: "module", Placeholder: true}, got[3])
	assert.Equal(t, Segment{Text: "."}, got[4])
}

func TestSegments_Edges(t *testing.T) {
	assert.Nil(t, Segments(""))
	assert.Equal(t, []Segment{{Text: "no placeholders"}}, Segments("no placeholders"))
	assert.Equal(t, []Segment{{Text: "open [bracket"}}, Segments("open [bracket"))
	assert.Equal(t, []Segment{{Text: "topic", Placeholder: true}}, Segments("[topic]"))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, []string{"your solution attempts", "problem"},
		Placeholders("I've tried [your solution attempts], but [problem] keeps coming back."))
	assert.Empty(t, Placeholders(tutorStudy))
}

func TestCriticalThinking(t *testing.T) {
	prompts := CriticalThinking()
	require.Len(t, prompts, 12)
	for _, p := range prompts {
		assert.NotEmpty(t, Placeholders(p.Prompt), p.Title)
	}

	prompts[0].Title = "changed"
	assert.Equal(t, "Question Assumptions", CriticalThinking()[0].Title)
}
