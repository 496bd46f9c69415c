package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/aiguide/internal/domain"
	"github.com/alexanderramin/aiguide/internal/prompt"
	"github.com/alexanderramin/aiguide/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_HomeShowsCards(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, ViewHome, d.ActiveViewID())
	for _, c := range homeCards {
		assert.True(t, d.ViewContains(c.title), "home should show %q", c.title)
	}
	assert.True(t, d.ViewContains("q: quit"))
}

func TestTUI_ComplianceToResultAndPrompt(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('1')
	require.Equal(t, ViewCompliance, d.ActiveViewID())
	assert.True(t, d.ViewContains("Step 1: The Context"))
	assert.True(t, d.ViewContains("What are you working on?"))

	d.PressEnter() // Assignment
	assert.True(t, d.ViewContains("Is this for marks?"))
	d.PressKey('1') // Yes (Summative)
	assert.True(t, d.ViewContains("Check your Guidelines"))
	assert.True(t, d.ViewContains("Your module outline is the final authority"))
	d.PressDown()
	d.PressEnter() // Limited Use

	assert.Equal(t, domain.StepResult, d.Session().Step())
	assert.True(t, d.ViewContains("Your Result"))
	assert.True(t, d.ViewContains("● CAUTION"))
	assert.True(t, d.ViewContains("Need help getting started?"))
	assert.False(t, d.ViewContains("SAFE PROMPT"))

	// Copy is only offered once the prompt is revealed.
	d.PressKey('c')
	assert.Empty(t, clipboardOf(app).Last())

	d.PressKey('p')
	assert.True(t, d.ViewContains("SAFE PROMPT"))
	assert.True(t, d.ViewContains("Never paste sensitive data"))

	d.PressKey('c')
	assert.Equal(t, d.Session().Prompt(), clipboardOf(app).Last())
	assert.Equal(t, "✔ Copied to Clipboard", d.Flash())
}

func TestTUI_ResultOpensAuditLog(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('1')
	d.PressKey('3') // Research
	d.PressKey('1') // Yes
	d.PressKey('1') // Full AI Use
	require.Equal(t, domain.StepResult, d.Session().Step())
	assert.True(t, d.ViewContains("● DANGER"))

	d.PressKey('l')
	assert.Equal(t, []ViewID{ViewHome, ViewLog}, d.ViewStackIDs())
	assert.Equal(t, domain.LogResearch, d.Session().LogContext())
	assert.True(t, d.ViewContains("RESEARCH AUDIT LOG"))
}

func TestTUI_NoChecklistMeansNoAuditLogShortcut(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('1')
	d.PressKey('2') // Study
	d.PressKey('2') // No (Formative)
	require.Equal(t, domain.StepResult, d.Session().Step())

	d.PressKey('l')
	assert.Equal(t, ViewCompliance, d.ActiveViewID())
	assert.Equal(t, domain.ModeCompliance, d.Session().Mode())
}

func TestTUI_EscWalksBackThroughQuestions(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('1')
	d.PressKey('1')
	d.PressKey('1')
	d.PressKey('4')
	require.Equal(t, domain.StepResult, d.Session().Step())

	d.PressEsc()
	assert.Equal(t, domain.StepRule, d.Session().Step())
	assert.True(t, d.ViewContains("Check your Guidelines"))

	d.PressEsc()
	assert.Equal(t, domain.StepMarks, d.Session().Step())
	d.PressEsc()
	assert.Equal(t, domain.StepTask, d.Session().Step())
	assert.Equal(t, ViewCompliance, d.ActiveViewID())

	d.PressEsc()
	assert.Equal(t, []ViewID{ViewHome}, d.ViewStackIDs())
	assert.Equal(t, domain.ModeHome, d.Session().Mode())
}

func TestTUI_CursorResetsOnNewStep(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('1')
	d.PressDown()
	d.PressDown()
	d.PressEnter() // Research
	assert.Equal(t, domain.TaskResearch, d.Session().Answers().TaskType)

	d.PressEnter() // first option again, not the third
	assert.Equal(t, domain.MarksYes, d.Session().Answers().MarksStatus)
}

func TestTUI_ComplianceReadsStepFromSession(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('1')
	d.PressDown()
	d.PressDown()

	// Answer outside the view; no sessionChangedMsg reaches it.
	require.NoError(t, d.Session().SelectTaskType(domain.TaskStudy))
	assert.True(t, d.ViewContains("Q2. Is this for marks?"))
	assert.False(t, d.ViewContains("Q1."))

	d.PressEnter()
	assert.Equal(t, domain.MarksYes, d.Session().Answers().MarksStatus)
	assert.True(t, d.ViewContains("Q3. Check your Guidelines"))
}

func TestTUI_ResetKeepsLog(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('1')
	d.PressKey('2')
	d.PressKey('2')
	_, ok := d.Session().AppendLogEntry("Quiz me on photosynthesis", "", "")
	require.True(t, ok)

	d.PressKey('R')
	assert.Equal(t, []ViewID{ViewHome}, d.ViewStackIDs())
	assert.True(t, d.Session().Answers().IsZero())
	assert.Len(t, d.Session().LogEntries(), 1)
}

func TestTUI_LogFlow(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('2')
	require.Equal(t, ViewLog, d.ActiveViewID())
	assert.True(t, d.ViewContains("AI AUDIT LOG"))
	assert.True(t, d.ViewContains("Start your Log"))

	// Declaration needs at least one entry.
	d.PressKey('g')
	assert.Equal(t, ViewLog, d.ActiveViewID())

	// The form opens and esc cancels it without touching the log.
	d.PressKey('a')
	require.Equal(t, ViewForm, d.ActiveViewID())
	assert.Equal(t, "Start your Log", d.ActiveViewTitle())
	assert.True(t, d.ViewContains("1. What did you ask? (Paste Prompt)"))
	d.PressKey('q')
	assert.False(t, d.IsQuitting(), "the form captures q")
	d.PressEsc()
	assert.Equal(t, ViewLog, d.ActiveViewID())
	assert.Equal(t, "Cancelled.", d.Flash())
	assert.Empty(t, d.Session().LogEntries())

	s := d.Session()
	_, ok := s.AppendLogEntry("Explain qualitative vs quantitative methods", "A table with 5 differences", "Checked the textbook")
	require.True(t, ok)
	_, ok = s.AppendLogEntry("Suggest a structure for my essay", "", "")
	require.True(t, ok)
	d.Send(sessionChangedMsg{})
	assert.True(t, d.ViewContains("Explain qualitative vs quantitative methods"))
	assert.True(t, d.ViewContains("No refinement recorded"))

	d.PressKey('a')
	assert.Equal(t, "Add Next Step", d.ActiveViewTitle())
	d.PressEsc()

	d.PressKey('g')
	require.Equal(t, ViewDeclaration, d.ActiveViewID())
	assert.True(t, d.ViewContains("AI USAGE DECLARATION - AUDIT LOG"))
	assert.True(t, d.ViewContains("Date: 2026-03-14"))
	assert.True(t, d.ViewContains("paste it at the top of your assignment"))

	d.PressKey('c')
	assert.Contains(t, clipboardOf(app).Last(), "ENTRY 2:")

	d.PressEnter()
	assert.Equal(t, ViewLog, d.ActiveViewID())

	// Delete the second entry.
	d.PressDown()
	d.PressKey('d')
	require.Len(t, s.LogEntries(), 1)
	assert.Equal(t, "Explain qualitative vs quantitative methods", s.LogEntries()[0].Prompt)

	d.PressKey('t')
	assert.Equal(t, domain.LogAssignment, s.LogContext())
	assert.True(t, d.ViewContains("ASSIGNMENT AUDIT LOG"))
}

func TestTUI_ImpactAndCriticalThinking(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('3')
	require.Equal(t, ViewImpact, d.ActiveViewID())
	assert.True(t, d.ViewContains("THE PILOT (EFFECTIVE USE)"))
	assert.True(t, d.ViewContains("THE GHOST (BAD USE)"))

	d.PressKey('t')
	require.Equal(t, ViewCritical, d.ActiveViewID())
	prompts := prompt.CriticalThinking()
	assert.True(t, d.ViewContains(prompts[0].Title))

	d.PressDown()
	d.PressEnter()
	i, open := d.Session().ActivePrompt()
	require.True(t, open)
	assert.Equal(t, 1, i)
	assert.True(t, d.ViewContains(strings.ToUpper(prompts[1].Title)))
	assert.True(t, d.ViewContains(prompts[1].When))

	d.PressKey('c')
	assert.Equal(t, prompts[1].Prompt, clipboardOf(app).Last())

	d.PressEsc()
	_, open = d.Session().ActivePrompt()
	assert.False(t, open)
	assert.Equal(t, ViewCritical, d.ActiveViewID())

	d.PressEsc()
	assert.Equal(t, ViewImpact, d.ActiveViewID())

	d.PressKey('a')
	assert.Equal(t, ViewCompliance, d.ActiveViewID())
}

func TestTUI_ShareFallsBackToCopy(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('S')
	assert.Equal(t, app.Config.ShareURL, clipboardOf(app).Last())
	assert.Equal(t, "✔ Link copied to clipboard!", d.Flash())
	assert.True(t, observerOf(app).has(session.EventShareFallback))
}

func TestTUI_CopyFailureIsReported(t *testing.T) {
	app := testApp(t)
	clipboardOf(app).Err = errors.New("no display")
	d := NewTestDriver(t, app)

	d.PressKey('3')
	d.PressKey('t')
	d.PressEnter()
	d.PressKey('c')

	assert.Equal(t, "Copy failed", d.Flash())
	assert.True(t, observerOf(app).has(session.EventClipboardFailed))
}

func TestTUI_Quit(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('q')
	assert.True(t, d.IsQuitting())
}
