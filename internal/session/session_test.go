package session

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/aiguide/internal/domain"
	"github.com/alexanderramin/aiguide/internal/testutil"
	"github.com/alexanderramin/aiguide/internal/wizard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []Event
}

func (r *recordingObserver) Observe(e Event) { r.events = append(r.events, e) }

func (r *recordingObserver) names() []string {
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Name
	}
	return out
}

func newTestSession(t *testing.T) (*Session, *recordingObserver) {
	t.Helper()
	obs := &recordingObserver{}
	return New(WithObserver(obs), WithLog(testutil.NewTestLog())), obs
}

func TestNew_StartsAtHome(t *testing.T) {
	s := New()
	assert.Equal(t, domain.ModeHome, s.Mode())
	assert.True(t, s.Answers().IsZero())
	assert.Equal(t, domain.StepTask, s.Step())
	assert.Equal(t, domain.LogGeneric, s.LogContext())
	_, open := s.ActivePrompt()
	assert.False(t, open)
	assert.Empty(t, s.LogEntries())
}

func TestSession_LimitedAssignmentScenario(t *testing.T) {
	s, _ := newTestSession(t)

	require.NoError(t, s.SelectTaskType(domain.TaskAssignment))
	assert.Equal(t, domain.StepMarks, s.Step())
	require.NoError(t, s.SelectMarksStatus(domain.MarksYes))
	assert.Equal(t, domain.StepRule, s.Step())
	require.NoError(t, s.SelectModuleRule(domain.RuleLimited))
	assert.Equal(t, domain.StepResult, s.Step())
	assert.Equal(t, domain.ModeCompliance, s.Mode())

	v, err := s.Verdict()
	require.NoError(t, err)
	assert.Equal(t, domain.TierCaution, v.Tier)
	assert.True(t, v.ShowsChecklist)
	assert.Contains(t, s.Prompt(), "Do NOT rewrite the content")
}

func TestSession_StudyWithoutMarksStopsAtResult(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Choose("study"))
	require.NoError(t, s.Choose("no"))

	assert.Equal(t, domain.StepResult, s.Step())
	v, err := s.Verdict()
	require.NoError(t, err)
	assert.Equal(t, domain.TierSafe, v.Tier)
	assert.Contains(t, s.Prompt(), "Act as a strict tutor.")
}

func TestSession_RuleRejectedWithoutMarks(t *testing.T) {
	s, obs := newTestSession(t)
	require.NoError(t, s.SelectTaskType(domain.TaskStudy))
	require.NoError(t, s.SelectMarksStatus(domain.MarksNo))

	err := s.SelectModuleRule(domain.RuleFull)
	assert.ErrorIs(t, err, wizard.ErrRuleNotApplicable)
	assert.Equal(t, domain.ModuleRule(""), s.Answers().ModuleRule)
	assert.Equal(t, EventAnswerRejected, obs.events[len(obs.events)-1].Name)
}

func TestSession_VerdictBeforeTerminal(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.SelectTaskType(domain.TaskAssignment))
	_, err := s.Verdict()
	assert.Error(t, err)
	assert.Empty(t, s.Prompt())
}

func TestSession_GoBack(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(s *Session)
		wantMode  domain.Mode
		wantStep  domain.Step
		wantPrmpt bool
	}{
		{
			name:     "wizard first question exits to home",
			setup:    func(s *Session) { s.Enter(domain.ModeCompliance) },
			wantMode: domain.ModeHome,
			wantStep: domain.StepTask,
		},
		{
			name: "result clears the rule",
			setup: func(s *Session) {
				_ = s.Choose("assignment")
				_ = s.Choose("yes")
				_ = s.Choose("full")
			},
			wantMode: domain.ModeCompliance,
			wantStep: domain.StepRule,
		},
		{
			name: "formative result clears marks",
			setup: func(s *Session) {
				_ = s.Choose("study")
				_ = s.Choose("no")
			},
			wantMode: domain.ModeCompliance,
			wantStep: domain.StepMarks,
		},
		{
			name:     "advice returns home",
			setup:    func(s *Session) { s.Enter(domain.ModeAdvice) },
			wantMode: domain.ModeHome,
			wantStep: domain.StepTask,
		},
		{
			name:     "log returns home",
			setup:    func(s *Session) { s.Enter(domain.ModeLog) },
			wantMode: domain.ModeHome,
			wantStep: domain.StepTask,
		},
		{
			name:     "critical thinking list returns to advice",
			setup:    func(s *Session) { s.Enter(domain.ModeCriticalThinking) },
			wantMode: domain.ModeAdvice,
			wantStep: domain.StepTask,
		},
		{
			name:     "critical thinking detail returns to list",
			setup:    func(s *Session) { _ = s.OpenCriticalPrompt(3) },
			wantMode: domain.ModeCriticalThinking,
			wantStep: domain.StepTask,
		},
		{
			name:     "home stays home",
			setup:    func(*Session) {},
			wantMode: domain.ModeHome,
			wantStep: domain.StepTask,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession(t)
			tt.setup(s)
			s.GoBack()
			assert.Equal(t, tt.wantMode, s.Mode())
			assert.Equal(t, tt.wantStep, s.Step())
			_, open := s.ActivePrompt()
			assert.Equal(t, tt.wantPrmpt, open)
		})
	}
}

func TestSession_BackThenReanswer(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.Choose("assignment"))
	require.NoError(t, s.Choose("yes"))
	require.NoError(t, s.Choose("none"))

	s.GoBack()
	require.NoError(t, s.Choose("full"))

	v, err := s.Verdict()
	require.NoError(t, err)
	assert.Equal(t, domain.TierSafe, v.Tier)
}

func TestSession_ResetKeepsLog(t *testing.T) {
	s, obs := newTestSession(t)
	require.NoError(t, s.Choose("research"))
	require.NoError(t, s.Choose("yes"))
	s.OpenAuditLog()
	_, ok := s.AppendLogEntry("Summarise the ethics form", "", "")
	require.True(t, ok)

	s.Reset()

	assert.Equal(t, domain.ModeHome, s.Mode())
	assert.True(t, s.Answers().IsZero())
	assert.Len(t, s.LogEntries(), 1)
	assert.Equal(t, domain.LogResearch, s.LogContext())
	assert.Equal(t, EventSessionReset, obs.events[len(obs.events)-1].Name)
	assert.Equal(t, 1, obs.events[len(obs.events)-1].Fields["log_entries"])
}

func TestSession_OpenAuditLogUsesTaskContext(t *testing.T) {
	for _, task := range domain.TaskTypes {
		t.Run(string(task), func(t *testing.T) {
			s, _ := newTestSession(t)
			require.NoError(t, s.SelectTaskType(task))
			s.OpenAuditLog()
			assert.Equal(t, domain.ModeLog, s.Mode())
			assert.Equal(t, domain.LogContextFor(task), s.LogContext())
		})
	}
}

func TestSession_EnterLogFromHomeIsGeneric(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.SelectTaskType(domain.TaskStudy))
	s.OpenAuditLog()
	require.Equal(t, domain.LogStudy, s.LogContext())

	s.Reset()
	s.Enter(domain.ModeLog)
	assert.Equal(t, domain.LogGeneric, s.LogContext())
}

func TestSession_SetLogContext(t *testing.T) {
	s, _ := newTestSession(t)
	require.NoError(t, s.SetLogContext(domain.LogAssignment))
	assert.Equal(t, domain.LogAssignment, s.LogContext())
	assert.ErrorIs(t, s.SetLogContext("thesis"), domain.ErrInvalidValue)
	assert.Equal(t, domain.LogAssignment, s.LogContext())
}

func TestSession_LogEntries(t *testing.T) {
	s, obs := newTestSession(t)

	_, ok := s.AppendLogEntry("   ", "output", "")
	assert.False(t, ok)
	assert.Empty(t, s.LogEntries())
	assert.Equal(t, EventLogEntryRejected, obs.events[len(obs.events)-1].Name)

	first, ok := s.AppendLogEntry("Explain recursion", "A function calling itself", "Added my own example")
	require.True(t, ok)
	second, ok := s.AppendLogEntry("Quiz me", "", "")
	require.True(t, ok)
	assert.Equal(t, "entry-1", first.ID)
	assert.Equal(t, "entry-2", second.ID)

	s.DeleteLogEntry("missing")
	assert.Len(t, s.LogEntries(), 2)

	s.DeleteLogEntry(first.ID)
	entries := s.LogEntries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Quiz me", entries[0].Prompt)

	decl := s.Declaration(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC))
	assert.Contains(t, decl, "ENTRY 1:")
	assert.Contains(t, decl, `"Quiz me"`)
	assert.NotContains(t, decl, "ENTRY 2:")
	assert.Contains(t, decl, "2026-03-14")
}

func TestSession_CriticalPrompts(t *testing.T) {
	s, _ := newTestSession(t)
	s.Enter(domain.ModeAdvice)
	s.Enter(domain.ModeCriticalThinking)

	require.NoError(t, s.OpenCriticalPrompt(0))
	i, open := s.ActivePrompt()
	assert.True(t, open)
	assert.Equal(t, 0, i)

	assert.ErrorIs(t, s.OpenCriticalPrompt(12), domain.ErrInvalidValue)
	assert.ErrorIs(t, s.OpenCriticalPrompt(-1), domain.ErrInvalidValue)
	i, _ = s.ActivePrompt()
	assert.Equal(t, 0, i)

	s.Enter(domain.ModeHome)
	_, open = s.ActivePrompt()
	assert.False(t, open)
}

func TestSession_EmitsEvents(t *testing.T) {
	s, obs := newTestSession(t)
	s.Enter(domain.ModeCompliance)
	require.NoError(t, s.Choose("assignment"))
	s.GoBack()

	assert.Equal(t, []string{EventModeEntered, EventAnswerSelected, EventWizardBack}, obs.names())
	assert.Equal(t, "compliance", obs.events[0].Fields["mode"])
	assert.Equal(t, "assignment", obs.events[1].Fields["value"])
}

func TestSession_PromptLookupMissReportedOnceOnTerminalAnswer(t *testing.T) {
	s, obs := newTestSession(t)
	s.lookupPrompt = func(domain.Answers) string { return "" }

	require.NoError(t, s.Choose("study"))
	require.NoError(t, s.Choose("unsure"))
	assert.Equal(t, testutil.NewTestAnswers(domain.TaskStudy, testutil.WithMarks(domain.MarksUnsure)), s.Answers())

	for range 3 {
		assert.Empty(t, s.Prompt())
	}

	var misses []Event
	for _, e := range obs.events {
		if e.Name == EventPromptLookupMiss {
			misses = append(misses, e)
		}
	}
	require.Len(t, misses, 1)
	assert.Equal(t, s.Answers().String(), misses[0].Fields["answers"])
}

func TestSession_PromptIsSideEffectFree(t *testing.T) {
	s, obs := newTestSession(t)
	require.NoError(t, s.Choose("assignment"))
	before := len(obs.events)

	assert.Empty(t, s.Prompt())
	assert.Len(t, obs.events, before)
}

func TestLogObserver_WritesSlogRecords(t *testing.T) {
	var buf bytes.Buffer
	s := New(WithObserver(NewLogObserver(&buf)))
	require.NoError(t, s.Choose("study"))
	s.Report(EventClipboardFailed, fmt.Errorf("no display"), "target", "prompt")

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=answer_selected")
	assert.Contains(t, out, "value=study")
	assert.Contains(t, out, "level=WARN msg=clipboard_write_failed")
	assert.Contains(t, out, `error="no display"`)
}

func TestNewLogObserver_NilWriter(t *testing.T) {
	assert.Equal(t, NoopObserver{}, NewLogObserver(nil))
}
