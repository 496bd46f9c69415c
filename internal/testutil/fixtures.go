package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/aiguide/internal/auditlog"
	"github.com/alexanderramin/aiguide/internal/domain"
)

// SequentialIDs numbers log entries entry-1, entry-2, ... so tests can
// refer to them by ID.
func SequentialIDs() auditlog.Option {
	var n atomic.Int64
	return auditlog.WithIDFunc(func() string {
		return fmt.Sprintf("entry-%d", n.Add(1))
	})
}

// Answers options
type AnswersOption func(*domain.Answers)

// WithMarks sets the marks answer without touching the module rule.
func WithMarks(m domain.MarksStatus) AnswersOption {
	return func(a *domain.Answers) {
		a.MarksStatus = m
	}
}

func WithRule(r domain.ModuleRule) AnswersOption {
	return func(a *domain.Answers) {
		a.MarksStatus = domain.MarksYes
		a.ModuleRule = r
	}
}

// NewTestAnswers returns answers for task, formative unless an option says
// otherwise.
func NewTestAnswers(task domain.TaskType, opts ...AnswersOption) domain.Answers {
	a := domain.Answers{TaskType: task, MarksStatus: domain.MarksNo}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Draft options
type DraftOption func(*auditlog.Draft)

func WithOutput(s string) DraftOption {
	return func(d *auditlog.Draft) {
		d.Output = s
	}
}

func WithRefinement(s string) DraftOption {
	return func(d *auditlog.Draft) {
		d.Refinement = s
	}
}

func NewTestDraft(prompt string, opts ...DraftOption) auditlog.Draft {
	d := auditlog.Draft{Prompt: prompt}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// NewTestLog returns a log with sequential IDs holding drafts. Drafts with a
// blank prompt are dropped the same way interactive entry drops them.
func NewTestLog(drafts ...auditlog.Draft) *auditlog.Log {
	l := auditlog.New(SequentialIDs())
	for _, d := range drafts {
		l.Append(d)
	}
	return l
}
