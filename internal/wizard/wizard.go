// Package wizard implements the compliance-check step machine. Every
// function is pure: the current step is always recomputed from the answers,
// and each transition returns a new Answers value with stale downstream
// answers cleared.
package wizard

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/aiguide/internal/domain"
)

var (
	// ErrStepNotReachable indicates an answer for a question whose
	// prerequisites have not been answered yet.
	ErrStepNotReachable = errors.New("step not reachable")

	// ErrRuleNotApplicable indicates a module rule for a task that is not
	// for marks.
	ErrRuleNotApplicable = errors.New("module rule only applies to summative tasks")
)

// ComputeStep returns the question to show for a. It is total: malformed or
// unknown values never panic and resolve by the same ordered rules.
func ComputeStep(a domain.Answers) domain.Step {
	switch {
	case a.TaskType == "":
		return domain.StepTask
	case a.MarksStatus == "":
		return domain.StepMarks
	case a.MarksStatus == domain.MarksYes && a.ModuleRule == "":
		return domain.StepRule
	default:
		return domain.StepResult
	}
}

// WithTaskType records the task type. Choosing a different task clears the
// marks status and module rule.
func WithTaskType(a domain.Answers, t domain.TaskType) (domain.Answers, error) {
	if !t.Valid() {
		return a, fmt.Errorf("task type %q: %w", t, domain.ErrInvalidValue)
	}
	if a.TaskType == t {
		return a, nil
	}
	return domain.Answers{TaskType: t}, nil
}

// WithMarksStatus records the marks status. Anything other than yes clears
// the module rule.
func WithMarksStatus(a domain.Answers, m domain.MarksStatus) (domain.Answers, error) {
	if !m.Valid() {
		return a, fmt.Errorf("marks status %q: %w", m, domain.ErrInvalidValue)
	}
	if a.TaskType == "" {
		return a, fmt.Errorf("marks status before task type: %w", ErrStepNotReachable)
	}
	if a.MarksStatus == m {
		return a, nil
	}
	a.MarksStatus = m
	a.ModuleRule = ""
	return a, nil
}

// WithModuleRule records the module rule. It is only reachable once the task
// is known to be for marks.
func WithModuleRule(a domain.Answers, r domain.ModuleRule) (domain.Answers, error) {
	if !r.Valid() {
		return a, fmt.Errorf("module rule %q: %w", r, domain.ErrInvalidValue)
	}
	if a.TaskType == "" || a.MarksStatus == "" {
		return a, fmt.Errorf("module rule before marks status: %w", ErrStepNotReachable)
	}
	if a.MarksStatus != domain.MarksYes {
		return a, fmt.Errorf("marks status %q: %w", a.MarksStatus, ErrRuleNotApplicable)
	}
	a.ModuleRule = r
	return a, nil
}

// Apply records value as the answer to the current step of a.
func Apply(a domain.Answers, value string) (domain.Answers, error) {
	switch ComputeStep(a) {
	case domain.StepTask:
		t, err := domain.ParseTaskType(value)
		if err != nil {
			return a, err
		}
		return WithTaskType(a, t)
	case domain.StepMarks:
		m, err := domain.ParseMarksStatus(value)
		if err != nil {
			return a, err
		}
		return WithMarksStatus(a, m)
	case domain.StepRule:
		r, err := domain.ParseModuleRule(value)
		if err != nil {
			return a, err
		}
		return WithModuleRule(a, r)
	default:
		return a, fmt.Errorf("answers %s are complete: %w", a, ErrStepNotReachable)
	}
}

// Back undoes the most recent answer. From the result it clears the module
// rule if one was chosen, otherwise the marks status. exited is true when a
// was already on the first question and the caller should leave the wizard.
func Back(a domain.Answers) (next domain.Answers, exited bool) {
	switch ComputeStep(a) {
	case domain.StepResult:
		if a.ModuleRule != "" {
			a.ModuleRule = ""
			return a, false
		}
		a.MarksStatus = ""
		return a, false
	case domain.StepRule:
		a.MarksStatus = ""
		a.ModuleRule = ""
		return a, false
	case domain.StepMarks:
		return domain.Answers{}, false
	default:
		return domain.Answers{}, true
	}
}
