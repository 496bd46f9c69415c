package domain

import "fmt"

// Step is the wizard question currently shown. It is always derived from
// Answers and never stored.
type Step int

const (
	StepTask   Step = 1
	StepMarks  Step = 2
	StepRule   Step = 3
	StepResult Step = 4
)

// Answers is the decision state collected by the compliance wizard.
// An empty field is unset.
type Answers struct {
	TaskType    TaskType
	MarksStatus MarksStatus
	ModuleRule  ModuleRule
}

// IsZero reports whether nothing has been answered.
func (a Answers) IsZero() bool {
	return a.TaskType == "" && a.MarksStatus == "" && a.ModuleRule == ""
}

// IsTerminal reports whether a holds one of the fully resolved shapes:
// (T, no, -), (T, unsure, -) or (T, yes, R).
func (a Answers) IsTerminal() bool {
	if !a.TaskType.Valid() {
		return false
	}
	switch a.MarksStatus {
	case MarksNo, MarksUnsure:
		return a.ModuleRule == ""
	case MarksYes:
		return a.ModuleRule.Valid()
	default:
		return false
	}
}

// Validate checks that every set field holds a known value and that
// ModuleRule is set only when MarksStatus is yes. In-progress answers are
// valid; use IsTerminal to check completeness.
func (a Answers) Validate() error {
	if a.TaskType != "" && !a.TaskType.Valid() {
		return fmt.Errorf("task type %q: %w", a.TaskType, ErrInvalidValue)
	}
	if a.MarksStatus != "" && !a.MarksStatus.Valid() {
		return fmt.Errorf("marks status %q: %w", a.MarksStatus, ErrInvalidValue)
	}
	if a.ModuleRule != "" && !a.ModuleRule.Valid() {
		return fmt.Errorf("module rule %q: %w", a.ModuleRule, ErrInvalidValue)
	}
	if a.ModuleRule != "" && a.MarksStatus != MarksYes {
		return fmt.Errorf("module rule set with marks status %q: %w", a.MarksStatus, ErrMalformedAnswers)
	}
	if a.MarksStatus != "" && a.TaskType == "" {
		return fmt.Errorf("marks status set without task type: %w", ErrMalformedAnswers)
	}
	return nil
}

// String renders the answers as task/marks/rule with "-" for unset fields.
func (a Answers) String() string {
	return fmt.Sprintf("%s/%s/%s", orDash(string(a.TaskType)), orDash(string(a.MarksStatus)), orDash(string(a.ModuleRule)))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
