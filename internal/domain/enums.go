package domain

import "fmt"

// TaskType is the kind of academic work the student is asking about.
type TaskType string

const (
	TaskAssignment TaskType = "assignment"
	TaskStudy      TaskType = "study"
	TaskResearch   TaskType = "research"
)

// MarksStatus records whether the task counts toward a mark.
type MarksStatus string

const (
	MarksYes    MarksStatus = "yes"    // summative
	MarksNo     MarksStatus = "no"     // formative
	MarksUnsure MarksStatus = "unsure" // might count, treated as summative
)

// ModuleRule is the AI-use policy an instructor set for a graded task.
type ModuleRule string

const (
	RuleFull    ModuleRule = "full"
	RuleLimited ModuleRule = "limited"
	RuleNone    ModuleRule = "none"
	RuleUnknown ModuleRule = "unknown"
)

// RiskTier classifies a verdict.
type RiskTier string

const (
	TierSafe    RiskTier = "safe"
	TierCaution RiskTier = "caution"
	TierDanger  RiskTier = "danger"
)

// LogContext selects the title and tips shown for the audit log.
type LogContext string

const (
	LogGeneric    LogContext = "generic"
	LogAssignment LogContext = "assignment"
	LogResearch   LogContext = "research"
	LogStudy      LogContext = "study"
)

// Mode is the top-level area of the guide the user is in.
type Mode string

const (
	ModeHome             Mode = ""
	ModeCompliance       Mode = "compliance"
	ModeAdvice           Mode = "advice"
	ModeCriticalThinking Mode = "critical-thinking"
	ModeLog              Mode = "log"
)

// TaskTypes lists every task type in display order.
var TaskTypes = []TaskType{TaskAssignment, TaskStudy, TaskResearch}

// MarksStatuses lists every marks status in display order.
var MarksStatuses = []MarksStatus{MarksYes, MarksNo, MarksUnsure}

// ModuleRules lists every module rule in display order.
var ModuleRules = []ModuleRule{RuleFull, RuleLimited, RuleNone, RuleUnknown}

func (t TaskType) Valid() bool {
	switch t {
	case TaskAssignment, TaskStudy, TaskResearch:
		return true
	}
	return false
}

func (m MarksStatus) Valid() bool {
	switch m {
	case MarksYes, MarksNo, MarksUnsure:
		return true
	}
	return false
}

func (r ModuleRule) Valid() bool {
	switch r {
	case RuleFull, RuleLimited, RuleNone, RuleUnknown:
		return true
	}
	return false
}

func (c LogContext) Valid() bool {
	switch c {
	case LogGeneric, LogAssignment, LogResearch, LogStudy:
		return true
	}
	return false
}

// ParseTaskType converts user input into a TaskType.
func ParseTaskType(s string) (TaskType, error) {
	t := TaskType(s)
	if !t.Valid() {
		return "", fmt.Errorf("task type %q: %w", s, ErrInvalidValue)
	}
	return t, nil
}

// ParseMarksStatus converts user input into a MarksStatus.
func ParseMarksStatus(s string) (MarksStatus, error) {
	m := MarksStatus(s)
	if !m.Valid() {
		return "", fmt.Errorf("marks status %q: %w", s, ErrInvalidValue)
	}
	return m, nil
}

// ParseModuleRule converts user input into a ModuleRule.
func ParseModuleRule(s string) (ModuleRule, error) {
	r := ModuleRule(s)
	if !r.Valid() {
		return "", fmt.Errorf("module rule %q: %w", s, ErrInvalidValue)
	}
	return r, nil
}

// ParseLogContext converts user input into a LogContext. Empty input maps to
// the generic context.
func ParseLogContext(s string) (LogContext, error) {
	if s == "" {
		return LogGeneric, nil
	}
	c := LogContext(s)
	if !c.Valid() {
		return "", fmt.Errorf("log context %q: %w", s, ErrInvalidValue)
	}
	return c, nil
}

// LogContextFor returns the audit-log context matching a task type.
func LogContextFor(t TaskType) LogContext {
	switch t {
	case TaskAssignment:
		return LogAssignment
	case TaskResearch:
		return LogResearch
	case TaskStudy:
		return LogStudy
	default:
		return LogGeneric
	}
}
