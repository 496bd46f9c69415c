package wizard

import "github.com/alexanderramin/aiguide/internal/domain"

// Option is one selectable answer to a question.
type Option struct {
	Value       string
	Label       string
	Description string
}

// Question is the prompt shown for a wizard step.
type Question struct {
	Number  int
	Title   string
	Hint    string
	Options []Option
}

var taskOptions = []Option{
	{Value: string(domain.TaskAssignment), Label: "Assignment", Description: "Writing, production, exam equivalents"},
	{Value: string(domain.TaskStudy), Label: "Study", Description: "Revision, preparing for exams"},
	{Value: string(domain.TaskResearch), Label: "Research", Description: "Thesis, data, ethics"},
}

var marksOptions = []Option{
	{Value: string(domain.MarksYes), Label: "Yes (Summative)", Description: "Assignments, tests, final thesis"},
	{Value: string(domain.MarksNo), Label: "No (Formative)", Description: "Personal notes, practice only"},
	{Value: string(domain.MarksUnsure), Label: "Not Sure", Description: "Might count for marks"},
}

var ruleOptions = []Option{
	{Value: string(domain.RuleFull), Label: "Full AI Use", Description: "Allowed with disclosure"},
	{Value: string(domain.RuleLimited), Label: "Limited Use", Description: "Specific tasks only (e.g. grammar)"},
	{Value: string(domain.RuleNone), Label: "No AI Use", Description: "Strictly prohibited"},
	{Value: string(domain.RuleUnknown), Label: "Unknown", Description: "Not specified"},
}

// QuestionFor returns the question for step. ok is false for the result
// step, which has no question.
func QuestionFor(step domain.Step, a domain.Answers) (q Question, ok bool) {
	switch step {
	case domain.StepTask:
		return Question{Number: 1, Title: "What are you working on?", Options: taskOptions}, true
	case domain.StepMarks:
		return Question{Number: 2, Title: "Is this for marks?", Options: marksOptions}, true
	case domain.StepRule:
		hint := "Your module outline is the final authority. What is allowed?"
		if a.TaskType == domain.TaskResearch {
			hint = "Your supervisor and ethical clearance dictate the rules. What is allowed?"
		}
		return Question{Number: 3, Title: "Check your Guidelines", Hint: hint, Options: ruleOptions}, true
	}
	return Question{}, false
}

// StepTitle is the header shown above a step.
func StepTitle(step domain.Step) string {
	switch step {
	case domain.StepTask:
		return "Step 1: The Context"
	case domain.StepMarks:
		return "Step 2: Assessment"
	case domain.StepRule:
		return "Step 3: The Rules"
	case domain.StepResult:
		return "Your Result"
	}
	return ""
}

// Progress returns how far through the wizard step is, in percent.
func Progress(step domain.Step) int {
	switch step {
	case domain.StepTask:
		return 25
	case domain.StepMarks:
		return 50
	case domain.StepRule:
		return 75
	case domain.StepResult:
		return 100
	}
	return 0
}

// OptionLabel returns the display label for value at step, or value itself
// when it is not one of the step's options.
func OptionLabel(step domain.Step, value string) string {
	var opts []Option
	switch step {
	case domain.StepTask:
		opts = taskOptions
	case domain.StepMarks:
		opts = marksOptions
	case domain.StepRule:
		opts = ruleOptions
	}
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
