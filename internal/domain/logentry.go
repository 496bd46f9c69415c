package domain

// LogEntry is one step of the AI usage trail: what was asked, what came back
// and how the student changed or verified it.
type LogEntry struct {
	ID         string
	Prompt     string
	Output     string
	Refinement string
}
