package auditlog

import "github.com/alexanderramin/aiguide/internal/domain"

// Intro explains what the audit log is for.
const Intro = "Academic integrity isn't just about saying \"I didn't cheat\". It is about showing how you used the tool. " +
	"Record your prompts, the output, and most importantly how you refined it."

// Title returns the log heading for ctx.
func Title(ctx domain.LogContext) string {
	switch ctx {
	case domain.LogAssignment:
		return "Assignment Audit Log"
	case domain.LogResearch:
		return "Research Audit Log"
	case domain.LogStudy:
		return "Study Session Log"
	default:
		return "AI Audit Log"
	}
}

// Description returns the one-line purpose of the log for ctx.
func Description(ctx domain.LogContext) string {
	switch ctx {
	case domain.LogAssignment:
		return "Track how you used AI to support your writing. Focus on how you refined the output."
	case domain.LogResearch:
		return "Track your search terms and methodology. Ensure no private data was shared."
	case domain.LogStudy:
		return "Track your revision questions. Ensure you double-checked the facts."
	default:
		return "Track your process. Prove your integrity."
	}
}

// Tip returns a context-specific hint, or "" for the generic log.
func Tip(ctx domain.LogContext) string {
	switch ctx {
	case domain.LogAssignment:
		return "Tip: Focus on how you critiqued the AI's draft."
	case domain.LogResearch:
		return "Tip: Confirm you verified every citation."
	case domain.LogStudy:
		return "Tip: Log the questions you asked to test yourself."
	default:
		return ""
	}
}
