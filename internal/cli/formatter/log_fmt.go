package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aiguide/internal/auditlog"
	"github.com/alexanderramin/aiguide/internal/domain"
)

func logLabel(label string) string {
	return StyleBlue.Render(fmt.Sprintf("%-13s", strings.ToUpper(label)))
}

// FormatLogHeader renders the log title, purpose and context tip.
func FormatLogHeader(ctx domain.LogContext) string {
	var b strings.Builder
	b.WriteString(Header(auditlog.Title(ctx)))
	b.WriteString("\n")
	b.WriteString(Dim(auditlog.Description(ctx)))
	b.WriteString("\n")
	if tip := auditlog.Tip(ctx); tip != "" {
		b.WriteString(StyleYellow.Render(tip))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatLogEntry renders entry n (1-based) as a three-step timeline block.
func FormatLogEntry(n int, e domain.LogEntry) string {
	var b strings.Builder
	num := StyleHeader.Render(fmt.Sprintf("%2d.", n))
	b.WriteString(fmt.Sprintf("  %s %s %s\n", num, logLabel("The Prompt"), e.Prompt))
	b.WriteString(fmt.Sprintf("      %s %s\n", logLabel("AI Output"), orDim(e.Output, "No summary recorded")))
	b.WriteString(fmt.Sprintf("      %s %s\n", logLabel("My Refinement"), orDim(e.Refinement, "No refinement recorded")))
	return b.String()
}

// FormatLog renders the log header followed by the entry timeline.
func FormatLog(ctx domain.LogContext, entries []domain.LogEntry) string {
	var b strings.Builder
	b.WriteString(FormatLogHeader(ctx))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(Dim("  No entries yet. Start your log."))
		b.WriteString("\n")
		return b.String()
	}

	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatLogEntry(i+1, e))
	}
	return b.String()
}
