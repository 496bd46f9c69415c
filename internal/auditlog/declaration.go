package auditlog

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/aiguide/internal/domain"
)

// DateLayout is the format of the Date line in a declaration.
const DateLayout = "2006-01-02"

const (
	NoSummary    = "(No summary provided)"
	NoRefinement = "(No refinement recorded)"

	declarationHeader = "AI USAGE DECLARATION - AUDIT LOG"
	declarationBody   = "I declare that I have used Artificial Intelligence tools in the preparation of this work as detailed below.\n" +
		"I have verified all information and the final submission reflects my own understanding and voice."
	declarationEnd = "[End of Declaration]"
	separator      = "------------------------------------------"
)

// CompileDeclaration renders entries as a plain-text declaration dated date.
// The output depends only on its arguments.
func CompileDeclaration(entries []domain.LogEntry, date time.Time) string {
	var b strings.Builder
	b.WriteString(declarationHeader + "\n")
	fmt.Fprintf(&b, "Date: %s\n\n", date.Format(DateLayout))
	b.WriteString(declarationBody + "\n\n")

	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		writeEntry(&b, i+1, e)
	}
	if len(entries) > 0 {
		b.WriteString("\n\n")
	}

	b.WriteString(declarationEnd)
	return b.String()
}

func writeEntry(b *strings.Builder, n int, e domain.LogEntry) {
	fmt.Fprintf(b, "ENTRY %d:\n", n)
	b.WriteString(separator + "\n")
	b.WriteString("STEP 1: THE PROMPT (What I asked)\n")
	fmt.Fprintf(b, "\"%s\"\n\n", e.Prompt)
	b.WriteString("STEP 2: AI OUTPUT (Summary of result)\n")
	b.WriteString(orMarker(e.Output, NoSummary) + "\n\n")
	b.WriteString("STEP 3: REFINEMENT (How I verified/changed it)\n")
	b.WriteString(orMarker(e.Refinement, NoRefinement) + "\n")
	b.WriteString(separator)
}

// orMarker keeps gaps visible in a printed declaration.
func orMarker(s, marker string) string {
	if strings.TrimSpace(s) == "" {
		return marker
	}
	return s
}
