// Package prompt selects the instruction template a student can paste into
// an AI tool for their situation.
package prompt

import (
	"strings"

	"github.com/alexanderramin/aiguide/internal/domain"
)

const (
	tutorStudy = "I am studying this topic. Act as a strict tutor. Ask me 3 challenging questions to test my understanding. " +
		"Wait for my answer, then correct me if I am wrong. Do not just give me the summary."
	plannerAssignment = "I am planning an assignment on this topic. Help me brainstorm 3 different angles or structural outlines. " +
		"Do not write the content, just help me organize my thoughts."
	explainResearch = "I am reading complex research. Explain the key concepts in simple language to help me understand. " +
		"Do not replace the reading."

	askLecturer = "I need to ask my lecturer if AI is allowed. Write a polite, specific email asking if I can use AI for " +
		"[insert specific task] in this assignment. Mention that I want to use it responsibly."

	studySchedule = "I cannot use AI for this task. Please give me a study schedule to break this task down into small steps " +
		"so I can do it myself without being overwhelmed."

	editorAssignment = "I have written this draft myself. Please highlight sentences that are unclear or grammatically incorrect. " +
		"Do NOT rewrite the content or add new ideas. I must do the main thinking."
	quizStudy = "Generate 5 practice questions on this topic similar to what might be in an exam. " +
		"Do not give the answers immediately. Let me try first."
	codingResearch = "I am analysing qualitative data. I will paste my own thematic notes. Suggest a coding structure. " +
		"Do not generate new themes."

	criticAssignment = "I have outlined my argument below. Act as a critical lecturer: point out gaps in my logic, weak evidence, " +
		"or counter-arguments I missed. Do not write the essay for me."
	analogyStudy = "Explain this concept using a real-world analogy to help me remember it. " +
		"Then ask me to explain it back to you to check if I really understand it."
	searchResearch = "I am conducting research. Suggest 5 specific search terms for academic databases and identify key authors. " +
		"Do not provide a bibliography."

	clarifyRules = "I need to clarify the AI rules for my module. Draft a message to my lecturer asking specifically if " +
		"[insert task] is permitted under the module outline."
)

// PrivacyWarning is shown next to every generated prompt.
const PrivacyWarning = "Never paste sensitive data (names, IDs, unpublished research) into AI. " +
	"If you cite authors, you must verify they exist yourself."

type ruleKey struct {
	task domain.TaskType
	rule domain.ModuleRule
}

// summative holds the templates for graded work, keyed by task and rule.
var summative = map[ruleKey]string{
	{domain.TaskAssignment, domain.RuleFull}:    criticAssignment,
	{domain.TaskStudy, domain.RuleFull}:         analogyStudy,
	{domain.TaskResearch, domain.RuleFull}:      searchResearch,
	{domain.TaskAssignment, domain.RuleLimited}: editorAssignment,
	{domain.TaskStudy, domain.RuleLimited}:      quizStudy,
	{domain.TaskResearch, domain.RuleLimited}:   codingResearch,
	{domain.TaskAssignment, domain.RuleNone}:    studySchedule,
	{domain.TaskStudy, domain.RuleNone}:         studySchedule,
	{domain.TaskResearch, domain.RuleNone}:      studySchedule,
	{domain.TaskAssignment, domain.RuleUnknown}: clarifyRules,
	{domain.TaskStudy, domain.RuleUnknown}:      clarifyRules,
	{domain.TaskResearch, domain.RuleUnknown}:   clarifyRules,
}

// formative holds the templates for practice work, keyed by task.
var formative = map[domain.TaskType]string{
	domain.TaskStudy:      tutorStudy,
	domain.TaskAssignment: plannerAssignment,
	domain.TaskResearch:   explainResearch,
}

// Generate returns the safe prompt for a, or "" when a is not terminal.
// Callers check a.IsTerminal() rather than treating "" as an error.
func Generate(a domain.Answers) string {
	if !a.IsTerminal() {
		return ""
	}
	switch a.MarksStatus {
	case domain.MarksYes:
		return summative[ruleKey{a.TaskType, a.ModuleRule}]
	case domain.MarksNo:
		return formative[a.TaskType]
	case domain.MarksUnsure:
		return askLecturer
	}
	return ""
}

// Segment is a run of template text. Placeholder segments hold the text
// between the brackets.
type Segment struct {
	Text        string
	Placeholder bool
}

// Segments splits text into literal runs and [bracketed] placeholders. An
// unclosed bracket is kept as literal text.
func Segments(text string) []Segment {
	var out []Segment
	rest := text
	for rest != "" {
		open := strings.IndexByte(rest, '[')
		if open < 0 {
			out = append(out, Segment{Text: rest})
			break
		}
		end := strings.IndexByte(rest[open:], ']')
		if end < 0 {
			out = append(out, Segment{Text: rest})
			break
		}
		end += open
		if open > 0 {
			out = append(out, Segment{Text: rest[:open]})
		}
		out = append(out, Segment{Text: rest[open+1 : end], Placeholder: true})
		rest = rest[end+1:]
	}
	return out
}

// Placeholders lists the placeholder names in text, in order.
func Placeholders(text string) []string {
	var names []string
	for _, s := range Segments(text) {
		if s.Placeholder {
			names = append(names, s.Text)
		}
	}
	return names
}
