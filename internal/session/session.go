// Package session owns the state of one guide session: the current mode,
// the compliance answers, the open critical-thinking prompt and the audit
// log. All methods run synchronously on the caller's goroutine; a Session is
// not safe for concurrent use.
package session

import (
	"fmt"
	"time"

	"github.com/alexanderramin/aiguide/internal/auditlog"
	"github.com/alexanderramin/aiguide/internal/domain"
	"github.com/alexanderramin/aiguide/internal/policy"
	"github.com/alexanderramin/aiguide/internal/prompt"
	"github.com/alexanderramin/aiguide/internal/wizard"
)

// noPrompt marks that no critical-thinking prompt is open.
const noPrompt = -1

// Session is the single owner of guide state.
type Session struct {
	mode         domain.Mode
	answers      domain.Answers
	activePrompt int

	log        *auditlog.Log
	logContext domain.LogContext

	observer     Observer
	lookupPrompt func(domain.Answers) string
}

// Option configures a Session.
type Option func(*Session)

// WithObserver sets the event observer.
func WithObserver(o Observer) Option {
	return func(s *Session) {
		if o != nil {
			s.observer = o
		}
	}
}

// WithLog replaces the audit log, e.g. one with deterministic IDs.
func WithLog(l *auditlog.Log) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// New starts a session on the home screen with nothing answered.
func New(opts ...Option) *Session {
	s := &Session{
		activePrompt: noPrompt,
		log:          auditlog.New(),
		logContext:   domain.LogGeneric,
		observer:     NoopObserver{},
		lookupPrompt: prompt.Generate,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ── outbound ──────────────────────────────────────────────────────────────────

func (s *Session) Mode() domain.Mode             { return s.mode }
func (s *Session) Answers() domain.Answers       { return s.answers }
func (s *Session) LogContext() domain.LogContext { return s.logContext }

// Step returns the wizard step derived from the current answers.
func (s *Session) Step() domain.Step {
	return wizard.ComputeStep(s.answers)
}

// Verdict resolves the current answers. It fails until they are terminal.
func (s *Session) Verdict() (policy.Verdict, error) {
	return policy.Resolve(s.answers)
}

// Prompt returns the safe prompt for the current answers, or "" while they
// are incomplete.
func (s *Session) Prompt() string {
	return s.lookupPrompt(s.answers)
}

// LogEntries returns the audit log in insertion order.
func (s *Session) LogEntries() []domain.LogEntry {
	return s.log.Entries()
}

// Declaration compiles the audit log dated date.
func (s *Session) Declaration(date time.Time) string {
	return auditlog.CompileDeclaration(s.log.Entries(), date)
}

// ActivePrompt returns the open critical-thinking prompt index and whether
// one is open.
func (s *Session) ActivePrompt() (int, bool) {
	return s.activePrompt, s.activePrompt != noPrompt
}

// ── inbound ───────────────────────────────────────────────────────────────────

// Enter switches to mode. Entering the log from anywhere but a result uses
// the generic log context.
func (s *Session) Enter(mode domain.Mode) {
	if mode == domain.ModeLog {
		s.logContext = domain.LogGeneric
	}
	if mode != domain.ModeCriticalThinking {
		s.activePrompt = noPrompt
	}
	s.mode = mode
	s.emit(EventModeEntered, nil, "mode", modeName(mode))
}

// SelectTaskType answers the first question, clearing later answers when the
// task changes.
func (s *Session) SelectTaskType(t domain.TaskType) error {
	return s.apply("task_type", string(t), func(a domain.Answers) (domain.Answers, error) {
		return wizard.WithTaskType(a, t)
	})
}

// SelectMarksStatus answers the second question. Anything but yes clears
// the module rule.
func (s *Session) SelectMarksStatus(m domain.MarksStatus) error {
	return s.apply("marks_status", string(m), func(a domain.Answers) (domain.Answers, error) {
		return wizard.WithMarksStatus(a, m)
	})
}

// SelectModuleRule answers the third question.
func (s *Session) SelectModuleRule(r domain.ModuleRule) error {
	return s.apply("module_rule", string(r), func(a domain.Answers) (domain.Answers, error) {
		return wizard.WithModuleRule(a, r)
	})
}

// Choose answers whichever question is currently shown.
func (s *Session) Choose(value string) error {
	field := fmt.Sprintf("step_%d", s.Step())
	return s.apply(field, value, func(a domain.Answers) (domain.Answers, error) {
		return wizard.Apply(a, value)
	})
}

func (s *Session) apply(field, value string, fn func(domain.Answers) (domain.Answers, error)) error {
	next, err := fn(s.answers)
	if err != nil {
		s.emit(EventAnswerRejected, err, "field", field, "value", value)
		return err
	}
	s.answers = next
	s.mode = domain.ModeCompliance
	s.emit(EventAnswerSelected, nil, "field", field, "value", value, "step", int(s.Step()))
	if next.IsTerminal() && s.lookupPrompt(next) == "" {
		s.emit(EventPromptLookupMiss, nil, "answers", next.String())
	}
	return nil
}

// GoBack moves one screen back. In the compliance wizard it undoes the last
// answer and leaves the wizard from the first question.
func (s *Session) GoBack() {
	switch s.mode {
	case domain.ModeCriticalThinking:
		if s.activePrompt != noPrompt {
			s.activePrompt = noPrompt
			return
		}
		s.mode = domain.ModeAdvice
	case domain.ModeAdvice, domain.ModeLog:
		s.mode = domain.ModeHome
	case domain.ModeCompliance:
		next, exited := wizard.Back(s.answers)
		s.answers = next
		if exited {
			s.mode = domain.ModeHome
		}
		s.emit(EventWizardBack, nil, "answers", s.answers.String(), "exited", exited)
	}
}

// Reset starts over: home screen, nothing answered. The audit log and its
// context are kept for the rest of the session.
func (s *Session) Reset() {
	s.mode = domain.ModeHome
	s.answers = domain.Answers{}
	s.activePrompt = noPrompt
	s.emit(EventSessionReset, nil, "log_entries", s.log.Len())
}

// OpenAuditLog opens the log from a result, titled for the chosen task.
func (s *Session) OpenAuditLog() {
	s.mode = domain.ModeLog
	s.activePrompt = noPrompt
	s.logContext = domain.LogContextFor(s.answers.TaskType)
	s.emit(EventModeEntered, nil, "mode", modeName(domain.ModeLog), "context", string(s.logContext))
}

// SetLogContext changes the log title and tips.
func (s *Session) SetLogContext(ctx domain.LogContext) error {
	if !ctx.Valid() {
		return fmt.Errorf("log context %q: %w", ctx, domain.ErrInvalidValue)
	}
	s.logContext = ctx
	s.emit(EventLogContextSet, nil, "context", string(ctx))
	return nil
}

// AppendLogEntry records an entry. A blank prompt is ignored and ok is false.
func (s *Session) AppendLogEntry(promptText, output, refinement string) (domain.LogEntry, bool) {
	e, ok := s.log.Append(auditlog.Draft{Prompt: promptText, Output: output, Refinement: refinement})
	if !ok {
		s.emit(EventLogEntryRejected, nil, "reason", "blank_prompt")
		return e, false
	}
	s.emit(EventLogEntryAppended, nil, "id", e.ID, "entries", s.log.Len())
	return e, true
}

// DeleteLogEntry removes an entry by ID. Unknown IDs are ignored.
func (s *Session) DeleteLogEntry(id string) {
	if s.log.Remove(id) {
		s.emit(EventLogEntryRemoved, nil, "id", id, "entries", s.log.Len())
	}
}

// OpenCriticalPrompt shows the detail of critical-thinking prompt i.
func (s *Session) OpenCriticalPrompt(i int) error {
	if n := len(prompt.CriticalThinking()); i < 0 || i >= n {
		return fmt.Errorf("critical thinking prompt %d of %d: %w", i, n, domain.ErrInvalidValue)
	}
	s.mode = domain.ModeCriticalThinking
	s.activePrompt = i
	s.emit(EventCriticalPromptOpen, nil, "index", i)
	return nil
}

// Report forwards a collaborator outcome (clipboard, share) to the observer.
// It never changes session state.
func (s *Session) Report(name string, err error, kv ...any) {
	s.emit(name, err, kv...)
}

func (s *Session) emit(name string, err error, kv ...any) {
	fields := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			fields[k] = kv[i+1]
		}
	}
	s.observer.Observe(Event{Name: name, Err: err, Fields: fields})
}

func modeName(m domain.Mode) string {
	if m == domain.ModeHome {
		return "home"
	}
	return string(m)
}
