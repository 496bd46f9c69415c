package session

import (
	"io"
	"log/slog"
)

// Event names emitted by a Session and its callers.
const (
	EventModeEntered        = "mode_entered"
	EventAnswerSelected     = "answer_selected"
	EventAnswerRejected     = "answer_rejected"
	EventWizardBack         = "wizard_back"
	EventSessionReset       = "session_reset"
	EventLogEntryAppended   = "log_entry_appended"
	EventLogEntryRejected   = "log_entry_rejected"
	EventLogEntryRemoved    = "log_entry_removed"
	EventLogContextSet      = "log_context_set"
	EventPromptLookupMiss   = "prompt_lookup_miss"
	EventClipboardFailed    = "clipboard_write_failed"
	EventShareFallback      = "share_fallback"
	EventShareFailed        = "share_failed"
	EventCriticalPromptOpen = "critical_prompt_opened"
)

// Event is one observable state change or collaborator outcome.
type Event struct {
	Name   string
	Err    error
	Fields map[string]any
}

// Observer receives session events.
type Observer interface {
	Observe(event Event)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) Observe(Event) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes events to w as slog text records.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) Observe(event Event) {
	attrs := make([]any, 0, 2+len(event.Fields)*2)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	switch {
	case event.Err != nil:
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.Warn(event.Name, attrs...)
	case event.Name == EventPromptLookupMiss:
		o.logger.Warn(event.Name, attrs...)
	default:
		o.logger.Info(event.Name, attrs...)
	}
}
