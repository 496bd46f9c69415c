// Package auditlog records how a student used AI during a piece of work and
// compiles the trail into a declaration they can submit with it.
package auditlog

import (
	"strings"

	"github.com/alexanderramin/aiguide/internal/domain"
	"github.com/google/uuid"
)

// Draft is an entry as typed by the user, before it is accepted.
type Draft struct {
	Prompt     string `yaml:"prompt"`
	Output     string `yaml:"output"`
	Refinement string `yaml:"refinement"`
}

// Log is an ordered, append-only collection of entries. Insertion order is
// the chronological usage trail.
type Log struct {
	entries []domain.LogEntry
	newID   func() string
}

// Option configures a Log.
type Option func(*Log)

// WithIDFunc replaces the ID generator.
func WithIDFunc(fn func() string) Option {
	return func(l *Log) { l.newID = fn }
}

// New returns an empty Log. IDs are time-ordered UUIDs unless overridden.
func New(opts ...Option) *Log {
	l := &Log{newID: newEntryID}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Append adds d to the end of the log. A prompt that is blank after trimming
// is rejected and ok is false; nothing is recorded.
func (l *Log) Append(d Draft) (entry domain.LogEntry, ok bool) {
	if strings.TrimSpace(d.Prompt) == "" {
		return domain.LogEntry{}, false
	}
	entry = domain.LogEntry{
		ID:         l.newID(),
		Prompt:     d.Prompt,
		Output:     d.Output,
		Refinement: d.Refinement,
	}
	l.entries = append(l.entries, entry)
	return entry, true
}

// Remove deletes the entry with the given ID. Unknown IDs are ignored.
func (l *Log) Remove(id string) bool {
	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns a copy of the entries in insertion order.
func (l *Log) Entries() []domain.LogEntry {
	out := make([]domain.LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}
