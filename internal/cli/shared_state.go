package cli

import "github.com/alexanderramin/aiguide/internal/session"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App     *App
	Session *session.Session

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}

// ContentWidth returns the wrap width for paragraphs, leaving a margin.
func (s *SharedState) ContentWidth() int {
	w := s.Width - 4
	if w < 20 {
		return 0
	}
	return w
}
