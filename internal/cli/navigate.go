package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes an overlay view (form, declaration) onto the
// navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current overlay off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// sessionChangedMsg is sent after a view mutates the session. The appModel
// rebuilds the mode view when the session mode changed.
type sessionChangedMsg struct{}

// flashMsg carries a transient acknowledgement shown in the status bar.
type flashMsg struct {
	text string
}

// clearFlashMsg clears the flash with the matching sequence number. Older
// ticks are ignored so a new flash is not cut short.
type clearFlashMsg struct {
	seq int
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// sessionChanged returns a tea.Cmd that resyncs the view stack.
func sessionChanged() tea.Cmd {
	return func() tea.Msg { return sessionChangedMsg{} }
}

// flash returns a tea.Cmd that shows text in the status bar.
func flash(text string) tea.Cmd {
	return func() tea.Msg { return flashMsg{text: text} }
}
