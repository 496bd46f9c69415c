package cli

import (
	"github.com/alexanderramin/aiguide/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewID identifies each type of view in the TUI.
type ViewID int

const (
	ViewHome ViewID = iota
	ViewCompliance
	ViewImpact
	ViewCritical
	ViewLog
	ViewDeclaration
	ViewForm
)

// View is the interface that all TUI views must implement.
// It extends tea.Model with navigation and help metadata.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // breadcrumb segment for this view
}

// viewIDForMode maps a session mode to the view that renders it.
func viewIDForMode(m domain.Mode) ViewID {
	switch m {
	case domain.ModeCompliance:
		return ViewCompliance
	case domain.ModeAdvice:
		return ViewImpact
	case domain.ModeCriticalThinking:
		return ViewCritical
	case domain.ModeLog:
		return ViewLog
	default:
		return ViewHome
	}
}

// newModeView builds the view for a session mode.
func newModeView(state *SharedState, m domain.Mode) View {
	switch m {
	case domain.ModeCompliance:
		return newComplianceView(state)
	case domain.ModeAdvice:
		return newImpactView(state)
	case domain.ModeCriticalThinking:
		return newCriticalView(state)
	case domain.ModeLog:
		return newLogView(state)
	default:
		return newHomeView(state)
	}
}
