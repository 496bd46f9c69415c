package cli

import (
	"strings"
	"time"

	"github.com/alexanderramin/aiguide/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI.
//
// The bottom of the view stack is always the home view. The view above it
// renders the session mode, and any views above that are overlays (forms,
// the declaration) that esc pops before the session is asked to go back.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Transient acknowledgement shown in the status bar.
	flash    string
	flashSeq int
}

func newAppModel(app *App) appModel {
	state := &SharedState{
		App:     app,
		Session: app.NewSession(),
	}
	return appModel{
		state:     state,
		viewStack: []View{newHomeView(state)},
	}
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
// If the stack is empty, this is a no-op.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// syncStack rebuilds the mode view when the session mode no longer matches
// it. Overlays are dropped with the old mode view.
func (m *appModel) syncStack() tea.Cmd {
	mode := m.state.Session.Mode()
	want := viewIDForMode(mode)
	if want == ViewHome {
		m.viewStack = m.viewStack[:1]
		return nil
	}
	if len(m.viewStack) > 1 && m.viewStack[1].ID() == want {
		return nil
	}
	v := newModeView(m.state, mode)
	m.viewStack = []View{m.viewStack[0], v}
	return v.Init()
}

// broadcast forwards msg to every view on the stack.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range m.viewStack {
		updated, cmd := v.Update(msg)
		m.viewStack[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 2 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case sessionChangedMsg:
		// Views reset cursors and reload content from the session.
		syncCmd := m.syncStack()
		return m, tea.Batch(syncCmd, m.broadcast(msg))

	case wizardCompleteMsg:
		// Atomically pop the wizard view and execute the follow-up command.
		if v := m.activeView(); v != nil && v.ID() == ViewForm {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, tea.Batch(msg.nextCmd, sessionChanged())

	case flashMsg:
		return m, m.setFlash(msg.text)

	case clearFlashMsg:
		if msg.seq == m.flashSeq {
			m.flash = ""
		}
		return m, nil

	case copyResultMsg:
		return m, m.setFlash(m.copyAck(msg))

	case shareResultMsg:
		return m, m.setFlash(m.shareAck(msg))
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// If active view captures input (has its own text input), forward directly.
	// This bypasses global keybindings so forms receive every character
	// including 'q', 'R' and Esc.
	if v := m.activeView(); v != nil && viewCapturesInput(v) {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	switch {
	case msg.String() == "q":
		m.quitting = true
		return m, tea.Quit

	case msg.Type == tea.KeyEsc:
		if len(m.viewStack) > 2 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			return m, nil
		}
		m.state.Session.GoBack()
		return m, sessionChanged()

	case msg.String() == "R":
		m.state.Session.Reset()
		return m, sessionChanged()

	case msg.String() == "S":
		return m, shareCmd(m.state)
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("aiguide")

	// Breadcrumb from view stack
	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return title + breadcrumb + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	v := m.activeView()
	if v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if v == nil || !viewCapturesInput(v) {
		if len(m.viewStack) > 1 {
			hints = append(hints, formatter.Dim("esc: back"), formatter.Dim("R: start over"))
		}
		hints = append(hints, formatter.Dim("S: share"), formatter.Dim("q: quit"))
	}
	if m.flash != "" {
		hints = append(hints, formatter.StyleGreen.Render(m.flash))
	}

	bar := strings.Join(hints, "  ")
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// setFlash shows text and schedules its removal after the copy
// acknowledgement delay.
func (m *appModel) setFlash(text string) tea.Cmd {
	m.flashSeq++
	m.flash = text
	seq := m.flashSeq
	return tea.Tick(m.state.App.copyAckDelay(), func(time.Time) tea.Msg {
		return clearFlashMsg{seq: seq}
	})
}

// viewCapturesInput returns true if the active view has its own text input
// and should receive all key events (bypassing global keybindings like q/R/Esc).
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	return v.ID() == ViewForm
}
