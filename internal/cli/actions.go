package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/aiguide/internal/config"
	"github.com/alexanderramin/aiguide/internal/platform"
	"github.com/alexanderramin/aiguide/internal/session"
	tea "github.com/charmbracelet/bubbletea"
)

// copyResultMsg reports the outcome of a clipboard write started by copyCmd.
type copyResultMsg struct {
	what string
	err  error
}

// shareResultMsg reports the outcome of a share started by shareCmd.
type shareResultMsg struct {
	url     string
	outcome platform.ShareOutcome
	err     error
}

// copyCmd writes text to the clipboard off the update loop. The session is
// never touched from the Cmd; the result comes back as a copyResultMsg.
func copyCmd(state *SharedState, text, what string) tea.Cmd {
	clip := state.App.clipboard()
	return func() tea.Msg {
		return copyResultMsg{what: what, err: clip.WriteText(text)}
	}
}

// shareCmd shares the guide link, falling back to copying it.
func shareCmd(state *SharedState) tea.Cmd {
	app := state.App
	url := app.shareURL()
	return func() tea.Msg {
		req := platform.ShareRequest{Title: shareTitle, Text: shareText, URL: url}
		outcome, err := platform.ShareOrCopy(context.Background(), app.sharer(), app.clipboard(), req)
		return shareResultMsg{url: url, outcome: outcome, err: err}
	}
}

func (m *appModel) copyAck(msg copyResultMsg) string {
	if msg.err != nil {
		m.state.Session.Report(session.EventClipboardFailed, msg.err, "target", msg.what)
		return "Copy failed"
	}
	return "✔ Copied to Clipboard"
}

func (m *appModel) shareAck(msg shareResultMsg) string {
	switch msg.outcome {
	case platform.OutcomeShared:
		return "✔ Shared"
	case platform.OutcomeCopied:
		m.state.Session.Report(session.EventShareFallback, nil, "url", msg.url)
		return "✔ Link copied to clipboard!"
	default:
		m.state.Session.Report(session.EventShareFailed, msg.err, "url", msg.url)
		return "Share failed"
	}
}

func (a *App) copyAckDelay() time.Duration {
	if a.Config.CopyAck <= 0 {
		return config.Default().CopyAck
	}
	return a.Config.CopyAck
}

func (a *App) shareURL() string {
	if a.Config.ShareURL == "" {
		return config.Default().ShareURL
	}
	return a.Config.ShareURL
}
