package cli

import (
	"github.com/alexanderramin/aiguide/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// scrollPane is a viewport over pre-rendered text. Before the first
// WindowSizeMsg it has no size and renders the text unclipped.
type scrollPane struct {
	vp      viewport.Model
	content string
	reserve int // lines used by the owning view outside the pane
}

func newScrollPane(state *SharedState, reserve int) scrollPane {
	vp := viewport.New(0, 0)
	vp.KeyMap = scrollKeyMap()
	p := scrollPane{vp: vp, reserve: reserve}
	p.resize(state)
	return p
}

func (p *scrollPane) resize(state *SharedState) {
	if state.Height == 0 {
		return
	}
	p.vp.Width = state.ContentWidth()
	p.vp.Height = max(state.ContentHeight()-p.reserve, 1)
	p.vp.SetContent(formatter.Wrap(p.content, p.vp.Width))
}

func (p *scrollPane) setContent(s string) {
	p.content = s
	p.vp.SetContent(formatter.Wrap(s, p.vp.Width))
}

// update scrolls on arrow and page keys and resizes on window changes.
func (p *scrollPane) update(state *SharedState, msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.WindowSizeMsg); ok {
		p.resize(state)
		return nil
	}
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return cmd
}

func (p *scrollPane) view() string {
	if p.vp.Height == 0 {
		return p.content
	}
	return p.vp.View()
}

// scrollKeyMap returns a restricted keymap for scroll panes.
// Only arrow/page keys scroll so letter keys stay free for view actions.
func scrollKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}
