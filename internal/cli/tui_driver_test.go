package cli

import (
	"testing"

	"github.com/alexanderramin/aiguide/internal/session"
	"github.com/alexanderramin/aiguide/internal/teatest"
)

// TestDriver wraps teatest.Driver with aiguide-specific inspection methods.
// It provides access to appModel internals (view stack, shared state,
// session) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── aiguide-specific inspection ──────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	return viewIDs(d.appModel())
}

// Session returns the live session behind the TUI.
func (d *TestDriver) Session() *session.Session {
	return d.appModel().state.Session
}

// Flash returns the status bar acknowledgement, if any.
func (d *TestDriver) Flash() string {
	return d.appModel().flash
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
