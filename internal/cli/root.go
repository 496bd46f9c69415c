package cli

import (
	"errors"
	"time"

	"github.com/alexanderramin/aiguide/internal/config"
	"github.com/alexanderramin/aiguide/internal/platform"
	"github.com/alexanderramin/aiguide/internal/session"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	// ErrRuleRequired indicates a graded task checked without its module rule.
	ErrRuleRequired = errors.New("--rule is required when --marks=yes")

	// ErrPromptIndexRequired indicates --copy on the think command without a
	// prompt number.
	ErrPromptIndexRequired = errors.New("a prompt number is required with --copy")
)

// App holds the collaborators used by CLI commands and the TUI.
type App struct {
	Config    config.Config
	Clipboard platform.Clipboard
	Sharer    platform.Sharer
	Observer  session.Observer

	// Now returns the current time; declarations are dated with it.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. The bare aiguide
	// command opens the TUI only when it returns true.
	IsInteractive func() bool

	// RunTUI runs the interactive program. Nil uses a full-screen
	// bubbletea program.
	RunTUI func(app *App) error
}

// NewSession starts a session wired to the app's observer.
func (a *App) NewSession(opts ...session.Option) *session.Session {
	opts = append([]session.Option{session.WithObserver(a.observer())}, opts...)
	return session.New(opts...)
}

func (a *App) observer() session.Observer {
	if a.Observer == nil {
		return session.NoopObserver{}
	}
	return a.Observer
}

func (a *App) clipboard() platform.Clipboard {
	if a.Clipboard == nil {
		return platform.NoClipboard{}
	}
	return a.Clipboard
}

func (a *App) sharer() platform.Sharer {
	if a.Sharer == nil {
		return platform.NoShare{}
	}
	return a.Sharer
}

func (a *App) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// NewRootCmd creates the top-level "aiguide" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "aiguide",
		Short: "Check whether you may use AI for your coursework, and how to use it well",
		Long: `aiguide walks you through three questions about your task and tells you
whether AI use is safe, what to watch out for and which prompt to start with.
It also keeps an audit log of your AI use and compiles it into a declaration.

Run without arguments in a terminal to open the interactive guide.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			if app.RunTUI != nil {
				return app.RunTUI(app)
			}
			return runTUI(app)
		},
	}

	root.AddCommand(
		newCheckCmd(app),
		newPromptCmd(app),
		newMatrixCmd(app),
		newDeclareCmd(app),
		newThinkCmd(app),
		newImpactCmd(app),
		newShareCmd(app),
	)

	return root
}

func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
