package cli

import (
	"fmt"

	"github.com/alexanderramin/aiguide/internal/cli/formatter"
	"github.com/alexanderramin/aiguide/internal/domain"
	"github.com/alexanderramin/aiguide/internal/policy"
	"github.com/alexanderramin/aiguide/internal/session"
	"github.com/spf13/cobra"
)

func newCheckCmd(app *App) *cobra.Command {
	var showPrompt bool
	var flags *answerFlags

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether AI use is allowed for a task",
		Example: `  aiguide check --task assignment --marks yes --rule limited
  aiguide check --task study --marks no --prompt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.NewSession()
			if err := answerFromFlags(s, flags); err != nil {
				return err
			}
			v, err := s.Verdict()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatVerdict(s.Answers(), v))
			if showPrompt {
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.FormatPrompt(s.Prompt()))
			}
			return nil
		},
	}

	flags = bindAnswerFlags(cmd.Flags())
	cmd.Flags().BoolVar(&showPrompt, "prompt", false, "also show the safe prompt")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("marks")

	return cmd
}

func newPromptCmd(app *App) *cobra.Command {
	var copyOut bool
	var flags *answerFlags

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the safe prompt for a task",
		Long: `Print the safe prompt for a task as plain text, ready to paste into an
AI tool. Placeholders in [brackets] must be replaced before use.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := app.NewSession()
			if err := answerFromFlags(s, flags); err != nil {
				return err
			}
			text := s.Prompt()
			fmt.Fprintln(cmd.OutOrStdout(), text)
			if copyOut {
				copyFromCmd(cmd, app, s, text, "prompt")
			}
			return nil
		},
	}

	flags = bindAnswerFlags(cmd.Flags())
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the prompt to the clipboard")
	_ = cmd.MarkFlagRequired("task")
	_ = cmd.MarkFlagRequired("marks")

	return cmd
}

func newMatrixCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "matrix",
		Short: "List the risk tier of every answer combination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := verdictMatrix()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMatrix(rows))
			return nil
		},
	}
}

// answerFromFlags feeds the flag values through the session in wizard
// order, so the same gating applies as in the interactive guide.
func answerFromFlags(s *session.Session, f *answerFlags) error {
	if err := s.SelectTaskType(f.task.value); err != nil {
		return fmt.Errorf("--task: %w", err)
	}
	if err := s.SelectMarksStatus(f.marks.value); err != nil {
		return fmt.Errorf("--marks: %w", err)
	}
	if f.marks.value == domain.MarksYes && !f.rule.IsSet() {
		return ErrRuleRequired
	}
	if f.rule.IsSet() {
		if err := s.SelectModuleRule(f.rule.value); err != nil {
			return fmt.Errorf("--rule: %w", err)
		}
	}
	return nil
}

// verdictMatrix resolves every terminal combination in display order.
func verdictMatrix() ([]formatter.MatrixRow, error) {
	var rows []formatter.MatrixRow
	add := func(a domain.Answers) error {
		v, err := policy.Resolve(a)
		if err != nil {
			return err
		}
		rows = append(rows, formatter.MatrixRow{Answers: a, Tier: v.Tier})
		return nil
	}

	for _, t := range domain.TaskTypes {
		for _, m := range domain.MarksStatuses {
			if m != domain.MarksYes {
				if err := add(domain.Answers{TaskType: t, MarksStatus: m}); err != nil {
					return nil, err
				}
				continue
			}
			for _, r := range domain.ModuleRules {
				if err := add(domain.Answers{TaskType: t, MarksStatus: m, ModuleRule: r}); err != nil {
					return nil, err
				}
			}
		}
	}
	return rows, nil
}

// copyFromCmd writes text to the clipboard. A failure is reported on stderr
// and through the observer but never fails the command.
func copyFromCmd(cmd *cobra.Command, app *App, s *session.Session, text, what string) {
	if err := app.clipboard().WriteText(text); err != nil {
		s.Report(session.EventClipboardFailed, err, "target", what)
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleYellow.Render(fmt.Sprintf("Copy failed: %v", err)))
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleGreen.Render("✔ Copied to clipboard"))
}
