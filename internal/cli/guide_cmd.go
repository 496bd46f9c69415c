package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/aiguide/internal/cli/formatter"
	"github.com/alexanderramin/aiguide/internal/domain"
	"github.com/alexanderramin/aiguide/internal/platform"
	"github.com/alexanderramin/aiguide/internal/policy"
	"github.com/alexanderramin/aiguide/internal/prompt"
	"github.com/alexanderramin/aiguide/internal/session"
	"github.com/spf13/cobra"
)

const (
	shareTitle = "Student AI Guide"
	shareText  = "Check if you can use AI for your assignment and how to use it critically."
)

func newThinkCmd(app *App) *cobra.Command {
	var copyOut bool

	cmd := &cobra.Command{
		Use:   "think [n]",
		Short: "Show the critical-thinking prompts",
		Long: `Without arguments, list the critical-thinking prompts. With a number,
show that prompt in full.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompts := prompt.CriticalThinking()
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				if copyOut {
					return ErrPromptIndexRequired
				}
				fmt.Fprint(out, formatter.FormatThinkingList(prompts))
				return nil
			}

			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("prompt number %q: %w", args[0], domain.ErrInvalidValue)
			}
			s := app.NewSession()
			s.Enter(domain.ModeAdvice)
			s.Enter(domain.ModeCriticalThinking)
			if err := s.OpenCriticalPrompt(n - 1); err != nil {
				return err
			}

			p := prompts[n-1]
			fmt.Fprint(out, formatter.FormatThinkingPrompt(p))
			if copyOut {
				copyFromCmd(cmd, app, s, p.Prompt, "critical_prompt")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the prompt text to the clipboard")
	return cmd
}

func newImpactCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "impact",
		Short: "How using AI well helps you learn, while bad use hurts you",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImpact(policy.ImpactScenarios(), policy.ImpactClosing))
			return nil
		},
	}
}

func newShareCmd(app *App) *cobra.Command {
	var url string

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Share a link to the guide",
		Long: `Share a link to the guide. Terminals have no share sheet, so the link
is copied to the clipboard instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				url = app.shareURL()
			}
			s := app.NewSession()
			msg, err := shareGuide(cmd, app, s, url)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "link to share (default from AIGUIDE_SHARE_URL)")
	return cmd
}

func shareGuide(cmd *cobra.Command, app *App, s *session.Session, url string) (string, error) {
	req := platform.ShareRequest{Title: shareTitle, Text: shareText, URL: url}
	outcome, err := platform.ShareOrCopy(cmd.Context(), app.sharer(), app.clipboard(), req)
	switch outcome {
	case platform.OutcomeShared:
		return formatter.StyleGreen.Render("✔ Shared"), nil
	case platform.OutcomeCopied:
		s.Report(session.EventShareFallback, nil, "url", url)
		return formatter.StyleGreen.Render("✔ Link copied to clipboard!") + " " + formatter.Dim(url), nil
	default:
		s.Report(session.EventShareFailed, err, "url", url)
		return "", fmt.Errorf("sharing %s: %w", url, err)
	}
}
