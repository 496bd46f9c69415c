package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/aiguide/internal/auditlog"
	"github.com/alexanderramin/aiguide/internal/cli/formatter"
	"github.com/alexanderramin/aiguide/internal/domain"
	"github.com/alexanderramin/aiguide/internal/session"
	"github.com/spf13/cobra"
)

func newDeclareCmd(app *App) *cobra.Command {
	var (
		file     string
		date     string
		copyOut  bool
		timeline bool
	)

	cmd := &cobra.Command{
		Use:   "declare",
		Short: "Compile an AI use declaration from a log file",
		Long: `Compile an AI use declaration from a YAML log file. Use "-" to read
the file from stdin.

  context: research        # optional: assignment, research, study or generic
  entries:
    - prompt: "Suggest search terms for my literature review"
      output: "Ten terms and three key authors"
      refinement: "Checked every author in the library database"

Entries without a prompt are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			when := app.now()
			if date != "" {
				d, err := time.Parse(auditlog.DateLayout, date)
				if err != nil {
					return fmt.Errorf("--date must be YYYY-MM-DD: %w", err)
				}
				when = d
			}

			f, ctx, err := readLogFile(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			log := auditlog.New()
			accepted := f.Load(log)
			s := app.NewSession(session.WithLog(log))
			if err := s.SetLogContext(ctx); err != nil {
				return err
			}
			if skipped := len(f.Entries) - accepted; skipped > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim(fmt.Sprintf("Skipped %d entries without a prompt.", skipped)))
			}
			if accepted == 0 {
				return auditlog.ErrEmptyFile
			}

			out := cmd.OutOrStdout()
			if timeline {
				fmt.Fprint(out, formatter.FormatLog(s.LogContext(), s.LogEntries()))
				return nil
			}

			text := s.Declaration(when)
			fmt.Fprintln(out, text)
			if copyOut {
				copyFromCmd(cmd, app, s, text, "declaration")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML log file, or - for stdin")
	cmd.Flags().StringVar(&date, "date", "", "declaration date (YYYY-MM-DD, default today)")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "copy the declaration to the clipboard")
	cmd.Flags().BoolVar(&timeline, "timeline", false, "show the log timeline instead of the declaration")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func readLogFile(stdin io.Reader, path string) (*auditlog.File, domain.LogContext, error) {
	if path == "-" {
		return auditlog.Decode(stdin)
	}
	return auditlog.ReadFile(path)
}
