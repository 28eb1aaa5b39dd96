package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"sealgen/internal/errors"
	"sealgen/internal/gen"
	"sealgen/internal/plan"
	"sealgen/internal/report"
)

func newGenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gen [patterns]",
		Short: "Validate blueprints and write the generated files",
		Long: `Load the packages matched by patterns (default ./...), validate every
blueprint, and write <root>_sealed.go next to each valid one.

Blueprints with failures are reported and skipped; the command then exits
non-zero. With --dry-run nothing is written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
}

func (a *app) generate(ctx context.Context, out io.Writer, patterns []string) error {
	results, err := a.run(ctx, patterns)
	report.Render(out, results)

	if err != nil {
		return err
	}

	files := plan.Files(results)

	if a.settings.DryRun {
		for _, f := range files {
			fmt.Fprintln(out, pterm.Gray("would write"), f.Path())
		}
	} else if err := gen.WriteFiles(files); err != nil {
		return err
	}

	if err := report.Summary(out, results); err != nil {
		return errors.Wrap(err, "rendering summary")
	}

	return failed(results)
}

// failed returns ErrDiagnostics when any blueprint has failures.
func failed(results []*plan.Result) error {
	if n := failures(results); n > 0 {
		return errors.Wrapf(errors.ErrDiagnostics, "%d failure(s)", n)
	}

	return nil
}
