package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealgen/internal/errors"
	"sealgen/internal/gen"
	"sealgen/internal/plan"
	"sealgen/internal/report"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [patterns]",
		Short: "Fail when generated files are missing or out of date",
		Long: `Regenerate every blueprint in memory and compare the result with the
files on disk. Nothing is written. Intended for CI.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			results, err := a.run(cmd.Context(), args)
			report.Render(out, results)

			if err != nil {
				return err
			}

			if err := failed(results); err != nil {
				return err
			}

			stale, err := gen.Stale(plan.Files(results))
			if err != nil {
				return err
			}

			for _, path := range stale {
				fmt.Fprintln(out, "stale:", path)
			}

			if len(stale) > 0 {
				return errors.WithHint(
					errors.Wrapf(errors.ErrStale, "%d file(s)", len(stale)),
					"run sealgen gen to update them")
			}

			fmt.Fprintf(out, "%d generated file(s) up to date\n", len(plan.Files(results)))

			return nil
		},
	}
}
