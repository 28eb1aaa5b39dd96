package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sealgen/internal/report"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [patterns]",
		Short: "Report blueprint diagnostics without writing files",
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

			fmt.Fprintf(out, "%d blueprint(s) valid\n", len(results))

			return nil
		},
	}
}
