package commands

import (
	"context"
	"io"
	"slices"

	"github.com/spf13/cobra"

	"sealgen/internal/analyze"
	"sealgen/internal/logger"
	"sealgen/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [patterns]",
		Short: "Regenerate whenever a blueprint package changes",
		Long: `Generate once, then watch the directories of every blueprint package and
regenerate after Go sources change. Changes are debounced by 300ms.
Stop with Ctrl-C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			units, _, err := a.loadUnits(ctx, args)
			if err != nil {
				return err
			}

			a.regenerate(ctx, out, args)

			dirs := unitDirs(units)

			w, err := watch.New(dirs, a.settings.Suffix, watch.DefaultDebounce)
			if err != nil {
				return err
			}
			defer w.Close()

			logger.Logger.Infow("watching", "directories", dirs)

			return w.Run(ctx, func(ctx context.Context, _ []string) {
				a.regenerate(ctx, out, args)
			})
		},
	}
}

// regenerate runs gen and logs failures instead of stopping the watch.
func (a *app) regenerate(ctx context.Context, out io.Writer, patterns []string) {
	if err := a.generate(ctx, out, patterns); err != nil {
		logger.Logger.Warnw("generation failed", "error", err)
	}
}

func unitDirs(units []*analyze.Unit) []string {
	var dirs []string

	for _, u := range units {
		if u.Blueprint == nil || u.Blueprint.Dir == "" {
			continue
		}

		if !slices.Contains(dirs, u.Blueprint.Dir) {
			dirs = append(dirs, u.Blueprint.Dir)
		}
	}

	slices.Sort(dirs)

	return dirs
}
