package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"sealgen/internal/errors"
	"sealgen/internal/graph"
	"sealgen/internal/plan"
	"sealgen/internal/report"
)

func newInspectCmd(a *app) *cobra.Command {
	var (
		blueprint string
		dump      bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [patterns]",
		Short: "Show the synthesized type graph of each blueprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			results, err := a.run(cmd.Context(), args)
			if err != nil {
				return err
			}

			selected := selectResults(results, blueprint)
			if len(selected) == 0 {
				return errors.WithHint(errors.Newf("no blueprint named %q", blueprint),
					"use the interface name (PetDef) or the root name (Pet)")
			}

			report.Render(out, selected)

			for _, r := range selected {
				if r.Graph == nil {
					continue
				}

				if dump {
					cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
					cfg.Fdump(out, r.Graph)

					continue
				}

				describe(out, r)
			}

			return failed(selected)
		},
	}

	cmd.Flags().StringVarP(&blueprint, "blueprint", "b", "", "Only show this blueprint (interface or root name)")
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump the full graph")

	return cmd
}

func selectResults(results []*plan.Result, name string) []*plan.Result {
	if name == "" {
		return results
	}

	var out []*plan.Result

	for _, r := range results {
		if r.Name() == name || (r.Graph != nil && r.Graph.Root.Name == name) {
			out = append(out, r)
		}
	}

	return out
}

func describe(w io.Writer, r *plan.Result) {
	g := r.Graph

	fmt.Fprintf(w, "%s (%s)\n", g.Root.Ref(), g.Blueprint)
	fmt.Fprintf(w, "  visitor    %s with %d branches: %s\n",
		g.Visitor.Name, len(g.Visitor.Branches), joinBranches(g.Visitor.Branches))

	factories := make([]string, len(g.Factories))
	for i, f := range g.Factories {
		factories[i] = f.Name
	}

	fmt.Fprintf(w, "  factories  %s\n", strings.Join(factories, ", "))

	if g.Functor != nil {
		fmt.Fprintf(w, "  functor    %s, %s over %s\n", g.Functor.Map, g.Functor.FlatMap, g.Functor.Variant.Name)
	} else {
		fmt.Fprintln(w, "  functor    none")
	}

	for _, m := range g.Matchers {
		fmt.Fprintf(w, "  matcher    %s (%s, %d stages)\n", m.Entry, m.Flavor, len(m.Stages))
	}

	if r.File != nil {
		fmt.Fprintf(w, "  file       %s\n", r.File.Path())
	}
}

func joinBranches(branches []graph.Branch) string {
	names := make([]string, len(branches))
	for i, b := range branches {
		names[i] = b.Method
	}

	return strings.Join(names, ", ")
}
