package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"sealgen/internal/diagnostic"
	"sealgen/internal/plan"
)

// Render prints the diagnostics of every result, grouped by blueprint.
// Blueprints without diagnostics are skipped.
func Render(w io.Writer, results []*plan.Result) {
	for _, r := range results {
		if r == nil || r.Diagnostics.Len() == 0 {
			continue
		}

		fmt.Fprint(w, pterm.DefaultSection.WithLevel(2).Sprint(heading(r)))

		for _, d := range r.Diagnostics.All() {
			fmt.Fprint(w, Diagnostic(d))
		}
	}
}

// Diagnostic renders one diagnostic and its suggestions.
func Diagnostic(d diagnostic.Diagnostic) string {
	printer := pterm.Info

	switch d.Severity {
	case diagnostic.DiagnosticError:
		printer = pterm.Error
	case diagnostic.DiagnosticWarning:
		printer = pterm.Warning
	}

	var b strings.Builder

	line := d.Message
	if loc := d.Locus.String(); loc != "" {
		line = pterm.Yellow(loc) + " " + line
	}

	b.WriteString(printer.Sprintln(line + " " + pterm.Gray("("+d.Code+")")))

	for _, s := range d.Suggestions {
		b.WriteString("  " + pterm.Gray("→") + " " + s + "\n")
	}

	return b.String()
}

func heading(r *plan.Result) string {
	if r.Unit.Blueprint != nil {
		return r.Unit.Blueprint.QualifiedName()
	}

	return r.Name()
}

// Summary writes a table of every blueprint followed by totals.
func Summary(w io.Writer, results []*plan.Result) error {
	data := pterm.TableData{{"Blueprint", "Root", "Variants", "Status", "File"}}

	var ok, failed, files int

	for _, r := range results {
		if r == nil {
			continue
		}

		root, file := "-", "-"
		if r.Graph != nil {
			root = r.Graph.Root.Name
		}

		if r.File != nil {
			file = r.File.Filename
			files++
		}

		status := pterm.Green("ok")
		if r.Failed() {
			status = pterm.Red("failed")
			failed++
		} else {
			ok++
		}

		data = append(data, []string{r.Name(), root, strconv.Itoa(len(r.Unit.Variants)), status, file})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}

	fmt.Fprintln(w, table)
	fmt.Fprintf(w, "%d blueprints: %d ok, %d failed, %d files\n", ok+failed, ok, failed, files)

	return nil
}
