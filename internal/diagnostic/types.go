package diagnostic

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"sealgen/internal/common"
)

// Diagnostics holds all diagnostic information for one or more blueprints.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Locus identifies the blueprint, variant and member concerned.
	Locus Locus
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// Locus names what a diagnostic is about. Empty parts are omitted.
type Locus struct {
	Blueprint string
	Variant   string
	Member    string
}

// String renders "Blueprint", "Blueprint/Variant" or "Blueprint/Variant.Member".
func (l Locus) String() string {
	s := l.Blueprint

	if l.Variant != "" {
		if s != "" {
			s += "/"
		}

		s += l.Variant
	}

	if l.Member != "" {
		if s != "" {
			s += "."
		}

		s += l.Member
	}

	return s
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "advisory"
	case DiagnosticError:
		return "failure"
	default:
		return common.UnknownStr
	}
}

// Kind is the family of a diagnostic.
func (d Diagnostic) Kind() Kind {
	return KindOf(d.Code)
}

// AddError adds a failure.
func (d *Diagnostics) AddError(code, message string, locus Locus, suggestions ...string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity:    DiagnosticError,
		Code:        code,
		Message:     message,
		Locus:       locus,
		Suggestions: suggestions,
	})
}

// AddWarning adds an advisory.
func (d *Diagnostics) AddWarning(code, message string, locus Locus, suggestions ...string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity:    DiagnosticWarning,
		Code:        code,
		Message:     message,
		Locus:       locus,
		Suggestions: suggestions,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message string, locus Locus) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: DiagnosticInfo,
		Code:     code,
		Message:  message,
		Locus:    locus,
	})
}

// HasErrors returns true if there are any failures.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}

	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no failures.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Len returns the number of diagnostics of every severity.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// All returns every diagnostic, failures first.
func (d *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, d.Len())
	out = append(out, d.Errors...)
	out = append(out, d.Warnings...)
	out = append(out, d.Infos...)

	return out
}

// WithCode returns every diagnostic carrying code.
func (d *Diagnostics) WithCode(code string) []Diagnostic {
	var out []Diagnostic

	for _, diag := range d.All() {
		if diag.Code == code {
			out = append(out, diag)
		}
	}

	return out
}

// Codes returns the distinct codes present, sorted.
func (d *Diagnostics) Codes() []string {
	seen := make(map[string]struct{})

	for _, diag := range d.All() {
		seen[diag.Code] = struct{}{}
	}

	codes := make([]string, 0, len(seen))
	for c := range seen {
		codes = append(codes, c)
	}

	sort.Strings(codes)

	return codes
}

// Error returns a combined error from all failures, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if loc := d.Locus.String(); loc != "" {
		return "[" + loc + "]: " + msg
	}

	return msg
}
