package report

import (
	"bytes"
	"os"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealgen/internal/analyze"
	"sealgen/internal/diagnostic"
	"sealgen/internal/gen"
	"sealgen/internal/graph"
	"sealgen/internal/model"
	"sealgen/internal/plan"
)

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

func results() []*plan.Result {
	okDiags := &diagnostic.Diagnostics{}
	okDiags.AddWarning(diagnostic.CodeFinalityAdvisory, "Square embeds base.",
		diagnostic.Locus{Blueprint: "ShapeDef", Variant: "Square"})

	ok := &plan.Result{
		Unit: &analyze.Unit{
			Blueprint: &model.Blueprint{PkgPath: "example.com/shapes", Name: "ShapeDef"},
			Variants:  []*model.Variant{{Name: "Square"}, {Name: "Circle"}},
		},
		Diagnostics: okDiags,
		Graph:       &graph.TypeGraph{Root: graph.Root{Name: "Shape"}},
		File:        &gen.GeneratedFile{Filename: "shape_sealed.go"},
	}

	badDiags := &diagnostic.Diagnostics{}
	badDiags.AddError(diagnostic.CodeMissingMember, "Dog does not implement Sound().",
		diagnostic.Locus{Blueprint: "PetDef", Variant: "Dog", Member: "Sound"},
		"add func (Dog) Sound() string")

	bad := &plan.Result{
		Unit: &analyze.Unit{
			Blueprint: &model.Blueprint{PkgPath: "example.com/pets", Name: "PetDef"},
			Variants:  []*model.Variant{{Name: "Dog"}},
		},
		Diagnostics: badDiags,
	}

	quiet := &plan.Result{
		Unit:        &analyze.Unit{Declaration: model.Declaration{Interface: "QuietDef"}},
		Diagnostics: &diagnostic.Diagnostics{},
	}

	return []*plan.Result{ok, bad, quiet, nil}
}

func TestRender_GroupsByBlueprint(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, results())

	out := buf.String()
	assert.Contains(t, out, "example.com/shapes.ShapeDef")
	assert.Contains(t, out, "example.com/pets.PetDef")
	assert.NotContains(t, out, "QuietDef")

	shapes := bytes.Index(buf.Bytes(), []byte("ShapeDef/Square Square embeds base."))
	pets := bytes.Index(buf.Bytes(), []byte("PetDef/Dog.Sound Dog does not implement Sound()."))
	require.GreaterOrEqual(t, shapes, 0)
	require.GreaterOrEqual(t, pets, 0)
	assert.Less(t, shapes, pets)

	assert.Contains(t, out, "(missing_member)")
	assert.Contains(t, out, "→ add func (Dog) Sound() string")
}

func TestDiagnostic_Severity(t *testing.T) {
	d := diagnostic.Diagnostic{Severity: diagnostic.DiagnosticError, Code: "x", Message: "boom"}
	assert.Contains(t, Diagnostic(d), "ERROR")

	d.Severity = diagnostic.DiagnosticWarning
	assert.Contains(t, Diagnostic(d), "WARNING")

	d.Severity = diagnostic.DiagnosticInfo
	assert.Contains(t, Diagnostic(d), "INFO")
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Summary(&buf, results()))

	out := buf.String()
	assert.Contains(t, out, "Blueprint")
	assert.Contains(t, out, "shape_sealed.go")
	assert.Contains(t, out, "failed")
	assert.Contains(t, out, "3 blueprints: 2 ok, 1 failed, 1 files")
}
