package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealgen/internal/analyze"
	"sealgen/internal/errors"
	"sealgen/internal/model"
)

// repoRoot is the module root relative to this package.
const repoRoot = "../../.."

func TestMain(m *testing.M) {
	pterm.DisableColor()
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(append(args, "--dir", repoRoot))

	err := cmd.ExecuteContext(context.Background())

	return buf.String(), err
}

func TestInspect_Pets(t *testing.T) {
	out, err := execute(t, "inspect", "./examples/pets", "--blueprint", "Pet")
	require.NoError(t, err, out)

	assert.Contains(t, out, "Pet (PetDef)")
	assert.Contains(t, out, "PetVisitor with 2 branches: OnCat, OnDog")
	assert.Contains(t, out, "PetFromCat, PetFromDog")
	assert.Contains(t, out, "functor    none")
	assert.Contains(t, out, "ReturningPet (function, 2 stages)")
	assert.Contains(t, out, "MatchPet (consumer, 2 stages)")
	assert.Contains(t, out, "pet_sealed.go")
}

func TestInspect_Dump(t *testing.T) {
	out, err := execute(t, "inspect", "./examples/result", "--blueprint", "ResultDef", "--dump")
	require.NoError(t, err, out)

	assert.Contains(t, out, "graph.TypeGraph")
	assert.Contains(t, out, "FlatMapResult")
}

func TestInspect_UnknownBlueprint(t *testing.T) {
	_, err := execute(t, "inspect", "./examples/pets", "--blueprint", "Nope")
	require.Error(t, err)
	assert.Contains(t, errors.FlattenHints(err), "root name")
}

func TestValidate_Valid(t *testing.T) {
	out, err := execute(t, "validate", "./examples/pets", "./examples/result")
	require.NoError(t, err, out)
	assert.Contains(t, out, "2 blueprint(s) valid")
}

func TestValidate_Failures(t *testing.T) {
	out, err := execute(t, "validate", "./examples/invalid")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDiagnostics), "got %v", err)

	assert.Contains(t, out, "ZooDef")
	assert.Contains(t, out, "(generic_cardinality)")
	assert.Contains(t, out, "(non_final_variant)")
	assert.Contains(t, out, "(finality_advisory)")
	assert.Contains(t, out, "(duplicate_variant)")
	assert.Contains(t, out, "Root name 'Circle'")
}

func TestGen_DryRun(t *testing.T) {
	out, err := execute(t, "gen", "./examples/pets", "--dry-run")
	require.NoError(t, err, out)

	assert.Contains(t, out, "would write")
	assert.Contains(t, out, filepath.Join("examples", "pets", "pet_sealed.go"))
	assert.Contains(t, out, "1 blueprints: 1 ok, 0 failed, 1 files")
}

func TestGen_ManifestDiagnostics(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "sealgen.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte(`
blueprints:
  - package: ./examples/pets
    interface: PetDef
    permits: Dog
    modes: sideways
`), 0o600))

	out, err := execute(t, "gen", "--dry-run", "--manifest", manifest)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDiagnostics))
	assert.Contains(t, out, "manifest:"+manifest)
	assert.Contains(t, out, "(invalid_manifest_entry)")
}

func TestGen_UnsupportedManifest(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "sealgen.json")
	require.NoError(t, os.WriteFile(manifest, []byte(`{}`), 0o600))

	_, err := execute(t, "gen", "--manifest", manifest)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnsupportedFormat))

	var buf bytes.Buffer
	PrintError(&buf, err)
	assert.Contains(t, buf.String(), ".hcl")
}

func TestCheck_FailuresBeforeStaleness(t *testing.T) {
	out, err := execute(t, "check", "./examples/invalid")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDiagnostics))
	assert.False(t, errors.Is(err, errors.ErrStale))
	assert.NotContains(t, out, "up to date")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sealgen dev")
}

func TestUnitDirs(t *testing.T) {
	units := []*analyze.Unit{
		{Blueprint: &model.Blueprint{Dir: "/b"}},
		{Blueprint: &model.Blueprint{Dir: "/a"}},
		{Blueprint: &model.Blueprint{Dir: "/b"}},
		{},
	}

	assert.Equal(t, []string{"/a", "/b"}, unitDirs(units))
}
