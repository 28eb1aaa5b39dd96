package gen_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"sealgen/internal/analyze"
	"sealgen/internal/gen"
	"sealgen/internal/logger"
	"sealgen/internal/plan"
)

func repoRoot(t *testing.T) string {
	t.Helper()

	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err, "repo root")

	return root
}

// generateExample runs the whole pipeline over examples/<name> in memory.
func generateExample(t *testing.T, name string) []gen.GeneratedFile {
	t.Helper()

	logger.SetForTest(t)

	units, err := analyze.NewLoader(repoRoot(t)).Load(context.Background(), "./examples/"+name)
	require.NoError(t, err)
	require.NotEmpty(t, units)

	results, err := plan.NewPipeline(plan.DefaultConfig()).Run(context.Background(), units)
	require.NoError(t, err)

	for _, r := range results {
		require.False(t, r.Failed(), "%s: %v", r.Name(), r.Diagnostics.Error())
	}

	return plan.Files(results)
}

// runExampleTests compiles and runs the tests of examples/<name>.
func runExampleTests(t *testing.T, name string) {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping go test of examples in short mode")
	}

	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go toolchain not on PATH")
	}

	cmd := exec.CommandContext(t.Context(), "go", "test", "./examples/"+name, "-count=1")
	cmd.Dir = repoRoot(t)
	cmd.Env = append(os.Environ(), "GOFLAGS=-mod=mod")

	b, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("go test failed: %v\n%s", err, string(b))
	}
}
