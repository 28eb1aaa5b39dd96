package gen_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sealgen/internal/gen"
)

func TestExamples_MatchCheckedIn(t *testing.T) {
	tests := []struct {
		example string
		file    string
	}{
		{"pets", "pet_sealed.go"},
		{"result", "result_sealed.go"},
	}

	for _, tt := range tests {
		t.Run(tt.example, func(t *testing.T) {
			files := generateExample(t, tt.example)
			require.Len(t, files, 1)
			assert.Equal(t, tt.file, files[0].Filename)

			onDisk, err := os.ReadFile(files[0].Path())
			require.NoError(t, err)
			assert.Equal(t, string(onDisk), string(files[0].Content),
				"checked-in %s is stale; run sealgen gen ./examples/%s", tt.file, tt.example)

			stale, err := gen.Stale(files)
			require.NoError(t, err)
			assert.Empty(t, stale)
		})
	}
}

func TestExamples_Compile(t *testing.T) {
	for _, example := range []string{"pets", "result"} {
		t.Run(example, func(t *testing.T) {
			runExampleTests(t, example)
		})
	}
}
