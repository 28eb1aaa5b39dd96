package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_PreservesSentinel(t *testing.T) {
	err := Wrap(ErrInvalidManifest, "decoding sealgen.yaml")

	require.Error(t, err)
	assert.True(t, Is(err, ErrInvalidManifest))
	assert.False(t, Is(err, ErrStale))
	assert.Contains(t, err.Error(), "decoding sealgen.yaml")
}

func TestWithHint_Flatten(t *testing.T) {
	err := WithHint(Wrap(ErrUnsupportedFormat, "reading blueprints.ini"), "use .yaml, .toml or .hcl")

	assert.True(t, Is(err, ErrUnsupportedFormat))
	assert.Equal(t, "use .yaml, .toml or .hcl", FlattenHints(err))
}
