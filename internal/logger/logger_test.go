package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestInitialize_Console(t *testing.T) {
	restore := Set(zaptest.NewLogger(t))
	defer restore()

	require.NoError(t, Initialize(false, true))
	assert.False(t, JSONOutput)
	assert.NotNil(t, Logger)
}

func TestInitialize_JSON(t *testing.T) {
	restore := Set(zaptest.NewLogger(t))
	defer restore()

	require.NoError(t, Initialize(true, false))
	assert.True(t, JSONOutput)

	JSONOutput = false
}

func TestSet_Restore(t *testing.T) {
	before := Logger

	restore := Set(zaptest.NewLogger(t))
	assert.NotSame(t, before, Logger)

	restore()
	assert.Same(t, before, Logger)
}

func TestSetForTest(t *testing.T) {
	before := Logger

	t.Run("inner", func(t *testing.T) {
		SetForTest(t)
		assert.NotSame(t, before, Logger)
		Logger.Debugw("routed to the test log", "key", "value")
	})

	assert.Same(t, before, Logger)
}
