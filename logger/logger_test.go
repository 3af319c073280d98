package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLoggerBeforeInitialize(t *testing.T) {
	// The package-level logger must be safe to use before Initialize.
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() {
		Infow("message before initialize", "key", "value")
	})
}

func TestInitializeConsole(t *testing.T) {
	err := Initialize(false)
	require.NoError(t, err)
	require.NotNil(t, Logger)
	assert.False(t, JSONOutput)

	assert.NotPanics(t, func() {
		Infof("generated %d instructions", 42)
		Warnw("missing template", "path", "dynspv.hpp_template")
	})
}

func TestInitializeJSON(t *testing.T) {
	err := Initialize(true)
	require.NoError(t, err)
	require.NotNil(t, Logger)
	assert.True(t, JSONOutput)

	assert.NotPanics(t, func() {
		Infow("generation complete", "instructions", 700)
		Cleanup()
	})
}
