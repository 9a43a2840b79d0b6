package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log, err := New(false, false)
	require.NoError(t, err)
	require.NotNil(t, log)

	log, err = New(true, true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(-1)) // debug level enabled
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "", TruncateForLog("anything", 0))
	assert.Equal(t, "short", TruncateForLog("short", 10))
	assert.Equal(t, "trim me", TruncateForLog("  trim me  ", 10))
	assert.Equal(t, "abc...", TruncateForLog("abcdef", 3))
}
