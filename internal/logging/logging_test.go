package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		log, err := New(format, false)
		require.NoError(t, err)
		assert.False(t, log.Core().Enabled(zap.DebugLevel), format)
		assert.True(t, log.Core().Enabled(zap.InfoLevel), format)
	}

	log, err := New("console", true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.DebugLevel))
}
