package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuildsLogger(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		logger, err := New(level, "json")
		require.NoError(t, err, "level %s", level)
		assert.NotNil(t, logger)
	}

	logger, err := New("info", "console")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewRejectsInvalidLevel(t *testing.T) {
	_, err := New("verbose", "json")
	assert.Error(t, err)
}
