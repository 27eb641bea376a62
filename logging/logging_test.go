package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonglyxng/segmentation/config"
)

func TestNewBuildsLoggerForEachFormat(t *testing.T) {
	for _, format := range []string{"console", "json", "simple"} {
		logger, err := New(config.LoggingSettings{Level: "INFO", Format: format})
		require.NoError(t, err, format)
		require.NotNil(t, logger)
		logger.Info("hello")
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(config.LoggingSettings{Level: "CATASTROPHIC", Format: "console"})
	assert.Error(t, err)
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New(config.LoggingSettings{Level: "INFO", Format: "xml"})
	assert.Error(t, err)
}
