package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	for _, format := range []LogFormat{LogFormatConsole, LogFormatStructured} {
		logger, err := NewLogger(LogLevelWarn, format)

		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	}
}

func TestNewLogger_Unsupported(t *testing.T) {
	_, err := NewLogger("verbose", LogFormatConsole)
	assert.ErrorContains(t, err, "unsupported log level")

	_, err = NewLogger(LogLevelInfo, "xml")
	assert.ErrorContains(t, err, "unsupported log format")
}
