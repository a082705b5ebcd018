package log

import (
	"os"
	"path"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func unsetLoggingEnv() {
	_ = os.Unsetenv("LOGGING_TYPE")
	_ = os.Unsetenv("LOGGING_OUTPUT")
	_ = os.Unsetenv("LOGGING_TARGET")
	_ = os.Unsetenv("LOGGING_LEVEL")
}

func TestNewLogger(t *testing.T) {
	unsetLoggingEnv()

	logger, console := NewLogger("splitter")

	assert.NotNil(t, logger)
	assert.True(t, console)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}

func TestNewLogger_Levels(t *testing.T) {
	unsetLoggingEnv()

	t.Setenv("LOGGING_LEVEL", "debug")
	logger, _ := NewLogger("splitter")
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	t.Setenv("LOGGING_LEVEL", "warn")
	logger, _ = NewLogger("splitter")
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	t.Setenv("LOGGING_LEVEL", "error")
	logger, _ = NewLogger("splitter")
	assert.False(t, logger.Core().Enabled(zapcore.WarnLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewLogger_FileOutput(t *testing.T) {
	unsetLoggingEnv()

	logTarget := t.TempDir()

	t.Setenv("LOGGING_OUTPUT", "file")
	t.Setenv("LOGGING_TARGET", logTarget)

	logger, console := NewLogger("splitter")
	assert.False(t, console)

	logger.Info("file output entry")
	_ = logger.Sync()

	entries, err := os.ReadDir(path.Join(logTarget, "kertish-chunker-splitter"))
	assert.Nil(t, err)
	assert.Len(t, entries, 1)

	content, err := os.ReadFile(path.Join(logTarget, "kertish-chunker-splitter", entries[0].Name()))
	assert.Nil(t, err)
	assert.True(t, strings.Contains(string(content), "file output entry"))
}

func TestNewLogger_JsonType(t *testing.T) {
	unsetLoggingEnv()

	logTarget := t.TempDir()

	t.Setenv("LOGGING_TYPE", "json")
	t.Setenv("LOGGING_OUTPUT", "file")
	t.Setenv("LOGGING_TARGET", logTarget)

	logger, _ := NewLogger("splitter")

	logger.Info("json output entry")
	_ = logger.Sync()

	entries, err := os.ReadDir(path.Join(logTarget, "kertish-chunker-splitter"))
	assert.Nil(t, err)
	assert.Len(t, entries, 1)

	content, err := os.ReadFile(path.Join(logTarget, "kertish-chunker-splitter", entries[0].Name()))
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(string(content)), "{"))
}

func TestNewLogger_FileOutputFallback(t *testing.T) {
	unsetLoggingEnv()

	blocking := path.Join(t.TempDir(), "blocking")
	assert.Nil(t, os.WriteFile(blocking, []byte("x"), 0666))

	t.Setenv("LOGGING_OUTPUT", "file")
	t.Setenv("LOGGING_TARGET", blocking)

	// the logging path cannot be created under a file, output falls back to console
	logger, console := NewLogger("splitter")

	assert.NotNil(t, logger)
	assert.True(t, console)
}
