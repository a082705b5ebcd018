package log

import (
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates the zap logger of the unit using the environment settings
// and reports if the logging output goes to the console
//
// LOGGING_TYPE   text | json (default text)
// LOGGING_OUTPUT console | file (default console)
// LOGGING_TARGET logging file location when the output is file (default /var/log)
// LOGGING_LEVEL  debug | warn | error (default info)
func NewLogger(service string) (*zap.Logger, bool) {
	encoder := newEncoder()
	writer, console := newWriter(service)
	level := newLevel()

	core := zapcore.NewCore(encoder, writer, level)
	return zap.New(core), console
}

func newEncoder() zapcore.Encoder {
	logConfig := zap.NewDevelopmentEncoderConfig()

	if strings.Compare(os.Getenv("LOGGING_TYPE"), "json") == 0 {
		return zapcore.NewJSONEncoder(logConfig)
	}
	return zapcore.NewConsoleEncoder(logConfig)
}

func newWriter(service string) (zapcore.WriteSyncer, bool) {
	if strings.Compare(os.Getenv("LOGGING_OUTPUT"), "file") != 0 {
		return zapcore.Lock(os.Stdout), true
	}

	logTarget := os.Getenv("LOGGING_TARGET")
	if len(logTarget) == 0 {
		logTarget = "/var/log"
	}

	logPath := path.Join(logTarget, fmt.Sprintf("kertish-chunker-%s", service))
	if err := os.MkdirAll(logPath, 0777); err != nil {
		fmt.Printf("ERROR: Unable to create logging path, fall back to console: %s\n", err.Error())
		return zapcore.Lock(os.Stdout), true
	}

	logPath = path.Join(logPath, fmt.Sprintf("%s.log", time.Now().Format("since-20060102")))
	file, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("ERROR: Unable to create logging file, fall back to console: %s\n", err.Error())
		return zapcore.Lock(os.Stdout), true
	}

	return zapcore.Lock(file), false
}

func newLevel() zapcore.Level {
	switch strings.ToLower(os.Getenv("LOGGING_LEVEL")) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
