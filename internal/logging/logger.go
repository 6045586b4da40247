// Package logging configures the logrus logger used for diagnostics.
//
// Diagnostics always go to stderr so that stdout carries only command
// output. An optional log file, rotated by lumberjack, receives a copy.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerSetupParams struct {
	// LogFileName is an optional file receiving a copy of every entry.
	LogFileName string
	// LogLevel is one of trace, debug, info, warn, error, fatal.
	LogLevel string
	// LogFormatJSON switches from text to JSON entries.
	LogFormatJSON bool
	// Verbose forces the debug level when LogLevel is less verbose.
	Verbose bool
	// Stderr overrides the terminal destination. Nil means os.Stderr.
	Stderr io.Writer
}

// Setup configures logger and returns a function releasing the log file.
// The returned function is never nil.
func Setup(logger *logrus.Logger, params LoggerSetupParams) func() error {
	if params.LogFormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	level := GetLevel(params.LogLevel)
	if params.Verbose && level < logrus.DebugLevel {
		level = logrus.DebugLevel
	}
	logger.SetLevel(level)

	stderr := params.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	if params.LogFileName == "" {
		logger.SetOutput(stderr)
		return func() error { return nil }
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		LocalTime:  false,
		Compress:   true,
	}
	logger.SetOutput(NewCombinedWriter(stderr, lumberJackLogger))
	logger.Debugf("writing logs to stderr and %s", params.LogFileName)

	return lumberJackLogger.Close
}

// GetLevel maps a level name to a logrus level. Unknown names map to warn.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.WarnLevel
	}
}
