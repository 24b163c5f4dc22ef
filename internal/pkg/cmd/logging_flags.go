package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty" // Check if running in a terminal.
	"go.uber.org/zap"            // Logging.
	"go.uber.org/zap/zapcore"
)

// LoggingFlags represents a set of flags for setting up logging.
type LoggingFlags struct {
	LogLevel zapcore.Level // Logging level.
}

// NewLoggingFlags returns a new LoggingFlags.
func NewLoggingFlags(app Flagger, logLevel string) *LoggingFlags {
	var f LoggingFlags

	var hints []string
	for l := zapcore.DebugLevel; l <= zapcore.FatalLevel; l++ {
		hints = append(hints, l.CapitalString(), l.String())
	}

	app.Flag("log.level", "Set logging level.").
		HintOptions(hints...).
		Default(logLevel).
		SetValue(&f.LogLevel)

	return &f
}

// NewLogger returns a new logger based on the LogLevel flag.
// It logs in the zap development format when stdout is a terminal,
// and as JSON otherwise.
func (f *LoggingFlags) NewLogger() *zap.Logger {
	var conf zap.Config
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		conf = zap.NewDevelopmentConfig()
	} else {
		conf = zap.NewProductionConfig()
	}

	conf.Level.SetLevel(f.LogLevel)

	logger, err := conf.Build()
	if err != nil {
		panic(fmt.Sprintf("error building logger: %s", err))
	}

	return logger
}

// SetupLogger builds a logger with NewLogger, installs it as the zap
// global logger and sends the standard library logger's output to it
// at debug level. Call the returned func to flush and reset.
func (f *LoggingFlags) SetupLogger() (*zap.Logger, func()) {
	logger := f.NewLogger()
	resetGlobal := zap.ReplaceGlobals(logger)
	resetStd, err := zap.RedirectStdLogAt(logger, zapcore.DebugLevel)
	if err != nil {
		panic(fmt.Sprintf("error redirecting standard logger: %s", err))
	}
	return logger, func() {
		resetStd()
		resetGlobal()
		_ = logger.Sync()
	}
}
