// Package logging configures zerolog for the rangemap command line.
package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LevelFor maps a -v count to a zerolog level:
// 0 warn, 1 info, 2 debug, 3 and above trace.
func LevelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// Setup builds a console logger writing to w at the level for verbosity and
// installs it as the global logger. Debug and trace levels add caller info.
func Setup(verbosity int, w io.Writer) zerolog.Logger {
	level := LevelFor(verbosity)

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
	}
	ctx := zerolog.New(console).Level(level).With().Timestamp()
	if verbosity >= 2 {
		ctx = ctx.Caller()
	}
	logger := ctx.Logger()

	log.Logger = logger
	logger.Debug().Int("verbosity", verbosity).Str("level", level.String()).Msg("logger initialized")

	return logger
}

// Component returns l tagged with a component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

// Duration logs how long an operation took, at debug level.
// Typical use: defer logging.Duration(l, time.Now(), "evaluate").
func Duration(l zerolog.Logger, start time.Time, operation string) {
	l.Debug().
		Str("operation", operation).
		Dur("duration", time.Since(start)).
		Msg("operation completed")
}
