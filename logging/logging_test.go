package logging_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/rangemap/logging"
)

func TestLevelFor(t *testing.T) {
	cases := map[int]zerolog.Level{
		-1: zerolog.WarnLevel,
		0:  zerolog.WarnLevel,
		1:  zerolog.InfoLevel,
		2:  zerolog.DebugLevel,
		3:  zerolog.TraceLevel,
		9:  zerolog.TraceLevel,
	}
	for v, want := range cases {
		assert.Equalf(t, want, logging.LevelFor(v), "verbosity %d", v)
	}
}

// TestSetup_Quiet hides info messages at the default verbosity.
func TestSetup_Quiet(t *testing.T) {
	var buf bytes.Buffer
	l := logging.Setup(0, &buf)

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

// TestSetup_Debug emits the init line, component tags and durations.
func TestSetup_Debug(t *testing.T) {
	var buf bytes.Buffer
	l := logging.Component(logging.Setup(2, &buf), "pipeline")

	logging.Duration(l, time.Now(), "evaluate")

	out := buf.String()
	assert.Contains(t, out, "logger initialized")
	assert.Contains(t, out, "pipeline")
	assert.Contains(t, out, "evaluate")
}
