package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rangemap/almanac"
	"github.com/katalvlaran/rangemap/config"
)

const referenceInput = "../../almanac/testdata/reference.txt"

// run executes the root command with args and returns stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), err
}

func TestLowest_Ranges(t *testing.T) {
	out, err := run(t, "", "lowest", referenceInput)
	require.NoError(t, err)
	assert.Equal(t, "46\n", out)
}

func TestLowest_SeedsWithWorkers(t *testing.T) {
	out, err := run(t, "", "lowest", "--mode", "seeds", "--workers", "3", "--strict", referenceInput)
	require.NoError(t, err)
	assert.Equal(t, "35\n", out)
}

// TestLowest_Stdin reads the almanac from standard input by default.
func TestLowest_Stdin(t *testing.T) {
	body, err := os.ReadFile(referenceInput)
	require.NoError(t, err)

	out, err := run(t, string(body), "lowest", "-v")
	require.NoError(t, err)
	assert.Equal(t, "46\n", out)
}

// TestLowest_EnvConfig picks the mode up from the environment.
func TestLowest_EnvConfig(t *testing.T) {
	t.Setenv(config.EnvPrefix+"MODE", "seeds")

	out, err := run(t, "", "lowest", referenceInput)
	require.NoError(t, err)
	assert.Equal(t, "35\n", out)

	// Flags win over the environment.
	out, err = run(t, "", "lowest", "--mode", "ranges", referenceInput)
	require.NoError(t, err)
	assert.Equal(t, "46\n", out)
}

func TestLowest_Errors(t *testing.T) {
	_, err := run(t, "", "lowest", "--mode", "points", referenceInput)
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = run(t, "seeds: 1\n\nseed-to-soil map:\n1 2 3\n", "lowest")
	assert.ErrorIs(t, err, almanac.ErrOddSeeds)

	_, err = run(t, "not an almanac", "lowest")
	assert.ErrorIs(t, err, almanac.ErrSyntax)

	_, err = run(t, "", "lowest", "does-not-exist.txt")
	assert.Error(t, err)
}

func TestTrace_Text(t *testing.T) {
	out, err := run(t, "", "trace", referenceInput)
	require.NoError(t, err)

	assert.Contains(t, out, "start [79, 93) (14 values)")
	assert.Contains(t, out, "seed-soil")
	assert.Contains(t, out, "[81, 95)")
	assert.Contains(t, out, "humidity-location")
	assert.Contains(t, out, "lowest 46")
}

func TestTrace_YAML(t *testing.T) {
	out, err := run(t, "", "trace", "--format", "yaml", referenceInput)
	require.NoError(t, err)

	var docs []struct {
		Start  string `yaml:"start"`
		Steps  []struct {
			Stage     string   `yaml:"stage"`
			Intervals []string `yaml:"intervals"`
		} `yaml:"steps"`
		Lowest uint64 `yaml:"lowest"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 2)

	assert.Equal(t, "[79, 93)", docs[0].Start)
	require.Len(t, docs[0].Steps, 7)
	assert.Equal(t, "seed-soil", docs[0].Steps[0].Stage)
	assert.Equal(t, []string{"[81, 95)"}, docs[0].Steps[0].Intervals)
	assert.Equal(t, uint64(46), min(docs[0].Lowest, docs[1].Lowest))
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "rangemap version dev\n", out)
}
