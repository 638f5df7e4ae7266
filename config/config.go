package config

import (
	_ "embed"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/katalvlaran/rangemap/almanac"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "RANGEMAP_"

// Output formats understood by the trace command.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

var (
	// ErrInvalid indicates a setting outside its allowed values.
	ErrInvalid = errors.New("config: invalid setting")
	// ErrUnsupportedFile indicates a config file extension without a parser.
	ErrUnsupportedFile = errors.New("config: unsupported config file type")
)

//go:embed embedded/defaults.yaml
var defaults []byte

// Config holds every setting of the rangemap command.
type Config struct {
	Input     string `koanf:"input"`
	Mode      string `koanf:"mode"`
	Workers   int    `koanf:"workers"`
	Verbosity int    `koanf:"verbosity"`
	Strict    bool   `koanf:"strict"`
	Format    string `koanf:"format"`
}

// rawBytesProvider feeds embedded bytes to koanf.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load merges defaults, the file at path (skipped when empty) and the
// environment, then validates the result.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(&rawBytesProvider{bytes: defaults}, yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return Config{}, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return Config{}, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	}

	// 3. Environment
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// parserFor picks a koanf parser from the file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}
}

// Validate checks mode, worker count and output format.
func (c Config) Validate() error {
	if _, err := almanac.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: mode: %w", ErrInvalid, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	}
	switch c.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("%w: format %q (want %s or %s)", ErrInvalid, c.Format, FormatText, FormatYAML)
	}

	return nil
}
