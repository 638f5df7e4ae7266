// Package config loads rangemap settings with koanf.
//
// Layers, lowest precedence first:
//  1. embedded defaults (embedded/defaults.yaml);
//  2. an optional config file, YAML or TOML by extension;
//  3. environment variables prefixed RANGEMAP_, e.g. RANGEMAP_WORKERS=8.
//
// Command-line flags are applied on top by the caller.
package config
