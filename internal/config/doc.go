// Package config loads the tool settings.
//
// Settings are layered: built-in defaults, then a settings file
// (.platform-config.yaml, .toml or .json/.jsonc), then a .env file, then
// PLATFORM_CONFIG_* environment variables. Command line flags are applied by
// the caller on top of the result.
package config
