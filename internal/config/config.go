package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"platform-config/internal/common"
	"platform-config/internal/mapping"
	"platform-config/internal/project"
)

// DefaultFile is the settings file looked up when none is given.
const DefaultFile = ".platform-config.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PLATFORM_CONFIG_"

// ErrUnsupportedFormat is returned for settings files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported settings format")

// Config holds the tool settings.
type Config struct {
	Root         string `yaml:"root" toml:"root" json:"root"`
	SourceFile   string `yaml:"source_file" toml:"source_file" json:"source_file"`
	PlatformsDir string `yaml:"platforms_dir" toml:"platforms_dir" json:"platforms_dir"`
	DryRun       bool   `yaml:"dry_run" toml:"dry_run" json:"dry_run"`
	Report       string `yaml:"report" toml:"report" json:"report"`
	LogLevel     string `yaml:"log_level" toml:"log_level" json:"log_level"`
	Pretty       bool   `yaml:"pretty" toml:"pretty" json:"pretty"`

	// Preferences adds or overrides preference mappings, keyed by platform.
	Preferences map[string][]mapping.Entry `yaml:"preferences" toml:"preferences" json:"preferences"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Root:         ".",
		SourceFile:   project.DefaultSourceFile,
		PlatformsDir: project.DefaultPlatformsDir,
		LogLevel:     "info",
		Pretty:       true,
	}
}

// Load reads the settings file at path on top of the defaults and applies
// environment overrides. An empty path means DefaultFile, which may be absent.
func Load(fs afero.Fs, path string) (*Config, error) {
	cfg := Default()

	required := path != ""
	if !required {
		path = DefaultFile
	}

	data, err := afero.ReadFile(fs, path)

	switch {
	case err == nil:
		if err := decode(path, data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
		}
	case !required && errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	// A missing .env is not an error.
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func decode(path string, data []byte, cfg *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, cfg)
	case ".toml":
		return toml.Unmarshal(data, cfg)
	case ".json", ".jsonc":
		return json.Unmarshal(jsonc.ToJSON(data), cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// applyEnv applies PLATFORM_CONFIG_* overrides.
func (c *Config) applyEnv() error {
	strs := map[string]*string{
		"ROOT":          &c.Root,
		"SOURCE_FILE":   &c.SourceFile,
		"PLATFORMS_DIR": &c.PlatformsDir,
		"REPORT":        &c.Report,
		"LOG_LEVEL":     &c.LogLevel,
	}
	for name, dst := range strs {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok && v != "" {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"DRY_RUN": &c.DryRun,
		"PRETTY":  &c.Pretty,
	}
	for name, dst := range bools {
		v, ok := os.LookupEnv(EnvPrefix + name)
		if !ok || v == "" {
			continue
		}

		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s: %w", EnvPrefix, name, err)
		}

		*dst = b
	}

	return nil
}

// Layout returns the project layout described by the settings.
func (c *Config) Layout() project.Layout {
	l := project.NewLayout(c.Root)

	if c.SourceFile != "" {
		l.SourceFile = c.SourceFile
	}

	if c.PlatformsDir != "" {
		l.PlatformsDir = c.PlatformsDir
	}

	return l
}

// PreferenceMap returns the built-in preference map extended with the
// configured mappings.
func (c *Config) PreferenceMap() *mapping.PreferenceMap {
	if len(c.Preferences) == 0 {
		return mapping.Default()
	}

	extra := make(map[string][]mapping.Entry, len(c.Preferences))
	for platform, entries := range c.Preferences {
		id := common.PlatformID(platform)
		extra[id] = append(extra[id], entries...)
	}

	return mapping.NewPreferenceMap(extra)
}
