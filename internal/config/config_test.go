package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"platform-config/internal/mapping"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(afero.NewMemMapFs(), "")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "missing.yaml")
	assert.Error(t, err)
}

func TestLoad_YAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "settings.yaml", `
root: app
dry_run: true
log_level: debug
preferences:
  Android:
    - name: android-allowBackup
      target: AndroidManifest.xml
      parent: application
      destination: android:allowBackup
`)

	cfg, err := Load(fs, "settings.yaml")
	require.NoError(t, err)

	assert.Equal(t, "app", cfg.Root)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "config.xml", cfg.SourceFile, "defaults survive partial files")
	assert.True(t, cfg.Pretty)

	e, ok := cfg.PreferenceMap().Lookup("android", "android-allowBackup")
	require.True(t, ok)
	assert.Equal(t, "android:allowBackup", e.Destination)

	_, ok = cfg.PreferenceMap().Lookup("android", "android-launchMode")
	assert.True(t, ok, "built-in entries are kept")
}

func TestLoad_TOML(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "settings.toml", `
root = "mobile"
platforms_dir = "native"
pretty = false

[[preferences.ios]]
name = "ios-foo"
target = "*-Info.plist"
parent = "Foo"
destination = "Foo"
`)

	cfg, err := Load(fs, "settings.toml")
	require.NoError(t, err)

	assert.Equal(t, "mobile", cfg.Root)
	assert.Equal(t, "native", cfg.Layout().PlatformsDir)
	assert.False(t, cfg.Pretty)
	assert.Equal(t, []mapping.Entry{{Name: "ios-foo", Target: "*-Info.plist", Parent: "Foo", Destination: "Foo"}},
		cfg.Preferences["ios"])
}

func TestLoad_JSONC(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "settings.jsonc", `{
  // report next to the project
  "report": "report.yaml",
  "source_file": "app.xml",
}`)

	cfg, err := Load(fs, "settings.jsonc")
	require.NoError(t, err)

	assert.Equal(t, "report.yaml", cfg.Report)
	assert.Equal(t, "app.xml", cfg.Layout().SourceFile)
}

func TestLoad_UnsupportedFormat(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "settings.ini", "root=x")

	_, err := Load(fs, "settings.ini")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PLATFORM_CONFIG_ROOT", "/srv/app")
	t.Setenv("PLATFORM_CONFIG_DRY_RUN", "true")
	t.Setenv("PLATFORM_CONFIG_LOG_LEVEL", "warn")

	fs := afero.NewMemMapFs()
	writeFile(t, fs, "settings.yaml", "root: app\n")

	cfg, err := Load(fs, "settings.yaml")
	require.NoError(t, err)

	assert.Equal(t, "/srv/app", cfg.Root)
	assert.True(t, cfg.DryRun)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_InvalidEnvBool(t *testing.T) {
	t.Setenv("PLATFORM_CONFIG_PRETTY", "maybe")

	_, err := Load(afero.NewMemMapFs(), "")
	assert.Error(t, err)
}

func TestConfig_Layout(t *testing.T) {
	cfg := Default()
	cfg.Root = "/p"

	l := cfg.Layout()
	assert.Equal(t, "/p", l.Root)
	assert.Equal(t, "config.xml", l.SourceFile)
	assert.Equal(t, "platforms", l.PlatformsDir)
}
