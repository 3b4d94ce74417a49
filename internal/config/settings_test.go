package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagecraft/build-layer/internal/testutil"
)

func noEnv(string) (string, bool) { return "", false }

func envWith(values map[string]string) LookupEnvFunc {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

func TestLoad_DefaultsWithNoSources(t *testing.T) {
	dir := t.TempDir()

	settings, err := Load(dir, noEnv)
	require.NoError(t, err)
	assert.False(t, settings.Flags.BuilderPlugin)
	assert.False(t, settings.Flags.Analytics)
	assert.False(t, settings.Flags.Enabled())
	assert.NotEmpty(t, settings.PluginsDir)
	assert.Contains(t, settings.PluginsDir, filepath.Join(".pagecraft", "plugins"))
}

func TestLoad_FlagsFromProcessEnv(t *testing.T) {
	dir := t.TempDir()

	settings, err := Load(dir, envWith(map[string]string{
		EnvBuilderPlugin: "true",
		EnvAnalytics:     "1",
	}))
	require.NoError(t, err)
	assert.True(t, settings.Flags.BuilderPlugin)
	assert.True(t, settings.Flags.Analytics)
}

func TestLoad_FlagsFromProjectEnvFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, EnvFileName),
		"PAGECRAFT_ANALYTICS=yes\nUNRELATED=true\n")

	settings, err := Load(dir, noEnv)
	require.NoError(t, err)
	assert.True(t, settings.Flags.Analytics)
	assert.False(t, settings.Flags.BuilderPlugin)
}

func TestLoad_ProcessEnvWinsOverEnvFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, EnvFileName), "PAGECRAFT_ANALYTICS=true\n")

	settings, err := Load(dir, envWith(map[string]string{EnvAnalytics: "false"}))
	require.NoError(t, err)
	assert.False(t, settings.Flags.Analytics)
}

func TestLoad_TruthyForms(t *testing.T) {
	truthy := []string{"true", "TRUE", "1", "yes", "Yes", "on"}
	falsy := []string{"", "false", "0", "no", "off", "enabled", "maybe"}

	for _, value := range truthy {
		assert.True(t, isTruthy(value), "value %q", value)
	}
	for _, value := range falsy {
		assert.False(t, isTruthy(value), "value %q", value)
	}
}

func TestLoad_InvalidEnvFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, EnvFileName), "NOT A KEY VALUE\n")

	_, err := Load(dir, noEnv)
	require.Error(t, err)
}

func TestLoad_SettingsFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, SettingsFileName), `
[plugins]
dir = "/opt/pagecraft/bundle"

[inject]
diff-lines = 80
`)

	settings, err := Load(dir, noEnv)
	require.NoError(t, err)
	assert.Equal(t, "/opt/pagecraft/bundle", settings.PluginsDir)
	assert.Equal(t, 80, settings.DiffMaxLines)
}

func TestLoad_EnvPluginsDirWinsOverSettingsFile(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, SettingsFileName), "[plugins]\ndir = \"/from/toml\"\n")

	settings, err := Load(dir, envWith(map[string]string{EnvPluginsDir: "/from/env"}))
	require.NoError(t, err)
	assert.Equal(t, "/from/env", settings.PluginsDir)
}

func TestLoad_SettingsFileRejectsUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, SettingsFileName), "[plugins]\ntypo = \"x\"\n")

	_, err := Load(dir, noEnv)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSettingsValidation)
}

func TestLoad_SettingsFileSyntaxError(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteFile(t, filepath.Join(dir, SettingsFileName), "not toml [")

	_, err := Load(dir, noEnv)
	require.Error(t, err)
}
