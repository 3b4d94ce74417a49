// Package config assembles the per-build injection settings from the project
// .env, the process environment, and an optional build-layer.toml.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/pagecraft/build-layer/internal/envfile"
	"github.com/pagecraft/build-layer/internal/messages"
)

// Environment variable names recognized by the engine.
const (
	// EnvBuilderPlugin toggles build-hook injection.
	EnvBuilderPlugin = "PAGECRAFT_BUILDER_PLUGIN"
	// EnvAnalytics toggles analytics plugin injection.
	EnvAnalytics = "PAGECRAFT_ANALYTICS"
	// EnvPluginsDir overrides the platform plugin bundle directory.
	EnvPluginsDir = "PAGECRAFT_PLUGINS_DIR"

	// envPrefix restricts project .env values to the Pagecraft namespace.
	envPrefix = "PAGECRAFT_"

	// SettingsFileName is the optional per-project settings file.
	SettingsFileName = "build-layer.toml"
	// EnvFileName is the project dotenv file feature toggles may live in.
	EnvFileName = ".env"
)

// ErrSettingsValidation wraps settings validation failures, as opposed to
// TOML syntax or filesystem errors. Callers can use
// errors.Is(err, ErrSettingsValidation) to distinguish them.
var ErrSettingsValidation = errors.New("settings validation failed")

// FeatureFlags are the boolean toggles gating injection.
type FeatureFlags struct {
	BuilderPlugin bool
	Analytics     bool
}

// Enabled reports whether any flag is set.
func (f FeatureFlags) Enabled() bool {
	return f.BuilderPlugin || f.Analytics
}

// Settings carries everything the engine needs beyond the project directory.
type Settings struct {
	Flags        FeatureFlags
	PluginsDir   string
	DiffMaxLines int
}

// LookupEnvFunc looks up one process environment variable.
type LookupEnvFunc func(key string) (string, bool)

// fileSettings is the TOML shape of build-layer.toml.
type fileSettings struct {
	Plugins struct {
		Dir string `toml:"dir"`
	} `toml:"plugins"`
	Inject struct {
		DiffLines int `toml:"diff-lines"`
	} `toml:"inject"`
}

// Load assembles Settings for a project directory.
// projectDir is the framework project root; lookupEnv reads the process
// environment (pass os.LookupEnv outside tests). Process env values win over
// project .env values; both are restricted to the PAGECRAFT_ namespace.
func Load(projectDir string, lookupEnv LookupEnvFunc) (*Settings, error) {
	env, err := loadProjectEnv(filepath.Join(projectDir, EnvFileName))
	if err != nil {
		return nil, err
	}

	lookup := func(key string) string {
		if value, ok := lookupEnv(key); ok {
			return strings.TrimSpace(value)
		}
		return env[key]
	}

	settings := &Settings{
		Flags: FeatureFlags{
			BuilderPlugin: isTruthy(lookup(EnvBuilderPlugin)),
			Analytics:     isTruthy(lookup(EnvAnalytics)),
		},
	}

	file, err := loadSettingsFile(filepath.Join(projectDir, SettingsFileName))
	if err != nil {
		return nil, err
	}
	if file != nil {
		settings.PluginsDir = strings.TrimSpace(file.Plugins.Dir)
		settings.DiffMaxLines = file.Inject.DiffLines
	}

	if dir := lookup(EnvPluginsDir); dir != "" {
		settings.PluginsDir = dir
	}
	if settings.PluginsDir == "" {
		settings.PluginsDir, err = defaultPluginsDir()
		if err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// loadProjectEnv reads the project .env restricted to the PAGECRAFT_ namespace.
// A missing file is not an error; toggles may come from the process env alone.
func loadProjectEnv(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf(messages.SettingsFailedReadEnvFmt, path, err)
	}
	env, err := envfile.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf(messages.SettingsInvalidEnvFileFmt, path, err)
	}
	filtered := make(map[string]string, len(env))
	for key, value := range env {
		if strings.HasPrefix(key, envPrefix) {
			filtered[key] = value
		}
	}
	return filtered, nil
}

// loadSettingsFile reads and strictly decodes build-layer.toml.
// Returns nil when the file does not exist.
func loadSettingsFile(path string) (*fileSettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf(messages.EngineFailedReadFmt, path, err)
	}
	var file fileSettings
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: "+messages.SettingsUnrecognizedFmt, ErrSettingsValidation, path, strict.String())
		}
		return nil, fmt.Errorf(messages.SettingsInvalidFileFmt, path, err)
	}
	return &file, nil
}

// defaultPluginsDir resolves the platform bundle directory under the home dir.
func defaultPluginsDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf(messages.SettingsResolveHomeFmt, err)
	}
	return filepath.Join(home, ".pagecraft", "plugins"), nil
}

// isTruthy reports whether an env toggle value enables its feature.
// Accepted forms: true/1/yes/on, case-insensitive.
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true
	default:
		return false
	}
}
