// Package engine orchestrates deploy-time injection: it gates on framework
// version and feature flags, detects the module dialect per file, preserves
// owner originals, and writes the chained hook and merged config modules.
package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pagecraft/build-layer/internal/backup"
	"github.com/pagecraft/build-layer/internal/compose"
	"github.com/pagecraft/build-layer/internal/config"
	"github.com/pagecraft/build-layer/internal/dialect"
	"github.com/pagecraft/build-layer/internal/messages"
	"github.com/pagecraft/build-layer/internal/plugins"
	"github.com/pagecraft/build-layer/internal/version"
)

// Logical file base names in the framework project, without extension.
const (
	// HookFileBase is the lifecycle-hook module the framework build imports.
	HookFileBase = "build-hooks"
	// ConfigFileBase is the site-configuration module.
	ConfigFileBase = "site-config"
)

// Options controls one engine invocation.
type Options struct {
	// ProjectDir is the framework project root.
	ProjectDir string
	// DetectedVersion is the framework version reported by detection, empty
	// when unknown.
	DetectedVersion string
	// Settings carries feature flags and per-project overrides.
	Settings *config.Settings
	// System provides OS operations; pass RealSystem{} outside tests.
	System System
}

// FileResult describes one generated file.
type FileResult struct {
	Role       string
	Path       string
	Dialect    dialect.Dialect
	BackupPath string // empty when no owner file ever existed
	Preview    *DiffPreview
}

// Result is the outcome of an engine invocation.
type Result struct {
	// Applied is false when the version gate rejected the run; no filesystem
	// access happened in that case.
	Applied bool
	Files   []FileResult
}

// Run executes injection for one build.
// The hook and config pipelines have no data dependency on each other and run
// concurrently; each is internally sequential because composition depends on
// backup state. A failure in one pipeline does not roll back the other.
func Run(opts Options) (*Result, error) {
	if opts.System == nil {
		return nil, errors.New(messages.EngineSystemRequired)
	}
	if opts.ProjectDir == "" {
		return nil, errors.New(messages.EngineProjectRequired)
	}
	if opts.Settings == nil {
		return nil, errors.New(messages.EngineSettingsRequired)
	}

	normalized, err := version.Normalize(opts.DetectedVersion)
	if err != nil {
		return nil, err
	}
	flags := opts.Settings.Flags
	decision := version.Gate(normalized, flags.BuilderPlugin, flags.Analytics)
	if !decision.Applicable {
		return &Result{Applied: false}, nil
	}

	eng := &engine{
		sys:          opts.System,
		dir:          opts.ProjectDir,
		diffMaxLines: opts.Settings.DiffMaxLines,
	}

	var hookResult, configResult *FileResult
	var hookErr, configErr error
	var wg sync.WaitGroup
	if decision.InjectHooks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hookResult, hookErr = eng.injectFile(HookFileBase, func(d dialect.Dialect, backupBase string) string {
				return compose.HookFile(d, backupBase, plugins.Builder())
			})
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		configResult, configErr = eng.injectFile(ConfigFileBase, func(d dialect.Dialect, backupBase string) string {
			return compose.ConfigFile(d, backupBase, decision.ConfigPlugins)
		})
	}()
	wg.Wait()

	if err := errors.Join(hookErr, configErr); err != nil {
		return nil, err
	}

	result := &Result{Applied: true}
	if hookResult != nil {
		result.Files = append(result.Files, *hookResult)
	}
	result.Files = append(result.Files, *configResult)
	return result, nil
}

type engine struct {
	sys          System
	dir          string
	diffMaxLines int
}

// injectFile runs one file pipeline: detect dialect, ensure backup, compose,
// write. composeFn receives the detected dialect and the backup base name
// (empty when no owner file existed).
func (e *engine) injectFile(base string, composeFn func(dialect.Dialect, string) string) (*FileResult, error) {
	d := dialect.Detect(e.sys, e.dir, base)
	path := filepath.Join(e.dir, base+d.Ext())

	before, err := e.readIfExists(path)
	if err != nil {
		return nil, err
	}

	var backupPath string
	var ownerExists bool
	if strings.HasPrefix(before, compose.GeneratedMarker) {
		// The current file is previous output. The backup, when one exists,
		// stays the owner source; without one there never was owner content,
		// so nothing must be backed up.
		backupPath = backup.PathFor(path)
		ownerExists, err = e.exists(backupPath)
	} else {
		backupPath, ownerExists, err = backup.Ensure(e.sys, path)
	}
	if err != nil {
		return nil, err
	}
	backupBase := ""
	if ownerExists {
		backupBase = filepath.Base(backupPath)
	}

	text := composeFn(d, backupBase)
	if err := e.sys.WriteFileAtomic(path, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf(messages.EngineFailedWriteFmt, path, err)
	}

	result := &FileResult{
		Role:    base,
		Path:    path,
		Dialect: d,
		Preview: buildDiffPreview(path, before, text, e.diffMaxLines),
	}
	if ownerExists {
		result.BackupPath = backupPath
	}
	return result, nil
}

// exists reports whether path exists without following symlinks.
func (e *engine) exists(path string) (bool, error) {
	if _, err := e.sys.Lstat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf(messages.EngineFailedStatFmt, path, err)
	}
	return true, nil
}

// readIfExists returns the file content or empty when the file is absent.
func (e *engine) readIfExists(path string) (string, error) {
	data, err := e.sys.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf(messages.EngineFailedReadFmt, path, err)
	}
	return string(data), nil
}
