package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagecraft/build-layer/internal/plugins"
	"github.com/pagecraft/build-layer/internal/provision"
	"github.com/pagecraft/build-layer/internal/restore"
	"github.com/pagecraft/build-layer/internal/testutil"
)

func TestProvision_LinksAgainstConfiguredBundleDir(t *testing.T) {
	dir := t.TempDir()
	bundle := t.TempDir()
	for _, pkg := range plugins.All() {
		require.NoError(t, os.MkdirAll(filepath.Join(bundle, pkg.BundleName), 0o755))
	}
	testutil.WriteFile(t, filepath.Join(dir, "build-layer.toml"),
		"[plugins]\ndir = \""+bundle+"\"\n")

	stdout, _, err := runCLI("provision", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Linked")

	for _, pkg := range plugins.All() {
		linkPath := filepath.Join(dir, provision.DependencyDirName, filepath.FromSlash(pkg.PackageName))
		target, err := os.Readlink(linkPath)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(bundle, pkg.BundleName), target)
	}
}

func TestProvision_SeamReportsErrors(t *testing.T) {
	orig := provisionRun
	t.Cleanup(func() { provisionRun = orig })
	provisionRun = func(sys provision.System, projectDir string, bundleDir string, pkgs []plugins.Descriptor) ([]provision.Link, error) {
		return nil, errors.New("provisioning failed")
	}

	_, _, err := runCLI("provision", "--dir", t.TempDir())
	require.Error(t, err)
}

func TestRestore_ReportsNothingToDo(t *testing.T) {
	stdout, _, err := runCLI("restore", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, stdout, "Nothing to restore")
}

func TestRestore_SeamReportsRestoredFiles(t *testing.T) {
	orig := restoreRun
	t.Cleanup(func() { restoreRun = orig })
	restoreRun = func(sys restore.System, projectDir string, bases []string) (*restore.Result, error) {
		return &restore.Result{RestoredFiles: []string{filepath.Join(projectDir, "site-config.js")}}, nil
	}

	stdout, _, err := runCLI("restore", "--dir", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, stdout, "Restored")
	assert.Contains(t, stdout, "site-config.js")
}

func TestRestore_EndToEndAfterInjection(t *testing.T) {
	stubTerminal(t, false)
	dir := t.TempDir()
	owner := "module.exports = { plugins: [] }\n"
	testutil.WriteFile(t, filepath.Join(dir, "site-config.js"), owner)
	testutil.WriteFile(t, filepath.Join(dir, ".env"), "PAGECRAFT_ANALYTICS=true\n")

	_, _, err := runCLI("inject", "--dir", dir)
	require.NoError(t, err)

	_, _, err = runCLI("restore", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, owner, testutil.ReadFile(t, filepath.Join(dir, "site-config.js")))
}
