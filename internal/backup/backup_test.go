package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagecraft/build-layer/internal/testutil"
)

type osSystem struct{}

func (osSystem) Lstat(name string) (os.FileInfo, error) { return os.Lstat(name) }
func (osSystem) Rename(oldpath, newpath string) error   { return os.Rename(oldpath, newpath) }

func TestPathFor(t *testing.T) {
	assert.Equal(t,
		"/site/build-hooks.js.__pagecraft_backup__.js",
		PathFor("/site/build-hooks.js"))
	assert.Equal(t,
		"/site/site-config.ts.__pagecraft_backup__.ts",
		PathFor("/site/site-config.ts"))
}

func TestIsBackupPath(t *testing.T) {
	assert.True(t, IsBackupPath("/site/build-hooks.js.__pagecraft_backup__.js"))
	assert.True(t, IsBackupPath("site-config.mjs.__pagecraft_backup__.mjs"))
	assert.False(t, IsBackupPath("/site/build-hooks.js"))
	assert.False(t, IsBackupPath("/site/site-config.ts"))
}

func TestEnsure_NoFileIsNoOp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "build-hooks.js")

	backupPath, ownerExists, err := Ensure(osSystem{}, path)
	require.NoError(t, err)
	assert.False(t, ownerExists)
	assert.Equal(t, PathFor(path), backupPath)
	assert.False(t, testutil.Exists(t, backupPath))
}

func TestEnsure_MovesOwnerFileByteExact(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "build-hooks.js")
	original := "module.exports = { onPostBuild: () => {} }\n"
	testutil.WriteFile(t, path, original)

	backupPath, ownerExists, err := Ensure(osSystem{}, path)
	require.NoError(t, err)
	assert.True(t, ownerExists)
	assert.False(t, testutil.Exists(t, path))
	assert.Equal(t, original, testutil.ReadFile(t, backupPath))
}

func TestEnsure_ExistingBackupIsAuthoritative(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site-config.js")
	original := "module.exports = { plugins: ['owner-plugin'] }\n"
	generated := "// generated output\nmodule.exports = {}\n"
	testutil.WriteFile(t, PathFor(path), original)
	testutil.WriteFile(t, path, generated)

	backupPath, ownerExists, err := Ensure(osSystem{}, path)
	require.NoError(t, err)
	assert.True(t, ownerExists)

	// Neither file moved: a second pass must not wrap the generated output.
	assert.Equal(t, original, testutil.ReadFile(t, backupPath))
	assert.Equal(t, generated, testutil.ReadFile(t, path))
}

func TestEnsure_BackupWithoutCurrentFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "build-hooks.js")
	original := "module.exports = {}\n"
	testutil.WriteFile(t, PathFor(path), original)

	_, ownerExists, err := Ensure(osSystem{}, path)
	require.NoError(t, err)
	assert.True(t, ownerExists)
	assert.Equal(t, original, testutil.ReadFile(t, PathFor(path)))
}
