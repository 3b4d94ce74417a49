// Package restore undoes injection: backups move back over generated files
// and provisioned plugin symlinks are removed.
package restore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pagecraft/build-layer/internal/backup"
	"github.com/pagecraft/build-layer/internal/compose"
	"github.com/pagecraft/build-layer/internal/dialect"
	"github.com/pagecraft/build-layer/internal/messages"
	"github.com/pagecraft/build-layer/internal/plugins"
	"github.com/pagecraft/build-layer/internal/provision"
)

// System abstracts the filesystem operations restoration needs.
type System interface {
	Lstat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	Remove(name string) error
	Rename(oldpath string, newpath string) error
}

// Result reports what restoration changed.
type Result struct {
	// RestoredFiles are the original paths whose owner bytes are back in place.
	RestoredFiles []string
	// RemovedLinks are the provisioned symlinks that were deleted.
	RemovedLinks []string
}

// Run restores owner originals in projectDir for every logical file and
// dialect that has a backup, then removes the platform plugin symlinks.
// Generated files without a backup (fresh-project passthroughs) are removed
// rather than restored. Returns what changed; an empty result means the
// project carried no injection output.
func Run(sys System, projectDir string, bases []string) (*Result, error) {
	result := &Result{}
	var errs []error

	for _, base := range bases {
		for _, d := range []dialect.Dialect{dialect.CommonJS, dialect.ESModule, dialect.TypedSource} {
			path := filepath.Join(projectDir, base+d.Ext())
			restored, err := restoreFile(sys, path)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if restored {
				result.RestoredFiles = append(result.RestoredFiles, path)
			}
		}
	}

	for _, pkg := range plugins.All() {
		linkPath := filepath.Join(projectDir, provision.DependencyDirName, filepath.FromSlash(pkg.PackageName))
		removed, err := removeLink(sys, linkPath)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if removed {
			result.RemovedLinks = append(result.RemovedLinks, linkPath)
		}
	}

	return result, errors.Join(errs...)
}

// restoreFile moves the backup for path back into place when one exists.
// A generated file with no backup never had an owner original, so it is
// removed instead. Owner-authored files are never touched.
func restoreFile(sys System, path string) (bool, error) {
	backupPath := backup.PathFor(path)
	if _, err := sys.Lstat(backupPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return removeGenerated(sys, path)
		}
		return false, fmt.Errorf(messages.BackupFailedStatFmt, backupPath, err)
	}
	if err := sys.Rename(backupPath, path); err != nil {
		return false, fmt.Errorf(messages.RestoreFailedMoveFmt, path, backupPath, err)
	}
	return true, nil
}

// removeGenerated deletes path when it carries the generated-file marker.
func removeGenerated(sys System, path string) (bool, error) {
	data, err := sys.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf(messages.EngineFailedReadFmt, path, err)
	}
	if !strings.HasPrefix(string(data), compose.GeneratedMarker) {
		return false, nil
	}
	if err := sys.Remove(path); err != nil {
		return false, fmt.Errorf(messages.RestoreFailedRemoveFmt, path, err)
	}
	return true, nil
}

// removeLink deletes linkPath when it is a symlink. Real directories are a
// genuine install and stay.
func removeLink(sys System, linkPath string) (bool, error) {
	info, err := sys.Lstat(linkPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf(messages.ProvisionFailedInspectFmt, linkPath, err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return false, nil
	}
	if err := sys.Remove(linkPath); err != nil {
		return false, fmt.Errorf(messages.RestoreFailedUnlinkFmt, linkPath, err)
	}
	return true, nil
}
