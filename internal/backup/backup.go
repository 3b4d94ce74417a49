// Package backup preserves owner-authored files before injection replaces
// them. The backup, once made, is the authoritative copy of the owner's code:
// later passes regenerate from it instead of re-backing-up generated output.
package backup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pagecraft/build-layer/internal/messages"
)

// Suffix marks backup files created by the engine.
const Suffix = ".__pagecraft_backup__"

// System abstracts the filesystem operations the backup manager needs.
type System interface {
	Lstat(name string) (os.FileInfo, error)
	Rename(oldpath string, newpath string) error
}

// PathFor returns the deterministic backup path for a target file.
// The original extension is appended again so module resolution of the
// backup behaves like the original file.
func PathFor(path string) string {
	return path + Suffix + filepath.Ext(path)
}

// IsBackupPath reports whether path names a backup file made by this engine.
func IsBackupPath(path string) bool {
	return strings.HasSuffix(strings.TrimSuffix(path, filepath.Ext(path)), Suffix)
}

// Ensure moves a pre-existing owner file at path to its backup path.
// Returns the backup path and whether owner content exists (either just
// moved, or preserved by an earlier pass).
//
// When the backup already exists, the file currently at path is assumed to be
// generated output from a previous pass and is left alone; the backup stays
// the source of truth. When neither exists there is nothing to preserve.
func Ensure(sys System, path string) (backupPath string, ownerExists bool, err error) {
	backupPath = PathFor(path)

	if _, err := sys.Lstat(backupPath); err == nil {
		return backupPath, true, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", false, fmt.Errorf(messages.BackupFailedStatFmt, backupPath, err)
	}

	if _, err := sys.Lstat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return backupPath, false, nil
		}
		return "", false, fmt.Errorf(messages.EngineFailedStatFmt, path, err)
	}

	if err := sys.Rename(path, backupPath); err != nil {
		return "", false, fmt.Errorf(messages.BackupFailedMoveFmt, path, backupPath, err)
	}
	return backupPath, true, nil
}
