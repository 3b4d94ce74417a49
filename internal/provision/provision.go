// Package provision symlinks platform plugin packages into the project's
// dependency directory so module resolution of the generated files succeeds
// without a package-manager install.
package provision

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pagecraft/build-layer/internal/messages"
	"github.com/pagecraft/build-layer/internal/plugins"
)

// DependencyDirName is the framework's module resolution directory.
const DependencyDirName = "node_modules"

// System abstracts the filesystem operations provisioning needs.
type System interface {
	Lstat(name string) (os.FileInfo, error)
	Readlink(name string) (string, error)
	MkdirAll(path string, perm os.FileMode) error
	Remove(name string) error
	Symlink(oldname string, newname string) error
}

// Link records one provisioned package symlink.
type Link struct {
	PackageName string
	Path        string
	Target      string
}

// Provision creates a symlink per platform plugin under the project's
// dependency directory, pointing into bundleDir.
//
// Idempotent: a link already pointing at the right target is kept, a stale
// link is replaced, and a real directory or file at the link path is left
// alone (a genuine install wins over provisioning). Failure to create the
// dependency directory is fatal; individual link failures are collected so
// the remaining packages still provision.
func Provision(sys System, projectDir string, bundleDir string, pkgs []plugins.Descriptor) ([]Link, error) {
	var linked []Link
	var errs []error
	for _, pkg := range pkgs {
		linkPath := filepath.Join(projectDir, DependencyDirName, filepath.FromSlash(pkg.PackageName))
		target := filepath.Join(bundleDir, pkg.BundleName)

		if err := sys.MkdirAll(filepath.Dir(linkPath), 0o755); err != nil {
			return linked, fmt.Errorf(messages.ProvisionDepDirFmt, filepath.Dir(linkPath), err)
		}

		created, err := ensureLink(sys, linkPath, target)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if created {
			linked = append(linked, Link{PackageName: pkg.PackageName, Path: linkPath, Target: target})
		}
	}
	return linked, errors.Join(errs...)
}

// ensureLink makes linkPath a symlink to target, replacing a stale link.
// Returns whether a new link was created.
func ensureLink(sys System, linkPath string, target string) (bool, error) {
	info, err := sys.Lstat(linkPath)
	switch {
	case err == nil && info.Mode()&os.ModeSymlink != 0:
		existing, err := sys.Readlink(linkPath)
		if err != nil {
			return false, fmt.Errorf(messages.ProvisionFailedInspectFmt, linkPath, err)
		}
		if existing == target {
			return false, nil
		}
		if err := sys.Remove(linkPath); err != nil {
			return false, fmt.Errorf(messages.ProvisionFailedReplaceFmt, linkPath, err)
		}
	case err == nil:
		// A real directory or file occupies the path; keep it.
		return false, nil
	case !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf(messages.ProvisionFailedInspectFmt, linkPath, err)
	}

	if err := sys.Symlink(target, linkPath); err != nil {
		return false, fmt.Errorf(messages.ProvisionFailedLinkFmt, linkPath, target, err)
	}
	return true, nil
}
