// Package dialect chooses the module syntax generated files must match.
package dialect

import (
	"os"
	"path/filepath"
)

// Dialect is one of the module syntaxes a framework project file may use.
type Dialect int

const (
	// CommonJS is require/module.exports syntax (.js).
	CommonJS Dialect = iota
	// ESModule is import/export syntax (.mjs).
	ESModule
	// TypedSource is TypeScript syntax (.ts).
	TypedSource
)

// Ext returns the file extension for the dialect, including the dot.
func (d Dialect) Ext() string {
	switch d {
	case TypedSource:
		return ".ts"
	case ESModule:
		return ".mjs"
	default:
		return ".js"
	}
}

// String returns a human-readable dialect name.
func (d Dialect) String() string {
	switch d {
	case TypedSource:
		return "typescript"
	case ESModule:
		return "esm"
	default:
		return "commonjs"
	}
}

// System abstracts the filesystem operations dialect detection needs.
type System interface {
	Stat(name string) (os.FileInfo, error)
}

// Detect picks the dialect for one logical file by probing sibling extensions.
// dir is the project directory; base is the file name without extension.
// An existing file's own extension wins, probed typed-source first; when no
// variant exists the detector defaults to CommonJS. Detect never fails:
// probe errors are treated as absence.
func Detect(sys System, dir string, base string) Dialect {
	for _, d := range []Dialect{TypedSource, ESModule, CommonJS} {
		info, err := sys.Stat(filepath.Join(dir, base+d.Ext()))
		if err == nil && !info.IsDir() {
			return d
		}
	}
	return CommonJS
}
