// Package compose synthesizes the text of generated framework files. The
// chaining semantics are dialect-independent; only the import/export syntax
// differs between CommonJS, ES module, and TypeScript output.
package compose

import (
	"strings"

	"github.com/pagecraft/build-layer/internal/dialect"
)

// HookName is the lifecycle hook export the platform augments. Every other
// owner export passes through untouched.
const HookName = "onPostBuild"

// GeneratedMarker is the first line of every generated file. Restore uses it
// to recognize engine output that has no backup to fall back to.
const GeneratedMarker = "// Generated by Pagecraft Build Layer. Do not edit.\n"

// header marks generated files so site owners understand what happened to
// their originals.
func header(backupSpecifier string) string {
	var b strings.Builder
	b.WriteString(GeneratedMarker)
	if backupSpecifier != "" {
		b.WriteString("// The original file is preserved at ")
		b.WriteString(strings.TrimPrefix(backupSpecifier, "./"))
		b.WriteString(" and still runs.\n")
	}
	b.WriteString("\n")
	return b.String()
}

// specifier returns the module specifier for importing a sibling backup file.
// base is the backup file name; TypeScript imports drop the trailing .ts
// because the compiler resolves extensionless specifiers.
func specifier(d dialect.Dialect, base string) string {
	if d == dialect.TypedSource {
		base = strings.TrimSuffix(base, ".ts")
	}
	return "./" + base
}
