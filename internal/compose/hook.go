package compose

import (
	"strings"

	"github.com/pagecraft/build-layer/internal/dialect"
	"github.com/pagecraft/build-layer/internal/plugins"
)

// HookFile produces the generated lifecycle-hook module.
// d is the target dialect; backupBase is the backup file name when an owner
// file pre-existed, empty otherwise; plugin supplies the platform hooks
// import. Output is deterministic: identical inputs yield identical bytes.
//
// With no owner file the module is a bare re-export of the platform hooks.
// With an owner file it re-exports every owner export unchanged and overrides
// the one lifecycle hook to run the owner's implementation to completion
// before the platform's. A non-callable owner export under that name is
// skipped by a runtime guard rather than failing the build.
func HookFile(d dialect.Dialect, backupBase string, plugin plugins.Descriptor) string {
	if backupBase == "" {
		return passthroughHook(d, plugin)
	}
	spec := specifier(d, backupBase)

	var b strings.Builder
	b.WriteString(header(spec))
	switch d {
	case dialect.CommonJS:
		b.WriteString("const platformHooks = require('" + plugin.HooksImport + "')\n")
		b.WriteString("const ownerHooks = require('" + spec + "')\n")
		b.WriteString("\n")
		b.WriteString("module.exports = {\n")
		b.WriteString("  ...ownerHooks,\n")
		b.WriteString("  " + HookName + ": async (args) => {\n")
		b.WriteString("    if (typeof ownerHooks." + HookName + " === 'function') {\n")
		b.WriteString("      await ownerHooks." + HookName + "(args)\n")
		b.WriteString("    }\n")
		b.WriteString("    await platformHooks." + HookName + "(args)\n")
		b.WriteString("  },\n")
		b.WriteString("}\n")
	case dialect.TypedSource:
		b.WriteString("import * as platformHooks from '" + plugin.HooksImport + "'\n")
		b.WriteString("import * as ownerHooks from '" + spec + "'\n")
		b.WriteString("\n")
		b.WriteString("export * from '" + spec + "'\n")
		b.WriteString("\n")
		b.WriteString("export const " + HookName + " = async (args: unknown): Promise<void> => {\n")
		b.WriteString("  const ownerHook = (ownerHooks as Record<string, unknown>)['" + HookName + "']\n")
		b.WriteString("  if (typeof ownerHook === 'function') {\n")
		b.WriteString("    await (ownerHook as (args: unknown) => unknown)(args)\n")
		b.WriteString("  }\n")
		b.WriteString("  await platformHooks." + HookName + "(args)\n")
		b.WriteString("}\n")
	default:
		b.WriteString("import * as platformHooks from '" + plugin.HooksImport + "'\n")
		b.WriteString("import * as ownerHooks from '" + spec + "'\n")
		b.WriteString("\n")
		b.WriteString("export * from '" + spec + "'\n")
		b.WriteString("\n")
		b.WriteString("export const " + HookName + " = async (args) => {\n")
		b.WriteString("  if (typeof ownerHooks." + HookName + " === 'function') {\n")
		b.WriteString("    await ownerHooks." + HookName + "(args)\n")
		b.WriteString("  }\n")
		b.WriteString("  await platformHooks." + HookName + "(args)\n")
		b.WriteString("}\n")
	}
	return b.String()
}

// passthroughHook emits the minimal module for projects without an owner
// hook file.
func passthroughHook(d dialect.Dialect, plugin plugins.Descriptor) string {
	if d == dialect.CommonJS {
		return header("") + "module.exports = require('" + plugin.HooksImport + "')\n"
	}
	return header("") + "export * from '" + plugin.HooksImport + "'\n"
}
