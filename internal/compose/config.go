package compose

import (
	"strings"

	"github.com/pagecraft/build-layer/internal/dialect"
	"github.com/pagecraft/build-layer/internal/plugins"
)

// ConfigFile produces the generated site-configuration module.
// d is the target dialect; backupBase is the backup file name when an owner
// config pre-existed, empty otherwise; injected lists the plugins to merge,
// already gated and ordered.
//
// The generated module shallow-copies the owner's configuration (normalizing
// a default-exported object), copies the plugin list before mutating it, and
// appends each injected plugin unless an existing entry already references it
// by exact name or by a matching resolve field. Owner entries keep their
// order; injected entries follow in the given order, so re-running with the
// same inputs is byte-stable.
func ConfigFile(d dialect.Dialect, backupBase string, injected []plugins.Descriptor) string {
	var b strings.Builder
	if backupBase == "" {
		b.WriteString(header(""))
		b.WriteString("const ownerConfig = {}\n")
	} else {
		spec := specifier(d, backupBase)
		b.WriteString(header(spec))
		if d == dialect.CommonJS {
			b.WriteString("const ownerModule = require('" + spec + "')\n")
		} else {
			// Namespace import: a default import would fail module linking
			// for owner files that only export named bindings.
			b.WriteString("import * as ownerModule from '" + spec + "'\n")
		}
		b.WriteString("\n")
		b.WriteString(normalizeOwner(d))
	}
	b.WriteString("\n")
	b.WriteString(configBody(d, injected))
	if d == dialect.CommonJS {
		b.WriteString("\nmodule.exports = config\n")
	} else {
		b.WriteString("\nexport default config\n")
	}
	return b.String()
}

// normalizeOwner prefers a default-exported configuration object over the
// module record itself.
func normalizeOwner(d dialect.Dialect) string {
	if d == dialect.TypedSource {
		return "const ownerRecord = ownerModule as unknown as Record<string, unknown>\n" +
			"const ownerConfig: Record<string, unknown> =\n" +
			"  ownerRecord.default && typeof ownerRecord.default === 'object'\n" +
			"    ? (ownerRecord.default as Record<string, unknown>)\n" +
			"    : ownerRecord\n"
	}
	return "const ownerConfig = ownerModule && ownerModule.default ? ownerModule.default : ownerModule || {}\n"
}

// configBody emits the shallow copy, plugin-list copy, dedupe helper, and the
// per-plugin conditional appends.
func configBody(d dialect.Dialect, injected []plugins.Descriptor) string {
	var b strings.Builder
	if d == dialect.TypedSource {
		b.WriteString("const config: Record<string, unknown> = { ...ownerConfig }\n")
		b.WriteString("\n")
		b.WriteString("const ownerPlugins = config.plugins\n")
		b.WriteString("config.plugins = Array.isArray(ownerPlugins) ? [...ownerPlugins] : []\n")
		b.WriteString("\n")
		b.WriteString("const hasPlugin = (list: unknown[], name: string): boolean =>\n")
		b.WriteString("  list.some(\n")
		b.WriteString("    (entry) =>\n")
		b.WriteString("      entry === name ||\n")
		b.WriteString("      (typeof entry === 'object' && entry !== null && (entry as { resolve?: unknown }).resolve === name),\n")
		b.WriteString("  )\n")
		for _, plugin := range injected {
			b.WriteString("\n")
			b.WriteString("if (!hasPlugin(config.plugins as unknown[], '" + plugin.PackageName + "')) {\n")
			b.WriteString("  ;(config.plugins as unknown[]).push('" + plugin.PackageName + "')\n")
			b.WriteString("}\n")
		}
		return b.String()
	}

	b.WriteString("const config = { ...ownerConfig }\n")
	b.WriteString("\n")
	b.WriteString("config.plugins = Array.isArray(config.plugins) ? [...config.plugins] : []\n")
	b.WriteString("\n")
	b.WriteString("const hasPlugin = (list, name) =>\n")
	b.WriteString("  list.some(\n")
	b.WriteString("    (entry) => entry === name || (entry && typeof entry === 'object' && entry.resolve === name),\n")
	b.WriteString("  )\n")
	for _, plugin := range injected {
		b.WriteString("\n")
		b.WriteString("if (!hasPlugin(config.plugins, '" + plugin.PackageName + "')) {\n")
		b.WriteString("  config.plugins.push('" + plugin.PackageName + "')\n")
		b.WriteString("}\n")
	}
	return b.String()
}
