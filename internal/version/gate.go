package version

import "github.com/pagecraft/build-layer/internal/plugins"

// hookChainMinMajor is the lowest framework major version whose lifecycle
// hook files support chaining.
const hookChainMinMajor = 4

// Decision is the outcome of gating injection on version and feature flags.
type Decision struct {
	// Applicable is false when no plugin applies; the engine then performs
	// no filesystem access at all.
	Applicable bool
	// InjectHooks reports whether the lifecycle hook file should be
	// generated. Requires the builder flag and framework major >= 4.
	InjectHooks bool
	// ConfigPlugins lists the plugins to merge into the site config plugin
	// list, in injection order.
	ConfigPlugins []plugins.Descriptor
}

// Gate decides what injection should occur for a detected framework version.
// detected is a normalized version string, empty when detection failed;
// builderEnabled and analyticsEnabled are the feature toggles. Pure function,
// no side effects.
func Gate(detected string, builderEnabled bool, analyticsEnabled bool) Decision {
	var decision Decision

	if builderEnabled {
		if major, ok := Major(detected); ok && major >= hookChainMinMajor {
			decision.InjectHooks = true
			decision.ConfigPlugins = append(decision.ConfigPlugins, plugins.Builder())
		}
	}
	if analyticsEnabled {
		decision.ConfigPlugins = append(decision.ConfigPlugins, plugins.Analytics())
	}

	decision.Applicable = decision.InjectHooks || len(decision.ConfigPlugins) > 0
	return decision
}
