package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagecraft/build-layer/internal/plugins"
)

func configPluginNames(d Decision) []string {
	names := make([]string, 0, len(d.ConfigPlugins))
	for _, p := range d.ConfigPlugins {
		names = append(names, p.PackageName)
	}
	return names
}

func TestGate_NoFlagsNotApplicable(t *testing.T) {
	decision := Gate("5.0.0", false, false)
	assert.False(t, decision.Applicable)
	assert.False(t, decision.InjectHooks)
	assert.Empty(t, decision.ConfigPlugins)
}

func TestGate_BothFlagsAtOrAboveThreshold(t *testing.T) {
	decision := Gate("4.0.0", true, true)
	require.True(t, decision.Applicable)
	assert.True(t, decision.InjectHooks)
	assert.Equal(t, []string{
		plugins.Builder().PackageName,
		plugins.Analytics().PackageName,
	}, configPluginNames(decision))
}

func TestGate_BelowThresholdDropsBuilder(t *testing.T) {
	decision := Gate("3.9.2", true, true)
	require.True(t, decision.Applicable)
	assert.False(t, decision.InjectHooks)
	assert.Equal(t, []string{plugins.Analytics().PackageName}, configPluginNames(decision))
}

func TestGate_UnknownVersionDropsBuilder(t *testing.T) {
	decision := Gate("", true, true)
	require.True(t, decision.Applicable)
	assert.False(t, decision.InjectHooks)
	assert.Equal(t, []string{plugins.Analytics().PackageName}, configPluginNames(decision))
}

func TestGate_BuilderOnlyBelowThresholdNotApplicable(t *testing.T) {
	// Nothing to inject anywhere: the builder plugin is version-gated out and
	// analytics is off.
	decision := Gate("3.0.0", true, false)
	assert.False(t, decision.Applicable)
}

func TestGate_AnalyticsAloneIsVersionIndependent(t *testing.T) {
	for _, detected := range []string{"", "1.0.0", "5.0.0"} {
		decision := Gate(detected, false, true)
		require.True(t, decision.Applicable, "version %q", detected)
		assert.False(t, decision.InjectHooks)
		assert.Equal(t, []string{plugins.Analytics().PackageName}, configPluginNames(decision))
	}
}
