// Package plugins describes the Pagecraft plugin packages that injection
// references from generated files and provisions into node_modules.
package plugins

// Descriptor identifies one platform plugin package.
type Descriptor struct {
	// PackageName is the npm-style name referenced from the site config
	// plugin list and resolved through node_modules.
	PackageName string
	// BundleName is the directory name of the plugin inside the platform
	// bundle directory; symlinks point at it.
	BundleName string
	// HooksImport is the module specifier generated hook files import the
	// platform lifecycle callbacks from. Empty for plugins that do not
	// participate in hook chaining.
	HooksImport string
}

// Builder returns the descriptor for the build-hook plugin.
// Hook chaining requires framework major version 4 or later.
func Builder() Descriptor {
	return Descriptor{
		PackageName: "@pagecraft/plugin-builder",
		BundleName:  "plugin-builder",
		HooksImport: "@pagecraft/plugin-builder/hooks",
	}
}

// Analytics returns the descriptor for the analytics plugin.
// It is version-independent and only ever appears in the config plugin list.
func Analytics() Descriptor {
	return Descriptor{
		PackageName: "@pagecraft/plugin-analytics",
		BundleName:  "plugin-analytics",
	}
}

// All returns every platform plugin in provisioning order.
func All() []Descriptor {
	return []Descriptor{Builder(), Analytics()}
}
