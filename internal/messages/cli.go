package messages

// CLI messages for user-facing commands and output.
const (
	// RootUse is the CLI command name.
	RootUse = "bl"
	// RootShort is the short description for the root command.
	RootShort = "Pagecraft Build Layer CLI"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InjectUse is the inject command name.
	InjectUse   = "inject"
	InjectShort = "Inject Pagecraft build hooks into the framework project"

	InjectFlagDir       = "Project directory containing the framework site"
	InjectFlagVersion   = "Detected framework version (vX.Y.Z or X.Y.Z); omit when unknown"
	InjectFlagDiffLines = "Maximum diff lines shown per replaced file"

	InjectNotApplicable = "Injection not applicable: no Pagecraft plugin is enabled for this project."
	InjectWroteFmt      = "Wrote %s\n"
	InjectBackedUpFmt   = "Backed up original to %s\n"
	InjectDiffHeaderFmt = "Changes to %s:\n"
	InjectDiffTruncated = "(diff truncated; raise --diff-lines to see more)"

	// ProvisionUse is the provision command name.
	ProvisionUse   = "provision"
	ProvisionShort = "Symlink Pagecraft plugin packages into node_modules"

	ProvisionFlagDir   = "Project directory containing the framework site"
	ProvisionLinkedFmt = "Linked %s -> %s\n"

	// RestoreUse is the restore command name.
	RestoreUse   = "restore"
	RestoreShort = "Restore original files from Pagecraft backups"

	RestoreFlagDir        = "Project directory containing the framework site"
	RestoredFmt           = "Restored %s\n"
	RestoreRemovedLinkFmt = "Removed %s\n"
	RestoreNoBackups      = "Nothing to restore: no Pagecraft backups found."

	// ToggleUse is the toggle command usage.
	ToggleUse        = "toggle [builder|analytics]"
	ToggleShort      = "Enable or disable a Pagecraft plugin in the project .env"
	ToggleFlagDir    = "Project directory containing the framework site"
	ToggleFlagOff    = "Disable the plugin instead of enabling it"
	ToggleUnknownFmt = "unknown plugin %q (supported: builder, analytics)"
	ToggleUpdatedFmt = "Set %s=%s in %s\n"

	// RootFlagQuiet suppresses warnings and diff previews.
	RootFlagQuiet = "Suppress warnings and diff previews"

	ResolveProjectDirFmt = "failed to resolve project directory %s: %w"
)
