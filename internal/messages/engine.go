package messages

// Engine messages for injection, backup, provisioning, and restore.
const (
	// EngineSystemRequired is returned when no System implementation is supplied.
	EngineSystemRequired   = "injection system is required"
	EngineProjectRequired  = "project directory is required"
	EngineSettingsRequired = "settings are required"

	EngineFailedStatFmt  = "failed to stat %s: %w"
	EngineFailedReadFmt  = "failed to read %s: %w"
	EngineFailedWriteFmt = "failed to write %s: %w"

	// BackupFailedMoveFmt formats backup rename failures.
	BackupFailedMoveFmt = "failed to move %s to backup %s: %w"
	BackupFailedStatFmt = "failed to stat backup %s: %w"

	// ProvisionDepDirFmt formats fatal dependency-directory creation failures.
	ProvisionDepDirFmt        = "failed to create dependency directory %s: %w"
	ProvisionFailedLinkFmt    = "failed to link %s to %s: %w"
	ProvisionFailedInspectFmt = "failed to inspect existing link %s: %w"
	ProvisionFailedReplaceFmt = "failed to replace stale link %s: %w"

	// RestoreFailedMoveFmt formats restore rename failures.
	RestoreFailedMoveFmt   = "failed to restore %s from backup %s: %w"
	RestoreFailedRemoveFmt = "failed to remove generated file %s: %w"
	RestoreFailedUnlinkFmt = "failed to remove provisioned link %s: %w"

	// VersionInvalidFmt formats semantic version parse failures.
	VersionInvalidFmt = "framework version %q must be in the form vX.Y.Z or X.Y.Z"

	// SettingsFailedReadEnvFmt formats project .env read failures.
	SettingsFailedReadEnvFmt = "failed to read env file %s: %w"
	SettingsInvalidEnvFileFmt = "invalid env file %s: %w"
	SettingsInvalidFileFmt    = "invalid settings %s: %w"
	SettingsUnrecognizedFmt   = "%s contains unrecognized keys: %v"
	SettingsResolveHomeFmt    = "failed to resolve home directory: %w"

	// EnvfileLineErrorFmt formats per-line .env parse failures.
	EnvfileLineErrorFmt          = "line %d: %w"
	EnvfileExpectedKeyValue      = "expected KEY=VALUE"
	EnvfileUnterminatedQuote     = "unterminated quoted value"
	EnvfileInvalidQuotedSuffix   = "unexpected content after quoted value"
	EnvfileReadFailedFmt         = "failed to read env content: %w"
	EnvfileFailedWritePatchedFmt = "failed to write patched env file %s: %w"
	EnvfileFailedReadExistingFmt = "failed to read existing env file %s: %w"
)
