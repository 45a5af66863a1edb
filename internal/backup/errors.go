package backup

import "errors"

// Error variables for backup operations.
var (
	ErrNoBackupDirectory  = errors.New("no backup directory")
	ErrNoBackupsFound     = errors.New("no backups found")
	ErrBackupMismatch     = errors.New("backup does not match file")
	ErrInvalidPolicyValue = errors.New("invalid prune amount")

	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrBackupDirEmpty     = errors.New("backup-dir cannot be empty")
	ErrFlagRequiresArg    = errors.New("flag requires an argument")
	ErrUnknownFlag        = errors.New("unknown flag")

	ErrFileRequired       = errors.New("file path is required")
	ErrBackupNameRequired = errors.New("backup name is required")
	ErrNoEditorFound      = errors.New("no editor found (set config.editor, $EDITOR, or install vi/nano)")
	ErrEditorFailed       = errors.New("editor failed")
	ErrElevatedPrivileges = errors.New("need elevated privileges")
)
