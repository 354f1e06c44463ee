package constants

const (
	AppName           = "lifelog"
	DefaultConfigPath = "~/.config/lifelog/lifelog.db"
	Version           = "v0.3.0"

	// DefaultOwner identifies the single local user. Every store call takes
	// an explicit owner id so a multi-owner deployment only has to change
	// what the caller passes in.
	DefaultOwner = "local"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "lifelog-"
	BackupFileSuffix = ".db"
)
