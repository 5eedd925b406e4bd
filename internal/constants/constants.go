package constants

const (
	// StateVersion is the current version of the state file format.
	StateVersion = 2

	// StateDirName is the directory under the user's home that holds all data.
	StateDirName = ".one_thing"
	// StateFileName is the name of the state file.
	StateFileName = "one_thing.json"
	// BackupDirName is the name of the backup directory.
	BackupDirName = "backups"
	// BackupFilePrefix is the prefix for backup files.
	BackupFilePrefix = "state-"
	// BackupFileSuffix is the suffix for backup files.
	BackupFileSuffix = ".json"
	// BackupTimestampFormat is the timestamp layout embedded in backup filenames.
	BackupTimestampFormat = "20060102150405"

	// DateFormat is the YYYY-MM-DD layout used for day keys.
	DateFormat = "2006-01-02"
	// MonthFormat is the YYYY-MM layout used for month queries.
	MonthFormat = "2006-01"

	// Default settings values
	DefaultAutoPromptOnEmpty = true
	DefaultStrictMode        = true
	DefaultLogDays           = 7
	DefaultMaxBackupFiles    = 5

	// NoCommitmentTitle is the placeholder title for days without a record.
	NoCommitmentTitle = "(no commitment)"
)
