package constants

const (
	AppName           = "moodlit"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/moodlit/moodlit.json"

	// DateFormat is the bucket key format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFormat is the format accepted by `analyze --month`
	MonthFormat = "2006-01"

	// Activity rating bounds, inclusive
	MinActivity = 1
	MaxActivity = 10

	// Backup constants
	MaxBackups    = 14
	BackupDirName = "backups"
	BackupPrefix  = "moodlit-"

	// Log file settings
	LogDirName    = "logs"
	LogFileName   = "moodlit.log"
	LogMaxSizeMB  = 10
	LogMaxBackups = 3
	LogMaxAgeDays = 28
)
