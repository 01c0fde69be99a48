package constants

const (
	AppName           = "daygrid"
	Version           = "v0.1.0"
	DefaultConfigPath = "~/.config/daygrid/daygrid.db"
	LockfileName      = "daygrid.lock"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Keyring users under the AppName service
	KeyringPostgresUser = "database-connection"
	KeyringFeedUser     = "calendar-feed-token"

	// Default day configuration
	DefaultDayStart = "09:00"
	DefaultDayEnd   = "17:00"
	DefaultBreakMin = 10

	// MaxRepeats caps how many instances of one obligation can be laid
	// out per day.
	MaxRepeats = 5

	// MinPreBlockGapMin is the smallest usable gap before a calendar
	// block. Anything shorter is skipped entirely.
	MinPreBlockGapMin = 5

	// SpreadLookaheadMin is how far ahead of its target instant a spread
	// slot is considered imminent.
	SpreadLookaheadMin = 30
)

// Display colors per activity source.
const (
	ColorObligation = "#7D56F4"
	ColorItem       = "#04B575"
	ColorBreak      = "#6C6C6C"
	ColorCalendar   = "#F2A33C"
)
