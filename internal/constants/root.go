package constants

import (
	"time"
)

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "thirtyday"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/thirtyday/thirtyday.db"
	DefaultServerURL   = "http://localhost:3001"
	Version            = "v1.0.0"

	// Challenge constants
	ChallengeDays         = 30
	HalfwayDays           = 15
	WeekDays              = 7
	PreviewDay            = 15
	RelapseCooldown       = 24 * time.Hour
	LeaderboardLimit      = 50
	MaxJournalLength      = 5000
	MaxNameLength         = 64
	DefaultChallengeMonth = time.November

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "thirtyday-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifyMaxRetries       = 3
	NotifyRetryDelay       = 100 * time.Millisecond
	NotifierLockfileName   = "thirtyday-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.julianstephens.thirtyday"

	// Server constants
	DefaultServerPort     = 3001
	DefaultLeaderboardTTL = 30 * time.Second
	LeaderboardCacheKey   = "thirtyday:leaderboard"
	HealthMessage         = "Backend is running"
)

// Session States
const (
	StateTracker SessionState = iota
	StateDashboard
	StateAchievements
	StateSettings
	StateJournal
	StateRegister
	StateQuote
	StateEditSettings
	StateCelebrate
)
