package config

import "time"

// Timer durations.
const (
	DefaultWorkDuration  = 25 * time.Minute
	DefaultBreakDuration = 5 * time.Minute
	DefaultTimerDuration = 50 * time.Minute
	MinDuration          = time.Second
	MaxDuration          = 24 * time.Hour

	// SyncInterval drives the low-frequency sync of points and session data.
	SyncInterval = time.Second

	// UIOpTimeout bounds store calls made from the UI loop.
	UIOpTimeout = 5 * time.Second
)

// Garden geometry.
const (
	GameWidth  = 1250
	GameHeight = 700
	TileSize   = 50
)

// Project statuses.
const (
	StatusActive    = "active"
	StatusPaused    = "paused"
	StatusCompleted = "completed"
)

// Application settings.
const (
	AppName           = "prodgarden"
	DBFileName        = "projects.db"
	SessionFileName   = "data.json"
	MapsDirName       = "gardens"
	MapExtension      = ".map"
	MetadataFileName  = "gardens_data.json"
	LogFileName       = "prodgarden.log"
	DefaultVegetation = "Rainforest"
)

// Keys of the settings table.
const (
	SettingLastReport = "last_report"
)
