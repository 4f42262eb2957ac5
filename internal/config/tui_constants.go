package config

// Layout constants.
const (
	// MinStatusWidth is the narrowest status line before truncation kicks in.
	MinStatusWidth = 20

	// DefaultViewWidth is used until the first WindowSizeMsg arrives.
	DefaultViewWidth = 80

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "..."

	// ProgressWidth is the widest the timer progress bar grows.
	ProgressWidth = 60

	// MinProgressWidth keeps the bar readable on narrow terminals.
	MinProgressWidth = 20
)

// Input constraints.
const (
	// MaxProjectNameLength is the maximum project name length.
	MaxProjectNameLength = 64

	// MaxGardenNameLength is the maximum garden name length.
	MaxGardenNameLength = 32

	// MaxNotesLength caps the session notes field.
	MaxNotesLength = 500

	// ClockInputWidth fits "hh:mm:ss".
	ClockInputWidth = 8
)
