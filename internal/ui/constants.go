package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconUser     = "👤"
	IconLock     = "🔒"
	IconKey      = "🔑"
	IconSparkles = "✨"
	IconDocument = "📄"
	IconFolder   = "📁"
	IconSearch   = "🔍"
	IconClear    = "🗑️"
	IconRemove   = "❌"
	IconWave     = "👋"
	IconRocket   = "🚀"
	IconDoor     = "🚪"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	RowMinWidth  float32 = 400
	RowMinHeight float32 = 44

	WindowWidth  float32 = 900
	WindowHeight float32 = 720

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 440
)

// Delays
const (
	// ModeSwitchDelay is the cosmetic pause before the auth panel flips mode
	ModeSwitchDelay = 150 * time.Millisecond
)

// Upload panel choices
var (
	CategorySuggestions = []string{
		"Documents", "Images", "Reports", "Presentations",
		"Spreadsheets", "Archives", "Other",
	}

	AcceptedExtensions = []string{
		".pdf", ".doc", ".docx", ".txt", ".jpg", ".jpeg", ".png", ".gif",
	}
)
