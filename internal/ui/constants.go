package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconCopy     = "📋"
	IconError    = "❌"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	SizeLabelFormat    = "%.1f KB"
)

// Layout sizing
const (
	PreviewMinWidth  float32 = 320
	PreviewMinHeight float32 = 240
	SettingsDialogW  float32 = 500
	SettingsDialogH  float32 = 360
)
