package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconLanguage = "🌐"
	IconSort     = "⇅"
	IconViews    = "👁"
	IconError    = "❌"
	IconEmpty    = "∅"
	IconLoading  = "⏳"
)

// Card sizing
const (
	CardWidth       float32 = 260
	CardMinHeight   float32 = 250
	ThumbnailHeight float32 = 150
	AvatarSize      float32 = 28
)

// Delays
const (
	// ThumbnailTimeout bounds a single image request
	ThumbnailTimeout = 20 * time.Second
)
