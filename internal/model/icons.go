package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconInfo       = "•" // Plain informational notification
	IconSuccess    = "✓" // Success notification
	IconError      = "✗" // Error notification
	IconAttachment = "◆" // Staged file
)
