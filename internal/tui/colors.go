package tui

// Color constants for the hrtrack TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#0F1C1A" // Dark teal
	ColorBorder         = "#3A5550" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E6F2EE" // Primary text (labels, values, titles)
	ColorSecondaryText = "#AFC7C0" // Secondary text
	ColorDisabledText  = "#6D8380" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Teal theme)
	ColorAccentMain   = "#0D9488" // Accent elements, active borders
	ColorAccentBright = "#2DD4BF" // Highlights, the live countdown

	// State Colors
	ColorError   = "#EF4444" // Errors, overdue shift
	ColorSuccess = "#22C55E" // Success, checked in
	ColorWarning = "#F59E0B" // Warnings, shift almost over
)
