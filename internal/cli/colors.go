package cli

import "github.com/charmbracelet/lipgloss"

// Perfume palette 🌸
// Shared colours for consistent branding across help and status output
var (
	// Core palette (deep to light)
	Plum     = lipgloss.Color("#8E4585") // Deep plum
	Rose     = lipgloss.Color("#E75480") // Dark pink
	Lavender = lipgloss.Color("#B57EDC") // Lavender
	Citrus   = lipgloss.Color("#F4C430") // Saffron yellow

	// Accent colours
	Musk = lipgloss.Color("#A89F91") // Warm grey for subtle text
)
