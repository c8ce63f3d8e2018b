package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Application identity used in the banner, version and help output
const (
	AppName        = "Scentcloud 🌸"
	AppDescription = "Turn scent descriptors into a word cloud, sized by how often each note appears."
)

// Color palette
var (
	primaryColor   = Plum                      // Scentcloud plum
	successColor   = lipgloss.Color("#00AA00") // Green
	mutedColor     = lipgloss.Color("#888888") // Gray
	highlightColor = Citrus                    // Yellow
	textColor      = lipgloss.Color("#FFFFFF") // White
)

// Styles
var (
	// Title style - bold plum
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Subtitle style - muted gray
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	// Success message style
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Rose)

	// Highlight style for important values
	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(highlightColor)

	// Key-value pair styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor)

	// Box style for framed content
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			MarginTop(1).
			MarginBottom(1)
)

// PrintBanner prints the application banner
func PrintBanner() {
	fmt.Println(TitleStyle.Render(AppName))
	fmt.Println(SubtitleStyle.Render(AppDescription))
	fmt.Println()
}

// PrintVersion prints version information
func PrintVersion(version string) {
	fmt.Println(TitleStyle.Render(AppName))
	fmt.Printf("%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
	fmt.Println()
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Printf("%s %s\n", HighlightStyle.Render("Warning:"), message)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", SuccessStyle.Render("✓"), message)
}

// PrintInfo prints an informational message
func PrintInfo(key, value string) {
	fmt.Printf("%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// FormatDuration formats a duration nicely
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", d.Seconds()*1000)
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// FormatBytes formats bytes into human-readable format
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// FormatPercent formats a 0-1 fraction as a percentage
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// Summary holds the figures shown after a cloud is written
type Summary struct {
	Labels     int      // labels tallied
	Distinct   int      // distinct labels
	Placed     int      // labels drawn on the canvas
	Top        []string // most frequent labels, "label ×count"
	Coverage   float64
	Size       string // canvas size, e.g. "400×400"
	FileSize   int64
	RenderTime time.Duration
	WriteTime  time.Duration
}

// SummaryText builds the boxed summary body
func SummaryText(s Summary) string {
	var b strings.Builder

	b.WriteString(SuccessStyle.Render("✓ Word Cloud Complete!"))
	b.WriteString("\n\n")

	rows := []struct{ key, value string }{
		{"Labels:    ", fmt.Sprintf("%d (%d distinct)", s.Labels, s.Distinct)},
		{"Placed:    ", fmt.Sprintf("%d of %d", s.Placed, s.Distinct)},
		{"Coverage:  ", FormatPercent(s.Coverage)},
		{"Canvas:    ", s.Size},
		{"File Size: ", FormatBytes(s.FileSize)},
		{"Render:    ", FormatDuration(s.RenderTime)},
		{"Write:     ", FormatDuration(s.WriteTime)},
	}
	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(KeyStyle.Render(r.key))
		b.WriteString(ValueStyle.Render(r.value))
	}

	if len(s.Top) > 0 {
		b.WriteString("\n\n")
		b.WriteString(KeyStyle.Render("Top notes:"))
		for _, t := range s.Top {
			b.WriteString("\n  ")
			b.WriteString(ValueStyle.Render(t))
		}
	}

	return b.String()
}

// PrintBox prints content in a styled box
func PrintBox(content string) {
	fmt.Println(BoxStyle.Render(content))
}

// PrintSummary prints the run summary in a box
func PrintSummary(s Summary) {
	PrintBox(SummaryText(s))
}
