package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Base16 color palette with orange, brown, yellow, and pink tones
// Based on Autumn theme with warm earth tones
var (
	// Base colors (backgrounds and text)
	ColorBase00 = lipgloss.Color("#1a1816") // Dark background
	ColorBase01 = lipgloss.Color("#282420") // Lighter background
	ColorBase02 = lipgloss.Color("#36302a") // Selection background
	ColorBase03 = lipgloss.Color("#5c5044") // Comments, invisibles
	ColorBase04 = lipgloss.Color("#83715f") // Dark foreground
	ColorBase05 = lipgloss.Color("#ab937b") // Default foreground
	ColorBase07 = lipgloss.Color("#f5d7b9") // Lightest foreground

	// Accent colors
	ColorRed    = lipgloss.Color("#d95f5f")
	ColorOrange = lipgloss.Color("#eb8755")
	ColorYellow = lipgloss.Color("#f5b761")
	ColorGreen  = lipgloss.Color("#93b56b")
	ColorCyan   = lipgloss.Color("#61afaf")
	ColorBlue   = lipgloss.Color("#6b93b5")

	// UI specific colors
	ColorBorder = ColorBase03
	ColorFocus  = ColorOrange
	ColorError  = ColorRed
	ColorMuted  = ColorBase03

	ColorViolet = lipgloss.Color("#6c71c4") // Spinners
)

// Styles defines the Lipgloss styles for the TUI components
type Styles struct {
	// Transcript
	UserMessage      lipgloss.Style
	AssistantMessage lipgloss.Style
	FallbackMessage  lipgloss.Style
	ImagePlaceholder lipgloss.Style
	ImageCaption     lipgloss.Style
	ImageMissing     lipgloss.Style
	Spinner          lipgloss.Style

	// Composer
	InputFocused lipgloss.Style
	InputBlurred lipgloss.Style
}

// DefaultStyles returns the default Lipgloss styles
func DefaultStyles() *Styles {
	return &Styles{
		UserMessage: lipgloss.NewStyle().
			Foreground(ColorBase07).
			Background(ColorBlue).
			Padding(0, 1),

		AssistantMessage: lipgloss.NewStyle().
			Foreground(ColorBase00).
			Background(ColorBase05).
			Padding(0, 1),

		FallbackMessage: lipgloss.NewStyle().
			Foreground(ColorError).
			Padding(0, 1),

		ImagePlaceholder: lipgloss.NewStyle().
			Foreground(ColorYellow).
			Italic(true),

		ImageCaption: lipgloss.NewStyle().
			Foreground(ColorBase04).
			Italic(true),

		ImageMissing: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Spinner: lipgloss.NewStyle().
			Foreground(ColorViolet),

		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorFocus),

		InputBlurred: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder),
	}
}
