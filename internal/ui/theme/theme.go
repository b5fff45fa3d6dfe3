package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette. Muted, high-contrast, terminal friendly.
var (
	Primary   = lipgloss.Color("#60A5FA") // Sky
	Secondary = lipgloss.Color("#34D399") // Emerald
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F87171") // Red
	Text      = lipgloss.Color("#E5E7EB") // Gray 200
	TextDim   = lipgloss.Color("#9CA3AF") // Gray 400
	BgCard    = lipgloss.Color("#1F2937") // Gray 800
	Border    = lipgloss.Color("#374151") // Gray 700
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Section = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// ScoreColor maps a 0..100 score to green, amber or red.
func ScoreColor(score float64) color.Color {
	switch {
	case score >= 75:
		return Success
	case score >= 50:
		return Accent
	default:
		return Error
	}
}

// Score renders a score in its band color.
func Score(score float64) string {
	return lipgloss.NewStyle().
		Foreground(ScoreColor(score)).
		Bold(true).
		Render(fmt.Sprintf("%.1f", score))
}

// DifficultyColor returns the tier color: easy is green, hard is red.
func DifficultyColor(d string) color.Color {
	switch d {
	case "easy":
		return Success
	case "medium":
		return Accent
	case "hard":
		return Error
	}
	return TextDim
}
