package briefing

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mockround/internal/ui/theme"
)

const bannerArt = `┌┬┐┌─┐┌─┐┬┌─┬─┐┌─┐┬ ┬┌┐┌┌┬┐
││││ ││  ├┴┐├┬┘│ ││ ││││ ││
┴ ┴└─┘└─┘┴ ┴┴└─└─┘└─┘┘└┘─┴┘`

const bannerCompact = "M O C K R O U N D"

// RenderBanner returns the banner styled in the primary color. Uses a
// compact fallback for terminals narrower than 40 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
