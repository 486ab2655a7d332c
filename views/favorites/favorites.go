package favorites

import (
	"fmt"
	"strings"

	"charm-estate-tui/catalog"
	"charm-estate-tui/helpers"
	"charm-estate-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Nav returns the navigation bar for the favorites view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("↑/↓") + " move",
		styles.Key("Enter") + " open",
		styles.Key("Space") + " unfavorite",
		styles.Key("w") + " wallet",
		styles.Key("h") + " home",
		styles.Key("l") + " logger",
		styles.Key("Esc") + " back",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}

// Render renders the session favorites list
func Render(favListings []catalog.Listing, selectedIdx int) string {
	h := styles.TitleStyle.Render("Favorites")
	sub := lipgloss.NewStyle().Foreground(styles.CMuted).Render("Kept for this session only")

	lines := []string{h, sub, ""}

	if len(favListings) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render("Nothing favorited yet."))
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render("Press ")+styles.Key("Space")+lipgloss.NewStyle().Foreground(styles.CMuted).Render(" on a listing to add it."))
		return strings.Join(lines, "\n")
	}

	for i, l := range favListings {
		marker := "  "
		titleStyle := lipgloss.NewStyle().Foreground(styles.CText)
		if i == selectedIdx {
			marker = lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("▶ ")
			titleStyle = titleStyle.Foreground(styles.CAccent2).Bold(true)
		}

		title := lipgloss.NewStyle().Foreground(styles.CFav).Render("♥ ") + titleStyle.Render(l.Title)
		if l.IsNFT() {
			title += lipgloss.NewStyle().Foreground(styles.CAccent).Render("  ⬡ NFT")
		}

		meta := fmt.Sprintf("%s · %s", l.City, helpers.FormatPrice(l.Price))
		lines = append(lines, marker+title)
		lines = append(lines, "  "+lipgloss.NewStyle().Foreground(styles.CMuted).Render(meta))
		lines = append(lines, "")
	}

	lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render(fmt.Sprintf("%d favorited", len(favListings))))

	return strings.Join(lines, "\n")
}
