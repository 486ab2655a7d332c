package listings

import (
	"fmt"
	"strings"

	"charm-estate-tui/catalog"
	"charm-estate-tui/config"
	"charm-estate-tui/helpers"
	"charm-estate-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Nav returns the navigation bar for the listings view
func Nav(width int, filtering bool) string {
	var left string
	if filtering {
		left = strings.Join([]string{
			styles.Key("Tab") + " next field",
			styles.Key("Enter") + " apply",
			styles.Key("Esc") + " cancel",
		}, "   ")
	} else {
		left = strings.Join([]string{
			styles.Key("↑/↓") + " move",
			styles.Key("Enter") + " open",
			styles.Key("Space") + " favorite",
			styles.Key("f") + " filter",
			styles.Key("x") + " clear filter",
			styles.Key("v") + " saved searches",
			styles.Key("w") + " wallet",
			styles.Key("h") + " home",
			styles.Key("l") + " logger",
			styles.Key("Esc") + " quit",
		}, "   ")
	}

	return styles.NavStyle.Width(width).Render(left)
}

// RenderList renders the listing rows and their clickable areas
func RenderList(listings []catalog.Listing, favs catalog.Favorites, selectedIdx int) (string, []config.ClickableArea, int) {
	var rows []string
	var areas []config.ClickableArea
	currentY := 9 // Starting Y position

	if len(listings) == 0 {
		rows = append(rows, lipgloss.NewStyle().Foreground(styles.CMuted).Render("No listings match the current filter. Press 'x' to clear it."))
		return strings.Join(rows, "\n\n"), areas, currentY
	}

	for i, l := range listings {
		var marker string
		var titleStyle lipgloss.Style

		if i == selectedIdx {
			marker = lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("▶ ")
			titleStyle = lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true)
		} else {
			marker = "  "
			titleStyle = lipgloss.NewStyle().Foreground(styles.CText)
		}

		title := l.Title
		if favs.Has(l.ID) {
			title = lipgloss.NewStyle().Foreground(styles.CFav).Render("♥ ") + title
		}
		if l.IsNFT() {
			title += lipgloss.NewStyle().Foreground(styles.CAccent).Render("  ⬡ NFT")
		}

		meta := fmt.Sprintf("%s · %s · %s · %s",
			l.City,
			helpers.FormatPrice(l.Price),
			helpers.FormatBedsBaths(l.Beds, l.Baths),
			helpers.FormatArea(l.AreaSqm),
		)

		rows = append(rows, marker+titleStyle.Render(title)+"\n  "+lipgloss.NewStyle().Foreground(styles.CMuted).Render(meta))

		areas = append(areas, config.ClickableArea{
			X:         4,
			Y:         currentY,
			Width:     lipgloss.Width(title) + 2,
			Height:    2,
			ListingID: l.ID,
		})
		currentY += 3
	}

	return strings.Join(rows, "\n\n"), areas, currentY
}

// Render renders the full listings view
func Render(listings []catalog.Listing, favs catalog.Favorites, selectedIdx, total int, crit catalog.Criteria) (string, []config.ClickableArea) {
	header := styles.TitleStyle.Render("Listings")
	subtitle := lipgloss.NewStyle().Foreground(styles.CMuted).Render("Browse the property catalog")

	listView, areas, _ := RenderList(listings, favs, selectedIdx)

	status := fmt.Sprintf("%d of %d listings", len(listings), total)
	if !crit.IsZero() {
		status += "  ·  " + describeCriteria(crit)
	}
	statusBar := lipgloss.NewStyle().Foreground(styles.CMuted).Render(status)

	content := header + "\n" + subtitle + "\n\n" + listView + "\n\n" + statusBar
	return content, areas
}

// describeCriteria summarizes the active filter for the status bar
func describeCriteria(c catalog.Criteria) string {
	var parts []string
	if c.Query != "" {
		parts = append(parts, fmt.Sprintf("query %q", c.Query))
	}
	if c.MinPrice > 0 {
		parts = append(parts, "≥ "+helpers.FormatPrice(c.MinPrice))
	}
	if c.MaxPrice > 0 {
		parts = append(parts, "≤ "+helpers.FormatPrice(c.MaxPrice))
	}
	if c.MinBeds > 0 {
		parts = append(parts, fmt.Sprintf("%d+ bd", c.MinBeds))
	}
	if c.Kind != catalog.KindAny {
		parts = append(parts, string(c.Kind))
	}
	if c.NFTOnly {
		parts = append(parts, "NFT only")
	}
	return "filter: " + strings.Join(parts, ", ")
}

// RenderSavedSearches renders the saved-search picker rows
func RenderSavedSearches(searches []catalog.SavedSearch, selectedIdx int) string {
	h := styles.TitleStyle.Render("Saved Searches")
	lines := []string{h, ""}

	if len(searches) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render("No saved searches this session."))
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render("Save one from the filter form with a name."))
		return strings.Join(lines, "\n")
	}

	for i, s := range searches {
		marker := "  "
		nameStyle := lipgloss.NewStyle().Foreground(styles.CText)
		if i == selectedIdx {
			marker = lipgloss.NewStyle().Foreground(styles.CAccent2).Render("▶ ")
			nameStyle = nameStyle.Foreground(styles.CAccent2).Bold(true)
		}
		lines = append(lines, marker+nameStyle.Render(s.Name))
		lines = append(lines, "  "+lipgloss.NewStyle().Foreground(styles.CMuted).Render(describeCriteria(s.Criteria)))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
