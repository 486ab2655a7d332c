package home

import (
	"strings"

	"charm-estate-tui/styles"

	"github.com/charmbracelet/huh"
)

// TempSelection stores the home menu selection
var TempSelection string

// CreateForm creates the home menu form
func CreateForm() *huh.Form {
	TempSelection = ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Options(
					huh.NewOption("Browse Listings", "listings"),
					huh.NewOption("Favorites", "favorites"),
					huh.NewOption("Wallet Dashboard", "dashboard"),
				).
				Title("Main Menu").
				Description("Select a view to navigate to").
				Value(&TempSelection),
		),
	).WithTheme(huh.ThemeCatppuccin())

	form.Init()
	return form
}

// Render renders the home view
func Render(form *huh.Form) string {
	if form != nil {
		return form.View()
	}
	return "Loading menu..."
}

// Nav returns the navigation bar for home view
func Nav(width int) string {
	left := strings.Join([]string{
		styles.Key("↑/↓") + " select",
		styles.Key("Enter") + " go",
		styles.Key("w") + " wallet",
		styles.Key("l") + " logger",
		styles.Key("Esc") + " quit",
	}, "   ")

	return styles.NavStyle.Width(width).Render(left)
}
