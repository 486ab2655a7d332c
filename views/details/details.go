package details

import (
	"fmt"
	"strings"

	"charm-estate-tui/catalog"
	"charm-estate-tui/helpers"
	"charm-estate-tui/styles"
	"charm-estate-tui/wallet"

	"github.com/charmbracelet/lipgloss"
	"github.com/mdp/qrterminal/v3"
)

// Nav returns the navigation bar for the details view
func Nav(width int, hasDeed bool) string {
	keys := []string{
		styles.Key("Space") + " favorite",
	}
	if hasDeed {
		keys = append(keys, styles.Key("c")+" copy deed link")
	}
	keys = append(keys,
		styles.Key("w")+" wallet",
		styles.Key("l")+" logger",
		styles.Key("Esc")+" back",
	)

	return styles.NavStyle.Width(width).Render(strings.Join(keys, "   "))
}

// Render renders a single property listing
func Render(l catalog.Listing, fav bool, ws wallet.State, copiedMsg string) string {
	h := styles.TitleStyle.Render(l.Title)

	sub := lipgloss.NewStyle().Foreground(styles.CMuted).Render(l.City + " · " + string(l.Kind))
	if fav {
		sub = lipgloss.NewStyle().Foreground(styles.CFav).Render("♥ favorited") + "  " + sub
	}
	if copiedMsg != "" {
		sub += "  " + lipgloss.NewStyle().Foreground(styles.CAccent).Render(copiedMsg)
	}

	priceLine := fmt.Sprintf("%s  %s",
		lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("Price"),
		lipgloss.NewStyle().Foreground(styles.CText).Render(helpers.FormatPrice(l.Price)),
	)
	specLine := fmt.Sprintf("%s  %s · %s",
		lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).Render("Specs"),
		helpers.FormatBedsBaths(l.Beds, l.Baths),
		helpers.FormatArea(l.AreaSqm),
	)

	lines := []string{h, sub, "", priceLine, specLine}

	if l.IsNFT() {
		lines = append(lines, "", renderDeedSection(l, ws))
	}

	return strings.Join(lines, "\n")
}

// renderDeedSection gates the on-chain deed affordance on wallet connection
func renderDeedSection(l catalog.Listing, ws wallet.State) string {
	title := lipgloss.NewStyle().Foreground(styles.CAccent).Bold(true).Render("⬡ NFT-backed deed")

	if !ws.IsConnected() {
		hint := lipgloss.NewStyle().Foreground(styles.CMuted).Render(
			"Connect a wallet (press ") + styles.Key("w") +
			lipgloss.NewStyle().Foreground(styles.CMuted).Render(") to view the deed token.")
		return title + "\n" + hint
	}

	contract := lipgloss.NewStyle().Foreground(styles.CMuted).Render(
		fmt.Sprintf("Contract %s · Token #%d", wallet.ShortenAddr(l.Deed.Contract.Hex()), l.Deed.TokenID))
	holder := lipgloss.NewStyle().Foreground(styles.CMuted).Render(
		"Viewing as " + wallet.ShortenAddr(ws.Address))

	return title + "\n" + contract + "\n" + holder + "\n\n" + DeedQR(l.Deed.URI())
}

// DeedQR renders the EIP-681 deed URI as a terminal QR code
func DeedQR(uri string) string {
	var buf strings.Builder
	qrterminal.GenerateWithConfig(uri, qrterminal.Config{
		Level:      qrterminal.L,
		Writer:     &buf,
		HalfBlocks: true,
		QuietZone:  1,
	})
	return buf.String()
}
