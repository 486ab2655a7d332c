package dashboard

import (
	"fmt"
	"strings"

	"charm-estate-tui/catalog"
	"charm-estate-tui/helpers"
	"charm-estate-tui/styles"
	"charm-estate-tui/wallet"

	"github.com/charmbracelet/lipgloss"
)

// Nav returns the navigation bar for the dashboard view
func Nav(width int, connected bool) string {
	keys := []string{}
	if connected {
		keys = append(keys, styles.Key("c")+" copy address", styles.Key("d")+" disconnect")
	} else {
		keys = append(keys, styles.Key("w")+" connect wallet")
	}
	keys = append(keys,
		styles.Key("h")+" home",
		styles.Key("l")+" logger",
		styles.Key("Esc")+" back",
	)

	return styles.NavStyle.Width(width).Render(strings.Join(keys, "   "))
}

// Render renders the wallet dashboard
func Render(ws wallet.State, installed bool, copiedMsg string, nftFavs []catalog.Listing, spinnerView string) string {
	h := styles.TitleStyle.Render("Wallet Dashboard")

	lines := []string{h, ""}
	lines = append(lines, renderStatus(ws, installed, copiedMsg, spinnerView)...)

	if ws.IsConnected() {
		lines = append(lines, "", renderNFTFavorites(nftFavs))
	}

	return strings.Join(lines, "\n")
}

func renderStatus(ws wallet.State, installed bool, copiedMsg string, spinnerView string) []string {
	muted := lipgloss.NewStyle().Foreground(styles.CMuted)

	switch {
	case ws.IsConnecting():
		return []string{spinnerView + " waiting for wallet approval…"}

	case ws.IsConnected():
		addr := lipgloss.NewStyle().Foreground(styles.CAccent).Bold(true).
			Render(helpers.FadeString(wallet.ShortenAddr(ws.Address), "#7EE787", "#79C0FF"))
		line := "● Connected as " + addr
		if copiedMsg != "" {
			line += "  " + lipgloss.NewStyle().Foreground(styles.CAccent).Render(copiedMsg)
		}
		return []string{line, muted.Render(ws.Address)}

	case !installed:
		return []string{
			lipgloss.NewStyle().Foreground(styles.CWarn).Render("○ No wallet bridge detected"),
			muted.Render("Install MetaMask and run a bridge endpoint, then restart."),
		}

	default:
		out := []string{muted.Render("○ Not connected. Press ") + styles.Key("w") + muted.Render(" to connect.")}
		if ws.Err != "" {
			out = append(out, lipgloss.NewStyle().Foreground(styles.CWarn).Render("⚠ "+ws.Err))
		}
		return out
	}
}

func renderNFTFavorites(nftFavs []catalog.Listing) string {
	title := lipgloss.NewStyle().Foreground(styles.CAccent).Bold(true).Render("⬡ NFT-backed favorites")

	if len(nftFavs) == 0 {
		return title + "\n" + lipgloss.NewStyle().Foreground(styles.CMuted).Render("None yet. Favorite an NFT-flagged listing to track its deed here.")
	}

	lines := []string{title}
	for _, l := range nftFavs {
		row := fmt.Sprintf("%s  %s · token #%d",
			lipgloss.NewStyle().Foreground(styles.CFav).Render("♥"),
			lipgloss.NewStyle().Foreground(styles.CText).Render(l.Title),
			l.Deed.TokenID,
		)
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}
