package walletmodal

import (
	"strings"

	"charm-estate-tui/helpers"
	"charm-estate-tui/styles"
	"charm-estate-tui/wallet"

	"github.com/charmbracelet/lipgloss"
)

// DialogWidth is the fixed content width of the modal
const DialogWidth = 52

// Render renders the wallet modal centered on screen. The modal is a pure
// function of the wallet state; the shell owns the open/closed flag.
func Render(w, h int, ws wallet.State, installed bool, spinnerView string) string {
	dialogBoxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.CBorder).
		Padding(1, 2)

	title := styles.TitleStyle.Render("Connect Wallet")
	body := renderBody(ws, installed, spinnerView)

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		lipgloss.NewStyle().Width(DialogWidth).Align(lipgloss.Center).Render(body),
	)

	dialog := dialogBoxStyle.Render(content)

	return lipgloss.Place(
		w, h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}

func renderBody(ws wallet.State, installed bool, spinnerView string) string {
	muted := lipgloss.NewStyle().Foreground(styles.CMuted)

	switch {
	case ws.IsConnecting():
		return spinnerView + " waiting for approval in MetaMask…"

	case ws.IsConnected():
		addr := helpers.FadeString(wallet.ShortenAddr(ws.Address), "#7EE787", "#79C0FF")
		lines := []string{
			"● Connected",
			addr,
			"",
			button("Disconnect", true) + "   " + muted.Render("(") + styles.Key("d") + muted.Render(")"),
		}
		return strings.Join(lines, "\n")

	case !installed:
		lines := []string{
			lipgloss.NewStyle().Foreground(styles.CWarn).Render("MetaMask is not installed."),
			muted.Render("Get it at https://metamask.io and run a local"),
			muted.Render("bridge endpoint, then restart the app."),
		}
		return strings.Join(lines, "\n")

	default:
		lines := []string{
			muted.Render("Connect your MetaMask wallet to unlock"),
			muted.Render("NFT deed features."),
			"",
			button("Connect", true) + "   " + muted.Render("(") + styles.Key("enter") + muted.Render(")"),
		}
		if ws.Err != "" {
			lines = append(lines, "", lipgloss.NewStyle().Foreground(styles.CWarn).Render("⚠ "+ws.Err))
		}
		return strings.Join(lines, "\n")
	}
}

func button(label string, active bool) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFF7DB")).
		Background(lipgloss.Color("#888B7E")).
		Padding(0, 3)
	if active {
		style = style.Background(styles.CFav).Underline(true)
	}
	return style.Render(label)
}

// Bounds returns the on-screen rectangle of the centered dialog so the
// shell can treat clicks outside it as a close request. Height is an
// estimate from the body line count; it only needs to be safe, not exact,
// so the close hit-test errs toward keeping the modal open.
func Bounds(w, h int, ws wallet.State, installed bool) (x, y, width, height int) {
	width = DialogWidth + 6 // border + padding
	height = 12
	x = helpers.Max(0, (w-width)/2)
	y = helpers.Max(0, (h-height)/2)
	return x, y, width, height
}
