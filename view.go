package main

import (
	"strings"

	"charm-estate-tui/config"
	"charm-estate-tui/helpers"
	"charm-estate-tui/styles"
	"charm-estate-tui/views/dashboard"
	"charm-estate-tui/views/details"
	"charm-estate-tui/views/favorites"
	"charm-estate-tui/views/home"
	"charm-estate-tui/views/listings"
	logview "charm-estate-tui/views/log"
	"charm-estate-tui/views/walletmodal"
	"charm-estate-tui/wallet"

	"github.com/charmbracelet/lipgloss"
)

// -------------------- VIEW --------------------

func (m *model) renderSavedSearchesDialog() string {
	var (
		dialogBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#874BFD")).
				Padding(1, 2).
				BorderTop(true).
				BorderLeft(true).
				BorderRight(true).
				BorderBottom(true).
				Background(cPanel)
	)

	title := lipgloss.NewStyle().
		Foreground(cAccent2).
		Bold(true).
		Align(lipgloss.Center).
		Width(54).
		Render("Saved Searches")

	list := listings.RenderSavedSearches(m.savedSearches, m.selectedSearch)

	help := lipgloss.NewStyle().
		Foreground(cMuted).
		Align(lipgloss.Center).
		Width(54).
		MarginTop(1).
		Render("↑/↓: Navigate • Enter: Apply • d: Delete • Esc: Close")

	ui := lipgloss.JoinVertical(lipgloss.Left, title, "", list, help)

	dialog := dialogBoxStyle.Render(ui)

	// Center the dialog on screen
	return lipgloss.Place(
		m.w, m.h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}

func (m *model) globalHeader() string {
	availableWidth := max(0, m.w-8) // Account for panel padding

	ws := m.walletState()

	// Wallet slot on the left
	var walletDisplay string
	switch {
	case ws.IsConnected():
		walletDisplay = lipgloss.NewStyle().
			Foreground(cAccent2).
			Bold(true).
			Render("Wallet: " + helpers.FadeString(wallet.ShortenAddr(ws.Address), "#F25D94", "#EDFF82"))
	case ws.IsConnecting():
		walletDisplay = lipgloss.NewStyle().
			Foreground(cMuted).
			Render("Wallet: " + m.spin.View() + " connecting…")
	default:
		walletDisplay = lipgloss.NewStyle().
			Foreground(cMuted).
			Render("Wallet: not connected (w)")
	}

	// Bridge status with green dot
	var statusIcon string
	var statusColor lipgloss.Color
	var statusText string

	if m.bridgeURL == "" {
		statusIcon = "○"
		statusColor = lipgloss.Color("#c01c28")
		statusText = "No Bridge"
	} else if m.bridgeDetecting {
		statusIcon = "○"
		statusColor = lipgloss.Color("#c01c28")
		statusText = "Detecting..."
	} else if !m.bridgeInstalled() {
		statusIcon = "○"
		statusColor = lipgloss.Color("#c01c28")
		statusText = "No Wallet Found"
	} else {
		statusIcon = "●"
		statusColor = cAccent
		statusText = "Bridge Ready"
		for _, b := range m.bridges {
			if b.Active && b.URL == m.bridgeURL {
				statusText = b.Name
				break
			}
		}
	}

	bridgeDisplay := lipgloss.NewStyle().
		Foreground(statusColor).
		Bold(true).
		Render(statusIcon + " " + statusText)

	// Center title
	titleText := lipgloss.NewStyle().
		Foreground(cAccent).
		Bold(true).
		Render(helpers.FadeString("charm estate", "#7EE787", "#82CFFD"))

	// Calculate widths
	walletWidth := lipgloss.Width(walletDisplay)
	bridgeWidth := lipgloss.Width(bridgeDisplay)
	titleWidth := lipgloss.Width(titleText)

	totalOtherWidth := walletWidth + bridgeWidth + titleWidth

	var headerLine string
	if totalOtherWidth+4 > availableWidth {
		// Not enough space, stack vertically
		headerLine = walletDisplay + "\n" + titleText + "\n" + bridgeDisplay
	} else {
		// Three-column layout: Wallet | Title (centered) | Bridge
		remainingSpace := availableWidth - totalOtherWidth
		leftPadding := remainingSpace / 2
		rightPadding := remainingSpace - leftPadding

		leftSpacer := strings.Repeat(" ", max(1, leftPadding))
		rightSpacer := strings.Repeat(" ", max(1, rightPadding))

		headerLine = walletDisplay + leftSpacer + titleText + rightSpacer + bridgeDisplay
	}

	separator := lipgloss.NewStyle().
		Foreground(cBorder).
		Render(strings.Repeat("─", availableWidth))

	return headerLine + "\n" + separator
}

func (m *model) View() string {
	// Clear clickable areas for fresh render
	m.clickableAreas = nil

	// Render global header outside of page content
	globalHdr := m.globalHeader()
	headerPanel := panelStyle.Width(max(0, m.w-2)).Render(globalHdr)

	var pageContent string
	var nav string

	switch m.activePage {
	case config.PageHome:
		if m.homeForm != nil {
			pageContent = panelStyle.Width(max(0, m.w-2)).Render(home.Render(m.homeForm))
		} else {
			pageContent = panelStyle.Width(max(0, m.w-2)).Render(styles.TitleStyle.Render("charm estate"))
		}
		nav = home.Nav(m.w - 2)

	case config.PageListings:
		if m.filtering && m.filterForm != nil {
			filterContent := styles.TitleStyle.Render("Filter Listings") + "\n\n" + m.filterForm.View()
			pageContent = panelStyle.Width(max(0, m.w-2)).Render(filterContent)
		} else {
			listingsContent, listingsClickableAreas := listings.Render(m.filtered, m.favs, m.selectedListing, len(m.listings), m.criteria)

			// Adjust Y coordinates to account for header and panel borders
			for _, area := range listingsClickableAreas {
				m.clickableAreas = append(m.clickableAreas, config.ClickableArea{
					X:         area.X,
					Y:         area.Y + 1, // Minimal offset for panel border
					Width:     area.Width,
					Height:    area.Height,
					ListingID: area.ListingID,
				})
			}

			pageContent = panelStyle.Width(max(0, m.w-2)).Render(listingsContent)
		}
		nav = listings.Nav(m.w-2, m.filtering)

	case config.PageDetails:
		detailsContent := details.Render(m.currentListing, m.favs.Has(m.currentListing.ID), m.walletState(), m.copiedMsg)
		pageContent = panelStyle.Width(max(0, m.w-2)).Render(detailsContent)
		nav = details.Nav(m.w-2, m.currentListing.IsNFT())

	case config.PageFavorites:
		favsContent := favorites.Render(m.favoriteListings(), m.selectedFav)
		pageContent = panelStyle.Width(max(0, m.w-2)).Render(favsContent)
		nav = favorites.Nav(m.w - 2)

	case config.PageDashboard:
		dashContent := dashboard.Render(m.walletState(), m.bridgeInstalled(), m.copiedMsg, m.nftFavorites(), m.spin.View())
		pageContent = panelStyle.Width(max(0, m.w-2)).Render(dashContent)
		nav = dashboard.Nav(m.w-2, m.walletState().IsConnected())
	}

	// Render log panel only if enabled
	var sections []string
	if m.logEnabled {
		// Ensure viewport height stays in sync with the rendered panel
		reservedHeight := 10
		availableHeight := max(5, m.h-reservedHeight)
		maxLogHeight := min(m.h/3, 15)
		logPanelHeight := min(availableHeight, maxLogHeight)
		m.logViewport.Height = logPanelHeight

		logPanel := logview.Render(m.w, m.h, m.logReady, m.logSpinner.View(), m.logViewport)
		sections = []string{headerPanel, pageContent, nav, logPanel}
	} else {
		sections = []string{headerPanel, pageContent, nav}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	baseView := appStyle.Render(content)

	// Dialog overlays replace the current view entirely
	if m.showWalletModal {
		return walletmodal.Render(m.w, m.h, m.walletState(), m.bridgeInstalled(), m.spin.View())
	}
	if m.showSavedSearches {
		return m.renderSavedSearchesDialog()
	}

	return baseView
}

func key(s string) string {
	return hotkeyKeyStyle.Render(s)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
