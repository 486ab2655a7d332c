package main

import (
	"fmt"
	"strconv"
	"strings"

	"charm-estate-tui/catalog"
	"charm-estate-tui/config"
	"charm-estate-tui/views/home"
	"charm-estate-tui/views/walletmodal"
	"charm-estate-tui/wallet"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- TEMP FORM STORAGE --------------------
// Temporary form field storage (package-level to avoid pointer-to-copy issues)
var (
	tempFilterQuery    string
	tempFilterMinPrice string
	tempFilterMaxPrice string
	tempFilterMinBeds  string
	tempFilterKind     string
	tempFilterNFTOnly  bool
	tempFilterSaveAs   string
)

func (m *model) createFilterForm() {
	tempFilterQuery = m.criteria.Query
	tempFilterMinPrice = ""
	tempFilterMaxPrice = ""
	if m.criteria.MinPrice > 0 {
		tempFilterMinPrice = strconv.FormatInt(m.criteria.MinPrice/100, 10)
	}
	if m.criteria.MaxPrice > 0 {
		tempFilterMaxPrice = strconv.FormatInt(m.criteria.MaxPrice/100, 10)
	}
	tempFilterMinBeds = strconv.Itoa(m.criteria.MinBeds)
	tempFilterKind = string(m.criteria.Kind)
	tempFilterNFTOnly = m.criteria.NFTOnly
	tempFilterSaveAs = ""

	priceValidate := func(s string) error {
		if s == "" {
			return nil
		}
		if _, err := strconv.ParseInt(s, 10, 64); err != nil {
			return fmt.Errorf("enter a whole dollar amount")
		}
		return nil
	}

	m.filterForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search").
				Description("Matches title or city").
				Value(&tempFilterQuery).
				Placeholder("loft, Portland, …"),

			huh.NewInput().
				Title("Min Price ($)").
				Value(&tempFilterMinPrice).
				Placeholder("0").
				Validate(priceValidate),

			huh.NewInput().
				Title("Max Price ($)").
				Value(&tempFilterMaxPrice).
				Placeholder("no limit").
				Validate(priceValidate),

			huh.NewSelect[string]().
				Options(
					huh.NewOption("Any", "0"),
					huh.NewOption("1+", "1"),
					huh.NewOption("2+", "2"),
					huh.NewOption("3+", "3"),
					huh.NewOption("4+", "4"),
				).
				Title("Bedrooms").
				Value(&tempFilterMinBeds),

			huh.NewSelect[string]().
				Options(
					huh.NewOption("Any", ""),
					huh.NewOption("House", "house"),
					huh.NewOption("Apartment", "apartment"),
					huh.NewOption("Loft", "loft"),
				).
				Title("Type").
				Value(&tempFilterKind),

			huh.NewConfirm().
				Title("NFT-backed only").
				Value(&tempFilterNFTOnly),

			huh.NewInput().
				Title("Save search as").
				Description("Optional. Keeps this filter for the session").
				Value(&tempFilterSaveAs).
				Placeholder("leave empty to skip"),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.filterForm.Init()
}

// applyTempFilter folds the form's temp storage into the active criteria
func (m *model) applyTempFilter() {
	crit := catalog.Criteria{
		Query:   strings.TrimSpace(tempFilterQuery),
		NFTOnly: tempFilterNFTOnly,
		Kind:    catalog.Kind(tempFilterKind),
	}
	if v, err := strconv.ParseInt(tempFilterMinPrice, 10, 64); err == nil {
		crit.MinPrice = v * 100
	}
	if v, err := strconv.ParseInt(tempFilterMaxPrice, 10, 64); err == nil {
		crit.MaxPrice = v * 100
	}
	if v, err := strconv.Atoi(tempFilterMinBeds); err == nil {
		crit.MinBeds = v
	}

	m.criteria = crit
	m.applyFilter()

	if name := strings.TrimSpace(tempFilterSaveAs); name != "" {
		m.savedSearches = append(m.savedSearches, catalog.SavedSearch{Name: name, Criteria: crit})
		m.addLog("success", fmt.Sprintf("Saved search `%s`", name))
	}
}

// applyFilter recomputes the filtered listings and clamps the cursor
func (m *model) applyFilter() {
	m.filtered = catalog.Filter(m.listings, m.criteria)
	if m.selectedListing >= len(m.filtered) {
		m.selectedListing = max(0, len(m.filtered)-1)
	}
}

// openDetails switches to the details page for a listing
func (m *model) openDetails(l catalog.Listing, from config.Page) {
	m.currentListing = l
	m.detailsFrom = from
	m.activePage = config.PageDetails
}

// favoriteListings returns the favorited listings in catalog order
func (m *model) favoriteListings() []catalog.Listing {
	var out []catalog.Listing
	for _, l := range m.listings {
		if m.favs.Has(l.ID) {
			out = append(out, l)
		}
	}
	return out
}

// nftFavorites returns the favorited NFT-backed listings
func (m *model) nftFavorites() []catalog.Listing {
	var out []catalog.Listing
	for _, l := range m.favoriteListings() {
		if l.IsNFT() {
			out = append(out, l)
		}
	}
	return out
}

// -------------------- UPDATE --------------------

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Application-level messages come first so async results are never
	// swallowed while a form or overlay is open. In particular the
	// account-change wait command must always be re-issued.
	switch msg := msg.(type) {

	case logInitMsg:
		if !m.logEnabled {
			return m, nil
		}
		// Create logger that writes to our buffer
		m.logger = log.NewWithOptions(m.logBuffer, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Prefix:          "",
		})
		m.logger.SetLevel(log.DebugLevel)
		m.logger.SetStyles(&log.Styles{
			Timestamp: lipgloss.NewStyle().Foreground(cMuted),
			Caller:    lipgloss.NewStyle().Faint(true),
			Prefix:    lipgloss.NewStyle().Bold(true).Foreground(cAccent2),
			Message:   lipgloss.NewStyle().Foreground(cText),
			Key:       lipgloss.NewStyle().Foreground(cAccent),
			Value:     lipgloss.NewStyle().Foreground(cText),
			Separator: lipgloss.NewStyle().Faint(true),
			Levels: map[log.Level]lipgloss.Style{
				log.DebugLevel: lipgloss.NewStyle().Foreground(cMuted).SetString("DEBUG"),
				log.InfoLevel:  lipgloss.NewStyle().Foreground(cAccent2).SetString("INFO"),
				log.WarnLevel:  lipgloss.NewStyle().Foreground(cWarn).SetString("WARN"),
				log.ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).SetString("ERROR"),
			},
		})
		m.logReady = true
		m.addLog("info", "Logger enabled")
		return m, nil

	case bridgeDetectedMsg:
		m.bridgeDetecting = false
		m.bridge = msg.bridge
		m.walletMgr = wallet.NewManager(msg.bridge, m.logger)
		if !msg.bridge.Installed() {
			m.addLog("warning", "No wallet bridge detected")
			return m, nil
		}
		m.addLog("success", fmt.Sprintf("Wallet bridge reachable at `%s`", m.bridgeURL))
		// silent reconnect probe, then start the change-notification loop
		return m, tea.Batch(
			checkExistingConnection(m.walletMgr),
			waitForAccountChange(m.bridge.AccountChanges()),
		)

	case existingConnectionMsg:
		if msg.state.IsConnected() {
			m.addLog("success", fmt.Sprintf("Restored wallet session for `%s`", wallet.ShortenAddr(msg.state.Address)))
		}
		return m, nil

	case walletConnectedMsg:
		if msg.state.IsConnected() {
			m.addLog("success", fmt.Sprintf("Wallet connected: `%s`", wallet.ShortenAddr(msg.state.Address)))
			if m.showWalletModal {
				// let the success state stay visible briefly
				return m, scheduleModalClose()
			}
		} else if msg.state.Err != "" {
			m.addLog("error", "Wallet connect failed: "+msg.state.Err)
		}
		return m, nil

	case accountsChangedMsg:
		if !msg.ok || m.walletMgr == nil {
			// notification channel closed on teardown
			return m, nil
		}
		before := m.walletState()
		after := m.walletMgr.ApplyAccountsChanged(msg.accounts)
		switch {
		case before.IsConnected() && !after.IsConnected():
			m.addLog("warning", "Wallet disconnected by provider")
		case after.Address != before.Address:
			m.addLog("info", fmt.Sprintf("Active account switched to `%s`", wallet.ShortenAddr(after.Address)))
		}
		return m, waitForAccountChange(m.bridge.AccountChanges())

	case modalAutoCloseMsg:
		if m.walletState().IsConnected() {
			m.showWalletModal = false
		}
		return m, nil

	case clipboardCopiedMsg:
		m.copiedMsg = "copied!"
		return m, clearCopiedCmd()

	case clearCopiedMsg:
		m.copiedMsg = ""
		return m, nil

	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height

		if m.logEnabled {
			// Width accounts for border and padding
			m.logViewport.Width = max(0, msg.Width-6)
			if m.logReady {
				m.updateLogViewport()
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		var cmds []tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		if m.logEnabled && !m.logReady {
			m.logSpinner, cmd = m.logSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m.updateMouse(msg)
	}

	// Wallet modal swallows keys while open
	if m.showWalletModal {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m.updateWalletModal(msg)
		}
		return m, nil
	}

	// Filter form handling
	if m.activePage == config.PageListings && m.filtering && m.filterForm != nil {
		// Intercept ESC key to cancel form
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			m.filtering = false
			m.filterForm = nil
			return m, nil
		}

		form, cmd := m.filterForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.filterForm = f

			// Check if form is completed
			if m.filterForm.State == huh.StateCompleted {
				m.applyTempFilter()
				m.addLog("info", fmt.Sprintf("Filter applied, %d of %d listings", len(m.filtered), len(m.listings)))
				m.filtering = false
				m.filterForm = nil
				return m, nil
			}

			// Check if form was aborted (ESC pressed)
			if m.filterForm.State == huh.StateAborted {
				m.filtering = false
				m.filterForm = nil
				return m, nil
			}
		}
		return m, cmd
	}

	// Home menu form
	if m.activePage == config.PageHome && m.homeForm != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "esc", "ctrl+c":
				return m, tea.Quit
			case "w":
				m.showWalletModal = true
				return m, nil
			case "l":
				return m.toggleLogger()
			}
		}

		form, cmd := m.homeForm.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.homeForm = f

			if m.homeForm.State == huh.StateCompleted {
				switch home.TempSelection {
				case "listings":
					m.activePage = config.PageListings
				case "favorites":
					m.activePage = config.PageFavorites
					m.selectedFav = 0
				case "dashboard":
					m.activePage = config.PageDashboard
				}
				m.homeForm = nil
				return m, nil
			}
			if m.homeForm.State == huh.StateAborted {
				m.homeForm = nil
				m.activePage = config.PageListings
				return m, nil
			}
		}
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// Saved-search picker overlay
	if m.showSavedSearches {
		switch keyMsg.String() {
		case "up", "k":
			if m.selectedSearch > 0 {
				m.selectedSearch--
			}
		case "down", "j":
			if m.selectedSearch < len(m.savedSearches)-1 {
				m.selectedSearch++
			}
		case "enter":
			if m.selectedSearch >= 0 && m.selectedSearch < len(m.savedSearches) {
				s := m.savedSearches[m.selectedSearch]
				m.criteria = s.Criteria
				m.applyFilter()
				m.addLog("info", fmt.Sprintf("Applied saved search `%s`", s.Name))
			}
			m.showSavedSearches = false
		case "d":
			if m.selectedSearch >= 0 && m.selectedSearch < len(m.savedSearches) {
				name := m.savedSearches[m.selectedSearch].Name
				m.savedSearches = append(m.savedSearches[:m.selectedSearch], m.savedSearches[m.selectedSearch+1:]...)
				if m.selectedSearch >= len(m.savedSearches) {
					m.selectedSearch = max(0, len(m.savedSearches)-1)
				}
				m.addLog("info", fmt.Sprintf("Deleted saved search `%s`", name))
			}
		case "esc":
			m.showSavedSearches = false
		}
		return m, nil
	}

	// global keys
	allowMenuHotkeys := !m.textInputActive()
	if allowMenuHotkeys {
		switch keyMsg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "w":
			m.showWalletModal = true
			return m, nil

		case "h":
			if m.activePage != config.PageHome {
				m.activePage = config.PageHome
				m.homeForm = home.CreateForm()
				return m, nil
			}

		case "l", "L":
			return m.toggleLogger()

		case "pageup", "pagedown":
			if m.logEnabled && m.logReady {
				var cmd tea.Cmd
				m.logViewport, cmd = m.logViewport.Update(keyMsg)
				return m, cmd
			}
		}
	}

	return m.updatePageKeys(keyMsg)
}

// updateWalletModal handles keys while the wallet modal is open
func (m *model) updateWalletModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	ws := m.walletState()

	switch keyMsg.String() {
	case "esc", "q":
		m.showWalletModal = false
		return m, nil

	case "enter":
		// the connect control is disabled while a request is in flight
		if ws.IsConnecting() || ws.IsConnected() || m.walletMgr == nil {
			return m, nil
		}
		m.addLog("info", "Requesting wallet connection")
		return m, connectWallet(m.walletMgr)

	case "d":
		if ws.IsConnected() {
			m.walletMgr.Disconnect()
			m.addLog("info", "Wallet disconnected")
		}
		return m, nil
	}

	return m, nil
}

// modalMouse closes the modal when a click lands outside the dialog area
func (m *model) modalMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	x, y, width, height := walletmodal.Bounds(m.w, m.h, m.walletState(), m.bridgeInstalled())
	inside := msg.X >= x && msg.X < x+width && msg.Y >= y && msg.Y < y+height
	if !inside {
		m.showWalletModal = false
	}
	return m, nil
}

// updateMouse routes clicks to the modal hit-test or the listing rows
func (m *model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.showWalletModal {
		return m.modalMouse(msg)
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.activePage != config.PageListings || m.filtering {
		return m, nil
	}

	for i, area := range m.clickableAreas {
		if msg.X >= area.X && msg.X < area.X+area.Width &&
			msg.Y >= area.Y && msg.Y < area.Y+area.Height {
			if l, ok := catalog.ByID(m.filtered, area.ListingID); ok {
				m.selectedListing = i
				m.openDetails(l, config.PageListings)
			}
			return m, nil
		}
	}
	return m, nil
}

// updatePageKeys handles per-page key bindings
func (m *model) updatePageKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.activePage {

	case config.PageListings:
		switch msg.String() {
		case "up", "k":
			if m.selectedListing > 0 {
				m.selectedListing--
			}
		case "down", "j":
			if m.selectedListing < len(m.filtered)-1 {
				m.selectedListing++
			}
		case "enter":
			if m.selectedListing >= 0 && m.selectedListing < len(m.filtered) {
				m.openDetails(m.filtered[m.selectedListing], config.PageListings)
			}
		case " ":
			if m.selectedListing >= 0 && m.selectedListing < len(m.filtered) {
				l := m.filtered[m.selectedListing]
				if m.favs.Toggle(l.ID) {
					m.addLog("info", fmt.Sprintf("Favorited `%s`", l.Title))
				} else {
					m.addLog("info", fmt.Sprintf("Unfavorited `%s`", l.Title))
				}
			}
		case "f":
			m.filtering = true
			m.createFilterForm()
		case "x":
			m.criteria = catalog.Criteria{}
			m.applyFilter()
			m.addLog("info", "Filter cleared")
		case "v":
			m.showSavedSearches = true
			m.selectedSearch = 0
		case "esc":
			return m, tea.Quit
		}
		return m, nil

	case config.PageDetails:
		switch msg.String() {
		case " ":
			if m.favs.Toggle(m.currentListing.ID) {
				m.addLog("info", fmt.Sprintf("Favorited `%s`", m.currentListing.Title))
			} else {
				m.addLog("info", fmt.Sprintf("Unfavorited `%s`", m.currentListing.Title))
			}
		case "c":
			if m.currentListing.IsNFT() {
				m.addLog("info", "Copied deed link to clipboard")
				return m, copyToClipboard(m.currentListing.Deed.URI())
			}
		case "esc":
			m.activePage = m.detailsFrom
		}
		return m, nil

	case config.PageFavorites:
		favs := m.favoriteListings()
		switch msg.String() {
		case "up", "k":
			if m.selectedFav > 0 {
				m.selectedFav--
			}
		case "down", "j":
			if m.selectedFav < len(favs)-1 {
				m.selectedFav++
			}
		case "enter":
			if m.selectedFav >= 0 && m.selectedFav < len(favs) {
				m.openDetails(favs[m.selectedFav], config.PageFavorites)
			}
		case " ":
			if m.selectedFav >= 0 && m.selectedFav < len(favs) {
				l := favs[m.selectedFav]
				m.favs.Toggle(l.ID)
				m.addLog("info", fmt.Sprintf("Unfavorited `%s`", l.Title))
				if m.selectedFav >= len(favs)-1 {
					m.selectedFav = max(0, len(favs)-2)
				}
			}
		case "esc":
			m.activePage = config.PageListings
		}
		return m, nil

	case config.PageDashboard:
		ws := m.walletState()
		switch msg.String() {
		case "c":
			if ws.IsConnected() {
				m.addLog("info", "Copied address to clipboard")
				return m, copyToClipboard(ws.Address)
			}
		case "d":
			if ws.IsConnected() {
				m.walletMgr.Disconnect()
				m.addLog("info", "Wallet disconnected")
			}
		case "esc":
			m.activePage = config.PageListings
		}
		return m, nil
	}

	return m, nil
}

// toggleLogger flips the debug log panel and persists the flag
func (m *model) toggleLogger() (tea.Model, tea.Cmd) {
	m.logEnabled = !m.logEnabled
	if m.logEnabled {
		if m.w > 0 {
			m.logViewport.Width = m.w - 6
		}
		m.logReady = false
		config.Save(m.configPath, config.Config{Bridges: m.bridges, Logger: m.logEnabled})
		return m, tea.Batch(initLogViewport(), m.logSpinner.Tick)
	}
	// Clear logs and de-initialize when disabling
	if m.logBuffer != nil {
		m.logBuffer.Reset()
	}
	m.logger = nil
	m.logReady = false
	config.Save(m.configPath, config.Config{Bridges: m.bridges, Logger: m.logEnabled})
	return m, nil
}
