package main

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"charm-estate-tui/catalog"
	"charm-estate-tui/config"
	"charm-estate-tui/styles"
	"charm-estate-tui/wallet"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- MODEL --------------------

// model represents the application state following The Elm Architecture
type model struct {
	w, h int

	activePage config.Page
	// page to return to when leaving the details view
	detailsFrom config.Page

	// catalog
	listings        []catalog.Listing // full seeded catalog
	filtered        []catalog.Listing // listings after criteria
	criteria        catalog.Criteria
	selectedListing int // index into filtered
	favs            catalog.Favorites
	selectedFav     int
	currentListing  catalog.Listing // listing shown on the details page

	// saved searches (session only)
	savedSearches     []catalog.SavedSearch
	showSavedSearches bool
	selectedSearch    int

	// filter form
	filtering  bool
	filterForm *huh.Form

	// wallet
	bridge          *wallet.Bridge
	walletMgr       *wallet.Manager
	bridgeURL       string
	bridgeDetecting bool
	showWalletModal bool

	// spinner
	spin spinner.Model

	// clipboard feedback
	copiedMsg     string
	copiedMsgTime time.Time

	// home form
	homeForm *huh.Form

	// clickable areas for mouse support
	clickableAreas []config.ClickableArea

	// logger panel
	logEnabled  bool
	logger      *log.Logger
	logBuffer   *strings.Builder
	logViewport viewport.Model
	logReady    bool
	logSpinner  spinner.Model

	configPath string
	bridges    []config.BridgeEndpoint
}

// -------------------- INIT --------------------

// newModel creates and initializes a new model with configuration from disk
func newModel() model {
	// config path
	homeDir, _ := os.UserHomeDir()
	configPath := filepath.Join(homeDir, ".charm-estate-config.json")

	cfg := config.LoadOrCreate(configPath)

	// bridge endpoint from environment wins over config
	bridgeURL := strings.TrimSpace(os.Getenv("WALLET_BRIDGE_URL"))
	if bridgeURL == "" {
		bridgeURL = cfg.ActiveBridgeURL()
	}

	// spinner
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	// Initialize log viewport
	vp := viewport.New(0, 20) // Will be resized in Update on first WindowSizeMsg
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	// Initialize log spinner
	logSpin := spinner.New()
	logSpin.Spinner = spinner.Dot
	logSpin.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	listings := catalog.Seed()

	m := model{
		activePage:      config.PageListings,
		detailsFrom:     config.PageListings,
		listings:        listings,
		filtered:        listings,
		favs:            catalog.Favorites{},
		bridgeURL:       bridgeURL,
		bridgeDetecting: bridgeURL != "",
		spin:            sp,
		logEnabled:      cfg.Logger,
		logViewport:     vp,
		logBuffer:       &strings.Builder{},
		logSpinner:      logSpin,
		configPath:      configPath,
		bridges:         cfg.Bridges,
	}

	return m
}

// Init implements tea.Model interface and returns initial commands
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.logEnabled {
		cmds = append(cmds, initLogViewport(), m.logSpinner.Tick)
	}
	// probe the wallet bridge in the background
	cmds = append(cmds, detectBridge(m.bridgeURL))
	return tea.Batch(cmds...)
}
