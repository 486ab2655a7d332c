package main

import (
	"context"
	"time"

	"charm-estate-tui/wallet"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// -------------------- COMMAND FUNCTIONS --------------------
// Functions that return tea.Cmd for async operations

// detectBridge probes the wallet bridge endpoint in the background
func detectBridge(url string) tea.Cmd {
	return func() tea.Msg {
		return bridgeDetectedMsg{bridge: wallet.Detect(url)}
	}
}

// connectWallet runs a user-initiated connection attempt. The request
// blocks until the user responds in the wallet's own UI; no timeout is
// applied here on purpose.
func connectWallet(mgr *wallet.Manager) tea.Cmd {
	return func() tea.Msg {
		return walletConnectedMsg{state: mgr.Connect(context.Background())}
	}
}

// checkExistingConnection silently probes for already-authorized accounts
func checkExistingConnection(mgr *wallet.Manager) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return existingConnectionMsg{state: mgr.CheckExisting(ctx)}
	}
}

// waitForAccountChange blocks on the provider's notification channel.
// Update re-issues it after each delivery; a closed channel ends the loop.
func waitForAccountChange(ch <-chan []string) tea.Cmd {
	return func() tea.Msg {
		accounts, ok := <-ch
		return accountsChangedMsg{accounts: accounts, ok: ok}
	}
}

// scheduleModalClose lets the success state stay visible briefly before
// the wallet modal closes itself
func scheduleModalClose() tea.Cmd {
	return tea.Tick(1200*time.Millisecond, func(t time.Time) tea.Msg {
		return modalAutoCloseMsg{}
	})
}

// initLogViewport initializes the log viewport
func initLogViewport() tea.Cmd {
	return func() tea.Msg {
		return logInitMsg{}
	}
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		err := clipboard.WriteAll(text)
		if err == nil {
			return clipboardCopiedMsg{}
		}
		return nil
	}
}

// clearCopiedCmd waits 2 seconds then clears clipboard feedback
func clearCopiedCmd() tea.Cmd {
	return tea.Tick(2*time.Second, func(t time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// -------------------- MODEL HELPER METHODS --------------------

// addLog adds a log entry with timestamp and type
func (m *model) addLog(logType, message string) {
	if !m.logEnabled || !m.logReady || m.logger == nil {
		return
	}

	switch logType {
	case "info":
		m.logger.Info(message)
	case "success":
		m.logger.Info("✓", "msg", message)
	case "error":
		m.logger.Error(message)
	case "warning":
		m.logger.Warn(message)
	case "debug":
		m.logger.Debug(message)
	default:
		m.logger.Print(message)
	}

	// Update viewport content
	m.updateLogViewport()
}

// updateLogViewport refreshes the viewport content with log output
func (m *model) updateLogViewport() {
	if !m.logReady || m.logBuffer == nil {
		return
	}

	content := m.logBuffer.String()
	m.logViewport.SetContent(content)
	// Scroll to bottom to show latest entries
	m.logViewport.GotoBottom()
}

// walletState reads the current connection state, empty until the bridge
// detection finished
func (m *model) walletState() wallet.State {
	if m.walletMgr == nil {
		return wallet.State{}
	}
	return m.walletMgr.State()
}

// bridgeInstalled reports wallet availability once detection settled
func (m *model) bridgeInstalled() bool {
	return m.bridge != nil && m.bridge.Installed()
}

// textInputActive returns true if any text input is currently active
func (m *model) textInputActive() bool {
	if m.filtering && m.filterForm != nil {
		return true
	}
	return false
}
