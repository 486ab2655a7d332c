package main

import (
	"charm-estate-tui/wallet"
)

// -------------------- TEA MESSAGES --------------------
// All custom message types for The Elm Architecture

// clipboardCopiedMsg indicates clipboard copy completed
type clipboardCopiedMsg struct{}

// clearCopiedMsg clears the clipboard feedback after a short delay
type clearCopiedMsg struct{}

// logInitMsg signals that log viewport should be initialized
type logInitMsg struct{}

// bridgeDetectedMsg contains the result of wallet bridge detection
type bridgeDetectedMsg struct {
	bridge *wallet.Bridge
}

// walletConnectedMsg contains the settled state after a connect attempt
type walletConnectedMsg struct {
	state wallet.State
}

// existingConnectionMsg contains the state after the silent startup probe
type existingConnectionMsg struct {
	state wallet.State
}

// accountsChangedMsg carries a provider account-change notification.
// ok is false when the notification channel was closed on teardown.
type accountsChangedMsg struct {
	accounts []string
	ok       bool
}

// modalAutoCloseMsg closes the wallet modal shortly after a successful connect
type modalAutoCloseMsg struct{}
