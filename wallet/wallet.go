package wallet

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
)

// Status is the connection phase of the wallet state machine
type Status int

const (
	StatusDisconnected Status = iota
	StatusConnecting
	StatusConnected
)

// State is a tagged variant over the connection phases. Address is set only
// when connected; Err only when disconnected after a failure.
type State struct {
	Status  Status
	Address string
	Err     string
}

// IsConnected reports whether an address has been obtained
func (s State) IsConnected() bool {
	return s.Status == StatusConnected
}

// IsConnecting reports whether a connect request is outstanding
func (s State) IsConnecting() bool {
	return s.Status == StatusConnecting
}

// User-facing failure messages
const (
	ErrMsgNotInstalled  = "MetaMask is not installed. Please install MetaMask to continue."
	ErrMsgRejected      = "Connection rejected by user"
	ErrMsgPending       = "Connection request already pending"
	ErrMsgNoAccounts    = "No accounts found. Please unlock MetaMask."
	ErrMsgConnectFailed = "Failed to connect wallet"
)

// Manager owns the wallet connection state. All transitions go through its
// methods; views only read State(). Methods are safe to call from command
// goroutines while the UI loop reads.
type Manager struct {
	mu       sync.Mutex
	provider Provider
	state    State
	seq      uint64 // bumped on every state write, see CheckExisting
	logger   *log.Logger
}

// NewManager creates a manager around an injected provider. logger may be
// nil to silence the background probe.
func NewManager(p Provider, logger *log.Logger) *Manager {
	return &Manager{provider: p, logger: logger}
}

// State returns a copy of the current connection state
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Installed reports provider availability without touching state
func (m *Manager) Installed() bool {
	return m.provider.Installed()
}

func (m *Manager) set(s State) {
	m.state = s
	m.seq++
}

// Connect runs a full user-initiated connection attempt and returns the
// settled state. When no provider is installed it settles synchronously
// without ever entering the connecting phase.
func (m *Manager) Connect(ctx context.Context) State {
	m.mu.Lock()
	if !m.provider.Installed() {
		m.set(State{Status: StatusDisconnected, Err: ErrMsgNotInstalled})
		s := m.state
		m.mu.Unlock()
		return s
	}
	m.set(State{Status: StatusConnecting})
	m.mu.Unlock()

	accounts, err := m.provider.RequestAccounts(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case err != nil:
		m.set(State{Status: StatusDisconnected, Err: connectErrMessage(err)})
	case len(accounts) == 0:
		m.set(State{Status: StatusDisconnected, Err: ErrMsgNoAccounts})
	default:
		m.set(State{Status: StatusConnected, Address: accounts[0]})
	}
	return m.state
}

// connectErrMessage maps provider failures to the fixed user-facing strings
func connectErrMessage(err error) string {
	if code, ok := errorCode(err); ok {
		switch code {
		case CodeUserRejected:
			return ErrMsgRejected
		case CodeRequestPending:
			return ErrMsgPending
		}
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return ErrMsgConnectFailed
}

// Disconnect unconditionally resets to the empty disconnected state.
// Idempotent, never fails.
func (m *Manager) Disconnect() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.set(State{Status: StatusDisconnected})
	return m.state
}

// CheckExisting silently probes for already-authorized accounts at startup.
// All failures are logged and swallowed; nothing is ever surfaced in Err.
// The result is dropped when any other transition landed after the probe
// was issued, so a user action or change event always wins.
func (m *Manager) CheckExisting(ctx context.Context) State {
	if !m.provider.Installed() {
		return m.State()
	}

	m.mu.Lock()
	issued := m.seq
	m.mu.Unlock()

	accounts, err := m.provider.Accounts(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		if m.logger != nil {
			m.logger.Debug("existing connection probe failed", "err", err)
		}
		return m.state
	}
	if m.seq != issued {
		// stale probe, a newer write already landed
		return m.state
	}
	if len(accounts) > 0 {
		m.set(State{Status: StatusConnected, Address: accounts[0]})
	}
	return m.state
}

// ApplyAccountsChanged handles a provider account-change notification.
// An empty list disconnects; a new first address replaces the stored one
// while staying connected, clearing any error.
func (m *Manager) ApplyAccountsChanged(accounts []string) State {
	if len(accounts) == 0 {
		return m.Disconnect()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if accounts[0] != m.state.Address {
		m.set(State{Status: StatusConnected, Address: accounts[0]})
	}
	return m.state
}

// ShortenAddr shortens a chain address for display: first 6 characters,
// an ellipsis, and the last 4. Empty input yields an empty string.
func ShortenAddr(addr string) string {
	if addr == "" {
		return ""
	}
	if len(addr) < 10 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}
