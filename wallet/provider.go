package wallet

import "context"

// Provider is the wallet capability injected into the connection state
// machine. The production implementation is Bridge; tests use a fake.
type Provider interface {
	// Installed reports whether a wallet is reachable. Safe to call
	// repeatedly and before any connection attempt; never fails.
	Installed() bool

	// RequestAccounts asks the wallet for account access. May prompt the
	// user on the wallet side; resolves to an ordered list of addresses
	// with the first entry treated as the active address.
	RequestAccounts(ctx context.Context) ([]string, error)

	// Accounts silently queries already-authorized accounts, no prompt.
	Accounts(ctx context.Context) ([]string, error)

	// AccountChanges returns the channel carrying account-change
	// notifications. An empty list signals disconnection. The channel is
	// closed by Close.
	AccountChanges() <-chan []string

	// Close releases the provider and its notification channel.
	Close()
}

// Provider failure codes, per EIP-1193 / JSON-RPC convention
const (
	CodeUserRejected   = 4001
	CodeRequestPending = -32002
)

// Error is a provider failure carrying a numeric code, the shape
// wallet bridges report over JSON-RPC.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string  { return e.Message }
func (e *Error) ErrorCode() int { return e.Code }

// errorCode extracts a numeric failure code from a provider error.
// go-ethereum's JSON-RPC errors expose ErrorCode(); so does Error above.
func errorCode(err error) (int, bool) {
	type coded interface {
		ErrorCode() int
	}
	if c, ok := err.(coded); ok {
		return c.ErrorCode(), true
	}
	return 0, false
}
