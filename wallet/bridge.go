package wallet

import (
	"context"
	"slices"
	"sync"
	"time"

	gethrpc "github.com/ethereum/go-ethereum/rpc"
)

// Bridge implements Provider over a MetaMask-compatible wallet bridge
// reached through JSON-RPC. A failed dial yields a not-installed Bridge
// rather than an error, mirroring capability detection in a host with no
// wallet extension.
type Bridge struct {
	client   *gethrpc.Client
	changes  chan []string
	stopPoll chan struct{}
	closed   sync.Once
}

// DefaultPollInterval is how often the bridge re-reads eth_accounts to
// synthesize account-change notifications.
const DefaultPollInterval = 4 * time.Second

// Detect dials the bridge endpoint. It never returns an error: when the
// endpoint is empty or unreachable the Bridge simply reports not installed.
func Detect(url string) *Bridge {
	return DetectWithTimeout(url, 8*time.Second)
}

// DetectWithTimeout dials with a custom timeout
func DetectWithTimeout(url string, timeout time.Duration) *Bridge {
	b := &Bridge{
		changes:  make(chan []string, 1),
		stopPoll: make(chan struct{}),
	}
	if url == "" {
		return b
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := gethrpc.DialContext(ctx, url)
	if err != nil {
		return b
	}

	b.client = client
	go b.poll(DefaultPollInterval)
	return b
}

// Installed reports whether the bridge dial succeeded
func (b *Bridge) Installed() bool {
	return b != nil && b.client != nil
}

// RequestAccounts issues eth_requestAccounts, which may prompt the user in
// the bridge's own UI. The call blocks until the user responds or the
// bridge errors; context cancellation aborts the wait locally only.
func (b *Bridge) RequestAccounts(ctx context.Context) ([]string, error) {
	var accounts []string
	err := b.client.CallContext(ctx, &accounts, "eth_requestAccounts")
	return accounts, err
}

// Accounts issues the silent eth_accounts query
func (b *Bridge) Accounts(ctx context.Context) ([]string, error) {
	var accounts []string
	err := b.client.CallContext(ctx, &accounts, "eth_accounts")
	return accounts, err
}

// AccountChanges returns the notification channel. Closed by Close.
func (b *Bridge) AccountChanges() <-chan []string {
	return b.changes
}

// poll synthesizes accountsChanged notifications from periodic
// eth_accounts reads. The first read establishes the baseline without
// emitting; only an actual change is pushed. The poller owns the changes
// channel and closes it on exit so waiters unblock.
func (b *Bridge) poll(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer close(b.changes)

	var last []string
	first := true

	for {
		select {
		case <-b.stopPoll:
			return
		case <-ticker.C:
		}

		ctx, cancel := context.WithTimeout(context.Background(), interval)
		accounts, err := b.Accounts(ctx)
		cancel()
		if err != nil {
			continue
		}

		if first {
			last = accounts
			first = false
			continue
		}
		if slices.Equal(accounts, last) {
			continue
		}
		last = accounts

		select {
		case b.changes <- accounts:
		case <-b.stopPoll:
			return
		}
	}
}

// Close stops the poller, which closes the notification channel, and
// releases the RPC client. Safe to call from any state and more than once.
func (b *Bridge) Close() {
	b.closed.Do(func() {
		close(b.stopPoll)
		if b.client != nil {
			b.client.Close()
		} else {
			// no poller was started, close the channel here
			close(b.changes)
		}
	})
}
