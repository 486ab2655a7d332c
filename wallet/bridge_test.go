package wallet

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestDetectEmptyURL(t *testing.T) {
	b := Detect("")
	if b.Installed() {
		t.Error("empty endpoint must report not installed")
	}

	// Close must be safe without a poller and must unblock waiters
	b.Close()
	b.Close()

	select {
	case _, ok := <-b.AccountChanges():
		if ok {
			t.Error("expected closed channel, got a value")
		}
	case <-time.After(time.Second):
		t.Error("AccountChanges not closed after Close")
	}
}

func TestDetectUnreachableEndpoint(t *testing.T) {
	b := DetectWithTimeout("ws://127.0.0.1:1", 500*time.Millisecond)
	if b.Installed() {
		t.Error("unreachable endpoint must report not installed")
	}
	b.Close()
}

func TestBridgeAgainstLiveEndpoint(t *testing.T) {
	url := os.Getenv("WALLET_BRIDGE_URL")
	if url == "" {
		t.Skip("WALLET_BRIDGE_URL not set, skipping live bridge test")
	}

	b := Detect(url)
	defer b.Close()
	if !b.Installed() {
		t.Fatalf("failed to reach bridge at %s", url)
	}

	t.Run("silent account query", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		accounts, err := b.Accounts(ctx)
		if err != nil {
			t.Fatalf("eth_accounts failed: %v", err)
		}
		t.Logf("bridge reports %d authorized accounts", len(accounts))
	})

	t.Run("manager probe", func(t *testing.T) {
		m := NewManager(b, nil)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s := m.CheckExisting(ctx)
		if s.Err != "" {
			t.Errorf("silent probe must never surface an error, got %q", s.Err)
		}
		if s.IsConnected() {
			t.Logf("already authorized as %s", ShortenAddr(s.Address))
		}
	})
}
