package wallet

import (
	"context"
	"errors"
	"testing"
)

// fakeProvider scripts provider behavior for state machine tests
type fakeProvider struct {
	installed   bool
	requestFn   func(ctx context.Context) ([]string, error)
	accountsFn  func(ctx context.Context) ([]string, error)
	changes     chan []string
	requestHits int
}

func (f *fakeProvider) Installed() bool { return f.installed }

func (f *fakeProvider) RequestAccounts(ctx context.Context) ([]string, error) {
	f.requestHits++
	return f.requestFn(ctx)
}

func (f *fakeProvider) Accounts(ctx context.Context) ([]string, error) {
	return f.accountsFn(ctx)
}

func (f *fakeProvider) AccountChanges() <-chan []string { return f.changes }

func (f *fakeProvider) Close() {}

func TestConnectNotInstalled(t *testing.T) {
	p := &fakeProvider{
		installed: false,
		requestFn: func(ctx context.Context) ([]string, error) {
			t.Fatal("RequestAccounts must not be called when not installed")
			return nil, nil
		},
	}
	m := NewManager(p, nil)

	s := m.Connect(context.Background())
	if s.Status != StatusDisconnected {
		t.Errorf("status = %v, want disconnected", s.Status)
	}
	if s.Err != ErrMsgNotInstalled {
		t.Errorf("err = %q, want %q", s.Err, ErrMsgNotInstalled)
	}
	if p.requestHits != 0 {
		t.Error("provider request was issued despite missing install")
	}
}

func TestConnectSuccessFirstAddressWins(t *testing.T) {
	p := &fakeProvider{
		installed: true,
		requestFn: func(ctx context.Context) ([]string, error) {
			return []string{"0xAAA111", "0xBBB222"}, nil
		},
	}
	m := NewManager(p, nil)

	s := m.Connect(context.Background())
	if !s.IsConnected() {
		t.Fatal("expected connected state")
	}
	if s.Address != "0xAAA111" {
		t.Errorf("address = %q, want first returned entry", s.Address)
	}
	if s.Err != "" {
		t.Errorf("err should be empty after success, got %q", s.Err)
	}
}

func TestConnectFailureMessages(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"user rejected", &Error{Code: CodeUserRejected, Message: "denied"}, ErrMsgRejected},
		{"request pending", &Error{Code: CodeRequestPending, Message: "busy"}, ErrMsgPending},
		{"other with message", errors.New("bridge exploded"), "bridge exploded"},
		{"other blank message", errors.New(""), ErrMsgConnectFailed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := &fakeProvider{
				installed: true,
				requestFn: func(ctx context.Context) ([]string, error) {
					return nil, c.err
				},
			}
			m := NewManager(p, nil)

			s := m.Connect(context.Background())
			if s.Status != StatusDisconnected {
				t.Errorf("status = %v, want disconnected", s.Status)
			}
			if s.Err != c.want {
				t.Errorf("err = %q, want %q", s.Err, c.want)
			}
			if s.Address != "" {
				t.Errorf("address must be empty after failure, got %q", s.Address)
			}
		})
	}
}

func TestConnectZeroAccounts(t *testing.T) {
	p := &fakeProvider{
		installed: true,
		requestFn: func(ctx context.Context) ([]string, error) {
			return []string{}, nil
		},
	}
	m := NewManager(p, nil)

	s := m.Connect(context.Background())
	if s.Status != StatusDisconnected || s.Err != ErrMsgNoAccounts {
		t.Errorf("state = %+v, want disconnected with %q", s, ErrMsgNoAccounts)
	}
}

func TestConnectingOnlyDuringRequest(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	p := &fakeProvider{
		installed: true,
		requestFn: func(ctx context.Context) ([]string, error) {
			close(entered)
			<-release
			return []string{"0xAAA"}, nil
		},
	}
	m := NewManager(p, nil)

	if m.State().IsConnecting() {
		t.Fatal("connecting before any attempt")
	}

	done := make(chan State)
	go func() { done <- m.Connect(context.Background()) }()

	<-entered
	if !m.State().IsConnecting() {
		t.Error("expected connecting while request is outstanding")
	}
	if m.State().Err != "" {
		t.Error("entering the connecting phase must clear any previous error")
	}

	close(release)
	s := <-done
	if s.IsConnecting() || !s.IsConnected() {
		t.Errorf("settled state should not be connecting: %+v", s)
	}
}

func TestAddressPresentIffConnected(t *testing.T) {
	p := &fakeProvider{
		installed: true,
		requestFn: func(ctx context.Context) ([]string, error) {
			return []string{"0xAAA"}, nil
		},
	}
	m := NewManager(p, nil)

	check := func(s State) {
		t.Helper()
		if s.IsConnected() != (s.Address != "") {
			t.Errorf("address/connected invariant broken: %+v", s)
		}
	}

	check(m.State())
	check(m.Connect(context.Background()))
	check(m.ApplyAccountsChanged([]string{"0xBBB"}))
	check(m.Disconnect())
}

func TestDisconnectIdempotent(t *testing.T) {
	p := &fakeProvider{installed: true}
	m := NewManager(p, nil)

	first := m.Disconnect()
	second := m.Disconnect()
	if first != (State{}) || second != (State{}) {
		t.Errorf("disconnect should yield the empty state, got %+v then %+v", first, second)
	}
}

func TestAccountsChangedEmptyDisconnects(t *testing.T) {
	p := &fakeProvider{
		installed: true,
		requestFn: func(ctx context.Context) ([]string, error) {
			return []string{"0xAAA"}, nil
		},
	}
	m := NewManager(p, nil)
	m.Connect(context.Background())

	s := m.ApplyAccountsChanged(nil)
	if s != (State{}) {
		t.Errorf("expected fully-empty disconnected state, got %+v", s)
	}
}

func TestAccountsChangedSwitchesActiveAddress(t *testing.T) {
	p := &fakeProvider{
		installed: true,
		requestFn: func(ctx context.Context) ([]string, error) {
			return []string{"0xAAA"}, nil
		},
	}
	m := NewManager(p, nil)
	m.Connect(context.Background())

	s := m.ApplyAccountsChanged([]string{"0xCCC", "0xAAA"})
	if !s.IsConnected() {
		t.Error("switching accounts must keep the connected state")
	}
	if s.Address != "0xCCC" {
		t.Errorf("address = %q, want 0xCCC", s.Address)
	}
	if s.Err != "" {
		t.Errorf("err should be cleared, got %q", s.Err)
	}

	// same first entry is a no-op
	again := m.ApplyAccountsChanged([]string{"0xCCC"})
	if again != s {
		t.Errorf("unchanged first entry should not transition: %+v vs %+v", again, s)
	}
}

func TestCheckExistingConnects(t *testing.T) {
	p := &fakeProvider{
		installed: true,
		accountsFn: func(ctx context.Context) ([]string, error) {
			return []string{"0xAAA"}, nil
		},
	}
	m := NewManager(p, nil)

	s := m.CheckExisting(context.Background())
	if !s.IsConnected() || s.Address != "0xAAA" {
		t.Errorf("expected silent reconnect, got %+v", s)
	}
}

func TestCheckExistingSwallowsFailures(t *testing.T) {
	p := &fakeProvider{
		installed: true,
		accountsFn: func(ctx context.Context) ([]string, error) {
			return nil, errors.New("bridge gone")
		},
	}
	m := NewManager(p, nil)

	s := m.CheckExisting(context.Background())
	if s != (State{}) {
		t.Errorf("probe failure must not surface, got %+v", s)
	}
}

func TestCheckExistingNoAuthorizedAccounts(t *testing.T) {
	p := &fakeProvider{
		installed: true,
		accountsFn: func(ctx context.Context) ([]string, error) {
			return []string{}, nil
		},
	}
	m := NewManager(p, nil)

	s := m.CheckExisting(context.Background())
	if s != (State{}) {
		t.Errorf("probe without accounts must stay disconnected, got %+v", s)
	}
}

func TestCheckExistingStaleProbeDropped(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	p := &fakeProvider{
		installed: true,
		accountsFn: func(ctx context.Context) ([]string, error) {
			close(entered)
			<-release
			return []string{"0xOLD"}, nil
		},
	}
	m := NewManager(p, nil)

	done := make(chan State)
	go func() { done <- m.CheckExisting(context.Background()) }()

	// a change notification lands while the probe is in flight
	<-entered
	m.ApplyAccountsChanged([]string{"0xNEW"})
	close(release)

	s := <-done
	if s.Address != "0xNEW" {
		t.Errorf("stale probe overwrote a newer transition: %+v", s)
	}
}

func TestShortenAddr(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"0x1234567890abcdef", "0x1234…cdef"},
		{"", ""},
		{"0x1234", "0x1234"},
		{"0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045", "0xd8dA…6045"},
	}
	for _, c := range cases {
		if got := ShortenAddr(c.in); got != c.want {
			t.Errorf("ShortenAddr(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
