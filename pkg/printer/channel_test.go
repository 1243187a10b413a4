package printer

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func connectedChannel(t *testing.T) (*Channel, *Loopback) {
	t.Helper()
	lb := NewLoopback()
	ch := NewChannel(lb)
	if err := ch.Connect(context.Background()); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	return ch, lb
}

func TestChannelStartsDisconnected(t *testing.T) {
	ch := NewChannel(NewLoopback())
	if got := ch.State(); got != StateDisconnected {
		t.Errorf("initial state = %v, want %v", got, StateDisconnected)
	}
}

func TestPrintWhileDisconnected(t *testing.T) {
	ch := NewChannel(NewLoopback())
	err := ch.Print(context.Background(), []string{"hello"})
	if !errors.Is(err, ErrDeviceUnavailable) {
		t.Errorf("Print while disconnected = %v, want ErrDeviceUnavailable", err)
	}
	if got := ch.State(); got != StateDisconnected {
		t.Errorf("state after rejected print = %v, want %v", got, StateDisconnected)
	}
}

func TestConnectAndPrint(t *testing.T) {
	ch, lb := connectedChannel(t)
	if got := ch.State(); got != StateConnected {
		t.Fatalf("state after connect = %v, want %v", got, StateConnected)
	}

	if err := ch.Print(context.Background(), []string{"line one", "line two"}); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	if got := ch.State(); got != StateConnected {
		t.Errorf("state after print = %v, want %v", got, StateConnected)
	}

	sent := lb.Sent()
	if len(sent) != 1 {
		t.Fatalf("payload count = %d, want 1", len(sent))
	}
	if !bytes.Contains(sent[0], []byte("line one")) || !bytes.Contains(sent[0], []byte("line two")) {
		t.Errorf("payload missing rendered lines: %q", sent[0])
	}
}

func TestConnectWhileConnected(t *testing.T) {
	ch, _ := connectedChannel(t)
	// Connecting an already-connected channel is a no-op, not an error
	if err := ch.Connect(context.Background()); err != nil {
		t.Errorf("Connect while connected = %v, want nil", err)
	}
	if got := ch.State(); got != StateConnected {
		t.Errorf("state = %v, want %v", got, StateConnected)
	}
}

func TestConnectFailure(t *testing.T) {
	lb := NewLoopback()
	lb.ConnectErr = errors.New("pairing rejected")
	ch := NewChannel(lb)

	if err := ch.Connect(context.Background()); err == nil {
		t.Fatal("expected connect error")
	}
	if got := ch.State(); got != StateDisconnected {
		t.Errorf("state after failed connect = %v, want %v", got, StateDisconnected)
	}
	if ch.LastError() == nil {
		t.Error("LastError not recorded after failed connect")
	}

	// No automatic retry: a later explicit connect may succeed
	lb.ConnectErr = nil
	if err := ch.Connect(context.Background()); err != nil {
		t.Errorf("explicit reconnect failed: %v", err)
	}
}

func TestPrintRejectedWhileBusy(t *testing.T) {
	ch, lb := connectedChannel(t)
	lb.SendDelay = 50 * time.Millisecond

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = ch.Print(context.Background(), []string{"first"})
	}()

	// Wait for the first print to occupy the channel
	deadline := time.Now().Add(time.Second)
	for ch.State() != StatePrinting {
		if time.Now().After(deadline) {
			t.Fatal("channel never entered printing state")
		}
		time.Sleep(time.Millisecond)
	}

	err := ch.Print(context.Background(), []string{"second"})
	if !errors.Is(err, ErrBusy) {
		t.Errorf("overlapping print = %v, want ErrBusy", err)
	}

	wg.Wait()
	if got := ch.State(); got != StateConnected {
		t.Errorf("state after first print = %v, want %v", got, StateConnected)
	}
	if len(lb.Sent()) != 1 {
		t.Errorf("payload count = %d, want 1 (second print must not queue)", len(lb.Sent()))
	}
}

func TestPrintFailureDisconnects(t *testing.T) {
	ch, lb := connectedChannel(t)
	lb.SendErr = errors.New("device fault")

	err := ch.Print(context.Background(), []string{"hello"})
	if !errors.Is(err, ErrWriteFailed) {
		t.Errorf("failed print = %v, want ErrWriteFailed", err)
	}
	if got := ch.State(); got != StateDisconnected {
		t.Errorf("state after failed print = %v, want %v", got, StateDisconnected)
	}
}

func TestDisconnectMidPrint(t *testing.T) {
	ch, lb := connectedChannel(t)
	lb.SendDelay = 50 * time.Millisecond

	errCh := make(chan error, 1)
	go func() {
		errCh <- ch.Print(context.Background(), []string{"hello"})
	}()

	deadline := time.Now().Add(time.Second)
	for ch.State() != StatePrinting {
		if time.Now().After(deadline) {
			t.Fatal("channel never entered printing state")
		}
		time.Sleep(time.Millisecond)
	}

	if err := ch.Disconnect(); err != nil {
		t.Fatalf("Disconnect failed: %v", err)
	}
	if got := ch.State(); got != StateDisconnected {
		t.Errorf("state after disconnect = %v, want %v", got, StateDisconnected)
	}

	// The cancelled print surfaces as a terminal error, never silence
	if err := <-errCh; !errors.Is(err, ErrDeviceLost) {
		t.Errorf("print cut by disconnect = %v, want ErrDeviceLost", err)
	}
}

func TestDisconnectFromAnyState(t *testing.T) {
	// Disconnected: no-op
	ch := NewChannel(NewLoopback())
	if err := ch.Disconnect(); err != nil {
		t.Errorf("Disconnect while disconnected = %v, want nil", err)
	}

	// Connected
	ch, _ = connectedChannel(t)
	if err := ch.Disconnect(); err != nil {
		t.Errorf("Disconnect while connected = %v, want nil", err)
	}
	if got := ch.State(); got != StateDisconnected {
		t.Errorf("state = %v, want %v", got, StateDisconnected)
	}
}

func TestStateString(t *testing.T) {
	cases := map[State]string{
		StateDisconnected: "disconnected",
		StateConnecting:   "connecting",
		StateConnected:    "connected",
		StatePrinting:     "printing",
	}
	for s, want := range cases {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", s, got, want)
		}
	}
}
