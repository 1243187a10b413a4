package printer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// State of the printer channel
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StatePrinting
)

func (s State) String() string {
	names := [...]string{"disconnected", "connecting", "connected", "printing"}
	if int(s) < 0 || int(s) >= len(names) {
		return "disconnected"
	}
	return names[s]
}

// Channel errors
var (
	// ErrDeviceUnavailable is returned by Print when no connection is up.
	ErrDeviceUnavailable = errors.New("printer: device unavailable")
	// ErrBusy is returned when a connect or print overlaps an in-flight one.
	// A second print is rejected, never queued: the caller retries explicitly.
	ErrBusy = errors.New("printer: operation already in progress")
	// ErrDeviceLost is returned for a print cut short by a disconnect.
	ErrDeviceLost = errors.New("printer: device lost")
	// ErrWriteFailed wraps transport write errors.
	ErrWriteFailed = errors.New("printer: write failed")
)

// Channel owns the connection lifecycle to one line printer and serializes
// all traffic over a single device handle:
//
//	Disconnected -> Connecting -> Connected -> (Printing -> Connected) -> Disconnected
//
// Connecting happens only on an explicit request (wireless pairing needs a
// user gesture) and never retries on its own. Any connect or print failure,
// including a timeout, resolves the machine back to Disconnected rather than
// leaving it wedged in Connecting or Printing. Printing is a side effect of
// an already-durable sale; a failure here never touches the transaction.
type Channel struct {
	mu        sync.Mutex
	state     State
	lastErr   error
	transport Transport

	connectTimeout time.Duration
	printTimeout   time.Duration
}

// NewChannel creates a channel over the given transport
func NewChannel(t Transport) *Channel {
	return &Channel{
		transport:      t,
		state:          StateDisconnected,
		connectTimeout: 10 * time.Second,
		printTimeout:   15 * time.Second,
	}
}

// State returns the current connection state
func (c *Channel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastError returns the most recent connect/print failure, if any
func (c *Channel) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Connect opens the device connection. It must be triggered by an explicit
// user action; there is no automatic retry. On failure the state is back at
// Disconnected and the error is reported.
func (c *Channel) Connect(ctx context.Context) error {
	c.mu.Lock()
	switch c.state {
	case StateConnected:
		c.mu.Unlock()
		return nil
	case StateConnecting, StatePrinting:
		c.mu.Unlock()
		return ErrBusy
	}
	c.state = StateConnecting
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.connectTimeout)
	defer cancel()
	err := c.transport.Connect(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateConnecting {
		// Disconnect raced the dial; drop the handle we just opened.
		_ = c.transport.Close()
		return ErrDeviceLost
	}
	if err != nil {
		c.state = StateDisconnected
		c.lastErr = err
		return err
	}
	c.state = StateConnected
	c.lastErr = nil
	return nil
}

// Print encodes the rendered lines and streams them to the device. Valid
// only from Connected: while a print is in flight a second request is
// rejected with ErrBusy. On success the state returns to Connected; on any
// failure the connection is torn down to Disconnected.
func (c *Channel) Print(ctx context.Context, lines []string) error {
	c.mu.Lock()
	switch c.state {
	case StateDisconnected, StateConnecting:
		c.mu.Unlock()
		return ErrDeviceUnavailable
	case StatePrinting:
		c.mu.Unlock()
		return ErrBusy
	}
	c.state = StatePrinting
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, c.printTimeout)
	defer cancel()
	err := c.transport.Send(ctx, EncodeLines(lines))

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StatePrinting {
		// Disconnected mid-print: surface a terminal error, never drop it.
		c.lastErr = ErrDeviceLost
		return ErrDeviceLost
	}
	if err != nil {
		c.state = StateDisconnected
		_ = c.transport.Close()
		c.lastErr = fmt.Errorf("%w: %v", ErrWriteFailed, err)
		return c.lastErr
	}
	c.state = StateConnected
	return nil
}

// Disconnect forces the machine to Disconnected from any state and releases
// the device handle. Also used for device-lost events.
func (c *Channel) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == StateDisconnected {
		return nil
	}
	c.state = StateDisconnected
	return c.transport.Close()
}
