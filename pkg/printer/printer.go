package printer

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"
)

// Transport is the swappable adapter beneath the channel: it owns the raw
// device handle and moves bytes. Pairing gestures, control codes, and the
// physical link all live below this line; the channel's text-line contract
// never changes with the transport.
type Transport interface {
	// Connect opens the device handle. Honors ctx cancellation/deadline.
	Connect(ctx context.Context) error
	// Send writes one payload to the device. Valid only between Connect and Close.
	Send(ctx context.Context, data []byte) error
	// Close releases the device handle. Safe to call when not connected.
	Close() error
}

// --- TCP transport (wireless line printers listening on e.g. 192.168.1.50:9100) ---

type tcpTransport struct {
	address string
	mu      sync.Mutex
	conn    net.Conn
}

// NewTCPTransport creates a transport that keeps one TCP connection to the
// printer open between Connect and Close. Address should include the port,
// e.g. "192.168.1.50:9100".
func NewTCPTransport(address string) Transport {
	return &tcpTransport{address: address}
}

func (t *tcpTransport) Connect(ctx context.Context) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", t.address)
	if err != nil {
		return fmt.Errorf("printer: failed to connect to %s: %w", t.address, err)
	}
	t.mu.Lock()
	t.conn = conn
	t.mu.Unlock()
	return nil
}

func (t *tcpTransport) Send(ctx context.Context, data []byte) error {
	t.mu.Lock()
	conn := t.conn
	t.mu.Unlock()
	if conn == nil {
		return fmt.Errorf("printer: not connected to %s", t.address)
	}

	deadline := time.Now().Add(10 * time.Second)
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	_ = conn.SetWriteDeadline(deadline)

	if _, err := conn.Write(data); err != nil {
		return fmt.Errorf("printer: failed to write to %s: %w", t.address, err)
	}
	return nil
}

func (t *tcpTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	return err
}

// --- Loopback transport (no hardware; captures payloads) ---

// Loopback is a Transport that records everything sent to it. It backs the
// "none" printer configuration and tests. Failure modes can be injected for
// exercising the channel's error paths.
type Loopback struct {
	mu       sync.Mutex
	payloads [][]byte

	ConnectErr error
	SendErr    error
	SendDelay  time.Duration
}

// NewLoopback creates a loopback transport
func NewLoopback() *Loopback {
	return &Loopback{}
}

func (l *Loopback) Connect(ctx context.Context) error {
	if l.ConnectErr != nil {
		return l.ConnectErr
	}
	return ctx.Err()
}

func (l *Loopback) Send(ctx context.Context, data []byte) error {
	if l.SendDelay > 0 {
		select {
		case <-time.After(l.SendDelay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if l.SendErr != nil {
		return l.SendErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	l.mu.Lock()
	buf := make([]byte, len(data))
	copy(buf, data)
	l.payloads = append(l.payloads, buf)
	l.mu.Unlock()
	return nil
}

func (l *Loopback) Close() error {
	return nil
}

// Sent returns a copy of all captured payloads
func (l *Loopback) Sent() [][]byte {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([][]byte, len(l.payloads))
	copy(out, l.payloads)
	return out
}

// NewTransportFromConfig creates the appropriate Transport based on type.
//
//	printerType: "network" or "none"
//	address: TCP address for network printers (e.g. "192.168.1.50:9100")
func NewTransportFromConfig(printerType, address string) (Transport, error) {
	switch printerType {
	case "network":
		if address == "" {
			return nil, fmt.Errorf("printer: address is required for network printer type")
		}
		return NewTCPTransport(address), nil
	case "none", "":
		return NewLoopback(), nil
	default:
		return nil, fmt.Errorf("printer: unknown printer type %q (use network or none)", printerType)
	}
}
