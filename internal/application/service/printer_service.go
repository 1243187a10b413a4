package service

import (
	"context"

	"github.com/sangkips/salespoint-api/pkg/printer"
)

// PrinterService exposes the printer channel's lifecycle to the HTTP layer
type PrinterService struct {
	channel *printer.Channel
}

// NewPrinterService creates a new printer service
func NewPrinterService(channel *printer.Channel) *PrinterService {
	return &PrinterService{channel: channel}
}

// PrinterStatus is the observable state of the device channel
type PrinterStatus struct {
	State     string `json:"state"`
	LastError string `json:"last_error,omitempty"`
}

// Status reports the channel's current state and the last device error seen
func (s *PrinterService) Status() PrinterStatus {
	status := PrinterStatus{State: s.channel.State().String()}
	if err := s.channel.LastError(); err != nil {
		status.LastError = err.Error()
	}
	return status
}

// Connect opens the device channel. Connecting is always explicit; the
// channel never retries on its own after a failure or a disconnect.
func (s *PrinterService) Connect(ctx context.Context) (PrinterStatus, error) {
	err := s.channel.Connect(ctx)
	return s.Status(), err
}

// Disconnect tears the device channel down from whatever state it is in
func (s *PrinterService) Disconnect() (PrinterStatus, error) {
	err := s.channel.Disconnect()
	return s.Status(), err
}

// TestPrint sends a short fixed page to verify the device end to end
func (s *PrinterService) TestPrint(ctx context.Context) error {
	lines := []string{
		"*** PRINTER TEST ***",
		"",
		"If you can read this, the",
		"printer channel is working.",
	}
	return s.channel.Print(ctx, lines)
}
