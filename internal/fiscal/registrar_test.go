package fiscal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"sambapos/internal/ticket"
)

type fakeSubmitter struct {
	err error
}

func (f *fakeSubmitter) SubmitSale(ctx context.Context, t ticket.Ticket) (*ValidationData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &ValidationData{
		InvoiceNumber:    "ETIMS-000001-1234",
		VerificationCode: "ABC123",
		QRCodeData:       "https://etims.kra.go.ke/verify?inv=ETIMS-000001-1234&code=ABC123",
	}, nil
}

type recordingStamper struct {
	mu      sync.Mutex
	stamped map[string]string
}

func newRecordingStamper() *recordingStamper {
	return &recordingStamper{stamped: make(map[string]string)}
}

func (r *recordingStamper) StampFiscal(ticketID, invoiceNumber, verificationCode, qrCodeData string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stamped[ticketID] = invoiceNumber
	return nil
}

func (r *recordingStamper) get(ticketID string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.stamped[ticketID]
	return inv, ok
}

func waitFor(t *testing.T, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestRegistrar_StampsOnSuccess(t *testing.T) {
	stamper := newRecordingStamper()
	registrar := NewRegistrar(&fakeSubmitter{}, stamper)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go registrar.Run(ctx)

	registrar.Register(ticket.Ticket{ID: "T-1", Status: ticket.StatusPaid})

	if !waitFor(t, func() bool { _, ok := stamper.get("T-1"); return ok }) {
		t.Fatal("ticket was never stamped")
	}
	if inv, _ := stamper.get("T-1"); inv != "ETIMS-000001-1234" {
		t.Errorf("unexpected invoice number: %s", inv)
	}
}

func TestRegistrar_FailureLeavesTicketUnstamped(t *testing.T) {
	stamper := newRecordingStamper()
	registrar := NewRegistrar(&fakeSubmitter{err: errors.New("etims down")}, stamper)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go registrar.Run(ctx)

	registrar.Register(ticket.Ticket{ID: "T-2", Status: ticket.StatusPaid})

	// Give the worker a moment; the failure must be swallowed, not stamped.
	time.Sleep(100 * time.Millisecond)
	if _, ok := stamper.get("T-2"); ok {
		t.Fatal("failed registration must not stamp the ticket")
	}
}

func TestRegister_NeverBlocks(t *testing.T) {
	// No worker running: fill the queue past its buffer and make sure the
	// payment path would not have stalled.
	registrar := NewRegistrar(&fakeSubmitter{}, newRecordingStamper())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			registrar.Register(ticket.Ticket{ID: "T-x"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Register blocked the caller")
	}
}
