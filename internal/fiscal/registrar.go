package fiscal

import (
	"context"
	"log"
	"time"

	"sambapos/internal/ticket"
)

// Stamper records a registration result on a paid ticket.
type Stamper interface {
	StampFiscal(ticketID, invoiceNumber, verificationCode, qrCodeData string) error
}

// Registrar queues paid tickets for background registration. Register never
// blocks the payment path: a full queue drops the ticket with a log line and
// the ticket stays valid and paid either way.
type Registrar struct {
	client  SalesSubmitter
	stamper Stamper
	queue   chan ticket.Ticket
}

func NewRegistrar(client SalesSubmitter, stamper Stamper) *Registrar {
	return &Registrar{
		client:  client,
		stamper: stamper,
		queue:   make(chan ticket.Ticket, 64),
	}
}

func (r *Registrar) Register(t ticket.Ticket) {
	select {
	case r.queue <- t:
	default:
		log.Printf("fiscal queue full, skipping registration for ticket %s", t.ID)
	}
}

// Run consumes the queue until ctx is cancelled. Started from main as a
// goroutine.
func (r *Registrar) Run(ctx context.Context) {
	log.Println("fiscal registrar started")
	for {
		select {
		case <-ctx.Done():
			return
		case t := <-r.queue:
			r.register(ctx, t)
		}
	}
}

func (r *Registrar) register(ctx context.Context, t ticket.Ticket) {
	callCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	data, err := r.client.SubmitSale(callCtx, t)
	if err != nil {
		log.Printf("fiscal registration failed for ticket %s: %v", t.ID, err)
		return
	}

	if err := r.stamper.StampFiscal(t.ID, data.InvoiceNumber, data.VerificationCode, data.QRCodeData); err != nil {
		log.Printf("failed to stamp fiscal data on ticket %s: %v", t.ID, err)
	}
}
