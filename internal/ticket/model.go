package ticket

import (
	"time"

	"sambapos/internal/catalog"
)

type Status string

const (
	StatusOpen Status = "open"
	StatusPaid Status = "paid"
	StatusVoid Status = "void"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	return m == PaymentCash || m == PaymentCard
}

// TicketItem is one menu line on a ticket. The MenuItem is a snapshot of the
// catalog entry at add time.
type TicketItem struct {
	MenuItem catalog.MenuItem `json:"menu_item"`
	Quantity int              `json:"quantity"`
}

// Ticket is a customer order aggregate. Subtotal, Tax and Total are derived
// from Items and recomputed on every mutation, never stored independently.
type Ticket struct {
	ID       string       `json:"id"`
	TableID  string       `json:"table_id"`
	Items    []TicketItem `json:"items"`
	Subtotal float64      `json:"subtotal"`
	Tax      float64      `json:"tax"`
	Total    float64      `json:"total"`
	Status   Status       `json:"status"`

	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
	UserID        string        `json:"user_id,omitempty"`

	// Fiscal registration fields, stamped asynchronously after payment.
	EtimsInvoiceNumber string `json:"etims_invoice_number,omitempty"`
	VerificationCode   string `json:"verification_code,omitempty"`
	QRCodeData         string `json:"qr_code_data,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// item returns the line for a menu item id, or nil.
func (t *Ticket) item(menuItemID string) *TicketItem {
	for i := range t.Items {
		if t.Items[i].MenuItem.ID == menuItemID {
			return &t.Items[i]
		}
	}
	return nil
}

func (t *Ticket) removeItem(menuItemID string) {
	for i := range t.Items {
		if t.Items[i].MenuItem.ID == menuItemID {
			t.Items = append(t.Items[:i], t.Items[i+1:]...)
			return
		}
	}
}

// clone returns a deep enough copy for handing outside the engine lock:
// the items slice is copied, menu item snapshots are immutable.
func (t *Ticket) clone() *Ticket {
	copied := *t
	copied.Items = make([]TicketItem, len(t.Items))
	copy(copied.Items, t.Items)
	if t.PaidAt != nil {
		paidAt := *t.PaidAt
		copied.PaidAt = &paidAt
	}
	return &copied
}
