package suggest

import (
	"context"

	"sambapos/internal/ticket"
)

// Client produces upsell suggestions for the current ticket. Purely
// advisory: nothing in the order engine depends on it.
type Client interface {
	Upsell(ctx context.Context, items []ticket.TicketItem) (string, error)
}
