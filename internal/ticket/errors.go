package ticket

import "errors"

var (
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrTicketNotOpen        = errors.New("ticket is not open")
	ErrInvalidQuantity      = errors.New("invalid quantity")
	ErrEmptyTicket          = errors.New("ticket has no items")
	ErrInvalidPaymentMethod = errors.New("payment method must be cash or card")
)
