package receipt

import (
	"fmt"
	"strings"
	"time"

	"sambapos/internal/ticket"
)

const width = 40

// Render formats a finalized ticket as a till-roll style plain-text receipt.
// The ticket is read-only input; rendering happens only after payment commits.
func Render(t ticket.Ticket) string {
	var b strings.Builder

	center(&b, "Tribal Bistro")
	center(&b, "Cafe & Restaurant")
	center(&b, "Nairobi, Kenya")
	rule(&b)

	b.WriteString(fmt.Sprintf("Receipt #: %s\n", t.ID))
	paidAt := time.Now()
	if t.PaidAt != nil {
		paidAt = *t.PaidAt
	}
	b.WriteString(fmt.Sprintf("Date: %s\n", paidAt.Format("02 Jan 2006 15:04")))
	rule(&b)

	for _, line := range t.Items {
		name := line.MenuItem.Name
		amount := fmt.Sprintf("%d x %.2f", line.Quantity, line.MenuItem.Price)
		total := fmt.Sprintf("%.2f", line.MenuItem.Price*float64(line.Quantity))
		b.WriteString(name + "\n")
		b.WriteString(pad(amount, total) + "\n")
	}
	rule(&b)

	b.WriteString(pad("Subtotal", fmt.Sprintf("Ksh %.2f", t.Subtotal)) + "\n")
	b.WriteString(pad("VAT", fmt.Sprintf("Ksh %.2f", t.Tax)) + "\n")
	b.WriteString(pad("TOTAL", fmt.Sprintf("Ksh %.2f", t.Total)) + "\n")
	if t.PaymentMethod != "" {
		b.WriteString(pad("Paid via", string(t.PaymentMethod)) + "\n")
	}

	if t.EtimsInvoiceNumber != "" {
		rule(&b)
		center(&b, "Scan to verify with KRA")
		b.WriteString(fmt.Sprintf("Inv No: %s\n", t.EtimsInvoiceNumber))
		b.WriteString(fmt.Sprintf("Code: %s\n", t.VerificationCode))
		b.WriteString(t.QRCodeData + "\n")
	}

	rule(&b)
	center(&b, "Thank you, karibu tena!")

	return b.String()
}

func center(b *strings.Builder, s string) {
	if len(s) >= width {
		b.WriteString(s + "\n")
		return
	}
	b.WriteString(strings.Repeat(" ", (width-len(s))/2) + s + "\n")
}

func rule(b *strings.Builder) {
	b.WriteString(strings.Repeat("-", width) + "\n")
}

func pad(left, right string) string {
	gap := width - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
