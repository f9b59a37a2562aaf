package suggest

import (
	"fmt"
	"strings"

	"sambapos/internal/ticket"
)

func BuildUpsellPrompt(items []ticket.TicketItem) string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, fmt.Sprintf("%dx %s", item.Quantity, item.MenuItem.Name))
	}

	return `A customer has the following items in their order: ` + strings.Join(names, ", ") + `.
Based on this order, provide one or two brief, friendly upselling suggestions.
For example, suggest a drink that pairs well, a side dish, or a dessert.
Keep the response concise and sound like a helpful server. Do not use markdown.
Example response: "How about some crispy onion rings to go with that?" or "A slice of our rich chocolate cake would be a perfect finish!"`
}
