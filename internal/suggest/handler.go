package suggest

import (
	"net/http"

	"sambapos/internal/ticket"

	"github.com/gin-gonic/gin"
)

// TicketReader is the slice of the order engine the handler needs.
type TicketReader interface {
	Get(id string) (*ticket.Ticket, error)
}

type Handler struct {
	client  Client
	tickets TicketReader
}

func NewHandler(client Client, tickets TicketReader) *Handler {
	return &Handler{client: client, tickets: tickets}
}

//
// --------------------------------------------------
// GET /tickets/:id/suggestions
// --------------------------------------------------
//

func (h *Handler) GetSuggestions(c *gin.Context) {
	t, err := h.tickets.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	if len(t.Items) == 0 {
		c.JSON(http.StatusOK, gin.H{"suggestion": "Add something to the order first."})
		return
	}

	suggestion, err := h.client.Upsell(c.Request.Context(), t.Items)
	if err != nil {
		// Suggestions are advisory; degrade instead of surfacing the failure.
		c.JSON(http.StatusOK, gin.H{"suggestion": "No suggestions right now."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}
