package receipt

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sambapos/internal/ticket"
)

// --------------------------------------------------
// HTTP Handler
// --------------------------------------------------

type Handler struct {
	engine *ticket.Service
}

func NewHandler(engine *ticket.Service) *Handler {
	return &Handler{engine: engine}
}

// GetReceipt handles GET /tickets/:id/receipt.
// Only paid tickets carry a printable receipt.
func (h *Handler) GetReceipt(c *gin.Context) {
	t, err := h.engine.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, ticket.ErrTicketNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if t.Status != ticket.StatusPaid {
		c.JSON(http.StatusConflict, gin.H{"error": "ticket has not been paid"})
		return
	}

	c.String(http.StatusOK, Render(*t))
}
