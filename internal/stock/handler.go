package stock

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the procurement endpoints over the ledger.
type Handler struct {
	ledger *Ledger
}

func NewHandler(ledger *Ledger) *Handler {
	return &Handler{ledger: ledger}
}

//
// --------------------------------------------------
// GET /stock
// --------------------------------------------------
//

func (h *Handler) ListStock(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.ledger.List()})
}

//
// --------------------------------------------------
// PUT /stock/:id
// --------------------------------------------------
//

func (h *Handler) AdjustStock(c *gin.Context) {
	var req struct {
		Quantity *float64 `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.ledger.Adjust(c.Param("id"), *req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

//
// --------------------------------------------------
// POST /stock
// --------------------------------------------------
//

func (h *Handler) AddStockItem(c *gin.Context) {
	var req struct {
		Name     string   `json:"name" binding:"required"`
		Quantity *float64 `json:"quantity" binding:"required"`
		Unit     string   `json:"unit" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.ledger.Add(req.Name, *req.Quantity, Unit(req.Unit))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}
