package ticket

import (
	"errors"
	"net/http"

	"sambapos/internal/catalog"
	"sambapos/internal/stock"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTicketNotFound), errors.Is(err, catalog.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrTicketNotOpen), errors.Is(err, stock.ErrInsufficientStock):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

//
// --------------------------------------------------
// POST /tables/:id/ticket
// --------------------------------------------------
//

// OpenForTable returns the table's open ticket, creating one if needed.
func (h *Handler) OpenForTable(c *gin.Context) {
	userID, _ := c.Get("userID")
	uid, _ := userID.(string)

	t, err := h.service.Open(c.Param("id"), uid)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

//
// --------------------------------------------------
// GET /tickets/:id
// --------------------------------------------------
//

func (h *Handler) GetTicket(c *gin.Context) {
	t, err := h.service.Get(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

//
// --------------------------------------------------
// POST /tickets/:id/items
// --------------------------------------------------
//

func (h *Handler) AddItem(c *gin.Context) {
	var req struct {
		MenuItemID string `json:"menu_item_id" binding:"required"`
		Quantity   int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	t, err := h.service.AddItem(c.Param("id"), req.MenuItemID, req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

//
// --------------------------------------------------
// PATCH /tickets/:id/items/:menuItemID
// --------------------------------------------------
//

func (h *Handler) UpdateItemQuantity(c *gin.Context) {
	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	t, err := h.service.UpdateItemQuantity(c.Param("id"), c.Param("menuItemID"), *req.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

//
// --------------------------------------------------
// POST /tickets/:id/pay
// --------------------------------------------------
//

func (h *Handler) Pay(c *gin.Context) {
	var req struct {
		Method string `json:"method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	userID, _ := c.Get("userID")
	uid, _ := userID.(string)

	t, err := h.service.Pay(c.Param("id"), PaymentMethod(req.Method), uid)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

//
// --------------------------------------------------
// POST /tickets/:id/void
// --------------------------------------------------
//

func (h *Handler) Void(c *gin.Context) {
	// Voiding throws the whole ticket away; the client confirms before
	// calling, the server only honors an explicit confirm flag.
	var req struct {
		Confirm bool `json:"confirm"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || !req.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "void requires confirmation"})
		return
	}

	t, err := h.service.Cancel(c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}
