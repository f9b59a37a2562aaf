package tables

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	floor *Floor
}

func NewHandler(floor *Floor) *Handler {
	return &Handler{floor: floor}
}

//
// --------------------------------------------------
// GET /tables
// --------------------------------------------------
//

func (h *Handler) ListTables(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tables": h.floor.List()})
}
