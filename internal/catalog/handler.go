package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

//
// --------------------------------------------------
// GET /menu?category=
// --------------------------------------------------
//

func (h *Handler) ListMenu(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, gin.H{"items": h.repo.ListByCategory(category)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.repo.List()})
}

//
// --------------------------------------------------
// GET /menu/categories
// --------------------------------------------------
//

func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.repo.Categories()})
}

//
// --------------------------------------------------
// GET /menu/:id
// --------------------------------------------------
//

func (h *Handler) GetItem(c *gin.Context) {
	item, err := h.repo.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}
