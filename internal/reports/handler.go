package reports

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Summary())
}

func (h *Handler) TopItems(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"items": h.service.TopItems(5)})
}

func (h *Handler) SalesByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.service.SalesByCategory()})
}

func (h *Handler) SalesByStaff(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"staff": h.service.SalesByStaff()})
}

func (h *Handler) Tax(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Tax())
}

func (h *Handler) StockUsage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"usage": h.service.StockUsage()})
}

func (h *Handler) Recent(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tickets": h.service.Recent(5)})
}
