package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sambapos/internal/auth"
	"sambapos/internal/catalog"
	"sambapos/internal/middleware"
	"sambapos/internal/receipt"
	"sambapos/internal/reports"
	"sambapos/internal/stock"
	"sambapos/internal/suggest"
	"sambapos/internal/tables"
	"sambapos/internal/ticket"
)

// Handlers carries every feature handler the router mounts.
type Handlers struct {
	Auth    *auth.Handler
	Catalog *catalog.Handler
	Tables  *tables.Handler
	Tickets *ticket.Handler
	Stock   *stock.Handler
	Reports *reports.Handler
	Suggest *suggest.Handler
	Receipt *receipt.Handler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth/login", h.Auth.Login)

	// Everything past this point requires a valid token.
	api := r.Group("/")
	api.Use(middleware.AuthMiddleware())

	api.GET("/menu", h.Catalog.ListMenu)
	api.GET("/menu/categories", h.Catalog.ListCategories)
	api.GET("/menu/:id", h.Catalog.GetItem)

	api.GET("/tables", h.Tables.ListTables)
	api.POST("/tables/:id/ticket", h.Tickets.OpenForTable)

	tickets := api.Group("/tickets")
	tickets.GET("/:id", h.Tickets.GetTicket)
	tickets.POST("/:id/items", h.Tickets.AddItem)
	tickets.PATCH("/:id/items/:menuItemID", h.Tickets.UpdateItemQuantity)
	tickets.POST("/:id/pay",
		middleware.RequireRole(auth.RoleCashier, auth.RoleManager, auth.RoleAdmin),
		h.Tickets.Pay)
	tickets.POST("/:id/void",
		middleware.RequireRole(auth.RoleManager, auth.RoleAdmin),
		h.Tickets.Void)
	tickets.GET("/:id/suggestions", h.Suggest.GetSuggestions)
	tickets.GET("/:id/receipt", h.Receipt.GetReceipt)

	procurement := api.Group("/stock")
	procurement.Use(middleware.RequireRole(auth.RoleProcurement, auth.RoleManager, auth.RoleAdmin))
	procurement.GET("", h.Stock.ListStock)
	procurement.PUT("/:id", h.Stock.AdjustStock)
	procurement.POST("", h.Stock.AddStockItem)

	dashboards := api.Group("/reports")
	dashboards.Use(middleware.RequireRole(auth.RoleManager, auth.RoleAccountant, auth.RoleDirector, auth.RoleAdmin))
	dashboards.GET("/summary", h.Reports.Summary)
	dashboards.GET("/top-items", h.Reports.TopItems)
	dashboards.GET("/sales-by-category", h.Reports.SalesByCategory)
	dashboards.GET("/sales-by-staff", h.Reports.SalesByStaff)
	dashboards.GET("/tax", h.Reports.Tax)
	dashboards.GET("/stock-usage", h.Reports.StockUsage)
	dashboards.GET("/recent", h.Reports.Recent)

	return r
}
