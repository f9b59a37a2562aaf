package reports

import (
	"sambapos/internal/auth"
	"sambapos/internal/stock"
)

type Summary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalSales   int     `json:"total_sales"`
	AverageSale  float64 `json:"average_sale"`
}

type ItemSales struct {
	MenuItemID string  `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Revenue    float64 `json:"revenue"`
}

type CategorySales struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

type StaffSales struct {
	UserID string    `json:"user_id"`
	Name   string    `json:"name"`
	Role   auth.Role `json:"role"`
	Total  float64   `json:"total"`
}

type TaxReport struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalTax     float64 `json:"total_tax"`
	NetSales     float64 `json:"net_sales"`
}

type StockUsage struct {
	StockItemID string     `json:"stock_item_id"`
	Name        string     `json:"name"`
	Unit        stock.Unit `json:"unit"`
	Quantity    float64    `json:"quantity"`
}
