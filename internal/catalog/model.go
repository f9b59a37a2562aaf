package catalog

// RecipeItem is one stock ingredient consumed per unit sold.
type RecipeItem struct {
	StockItemID string  `json:"stock_item_id"`
	Quantity    float64 `json:"quantity"`
}

// MenuItem is an immutable catalog entry.
type MenuItem struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Price    float64      `json:"price"`
	Category string       `json:"category"`
	Recipe   []RecipeItem `json:"recipe"`
}
