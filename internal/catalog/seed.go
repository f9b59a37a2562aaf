package catalog

// SeedItems is the Tribal Bistro menu. Prices are in Ksh.
// Recipe quantities are per single unit sold, in the stock item's unit.
func SeedItems() []MenuItem {
	return []MenuItem{
		{ID: "m1", Name: "Classic Burger", Price: 850, Category: "Burgers", Recipe: []RecipeItem{
			{StockItemID: "s-patty", Quantity: 1},
			{StockItemID: "s-bun", Quantity: 1},
		}},
		{ID: "m2", Name: "Cheese Burger", Price: 950, Category: "Burgers", Recipe: []RecipeItem{
			{StockItemID: "s-patty", Quantity: 1},
			{StockItemID: "s-bun", Quantity: 1},
			{StockItemID: "s-cheese", Quantity: 1},
		}},
		{ID: "m3", Name: "Bacon Burger", Price: 1050, Category: "Burgers", Recipe: []RecipeItem{
			{StockItemID: "s-patty", Quantity: 1},
			{StockItemID: "s-bun", Quantity: 1},
			{StockItemID: "s-bacon", Quantity: 30},
		}},
		{ID: "m4", Name: "Veggie Burger", Price: 750, Category: "Burgers", Recipe: []RecipeItem{
			{StockItemID: "s-veggie-patty", Quantity: 1},
			{StockItemID: "s-bun", Quantity: 1},
		}},
		{ID: "m5", Name: "Margherita Pizza", Price: 1100, Category: "Pizzas", Recipe: []RecipeItem{
			{StockItemID: "s-dough", Quantity: 1},
			{StockItemID: "s-mozzarella", Quantity: 120},
		}},
		{ID: "m6", Name: "Pepperoni Pizza", Price: 1250, Category: "Pizzas", Recipe: []RecipeItem{
			{StockItemID: "s-dough", Quantity: 1},
			{StockItemID: "s-mozzarella", Quantity: 100},
			{StockItemID: "s-pepperoni", Quantity: 60},
		}},
		{ID: "m7", Name: "BBQ Chicken Pizza", Price: 1300, Category: "Pizzas", Recipe: []RecipeItem{
			{StockItemID: "s-dough", Quantity: 1},
			{StockItemID: "s-mozzarella", Quantity: 100},
			{StockItemID: "s-chicken", Quantity: 80},
			{StockItemID: "s-bbq-sauce", Quantity: 40},
		}},
		{ID: "m8", Name: "Caesar Salad", Price: 650, Category: "Salads", Recipe: []RecipeItem{
			{StockItemID: "s-lettuce", Quantity: 100},
			{StockItemID: "s-croutons", Quantity: 30},
		}},
		{ID: "m9", Name: "Greek Salad", Price: 700, Category: "Salads", Recipe: []RecipeItem{
			{StockItemID: "s-lettuce", Quantity: 80},
			{StockItemID: "s-feta", Quantity: 50},
			{StockItemID: "s-olives", Quantity: 30},
		}},
		{ID: "m10", Name: "French Fries", Price: 350, Category: "Sides", Recipe: []RecipeItem{
			{StockItemID: "s-fries", Quantity: 150},
		}},
		{ID: "m11", Name: "Onion Rings", Price: 400, Category: "Sides", Recipe: []RecipeItem{
			{StockItemID: "s-onion", Quantity: 2},
		}},
		{ID: "m12", Name: "Coke", Price: 200, Category: "Drinks", Recipe: []RecipeItem{
			{StockItemID: "s-coke", Quantity: 1},
		}},
		{ID: "m13", Name: "Sprite", Price: 200, Category: "Drinks", Recipe: []RecipeItem{
			{StockItemID: "s-sprite", Quantity: 1},
		}},
		{ID: "m14", Name: "Iced Tea", Price: 250, Category: "Drinks", Recipe: []RecipeItem{
			{StockItemID: "s-iced-tea", Quantity: 300},
		}},
		{ID: "m15", Name: "Water", Price: 150, Category: "Drinks", Recipe: []RecipeItem{
			{StockItemID: "s-water", Quantity: 1},
		}},
		{ID: "m16", Name: "Chocolate Cake", Price: 550, Category: "Desserts", Recipe: []RecipeItem{
			{StockItemID: "s-choc-cake", Quantity: 1},
		}},
		{ID: "m17", Name: "Cheesecake", Price: 600, Category: "Desserts", Recipe: []RecipeItem{
			{StockItemID: "s-cheesecake", Quantity: 1},
		}},
	}
}
