package stock

// SeedItems is the opening stock ledger for the Tribal Bistro kitchen.
func SeedItems() []StockItem {
	return []StockItem{
		{ID: "s-patty", Name: "Beef Patty", Quantity: 50, Unit: UnitPieces},
		{ID: "s-veggie-patty", Name: "Veggie Patty", Quantity: 30, Unit: UnitPieces},
		{ID: "s-bun", Name: "Burger Bun", Quantity: 100, Unit: UnitPieces},
		{ID: "s-cheese", Name: "Cheese Slice", Quantity: 80, Unit: UnitPieces},
		{ID: "s-bacon", Name: "Bacon", Quantity: 2000, Unit: UnitGrams},
		{ID: "s-dough", Name: "Pizza Dough", Quantity: 40, Unit: UnitPieces},
		{ID: "s-mozzarella", Name: "Mozzarella", Quantity: 5000, Unit: UnitGrams},
		{ID: "s-pepperoni", Name: "Pepperoni", Quantity: 1500, Unit: UnitGrams},
		{ID: "s-chicken", Name: "Chicken Breast", Quantity: 3000, Unit: UnitGrams},
		{ID: "s-bbq-sauce", Name: "BBQ Sauce", Quantity: 2000, Unit: UnitMilliliters},
		{ID: "s-lettuce", Name: "Lettuce", Quantity: 4000, Unit: UnitGrams},
		{ID: "s-croutons", Name: "Croutons", Quantity: 1000, Unit: UnitGrams},
		{ID: "s-feta", Name: "Feta", Quantity: 1200, Unit: UnitGrams},
		{ID: "s-olives", Name: "Olives", Quantity: 800, Unit: UnitGrams},
		{ID: "s-fries", Name: "Potato Fries", Quantity: 10000, Unit: UnitGrams},
		{ID: "s-onion", Name: "Onion", Quantity: 60, Unit: UnitPieces},
		{ID: "s-coke", Name: "Coke Can", Quantity: 120, Unit: UnitPieces},
		{ID: "s-sprite", Name: "Sprite Can", Quantity: 120, Unit: UnitPieces},
		{ID: "s-iced-tea", Name: "Iced Tea Brew", Quantity: 9000, Unit: UnitMilliliters},
		{ID: "s-water", Name: "Water Bottle", Quantity: 150, Unit: UnitPieces},
		{ID: "s-choc-cake", Name: "Chocolate Cake Slice", Quantity: 24, Unit: UnitPieces},
		{ID: "s-cheesecake", Name: "Cheesecake Slice", Quantity: 24, Unit: UnitPieces},
	}
}
