package stock

// Unit is the measurement unit for a stock item.
type Unit string

const (
	UnitPieces      Unit = "pcs"
	UnitGrams       Unit = "g"
	UnitMilliliters Unit = "ml"
)

// ValidUnit reports whether u is one of the known units.
func ValidUnit(u Unit) bool {
	switch u {
	case UnitPieces, UnitGrams, UnitMilliliters:
		return true
	}
	return false
}

// StockItem is one line of the stock ledger. Quantity never goes negative.
type StockItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     Unit    `json:"unit"`
}
