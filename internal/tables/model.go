package tables

type Status string

const (
	StatusAvailable Status = "available"
	StatusOccupied  Status = "occupied"
)

type Table struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status Status `json:"status"`
}

// SeedTables is the Tribal Bistro floor plan.
func SeedTables() []Table {
	return []Table{
		{ID: "t1", Name: "Table 1", Status: StatusAvailable},
		{ID: "t2", Name: "Table 2", Status: StatusAvailable},
		{ID: "t3", Name: "Table 3", Status: StatusAvailable},
		{ID: "t4", Name: "Table 4", Status: StatusAvailable},
		{ID: "t5", Name: "Table 5", Status: StatusAvailable},
		{ID: "t6", Name: "Table 6", Status: StatusAvailable},
		{ID: "t7", Name: "Table 7", Status: StatusAvailable},
		{ID: "t8", Name: "Table 8", Status: StatusAvailable},
		{ID: "t9", Name: "Patio 1", Status: StatusAvailable},
		{ID: "t10", Name: "Patio 2", Status: StatusAvailable},
		{ID: "t11", Name: "Bar 1", Status: StatusAvailable},
		{ID: "t12", Name: "Bar 2", Status: StatusAvailable},
	}
}
