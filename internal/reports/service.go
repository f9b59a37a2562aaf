package reports

import (
	"sort"

	"sambapos/internal/auth"
	"sambapos/internal/stock"
	"sambapos/internal/ticket"
)

// TicketSource supplies the paid tickets all reports aggregate over.
type TicketSource interface {
	Paid() []ticket.Ticket
}

// UserDirectory resolves staff ids to users for the per-staff report.
type UserDirectory interface {
	GetUser(id string) (*auth.User, error)
}

// StockDirectory resolves stock ids to names and units for the usage report.
type StockDirectory interface {
	Get(id string) (*stock.StockItem, error)
}

// Service computes read-only aggregations over paid tickets. Nothing here
// mutates engine state.
type Service struct {
	tickets TicketSource
	users   UserDirectory
	stock   StockDirectory
}

func NewService(tickets TicketSource, users UserDirectory, stockDir StockDirectory) *Service {
	return &Service{tickets: tickets, users: users, stock: stockDir}
}

func (s *Service) Summary() Summary {
	paid := s.tickets.Paid()

	total := 0.0
	for _, t := range paid {
		total += t.Total
	}

	avg := 0.0
	if len(paid) > 0 {
		avg = total / float64(len(paid))
	}

	return Summary{
		TotalRevenue: total,
		TotalSales:   len(paid),
		AverageSale:  avg,
	}
}

// TopItems returns the best sellers by quantity sold, capped at limit.
func (s *Service) TopItems(limit int) []ItemSales {
	byItem := make(map[string]*ItemSales)
	order := make([]string, 0)

	for _, t := range s.tickets.Paid() {
		for _, line := range t.Items {
			entry, ok := byItem[line.MenuItem.ID]
			if !ok {
				entry = &ItemSales{MenuItemID: line.MenuItem.ID, Name: line.MenuItem.Name}
				byItem[line.MenuItem.ID] = entry
				order = append(order, line.MenuItem.ID)
			}
			entry.Quantity += line.Quantity
			entry.Revenue += float64(line.Quantity) * line.MenuItem.Price
		}
	}

	out := make([]ItemSales, 0, len(order))
	for _, id := range order {
		out = append(out, *byItem[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *Service) SalesByCategory() []CategorySales {
	byCategory := make(map[string]float64)
	order := make([]string, 0)

	for _, t := range s.tickets.Paid() {
		for _, line := range t.Items {
			cat := line.MenuItem.Category
			if _, ok := byCategory[cat]; !ok {
				order = append(order, cat)
			}
			byCategory[cat] += float64(line.Quantity) * line.MenuItem.Price
		}
	}

	out := make([]CategorySales, 0, len(order))
	for _, cat := range order {
		out = append(out, CategorySales{Category: cat, Revenue: byCategory[cat]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	return out
}

// SalesByStaff totals revenue per waiter or cashier. Tickets stamped with
// other roles (or unknown users) are left out, matching the floor-staff
// leaderboard this feeds.
func (s *Service) SalesByStaff() []StaffSales {
	byUser := make(map[string]*StaffSales)
	order := make([]string, 0)

	for _, t := range s.tickets.Paid() {
		if t.UserID == "" {
			continue
		}
		entry, ok := byUser[t.UserID]
		if !ok {
			user, err := s.users.GetUser(t.UserID)
			if err != nil {
				continue
			}
			if user.Role != auth.RoleWaiter && user.Role != auth.RoleCashier {
				continue
			}
			entry = &StaffSales{UserID: user.ID, Name: user.Name, Role: user.Role}
			byUser[t.UserID] = entry
			order = append(order, t.UserID)
		}
		entry.Total += t.Total
	}

	out := make([]StaffSales, 0, len(order))
	for _, id := range order {
		out = append(out, *byUser[id])
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	return out
}

func (s *Service) Tax() TaxReport {
	report := TaxReport{}
	for _, t := range s.tickets.Paid() {
		report.TotalRevenue += t.Total
		report.TotalTax += t.Tax
	}
	report.NetSales = report.TotalRevenue - report.TotalTax
	return report
}

// StockUsage totals recipe consumption across paid tickets per stock item.
func (s *Service) StockUsage() []StockUsage {
	byStock := make(map[string]*StockUsage)
	order := make([]string, 0)

	for _, t := range s.tickets.Paid() {
		for _, line := range t.Items {
			for _, ingredient := range line.MenuItem.Recipe {
				entry, ok := byStock[ingredient.StockItemID]
				if !ok {
					item, err := s.stock.Get(ingredient.StockItemID)
					if err != nil {
						continue
					}
					entry = &StockUsage{StockItemID: item.ID, Name: item.Name, Unit: item.Unit}
					byStock[ingredient.StockItemID] = entry
					order = append(order, ingredient.StockItemID)
				}
				entry.Quantity += ingredient.Quantity * float64(line.Quantity)
			}
		}
	}

	out := make([]StockUsage, 0, len(order))
	for _, id := range order {
		out = append(out, *byStock[id])
	}
	return out
}

// Recent returns the latest paid tickets, newest first, capped at limit.
func (s *Service) Recent(limit int) []ticket.Ticket {
	paid := s.tickets.Paid()

	// Paid() is oldest first.
	for i, j := 0, len(paid)-1; i < j; i, j = i+1, j-1 {
		paid[i], paid[j] = paid[j], paid[i]
	}
	if limit > 0 && len(paid) > limit {
		paid = paid[:limit]
	}
	return paid
}
