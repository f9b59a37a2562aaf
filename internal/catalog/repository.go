package catalog

import "errors"

var ErrItemNotFound = errors.New("menu item not found")

// Repository is the read-only catalog contract.
// The menu is seed data for the lifetime of the process; nothing mutates it.
type Repository interface {
	GetByID(id string) (*MenuItem, error)
	List() []MenuItem
	ListByCategory(category string) []MenuItem
	Categories() []string
}

type InMemoryRepository struct {
	order []string
	items map[string]MenuItem
}

func NewInMemoryRepository(items []MenuItem) *InMemoryRepository {
	r := &InMemoryRepository{
		order: make([]string, 0, len(items)),
		items: make(map[string]MenuItem, len(items)),
	}
	for _, item := range items {
		r.order = append(r.order, item.ID)
		r.items[item.ID] = item
	}
	return r
}

func (r *InMemoryRepository) GetByID(id string) (*MenuItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	return &item, nil
}

func (r *InMemoryRepository) List() []MenuItem {
	out := make([]MenuItem, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out
}

func (r *InMemoryRepository) ListByCategory(category string) []MenuItem {
	out := make([]MenuItem, 0)
	for _, id := range r.order {
		if item := r.items[id]; item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Categories returns category names in menu order, deduplicated.
func (r *InMemoryRepository) Categories() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, id := range r.order {
		cat := r.items[id].Category
		if !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}
	return out
}
