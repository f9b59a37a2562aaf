package stock

import (
	"errors"
	"fmt"
	"sync"

	"sambapos/internal/catalog"

	"github.com/google/uuid"
)

var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrItemNotFound      = errors.New("stock item not found")
	ErrInvalidQuantity   = errors.New("quantity must be non-negative")
	ErrInvalidUnit       = errors.New("unit must be one of pcs, g, ml")
)

// Ledger is the in-memory stock quantity store. Order operations deduct and
// restore through it; procurement overwrites through it. Every method that
// mutates is all-or-nothing under the ledger lock.
type Ledger struct {
	mu    sync.Mutex
	order []string
	items map[string]*StockItem
}

func NewLedger(seed []StockItem) *Ledger {
	l := &Ledger{
		order: make([]string, 0, len(seed)),
		items: make(map[string]*StockItem, len(seed)),
	}
	for i := range seed {
		item := seed[i]
		l.order = append(l.order, item.ID)
		l.items[item.ID] = &item
	}
	return l
}

// List returns a snapshot of the ledger in seed/insertion order.
func (l *Ledger) List() []StockItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]StockItem, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, *l.items[id])
	}
	return out
}

func (l *Ledger) Get(id string) (*StockItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

//
// --------------------------------------------------
// Order operations
// --------------------------------------------------
//

// CheckAvailability reports whether every recipe line, scaled by qty, is
// covered by current stock. An unknown stock item fails closed. No mutation.
func (l *Ledger) CheckAvailability(recipe []catalog.RecipeItem, qty int) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.checkLocked(recipe, qty)
}

// Deduct consumes recipe quantities scaled by qty. The whole deduction is
// re-validated under the lock first, so either every line is deducted or
// nothing is.
func (l *Ledger) Deduct(recipe []catalog.RecipeItem, qty int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.checkLocked(recipe, qty); err != nil {
		return err
	}
	for _, line := range recipe {
		l.items[line.StockItemID].Quantity -= line.Quantity * float64(qty)
	}
	return nil
}

// Restore returns recipe quantities scaled by qty to the ledger, the inverse
// of Deduct. Unknown stock items are skipped: the item was deducted when it
// existed, and procurement cannot delete items, so this only guards seed bugs.
func (l *Ledger) Restore(recipe []catalog.RecipeItem, qty int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, line := range recipe {
		if item, ok := l.items[line.StockItemID]; ok {
			item.Quantity += line.Quantity * float64(qty)
		}
	}
}

func (l *Ledger) checkLocked(recipe []catalog.RecipeItem, qty int) error {
	for _, line := range recipe {
		item, ok := l.items[line.StockItemID]
		if !ok {
			return fmt.Errorf("%w: unknown stock item %s", ErrInsufficientStock, line.StockItemID)
		}
		need := line.Quantity * float64(qty)
		if item.Quantity < need {
			return fmt.Errorf("%w for %s (need %.2f %s, have %.2f)",
				ErrInsufficientStock, item.Name, need, item.Unit, item.Quantity)
		}
	}
	return nil
}

//
// --------------------------------------------------
// Procurement operations
// --------------------------------------------------
//

// Adjust overwrites a stock item's quantity with an absolute value.
func (l *Ledger) Adjust(id string, quantity float64) (*StockItem, error) {
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	item, ok := l.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	item.Quantity = quantity
	copied := *item
	return &copied, nil
}

// Add inserts a new stock item with a generated id.
func (l *Ledger) Add(name string, quantity float64, unit Unit) (*StockItem, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if !ValidUnit(unit) {
		return nil, ErrInvalidUnit
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	item := &StockItem{
		ID:       uuid.New().String(),
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
	}
	l.order = append(l.order, item.ID)
	l.items[item.ID] = item
	copied := *item
	return &copied, nil
}
