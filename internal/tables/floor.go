package tables

import (
	"errors"
	"sync"
)

var ErrTableNotFound = errors.New("table not found")

// Floor tracks which tables are occupied. A table is occupied exactly while
// it carries an open ticket.
type Floor struct {
	mu     sync.Mutex
	order  []string
	tables map[string]*Table
}

func NewFloor(seed []Table) *Floor {
	f := &Floor{
		order:  make([]string, 0, len(seed)),
		tables: make(map[string]*Table, len(seed)),
	}
	for i := range seed {
		table := seed[i]
		f.order = append(f.order, table.ID)
		f.tables[table.ID] = &table
	}
	return f
}

func (f *Floor) List() []Table {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]Table, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.tables[id])
	}
	return out
}

func (f *Floor) Occupy(id string) error {
	return f.setStatus(id, StatusOccupied)
}

func (f *Floor) Release(id string) error {
	return f.setStatus(id, StatusAvailable)
}

func (f *Floor) setStatus(id string, status Status) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	table, ok := f.tables[id]
	if !ok {
		return ErrTableNotFound
	}
	table.Status = status
	return nil
}
