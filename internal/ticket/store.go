package ticket

import "sort"

// Store holds every ticket of the running session, keyed by id. Tickets live
// for the lifetime of the process; there is no persistence. The store does no
// locking of its own: all access is serialized by the Service engine lock.
type Store struct {
	tickets map[string]*Ticket
}

func NewStore() *Store {
	return &Store{tickets: make(map[string]*Ticket)}
}

func (s *Store) Save(t *Ticket) {
	s.tickets[t.ID] = t
}

func (s *Store) Get(id string) (*Ticket, error) {
	t, ok := s.tickets[id]
	if !ok {
		return nil, ErrTicketNotFound
	}
	return t, nil
}

// FindOpenByTable returns the open ticket for a table, if one exists.
func (s *Store) FindOpenByTable(tableID string) (*Ticket, bool) {
	for _, t := range s.tickets {
		if t.TableID == tableID && t.Status == StatusOpen {
			return t, true
		}
	}
	return nil, false
}

// Paid returns copies of all paid tickets ordered by payment time.
func (s *Store) Paid() []Ticket {
	out := make([]Ticket, 0)
	for _, t := range s.tickets {
		if t.Status == StatusPaid {
			out = append(out, *t.clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].PaidAt.Before(*out[j].PaidAt)
	})
	return out
}
