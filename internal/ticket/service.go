package ticket

import (
	"sync"
	"time"

	"sambapos/internal/catalog"

	"github.com/google/uuid"
)

// Catalog is the read-only menu lookup the engine depends on.
type Catalog interface {
	GetByID(id string) (*catalog.MenuItem, error)
}

// Ledger is the stock deduction contract. Deduct fails without mutating when
// any recipe line cannot be covered.
type Ledger interface {
	CheckAvailability(recipe []catalog.RecipeItem, qty int) error
	Deduct(recipe []catalog.RecipeItem, qty int) error
	Restore(recipe []catalog.RecipeItem, qty int)
}

// Floor marks tables occupied while they carry an open ticket.
type Floor interface {
	Occupy(tableID string) error
	Release(tableID string) error
}

// Registrar receives paid tickets for fiscal registration. Register must not
// block: a slow or failing registrar never stalls a committed payment.
type Registrar interface {
	Register(t Ticket)
}

// Service is the order engine. Every state transition over tickets and the
// stock ledger runs to completion under one lock, so a logical operation
// commits atomically or not at all.
type Service struct {
	mu        sync.Mutex
	store     *Store
	catalog   Catalog
	ledger    Ledger
	floor     Floor
	registrar Registrar
	taxRate   float64
}

func NewService(store *Store, cat Catalog, ledger Ledger, floor Floor, registrar Registrar, taxRate float64) *Service {
	return &Service{
		store:     store,
		catalog:   cat,
		ledger:    ledger,
		floor:     floor,
		registrar: registrar,
		taxRate:   taxRate,
	}
}

//
// --------------------------------------------------
// Open / read
// --------------------------------------------------
//

// Open returns the open ticket for a table, creating an empty one (and
// marking the table occupied) when none exists.
func (s *Service) Open(tableID, userID string) (*Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.store.FindOpenByTable(tableID); ok {
		return existing.clone(), nil
	}

	if err := s.floor.Occupy(tableID); err != nil {
		return nil, err
	}

	t := &Ticket{
		ID:        "T-" + uuid.New().String(),
		TableID:   tableID,
		Items:     []TicketItem{},
		Status:    StatusOpen,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	s.store.Save(t)
	return t.clone(), nil
}

func (s *Service) Get(id string) (*Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	return t.clone(), nil
}

// Paid returns all paid tickets, oldest first. Used by reports and receipts.
func (s *Service) Paid() []Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Paid()
}

//
// --------------------------------------------------
// Item mutations
// --------------------------------------------------
//

// AddItem adds delta units of a menu item to an open ticket. Stock is checked
// for the delta before anything mutates; on failure ticket and ledger are
// left untouched.
func (s *Service) AddItem(ticketID, menuItemID string, delta int) (*Ticket, error) {
	if delta <= 0 {
		return nil, ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.openTicket(ticketID)
	if err != nil {
		return nil, err
	}

	menuItem, err := s.catalog.GetByID(menuItemID)
	if err != nil {
		return nil, err
	}

	if err := s.ledger.Deduct(menuItem.Recipe, delta); err != nil {
		return nil, err
	}

	if line := t.item(menuItemID); line != nil {
		line.Quantity += delta
	} else {
		t.Items = append(t.Items, TicketItem{MenuItem: *menuItem, Quantity: delta})
	}

	s.recomputeTotals(t)
	return t.clone(), nil
}

// UpdateItemQuantity sets the absolute quantity of a menu line. Zero or
// negative removes the line. Increments are validated against stock for the
// increment only; decrements return stock. Ticket items and ledger move
// together or not at all.
func (s *Service) UpdateItemQuantity(ticketID, menuItemID string, quantity int) (*Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.openTicket(ticketID)
	if err != nil {
		return nil, err
	}

	menuItem, err := s.catalog.GetByID(menuItemID)
	if err != nil {
		return nil, err
	}

	current := 0
	if line := t.item(menuItemID); line != nil {
		current = line.Quantity
	}

	// Negative targets mean "remove"; stock movement is based on the
	// effective quantity so a remove never over-restores.
	effective := quantity
	if effective < 0 {
		effective = 0
	}
	change := effective - current

	switch {
	case change > 0:
		if err := s.ledger.Deduct(menuItem.Recipe, change); err != nil {
			return nil, err
		}
	case change < 0:
		s.ledger.Restore(menuItem.Recipe, -change)
	}

	if effective == 0 {
		t.removeItem(menuItemID)
	} else if line := t.item(menuItemID); line != nil {
		line.Quantity = effective
	} else {
		t.Items = append(t.Items, TicketItem{MenuItem: *menuItem, Quantity: effective})
	}

	s.recomputeTotals(t)
	return t.clone(), nil
}

//
// --------------------------------------------------
// Cancel / pay
// --------------------------------------------------
//

// Cancel voids an open ticket, returning every line's recipe quantities to
// the ledger, and replaces it with a fresh empty open ticket for the table.
func (s *Service) Cancel(ticketID string) (*Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.openTicket(ticketID)
	if err != nil {
		return nil, err
	}

	for _, line := range t.Items {
		s.ledger.Restore(line.MenuItem.Recipe, line.Quantity)
	}
	t.Status = StatusVoid

	replacement := &Ticket{
		ID:        "T-" + uuid.New().String(),
		TableID:   t.TableID,
		Items:     []TicketItem{},
		Status:    StatusOpen,
		UserID:    t.UserID,
		CreatedAt: time.Now(),
	}
	s.store.Save(replacement)
	return replacement.clone(), nil
}

// Pay transitions an open, non-empty ticket to paid and stamps the payment
// metadata. Stock was already deducted at add time, so this is a state
// transition only. The paid ticket is handed to the fiscal registrar outside
// the commit path.
func (s *Service) Pay(ticketID string, method PaymentMethod, userID string) (*Ticket, error) {
	if !ValidPaymentMethod(method) {
		return nil, ErrInvalidPaymentMethod
	}

	s.mu.Lock()

	t, err := s.openTicket(ticketID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if len(t.Items) == 0 {
		s.mu.Unlock()
		return nil, ErrEmptyTicket
	}

	now := time.Now()
	t.Status = StatusPaid
	t.PaymentMethod = method
	t.PaidAt = &now
	t.UserID = userID

	// Floor bookkeeping failure must not undo a committed payment.
	_ = s.floor.Release(t.TableID)

	paid := t.clone()
	reg := s.registrar
	s.mu.Unlock()

	// Registration runs outside the lock; Register never blocks.
	if reg != nil {
		reg.Register(*paid)
	}
	return paid, nil
}

// SetRegistrar wires the fiscal registrar after construction. The registrar
// stamps results back onto the engine, so the two are bound in main once
// both exist.
func (s *Service) SetRegistrar(r Registrar) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registrar = r
}

// StampFiscal records the fiscal registration result on a paid ticket.
// Called by the registrar worker after the payment has committed.
func (s *Service) StampFiscal(ticketID, invoiceNumber, verificationCode, qrCodeData string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, err := s.store.Get(ticketID)
	if err != nil {
		return err
	}
	t.EtimsInvoiceNumber = invoiceNumber
	t.VerificationCode = verificationCode
	t.QRCodeData = qrCodeData
	return nil
}

//
// --------------------------------------------------
// Internals
// --------------------------------------------------
//

func (s *Service) openTicket(id string) (*Ticket, error) {
	t, err := s.store.Get(id)
	if err != nil {
		return nil, err
	}
	if t.Status != StatusOpen {
		return nil, ErrTicketNotOpen
	}
	return t, nil
}

// recomputeTotals derives the financial fields from the item list. Called
// inside every mutating operation, never lazily at read time.
func (s *Service) recomputeTotals(t *Ticket) {
	subtotal := 0.0
	for _, line := range t.Items {
		subtotal += line.MenuItem.Price * float64(line.Quantity)
	}
	t.Subtotal = subtotal
	t.Tax = subtotal * s.taxRate
	t.Total = t.Subtotal + t.Tax
}
