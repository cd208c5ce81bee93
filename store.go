package micropro

import (
	"errors"
	"fmt"
	"slices"
)

// ClientLimit caps the number of clients on the free tier. Creation beyond
// the cap is blocked with ErrQuotaExceeded.
const ClientLimit = 10

// Due date offsets, in days, for the two invoicing paths.
const (
	billingDueDays = 15 // manual invoicing
	paidDueDays    = 7  // automatic invoicing when an order is marked paid
)

// Store owns the in-memory collections of the business data. Reads are
// always served from the snapshot; every successful mutation is immediately
// followed by a write-through of the affected collection to the key-value
// store. There is a single mutator context, so no locking.
//
// A mutation whose write-through fails keeps the in-memory change and
// returns the result together with a *PersistenceError: memory and storage
// may diverge until the next successful write. This is a deliberate
// optimistic choice, not a bug to fix here.
type Store struct {
	kv       KVStore
	clients  []Client
	orders   []Order
	invoices []Invoice
	profile  BusinessProfile
}

// NewStore creates an empty store writing through to kv.
func NewStore(kv KVStore) *Store {
	return &Store{
		kv:      kv,
		profile: DefaultProfile(),
	}
}

// Clients returns a copy of the client collection, in creation order.
func (s *Store) Clients() []Client { return slices.Clone(s.clients) }

// Orders returns a copy of the order collection, in creation order.
func (s *Store) Orders() []Order { return slices.Clone(s.orders) }

// Invoices returns a copy of the invoice collection, newest first.
func (s *Store) Invoices() []Invoice { return slices.Clone(s.invoices) }

// Profile returns the business profile.
func (s *Store) Profile() BusinessProfile { return s.profile }

// Client returns the client with this id, if any.
func (s *Store) Client(id string) (Client, bool) {
	for _, c := range s.clients {
		if c.ID == id {
			return c, true
		}
	}
	return Client{}, false
}

// Order returns the order with this id, if any.
func (s *Store) Order(id string) (Order, bool) {
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// Invoice returns the invoice with this id, if any.
func (s *Store) Invoice(id string) (Invoice, bool) {
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv, true
		}
	}
	return Invoice{}, false
}

// InvoiceForOrder returns the invoice referencing this order, if any. There
// is at most one.
func (s *Store) InvoiceForOrder(orderID string) (Invoice, bool) {
	for _, inv := range s.invoices {
		if inv.OrderID == orderID {
			return inv, true
		}
	}
	return Invoice{}, false
}

// CreateClient validates the draft, applies the quota policy, and appends a
// new client. A blocked creation returns ErrQuotaExceeded and leaves the
// collection untouched.
func (s *Store) CreateClient(d ClientDraft) (Client, error) {
	if err := d.Validate(); err != nil {
		return Client{}, err
	}
	if len(s.clients) >= ClientLimit {
		return Client{}, fmt.Errorf("cannot create client %q: %w", d.Name, ErrQuotaExceeded)
	}
	c := Client{
		ID:        NewClientID(),
		Name:      d.Name,
		Phone:     d.Phone,
		Email:     d.Email,
		Address:   d.Address,
		CreatedAt: Today(),
	}
	s.clients = append(s.clients, c)
	return c, s.persistClients()
}

// UpdateClient replaces the mutable fields of a client. The id and creation
// date are immutable.
func (s *Store) UpdateClient(id string, d ClientDraft) (Client, error) {
	if err := d.Validate(); err != nil {
		return Client{}, err
	}
	for i, c := range s.clients {
		if c.ID != id {
			continue
		}
		c.Name, c.Phone, c.Email, c.Address = d.Name, d.Phone, d.Email, d.Address
		s.clients[i] = c
		return c, s.persistClients()
	}
	return Client{}, fmt.Errorf("client %q: %w", id, ErrNotFound)
}

// DeleteClient removes a client. Orders referencing it are kept: downstream
// lookups degrade to an "unknown client" display.
func (s *Store) DeleteClient(id string) error {
	for i, c := range s.clients {
		if c.ID == id {
			s.clients = slices.Delete(s.clients, i, i+1)
			return s.persistClients()
		}
	}
	return fmt.Errorf("client %q: %w", id, ErrNotFound)
}

// CreateOrder validates the draft and appends a new pending, unpaid order.
func (s *Store) CreateOrder(d OrderDraft) (Order, error) {
	if err := d.Validate(); err != nil {
		return Order{}, err
	}
	day := d.Date
	if day.IsZero() {
		day = Today()
	}
	o := Order{
		ID:            NewOrderID(),
		ClientID:      d.ClientID,
		Service:       d.Service,
		Amount:        d.Amount,
		Status:        Pending,
		PaymentStatus: Unpaid,
		Date:          day,
	}
	s.orders = append(s.orders, o)
	return o, s.persistOrders()
}

// OrderPatch carries the fields an update may change; nil fields are left
// untouched.
type OrderPatch struct {
	Service       *string
	Amount        *Money
	Status        *OrderStatus
	PaymentStatus *PaymentStatus
}

// UpdateOrder applies a patch to an order. A patched amount must be
// positive.
func (s *Store) UpdateOrder(id string, p OrderPatch) (Order, error) {
	if p.Amount != nil && !p.Amount.IsPositive() {
		return Order{}, &ValidationError{Entity: "order", Fields: []string{"amount"}}
	}
	for i, o := range s.orders {
		if o.ID != id {
			continue
		}
		if p.Service != nil {
			o.Service = *p.Service
		}
		if p.Amount != nil {
			o.Amount = *p.Amount
		}
		if p.Status != nil {
			o.Status = *p.Status
		}
		if p.PaymentStatus != nil {
			o.PaymentStatus = *p.PaymentStatus
		}
		s.orders[i] = o
		return o, s.persistOrders()
	}
	return Order{}, fmt.Errorf("order %q: %w", id, ErrNotFound)
}

// MarkPaid completes the order, marks it paid and issues its invoice, all in
// one step. When the order already has an invoice the status transition
// still applies and the existing invoice is returned unchanged. Persistence
// failures are warnings: both steps apply in memory, the order and invoice
// are returned, and the write errors come back joined.
func (s *Store) MarkPaid(id string) (Order, Invoice, error) {
	status, pay := Completed, Paid
	var warns []error
	o, err := s.UpdateOrder(id, OrderPatch{Status: &status, PaymentStatus: &pay})
	if err != nil {
		var perr *PersistenceError
		if !errors.As(err, &perr) {
			return Order{}, Invoice{}, err
		}
		warns = append(warns, err)
	}
	if inv, ok := s.InvoiceForOrder(o.ID); ok {
		return o, inv, errors.Join(warns...)
	}
	inv, err := s.createInvoice(o, paidDueDays)
	if err != nil {
		warns = append(warns, err)
	}
	return o, inv, errors.Join(warns...)
}

// CreateInvoiceFor issues the invoice of an order. At most one invoice may
// reference an order: a second call fails with ErrDuplicateInvoice and
// leaves the collection unchanged.
func (s *Store) CreateInvoiceFor(orderID string) (Invoice, error) {
	o, ok := s.Order(orderID)
	if !ok {
		return Invoice{}, fmt.Errorf("order %q: %w", orderID, ErrNotFound)
	}
	if inv, ok := s.InvoiceForOrder(orderID); ok {
		return Invoice{}, fmt.Errorf("invoice %q: %w", inv.ID, ErrDuplicateInvoice)
	}
	return s.createInvoice(o, billingDueDays)
}

// createInvoice freezes the order amount into a new invoice. Callers have
// already checked the at-most-one rule.
func (s *Store) createInvoice(o Order, dueDays int) (Invoice, error) {
	today := Today()
	inv := Invoice{
		ID:      NewInvoiceID(today.Year()),
		OrderID: o.ID,
		Amount:  o.Amount,
		Date:    today,
		DueDate: today.Add(dueDays),
	}
	s.invoices = append([]Invoice{inv}, s.invoices...)
	return inv, s.persistInvoices()
}

// SetProfile replaces the business profile.
func (s *Store) SetProfile(p BusinessProfile) error {
	s.profile = p
	return s.persistProfile()
}

func (s *Store) persistClients() error  { return writeKey(s.kv, KeyClients, s.clients) }
func (s *Store) persistOrders() error   { return writeKey(s.kv, KeyOrders, s.orders) }
func (s *Store) persistInvoices() error { return writeKey(s.kv, KeyInvoices, s.invoices) }
func (s *Store) persistProfile() error  { return writeKey(s.kv, KeyProfile, s.profile) }
