// Package ledger holds the in-memory account registry: customers, accounts,
// observer wiring, and the single notifying balance-mutation primitive.
// State lives only in process memory; the package performs no I/O.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/interest"
)

// Service is the ledger registry. It owns id allocation, so independent
// ledgers never share sequences. The model is single-actor and fully
// synchronous: no internal locking.
type Service struct {
	customers      map[int]*Customer
	accounts       map[int]*Account
	nextCustomerID int
	nextAccountID  int
}

// NewService creates an empty ledger.
func NewService() *Service {
	return &Service{
		customers: make(map[int]*Customer),
		accounts:  make(map[int]*Account),
	}
}

// CreateCustomer registers a customer and the sink its notifications go to.
func (s *Service) CreateCustomer(name string, sink Sink) *Customer {
	s.nextCustomerID++
	c := &Customer{ID: s.nextCustomerID, Name: name, sink: sink}
	s.customers[c.ID] = c
	return c
}

// CreateAccount opens an account owned by an existing customer. The owner is
// attached as an observer, and the initial interest strategy follows the
// account type.
func (s *Service) CreateAccount(t AccountType, ownerID int, initial decimal.Decimal) (*Account, error) {
	if _, ok := s.customers[ownerID]; !ok {
		return nil, fmt.Errorf("creating account: %w %d", ErrUnknownCustomer, ownerID)
	}
	s.nextAccountID++
	a := &Account{
		ID:       s.nextAccountID,
		Type:     t,
		OwnerID:  ownerID,
		balance:  initial,
		strategy: defaultStrategy(t),
	}
	a.attach(ownerID)
	s.accounts[a.ID] = a
	return a, nil
}

// Customer returns a customer by id.
func (s *Service) Customer(id int) (*Customer, bool) {
	c, ok := s.customers[id]
	return c, ok
}

// Account returns an account by id.
func (s *Service) Account(id int) (*Account, bool) {
	a, ok := s.accounts[id]
	return a, ok
}

// Balance returns the current balance of an account.
func (s *Service) Balance(accountID int) (decimal.Decimal, error) {
	a, ok := s.accounts[accountID]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w %d", ErrUnknownAccount, accountID)
	}
	return a.balance, nil
}

// UpdateBalance applies a signed delta to an account, then synchronously
// notifies every attached observer in attach order. This is the only
// balance-mutation primitive: every command routes through it, so every
// change produces notifications.
func (s *Service) UpdateBalance(accountID int, delta decimal.Decimal, reason string) error {
	a, ok := s.accounts[accountID]
	if !ok {
		return fmt.Errorf("%w %d", ErrUnknownAccount, accountID)
	}
	a.balance = a.balance.Add(delta)
	msg := fmt.Sprintf("%s: account %d (%s) %s, balance %s",
		reason, a.ID, a.Type, signedAmount(delta), a.balance.StringFixed(2))
	for _, customerID := range a.observers {
		if c, ok := s.customers[customerID]; ok {
			c.Notify(msg)
		}
	}
	return nil
}

// Attach registers a customer as an observer of an account. Attaching an
// existing observer is a no-op: each observer is notified once per change.
func (s *Service) Attach(accountID, customerID int) error {
	a, ok := s.accounts[accountID]
	if !ok {
		return fmt.Errorf("%w %d", ErrUnknownAccount, accountID)
	}
	if _, ok := s.customers[customerID]; !ok {
		return fmt.Errorf("%w %d", ErrUnknownCustomer, customerID)
	}
	a.attach(customerID)
	return nil
}

// Detach removes an observer from an account. Detaching an absent observer
// is a no-op.
func (s *Service) Detach(accountID, customerID int) error {
	a, ok := s.accounts[accountID]
	if !ok {
		return fmt.Errorf("%w %d", ErrUnknownAccount, accountID)
	}
	a.detach(customerID)
	return nil
}

// SetStrategy swaps the interest strategy in force on an account, effective
// for subsequent Interest calls.
func (s *Service) SetStrategy(accountID int, strat interest.Strategy) error {
	a, ok := s.accounts[accountID]
	if !ok {
		return fmt.Errorf("%w %d", ErrUnknownAccount, accountID)
	}
	a.strategy = strat
	return nil
}

// Interest returns the active strategy applied to the current balance. It
// never mutates.
func (s *Service) Interest(accountID int) (decimal.Decimal, error) {
	a, ok := s.accounts[accountID]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w %d", ErrUnknownAccount, accountID)
	}
	return a.strategy.Calculate(a.balance), nil
}

// signedAmount renders a delta with an explicit sign and two decimals.
func signedAmount(d decimal.Decimal) string {
	if d.IsNegative() {
		return d.StringFixed(2)
	}
	return "+" + d.StringFixed(2)
}
