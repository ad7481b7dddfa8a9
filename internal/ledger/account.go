package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/interest"
)

// AccountType classifies accounts in the ledger.
type AccountType string

const (
	AccountTypeGeneric      AccountType = "generic"
	AccountTypeSavings      AccountType = "savings"
	AccountTypeCurrent      AccountType = "current"
	AccountTypeFixedDeposit AccountType = "fixed-deposit"
)

// ParseAccountType maps a type key to an AccountType.
func ParseAccountType(key string) (AccountType, error) {
	switch key {
	case "generic":
		return AccountTypeGeneric, nil
	case "savings":
		return AccountTypeSavings, nil
	case "current":
		return AccountTypeCurrent, nil
	case "fixed-deposit":
		return AccountTypeFixedDeposit, nil
	}
	return "", fmt.Errorf("unknown account type %q", key)
}

// Account is a ledger entry: a balance, the observers watching it, and the
// interest strategy currently in force. Balance and observers mutate only
// through the owning Service, so every change is notified.
type Account struct {
	ID      int
	Type    AccountType
	OwnerID int

	balance   decimal.Decimal
	strategy  interest.Strategy
	observers []int // customer ids, attach order, no duplicates
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Strategy returns the interest strategy currently in force.
func (a *Account) Strategy() interest.Strategy {
	return a.strategy
}

// Observers returns the observing customer ids in attach order.
func (a *Account) Observers() []int {
	out := make([]int, len(a.observers))
	copy(out, a.observers)
	return out
}

func (a *Account) attach(customerID int) {
	for _, id := range a.observers {
		if id == customerID {
			return
		}
	}
	a.observers = append(a.observers, customerID)
}

func (a *Account) detach(customerID int) {
	for i, id := range a.observers {
		if id == customerID {
			a.observers = append(a.observers[:i], a.observers[i+1:]...)
			return
		}
	}
}

// defaultStrategy maps an account type to its initial interest strategy.
func defaultStrategy(t AccountType) interest.Strategy {
	switch t {
	case AccountTypeSavings:
		return interest.StrategySavings
	case AccountTypeFixedDeposit:
		return interest.StrategyFixed
	default:
		return interest.StrategyCurrent
	}
}
