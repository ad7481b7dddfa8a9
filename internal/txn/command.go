// Package txn implements the reversible money-movement commands and the
// manager that executes them and keeps the undo history.
package txn

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Ledger is the slice of the account registry that commands need: balance
// reads and the notifying balance-mutation primitive.
type Ledger interface {
	Balance(accountID int) (decimal.Decimal, error)
	UpdateBalance(accountID int, delta decimal.Decimal, reason string) error
}

// Command is a reversible operation bound to specific accounts and an amount
// fixed at construction. Execute applies it; Undo reverses exactly the amount
// Execute applied. Undo assumes Execute succeeded: the Manager records only
// successful commands, so an aborted execute is never undone.
type Command interface {
	Execute() error
	Undo() error
	String() string
}

// InsufficientFundsError reports a withdraw or transfer whose source balance
// was below the requested amount. No state was changed.
type InsufficientFundsError struct {
	AccountID int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds in account %d", e.AccountID)
}

// Deposit credits an account.
type Deposit struct {
	ledger    Ledger
	accountID int
	amount    decimal.Decimal
}

// NewDeposit creates a deposit of amount into an account.
func NewDeposit(l Ledger, accountID int, amount decimal.Decimal) *Deposit {
	return &Deposit{ledger: l, accountID: accountID, amount: amount}
}

// Execute credits the account unconditionally.
func (d *Deposit) Execute() error {
	return d.ledger.UpdateBalance(d.accountID, d.amount, "Deposit")
}

// Undo debits back exactly the deposited amount.
func (d *Deposit) Undo() error {
	return d.ledger.UpdateBalance(d.accountID, d.amount.Neg(), "Undo Deposit")
}

func (d *Deposit) String() string {
	return fmt.Sprintf("deposit %s to account %d", d.amount.StringFixed(2), d.accountID)
}

// Withdraw debits an account, refusing to overdraw.
type Withdraw struct {
	ledger    Ledger
	accountID int
	amount    decimal.Decimal
}

// NewWithdraw creates a withdrawal of amount from an account.
func NewWithdraw(l Ledger, accountID int, amount decimal.Decimal) *Withdraw {
	return &Withdraw{ledger: l, accountID: accountID, amount: amount}
}

// Execute debits the account, or fails with InsufficientFundsError before
// any mutation if the balance is short.
func (w *Withdraw) Execute() error {
	bal, err := w.ledger.Balance(w.accountID)
	if err != nil {
		return err
	}
	if bal.LessThan(w.amount) {
		return &InsufficientFundsError{AccountID: w.accountID}
	}
	return w.ledger.UpdateBalance(w.accountID, w.amount.Neg(), "Withdraw")
}

// Undo credits the amount back. No guard: it reverses a debit that actually
// happened.
func (w *Withdraw) Undo() error {
	return w.ledger.UpdateBalance(w.accountID, w.amount, "Undo Withdraw")
}

func (w *Withdraw) String() string {
	return fmt.Sprintf("withdraw %s from account %d", w.amount.StringFixed(2), w.accountID)
}

// Transfer moves an amount between two accounts.
type Transfer struct {
	ledger Ledger
	fromID int
	toID   int
	amount decimal.Decimal
}

// NewTransfer creates a transfer of amount from one account to another.
func NewTransfer(l Ledger, fromID, toID int, amount decimal.Decimal) *Transfer {
	return &Transfer{ledger: l, fromID: fromID, toID: toID, amount: amount}
}

// Execute debits the source, then credits the destination, so the source's
// notification fires first. If the source balance is short or either account
// is unknown it fails before any mutation.
func (t *Transfer) Execute() error {
	bal, err := t.ledger.Balance(t.fromID)
	if err != nil {
		return err
	}
	if _, err := t.ledger.Balance(t.toID); err != nil {
		return err
	}
	if bal.LessThan(t.amount) {
		return &InsufficientFundsError{AccountID: t.fromID}
	}
	if err := t.ledger.UpdateBalance(t.fromID, t.amount.Neg(), "Transfer Out"); err != nil {
		return err
	}
	return t.ledger.UpdateBalance(t.toID, t.amount, "Transfer In")
}

// Undo credits the source back, then debits the destination.
func (t *Transfer) Undo() error {
	if err := t.ledger.UpdateBalance(t.fromID, t.amount, "Undo Transfer Out"); err != nil {
		return err
	}
	return t.ledger.UpdateBalance(t.toID, t.amount.Neg(), "Undo Transfer In")
}

func (t *Transfer) String() string {
	return fmt.Sprintf("transfer %s from account %d to account %d",
		t.amount.StringFixed(2), t.fromID, t.toID)
}
