// Package bank is the surface the presentation layer drives. It resolves
// account ids, builds commands, routes them through the transaction manager,
// and reports expected failures as operational notices on the ambient sink
// instead of returning errors. Only programming errors escape.
package bank

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/teller-dev/teller/internal/auditlog"
	"github.com/teller-dev/teller/internal/interest"
	"github.com/teller-dev/teller/internal/ledger"
	"github.com/teller-dev/teller/internal/txn"
)

// Bank wires the ledger registry, the transaction manager, the ambient
// notice sink, and the audit log together.
type Bank struct {
	ledger *ledger.Service
	txns   *txn.Manager
	ops    ledger.Sink
	audit  *auditlog.Log
}

// New creates a Bank posting operational notices to ops. historyLimit caps
// the undo history; 0 keeps it unbounded.
func New(ops ledger.Sink, historyLimit int) *Bank {
	return &Bank{
		ledger: ledger.NewService(),
		txns:   txn.NewManager(historyLimit),
		ops:    ops,
		audit:  auditlog.New(),
	}
}

// Audit returns the session's operation journal.
func (b *Bank) Audit() *auditlog.Log {
	return b.audit
}

// HistoryDepth returns the number of undoable operations.
func (b *Bank) HistoryDepth() int {
	return b.txns.Depth()
}

// CreateCustomer registers a customer and the sink its notifications go to.
func (b *Bank) CreateCustomer(name string, sink ledger.Sink) *ledger.Customer {
	c := b.ledger.CreateCustomer(name, sink)
	b.audit.Record("create-customer", fmt.Sprintf("customer %d (%s)", c.ID, c.Name))
	return c
}

// CreateAccount opens an account for an existing customer, attaching the
// owner as an observer. On an unknown owner it posts a notice and returns
// nil.
func (b *Bank) CreateAccount(t ledger.AccountType, ownerID int, initial decimal.Decimal) *ledger.Account {
	a, err := b.ledger.CreateAccount(t, ownerID, initial)
	if err != nil {
		b.notice(fmt.Sprintf("unknown customer %d", ownerID))
		return nil
	}
	b.audit.Record("create-account", fmt.Sprintf("account %d (%s) owner %d opening balance %s",
		a.ID, a.Type, ownerID, initial.StringFixed(2)))
	return a
}

// Balance returns an account's current balance, or zero with a notice when
// the account is unknown.
func (b *Bank) Balance(accountID int) decimal.Decimal {
	bal, err := b.ledger.Balance(accountID)
	if err != nil {
		b.notice(fmt.Sprintf("unknown account %d", accountID))
		return decimal.Zero
	}
	return bal
}

// Deposit credits an account through the transaction manager.
func (b *Bank) Deposit(accountID int, amount decimal.Decimal) {
	if !b.checkAmount(amount) || !b.checkAccount(accountID) {
		return
	}
	b.run(txn.NewDeposit(b.ledger, accountID, amount))
}

// Withdraw debits an account through the transaction manager. Overdrawing
// produces a notice and leaves the balance untouched.
func (b *Bank) Withdraw(accountID int, amount decimal.Decimal) {
	if !b.checkAmount(amount) || !b.checkAccount(accountID) {
		return
	}
	b.run(txn.NewWithdraw(b.ledger, accountID, amount))
}

// Transfer moves an amount between two distinct accounts through the
// transaction manager.
func (b *Bank) Transfer(fromID, toID int, amount decimal.Decimal) {
	if !b.checkAmount(amount) {
		return
	}
	if fromID == toID {
		b.notice("cannot transfer: source and destination are the same account")
		return
	}
	if !b.checkAccount(fromID) || !b.checkAccount(toID) {
		return
	}
	b.run(txn.NewTransfer(b.ledger, fromID, toID, amount))
}

// UndoLast reverses the most recent recorded operation, or posts a notice
// when there is nothing to undo.
func (b *Bank) UndoLast() {
	cmd, err := b.txns.UndoLast()
	if errors.Is(err, txn.ErrNothingToUndo) {
		b.notice("nothing to undo")
		return
	}
	if err != nil {
		// Recorded commands only reference accounts that existed at
		// execute time, and accounts are never deleted.
		panic(fmt.Sprintf("undo failed: %v", err))
	}
	b.audit.Record("undo", cmd.String())
}

// AttachObserver registers an extra observer on an account.
func (b *Bank) AttachObserver(accountID, customerID int) {
	if err := b.ledger.Attach(accountID, customerID); err != nil {
		b.notice(err.Error())
		return
	}
	b.audit.Record("attach", fmt.Sprintf("customer %d observing account %d", customerID, accountID))
}

// DetachObserver removes an observer from an account.
func (b *Bank) DetachObserver(accountID, customerID int) {
	if err := b.ledger.Detach(accountID, customerID); err != nil {
		b.notice(err.Error())
		return
	}
	b.audit.Record("detach", fmt.Sprintf("customer %d no longer observing account %d", customerID, accountID))
}

// ApplyStrategy swaps an account's interest strategy by key (savings,
// current, fixed).
func (b *Bank) ApplyStrategy(accountID int, key string) {
	strat, err := interest.Parse(key)
	if err != nil {
		b.notice(err.Error())
		return
	}
	if !b.checkAccount(accountID) {
		return
	}
	if err := b.ledger.SetStrategy(accountID, strat); err != nil {
		b.notice(err.Error())
		return
	}
	b.audit.Record("apply-strategy", fmt.Sprintf("account %d now earns %s interest", accountID, strat))
}

// CalculateInterest returns the active strategy applied to the current
// balance, or zero with a notice when the account is unknown. It never
// changes state.
func (b *Bank) CalculateInterest(accountID int) decimal.Decimal {
	amt, err := b.ledger.Interest(accountID)
	if err != nil {
		b.notice(fmt.Sprintf("unknown account %d", accountID))
		return decimal.Zero
	}
	return amt
}

func (b *Bank) run(cmd txn.Command) {
	err := b.txns.Execute(cmd)
	var insufficient *txn.InsufficientFundsError
	switch {
	case err == nil:
		b.audit.Record("execute", cmd.String())
	case errors.As(err, &insufficient):
		b.notice(insufficient.Error())
	case errors.Is(err, ledger.ErrUnknownAccount):
		b.notice(err.Error())
	default:
		panic(fmt.Sprintf("command failed: %v", err))
	}
}

func (b *Bank) checkAmount(amount decimal.Decimal) bool {
	if amount.IsPositive() {
		return true
	}
	b.notice("amount must be positive")
	return false
}

func (b *Bank) checkAccount(accountID int) bool {
	if _, ok := b.ledger.Account(accountID); ok {
		return true
	}
	b.notice(fmt.Sprintf("unknown account %d", accountID))
	return false
}

func (b *Bank) notice(msg string) {
	b.audit.Record("notice", msg)
	if b.ops != nil {
		b.ops(msg)
	}
}
