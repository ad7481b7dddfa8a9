package txn

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teller-dev/teller/internal/ledger"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// newAccounts builds a ledger with n accounts at the given opening balances
// and returns the service plus the account ids.
func newAccounts(t *testing.T, balances ...string) (*ledger.Service, []int) {
	t.Helper()
	svc := ledger.NewService()
	owner := svc.CreateCustomer("Owner", nil)
	ids := make([]int, 0, len(balances))
	for _, b := range balances {
		a, err := svc.CreateAccount(ledger.AccountTypeGeneric, owner.ID, dec(b))
		require.NoError(t, err)
		ids = append(ids, a.ID)
	}
	return svc, ids
}

func balance(t *testing.T, svc *ledger.Service, id int) decimal.Decimal {
	t.Helper()
	bal, err := svc.Balance(id)
	require.NoError(t, err)
	return bal
}

func TestDeposit_ExecuteUndo(t *testing.T) {
	svc, ids := newAccounts(t, "100")
	cmd := NewDeposit(svc, ids[0], dec("40"))

	require.NoError(t, cmd.Execute())
	assert.True(t, balance(t, svc, ids[0]).Equal(dec("140")))

	require.NoError(t, cmd.Undo())
	assert.True(t, balance(t, svc, ids[0]).Equal(dec("100")))
}

func TestWithdraw_ExecuteUndo(t *testing.T) {
	svc, ids := newAccounts(t, "500")
	cmd := NewWithdraw(svc, ids[0], dec("120.50"))

	require.NoError(t, cmd.Execute())
	assert.True(t, balance(t, svc, ids[0]).Equal(dec("379.50")))

	require.NoError(t, cmd.Undo())
	assert.True(t, balance(t, svc, ids[0]).Equal(dec("500")))
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	svc, ids := newAccounts(t, "500")
	cmd := NewWithdraw(svc, ids[0], dec("700"))

	err := cmd.Execute()
	var insufficient *InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, ids[0], insufficient.AccountID)
	assert.True(t, balance(t, svc, ids[0]).Equal(dec("500")), "guard must abort before mutation")
}

func TestWithdraw_ExactBalance(t *testing.T) {
	svc, ids := newAccounts(t, "500")
	cmd := NewWithdraw(svc, ids[0], dec("500"))

	require.NoError(t, cmd.Execute())
	assert.True(t, balance(t, svc, ids[0]).IsZero())
}

func TestTransfer_ExecuteUndo(t *testing.T) {
	svc, ids := newAccounts(t, "1000", "200")
	cmd := NewTransfer(svc, ids[0], ids[1], dec("300"))

	require.NoError(t, cmd.Execute())
	assert.True(t, balance(t, svc, ids[0]).Equal(dec("700")))
	assert.True(t, balance(t, svc, ids[1]).Equal(dec("500")))

	require.NoError(t, cmd.Undo())
	assert.True(t, balance(t, svc, ids[0]).Equal(dec("1000")))
	assert.True(t, balance(t, svc, ids[1]).Equal(dec("200")))
}

func TestTransfer_InsufficientFunds(t *testing.T) {
	svc, ids := newAccounts(t, "100", "200")
	cmd := NewTransfer(svc, ids[0], ids[1], dec("300"))

	err := cmd.Execute()
	var insufficient *InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, ids[0], insufficient.AccountID)
	assert.True(t, balance(t, svc, ids[0]).Equal(dec("100")))
	assert.True(t, balance(t, svc, ids[1]).Equal(dec("200")))
}

func TestTransfer_UnknownDestination(t *testing.T) {
	svc, ids := newAccounts(t, "1000")
	cmd := NewTransfer(svc, ids[0], 99, dec("300"))

	err := cmd.Execute()
	require.ErrorIs(t, err, ledger.ErrUnknownAccount)
	assert.True(t, balance(t, svc, ids[0]).Equal(dec("1000")), "no partial mutation")
}

func TestTransfer_NotificationOrder(t *testing.T) {
	svc := ledger.NewService()
	var msgs []string
	owner := svc.CreateCustomer("Owner", func(msg string) { msgs = append(msgs, msg) })
	from, err := svc.CreateAccount(ledger.AccountTypeGeneric, owner.ID, dec("1000"))
	require.NoError(t, err)
	to, err := svc.CreateAccount(ledger.AccountTypeGeneric, owner.ID, dec("0"))
	require.NoError(t, err)

	cmd := NewTransfer(svc, from.ID, to.ID, dec("250"))
	require.NoError(t, cmd.Execute())
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0], "Transfer Out")
	assert.Contains(t, msgs[1], "Transfer In")

	msgs = nil
	require.NoError(t, cmd.Undo())
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0], "Undo Transfer Out")
	assert.Contains(t, msgs[1], "Undo Transfer In")
}

func TestCommand_String(t *testing.T) {
	svc, ids := newAccounts(t, "0", "0")
	assert.Equal(t, "deposit 10.00 to account 1", NewDeposit(svc, ids[0], dec("10")).String())
	assert.Equal(t, "withdraw 7.50 from account 2", NewWithdraw(svc, ids[1], dec("7.5")).String())
	assert.Equal(t, "transfer 3.00 from account 1 to account 2", NewTransfer(svc, ids[0], ids[1], dec("3")).String())
}
