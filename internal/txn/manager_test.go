package txn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ExecuteRecords(t *testing.T) {
	svc, ids := newAccounts(t, "100")
	m := NewManager(0)

	require.NoError(t, m.Execute(NewDeposit(svc, ids[0], dec("50"))))
	assert.Equal(t, 1, m.Depth())
	assert.True(t, balance(t, svc, ids[0]).Equal(dec("150")))
}

func TestManager_FailedExecuteNotRecorded(t *testing.T) {
	svc, ids := newAccounts(t, "100")
	m := NewManager(0)

	err := m.Execute(NewWithdraw(svc, ids[0], dec("700")))
	var insufficient *InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 0, m.Depth())

	// The failed attempt left no history, so there is nothing to undo.
	_, err = m.UndoLast()
	assert.ErrorIs(t, err, ErrNothingToUndo)
	assert.True(t, balance(t, svc, ids[0]).Equal(dec("100")))
}

func TestManager_UndoEmpty(t *testing.T) {
	m := NewManager(0)
	for i := 0; i < 3; i++ {
		_, err := m.UndoLast()
		assert.ErrorIs(t, err, ErrNothingToUndo)
	}
}

func TestManager_UndoReversesOnlyLast(t *testing.T) {
	svc, ids := newAccounts(t, "0")
	m := NewManager(0)

	require.NoError(t, m.Execute(NewDeposit(svc, ids[0], dec("100"))))
	require.NoError(t, m.Execute(NewDeposit(svc, ids[0], dec("50"))))

	cmd, err := m.UndoLast()
	require.NoError(t, err)
	assert.Equal(t, "deposit 50.00 to account 1", cmd.String())
	assert.True(t, balance(t, svc, ids[0]).Equal(dec("100")))
	assert.Equal(t, 1, m.Depth())
}

func TestManager_UndoRestoresTransfer(t *testing.T) {
	svc, ids := newAccounts(t, "1000", "200")
	m := NewManager(0)

	require.NoError(t, m.Execute(NewTransfer(svc, ids[0], ids[1], dec("300"))))
	assert.True(t, balance(t, svc, ids[0]).Equal(dec("700")))
	assert.True(t, balance(t, svc, ids[1]).Equal(dec("500")))

	_, err := m.UndoLast()
	require.NoError(t, err)
	assert.True(t, balance(t, svc, ids[0]).Equal(dec("1000")))
	assert.True(t, balance(t, svc, ids[1]).Equal(dec("200")))
}

func TestManager_HistoryLimit(t *testing.T) {
	svc, ids := newAccounts(t, "0")
	m := NewManager(2)

	require.NoError(t, m.Execute(NewDeposit(svc, ids[0], dec("10"))))
	require.NoError(t, m.Execute(NewDeposit(svc, ids[0], dec("20"))))
	require.NoError(t, m.Execute(NewDeposit(svc, ids[0], dec("30"))))
	assert.Equal(t, 2, m.Depth())

	// The oldest deposit fell off the stack and is no longer undoable.
	_, err := m.UndoLast()
	require.NoError(t, err)
	_, err = m.UndoLast()
	require.NoError(t, err)
	_, err = m.UndoLast()
	assert.ErrorIs(t, err, ErrNothingToUndo)
	assert.True(t, balance(t, svc, ids[0]).Equal(dec("10")))
}
