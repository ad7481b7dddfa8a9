package txn

import "errors"

// ErrNothingToUndo means the history is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// Manager executes commands and keeps the undo history: a chronological
// stack of successfully executed commands. A command whose execute failed is
// not recorded, so undo only ever reverses changes that actually happened.
type Manager struct {
	history []Command
	limit   int
}

// NewManager creates a Manager. limit caps the history length; 0 means
// unbounded. When the cap is exceeded the oldest entry is dropped and can no
// longer be undone.
func NewManager(limit int) *Manager {
	return &Manager{limit: limit}
}

// Execute runs a command and records it on success.
func (m *Manager) Execute(cmd Command) error {
	if err := cmd.Execute(); err != nil {
		return err
	}
	m.history = append(m.history, cmd)
	if m.limit > 0 && len(m.history) > m.limit {
		m.history = append(m.history[:0:0], m.history[1:]...)
	}
	return nil
}

// UndoLast pops the most recent command and reverses it, returning the
// command for reporting. The popped command is discarded: there is no redo.
func (m *Manager) UndoLast() (Command, error) {
	if len(m.history) == 0 {
		return nil, ErrNothingToUndo
	}
	cmd := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	if err := cmd.Undo(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// Depth returns the number of undoable commands.
func (m *Manager) Depth() int {
	return len(m.history)
}
