package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "teller.yaml")

	cfg := Default()
	cfg.Ledger.HistoryLimit = 50
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 50, loaded.Ledger.HistoryLimit)
	require.Len(t, loaded.Demo.Customers, 2)
	assert.Equal(t, "Shivani", loaded.Demo.Customers[0].Name)
	require.Len(t, loaded.Demo.Customers[1].Accounts, 2)
	assert.Equal(t, "fixed-deposit", loaded.Demo.Customers[1].Accounts[1].Type)
}

func TestLoad_HandWritten(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "teller.yaml")
	content := `ledger:
  history_limit: 10
demo:
  customers:
    - name: Meera
      accounts:
        - type: savings
          balance: "250.75"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Ledger.HistoryLimit)
	require.Len(t, cfg.Demo.Customers, 1)
	assert.Equal(t, "Meera", cfg.Demo.Customers[0].Name)
	assert.Equal(t, "250.75", cfg.Demo.Customers[0].Accounts[0].Balance)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 0, cfg.Ledger.HistoryLimit, "history is unbounded by default")
	assert.NotEmpty(t, cfg.Demo.Customers)
}
