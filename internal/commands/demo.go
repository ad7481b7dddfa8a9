package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/teller-dev/teller/internal/bank"
	"github.com/teller-dev/teller/internal/config"
	"github.com/teller-dev/teller/internal/ledger"
)

func newDemoCommand() *cobra.Command {
	var configPath string
	var auditPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted ledger session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), configPath, auditPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to teller.yaml (defaults to built-in seed data)")
	cmd.Flags().StringVar(&auditPath, "audit", "", "write the session audit log to this CSV file")

	return cmd
}

// runDemo seeds a bank from config, drives a short session through every
// operation, and prints each notification as it is delivered.
func runDemo(out io.Writer, configPath, auditPath string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	ops := func(msg string) { fmt.Fprintf(out, "[bank] %s\n", msg) }
	b := bank.New(ops, cfg.Ledger.HistoryLimit)

	accountIDs, err := seed(out, b, cfg)
	if err != nil {
		return err
	}
	if len(accountIDs) == 0 {
		return errors.New("demo needs at least one seeded account")
	}

	first := accountIDs[0]
	b.Deposit(first, decimal.RequireFromString("200"))
	b.Withdraw(first, decimal.RequireFromString("75.50"))
	if len(accountIDs) > 1 {
		b.Transfer(first, accountIDs[1], decimal.RequireFromString("300"))
	}
	// Overdraw on purpose to show the insufficient-funds notice.
	b.Withdraw(first, decimal.RequireFromString("1000000"))
	b.UndoLast()

	for _, id := range accountIDs {
		fmt.Fprintf(out, "account %d: balance %s, interest %s\n",
			id, b.Balance(id).StringFixed(2), b.CalculateInterest(id).StringFixed(2))
	}

	if auditPath != "" {
		if err := b.Audit().Save(auditPath); err != nil {
			return fmt.Errorf("writing audit log: %w", err)
		}
		fmt.Fprintf(out, "audit log written to %s\n", auditPath)
	}

	return nil
}

// seed creates the configured customers and accounts, returning the opened
// account ids in creation order.
func seed(out io.Writer, b *bank.Bank, cfg *config.Config) ([]int, error) {
	var accountIDs []int
	for _, dc := range cfg.Demo.Customers {
		name := dc.Name
		sink := func(msg string) { fmt.Fprintf(out, "[%s] %s\n", name, msg) }
		c := b.CreateCustomer(name, sink)

		for _, da := range dc.Accounts {
			typ, err := ledger.ParseAccountType(da.Type)
			if err != nil {
				return nil, fmt.Errorf("seeding %s: %w", name, err)
			}
			amt, err := decimal.NewFromString(da.Balance)
			if err != nil {
				return nil, fmt.Errorf("seeding %s: parsing balance %q: %w", name, da.Balance, err)
			}
			a := b.CreateAccount(typ, c.ID, amt)
			if a == nil {
				return nil, fmt.Errorf("seeding %s: account not created", name)
			}
			accountIDs = append(accountIDs, a.ID)
			fmt.Fprintf(out, "opened account %d (%s) for %s with %s\n",
				a.ID, a.Type, name, amt.StringFixed(2))
		}
	}
	return accountIDs, nil
}
