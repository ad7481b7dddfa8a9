package commands

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/teller-dev/teller/internal/interest"
)

func newInterestCommand() *cobra.Command {
	var strategyKey string
	var balanceStr string

	cmd := &cobra.Command{
		Use:   "interest",
		Short: "Calculate interest for a balance under a strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInterest(cmd.OutOrStdout(), strategyKey, balanceStr)
		},
	}

	cmd.Flags().StringVar(&strategyKey, "strategy", "savings", "interest strategy (savings, current, fixed)")
	cmd.Flags().StringVar(&balanceStr, "balance", "0", "balance to compute interest on")

	return cmd
}

func runInterest(out io.Writer, key, balanceStr string) error {
	strat, err := interest.Parse(key)
	if err != nil {
		return err
	}
	bal, err := decimal.NewFromString(balanceStr)
	if err != nil {
		return fmt.Errorf("parsing balance: %w", err)
	}

	fmt.Fprintln(out, strat.Calculate(bal).StringFixed(2))
	return nil
}
