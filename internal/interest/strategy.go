// Package interest defines the pluggable interest policies. A Strategy is a
// pure mapping from a balance to an interest amount; no policy may inspect
// anything besides the balance it is given.
package interest

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Strategy selects how interest is computed from a balance.
type Strategy string

const (
	// StrategySavings pays 3% of the current balance.
	StrategySavings Strategy = "savings"
	// StrategyCurrent pays no interest.
	StrategyCurrent Strategy = "current"
	// StrategyFixed pays 7% of the current balance.
	StrategyFixed Strategy = "fixed"
)

var (
	savingsRate = decimal.RequireFromString("0.03")
	fixedRate   = decimal.RequireFromString("0.07")
)

// Calculate returns the interest earned on a balance. Panics on a Strategy
// value that was not produced by Parse or the package constants, since that
// indicates a construction defect rather than a runtime condition.
func (s Strategy) Calculate(balance decimal.Decimal) decimal.Decimal {
	switch s {
	case StrategySavings:
		return balance.Mul(savingsRate)
	case StrategyFixed:
		return balance.Mul(fixedRate)
	case StrategyCurrent:
		return decimal.Zero
	default:
		panic("unknown interest strategy: " + string(s))
	}
}

// Parse maps a strategy key to a Strategy.
func Parse(key string) (Strategy, error) {
	switch key {
	case "savings":
		return StrategySavings, nil
	case "current":
		return StrategyCurrent, nil
	case "fixed":
		return StrategyFixed, nil
	}
	return "", fmt.Errorf("unknown interest strategy %q", key)
}
