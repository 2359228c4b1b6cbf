package service

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrNoFeeQuote means the ledger quoted neither an own-asset nor a
	// chain-asset fee for the withdrawal target. Fatal, not retried.
	ErrNoFeeQuote = errors.New("no fee quote available for withdrawal target")

	// ErrAmountTooSmall means the requested amount does not cover the fee in
	// the single-phase flow.
	ErrAmountTooSmall = errors.New("withdrawal amount does not cover the fee")
)

// InsufficientFundsError reports that the available outputs cannot cover the
// requested recipients, with exact totals for diagnostics.
type InsufficientFundsError struct {
	AssetID   string
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for asset %s: available %s, required %s",
		e.AssetID, e.Available, e.Required)
}

// InsufficientBalanceError reports a failed two-phase pre-check: a spending
// pool (withdrawn asset or fee asset) cannot cover its share of the
// withdrawal including fees.
type InsufficientBalanceError struct {
	AssetID   string
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance including fees for asset %s: available %s, required %s",
		e.AssetID, e.Available, e.Required)
}
