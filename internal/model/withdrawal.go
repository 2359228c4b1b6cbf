package model

import "github.com/shopspring/decimal"

// WithdrawalRequest is a caller-supplied withdrawal order. It is immutable
// for the duration of one withdrawal attempt.
type WithdrawalRequest struct {
	AssetID     string
	Amount      decimal.Decimal
	Destination string
	Memo        string
}
