package model

import "github.com/shopspring/decimal"

type OutputState string

const (
	OutputStateUnspent OutputState = "unspent"
	OutputStateSigned  OutputState = "signed"
	OutputStateSpent   OutputState = "spent"
)

// UnspentOutput is a spendable balance fragment owned by a multisig group.
// It is a read-only snapshot; the ledger owns the authoritative state.
type UnspentOutput struct {
	OutputID  string
	AssetID   string
	Amount    decimal.Decimal
	Members   []string
	Threshold uint8
	State     OutputState
}

// TotalAmount sums the amounts of a set of outputs.
func TotalAmount(outputs []UnspentOutput) decimal.Decimal {
	total := decimal.Zero
	for _, o := range outputs {
		total = total.Add(o.Amount)
	}
	return total
}
