package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/custodialabs/payout-backend/internal/model"
)

// SelectOutputs picks inputs covering the recipients' total, largest first to
// keep the input count small. The returned inputs stay in descending amount
// order; change is the overshoot and is never negative. A shortfall returns
// *InsufficientFundsError with the exact totals.
func SelectOutputs(outputs []model.UnspentOutput, recipients []model.Recipient) ([]model.UnspentOutput, decimal.Decimal, error) {
	required := model.TotalValue(recipients)

	candidates := make([]model.UnspentOutput, len(outputs))
	copy(candidates, outputs)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Amount.GreaterThan(candidates[j].Amount)
	})

	var inputs []model.UnspentOutput
	accumulated := decimal.Zero
	for _, c := range candidates {
		if accumulated.GreaterThanOrEqual(required) {
			break
		}
		inputs = append(inputs, c)
		accumulated = accumulated.Add(c.Amount)
	}

	if accumulated.LessThan(required) {
		assetID := ""
		if len(outputs) > 0 {
			assetID = outputs[0].AssetID
		}
		return nil, decimal.Zero, &InsufficientFundsError{
			AssetID:   assetID,
			Available: accumulated,
			Required:  required,
		}
	}
	return inputs, accumulated.Sub(required), nil
}
