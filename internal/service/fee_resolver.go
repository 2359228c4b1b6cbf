package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/custodialabs/payout-backend/internal/model"
)

// ResolvedFee is the outcome of fee resolution for one withdrawal.
type ResolvedFee struct {
	Asset      model.Asset
	ChainAsset model.Asset
	Fee        model.Fee
}

// SameAsset reports whether the fee is paid in the withdrawn asset itself.
// When false the withdrawal requires the two-phase flow.
func (f ResolvedFee) SameAsset() bool {
	return f.Fee.AssetID == f.Asset.AssetID
}

type feeResolver struct {
	ledger LedgerAPI
	logger *zap.Logger
}

// NewFeeResolver constructs the ledger-backed fee resolver.
func NewFeeResolver(ledger LedgerAPI, logger *zap.Logger) FeeResolver {
	return &feeResolver{
		ledger: ledger,
		logger: logger.Named("feeResolver"),
	}
}

// Resolve fetches the asset, its fee-paying chain asset and the applicable
// fee quote. The own-asset quote wins when present; otherwise the chain
// asset quote applies. Neither present is a fatal configuration error.
func (r *feeResolver) Resolve(ctx context.Context, assetID, destination string) (ResolvedFee, error) {
	asset, err := r.ledger.FetchAsset(ctx, assetID)
	if err != nil {
		return ResolvedFee{}, fmt.Errorf("fetch asset %s: %w", assetID, err)
	}

	chainAsset := asset
	if !asset.IsChainAsset() {
		chainAsset, err = r.ledger.FetchAsset(ctx, asset.ChainID)
		if err != nil {
			return ResolvedFee{}, fmt.Errorf("fetch chain asset %s: %w", asset.ChainID, err)
		}
	}

	quotes, err := r.ledger.FetchFeeQuotes(ctx, assetID, destination)
	if err != nil {
		return ResolvedFee{}, fmt.Errorf("fetch fee quotes for %s: %w", assetID, err)
	}

	fee, ok := pickQuote(quotes, asset.AssetID, chainAsset.AssetID)
	if !ok {
		return ResolvedFee{}, fmt.Errorf("%w: asset %s, chain %s", ErrNoFeeQuote, asset.AssetID, chainAsset.AssetID)
	}

	r.logger.Debug("resolved withdrawal fee",
		zap.String("asset", asset.AssetID),
		zap.String("chainAsset", chainAsset.AssetID),
		zap.String("feeAsset", fee.AssetID),
		zap.String("feeAmount", fee.Amount.String()),
	)
	return ResolvedFee{Asset: asset, ChainAsset: chainAsset, Fee: fee}, nil
}

func pickQuote(quotes []model.Fee, assetID, chainID string) (model.Fee, bool) {
	for _, q := range quotes {
		if q.AssetID == assetID {
			return q, true
		}
	}
	for _, q := range quotes {
		if q.AssetID == chainID {
			return q, true
		}
	}
	return model.Fee{}, false
}
