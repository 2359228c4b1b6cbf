package ledger

import (
	"context"
	"time"

	"go.uber.org/ratelimit"

	"github.com/custodialabs/payout-backend/internal/model"
)

type (
	// Metrics records metrics for ledger API calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}

	// API is the surface the withdrawal services consume.
	API interface {
		ListUnspentOutputs(ctx context.Context, assetID string, state model.OutputState) ([]model.UnspentOutput, error)
		FetchAsset(ctx context.Context, assetID string) (model.Asset, error)
		FetchFeeQuotes(ctx context.Context, assetID, destination string) ([]model.Fee, error)
		DeriveBlindingMaterial(ctx context.Context, groups []model.GroupRecipient, token, spendKey string) ([]model.Ghost, error)
		VerifyTransaction(ctx context.Context, raw, token string) ([]model.View, error)
		SignTransaction(built model.Transaction, views []model.View, spendKey string) (string, error)
		SubmitTransaction(ctx context.Context, signed, token string) (model.TransactionResult, error)
	}
)

// Observed wraps a ledger client with rate limiting and per-call metrics.
type Observed struct {
	api     API
	limiter ratelimit.Limiter
	metrics Metrics
}

// NewObserved constructs an instrumented client capped at rps calls/second.
func NewObserved(api API, metrics Metrics, rps int) *Observed {
	return &Observed{
		api:     api,
		limiter: ratelimit.New(rps),
		metrics: metrics,
	}
}

func (o *Observed) ListUnspentOutputs(ctx context.Context, assetID string, state model.OutputState) (outputs []model.UnspentOutput, err error) {
	o.limiter.Take()
	started := time.Now()
	defer func() {
		o.metrics.Observe("list_unspent_outputs", err, started)
	}()
	return o.api.ListUnspentOutputs(ctx, assetID, state)
}

func (o *Observed) FetchAsset(ctx context.Context, assetID string) (asset model.Asset, err error) {
	o.limiter.Take()
	started := time.Now()
	defer func() {
		o.metrics.Observe("fetch_asset", err, started)
	}()
	return o.api.FetchAsset(ctx, assetID)
}

func (o *Observed) FetchFeeQuotes(ctx context.Context, assetID, destination string) (fees []model.Fee, err error) {
	o.limiter.Take()
	started := time.Now()
	defer func() {
		o.metrics.Observe("fetch_fee_quotes", err, started)
	}()
	return o.api.FetchFeeQuotes(ctx, assetID, destination)
}

func (o *Observed) DeriveBlindingMaterial(ctx context.Context, groups []model.GroupRecipient, token, spendKey string) (ghosts []model.Ghost, err error) {
	o.limiter.Take()
	started := time.Now()
	defer func() {
		o.metrics.Observe("derive_blinding_material", err, started)
	}()
	return o.api.DeriveBlindingMaterial(ctx, groups, token, spendKey)
}

func (o *Observed) VerifyTransaction(ctx context.Context, raw, token string) (views []model.View, err error) {
	o.limiter.Take()
	started := time.Now()
	defer func() {
		o.metrics.Observe("verify_transaction", err, started)
	}()
	return o.api.VerifyTransaction(ctx, raw, token)
}

func (o *Observed) SignTransaction(built model.Transaction, views []model.View, spendKey string) (signed string, err error) {
	started := time.Now()
	defer func() {
		o.metrics.Observe("sign_transaction", err, started)
	}()
	return o.api.SignTransaction(built, views, spendKey)
}

func (o *Observed) SubmitTransaction(ctx context.Context, signed, token string) (result model.TransactionResult, err error) {
	o.limiter.Take()
	started := time.Now()
	defer func() {
		o.metrics.Observe("submit_transaction", err, started)
	}()
	return o.api.SubmitTransaction(ctx, signed, token)
}
