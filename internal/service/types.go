// Package service contains the withdrawal core: fee resolution, output
// selection, recipient building, transaction assembly, the withdrawal
// orchestrator and balance aggregation.
package service

import (
	"context"
	"time"

	"github.com/custodialabs/payout-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// LedgerAPI is the external custody ledger surface consumed by the core.
	LedgerAPI interface {
		ListUnspentOutputs(ctx context.Context, assetID string, state model.OutputState) ([]model.UnspentOutput, error)
		FetchAsset(ctx context.Context, assetID string) (model.Asset, error)
		FetchFeeQuotes(ctx context.Context, assetID, destination string) ([]model.Fee, error)
		DeriveBlindingMaterial(ctx context.Context, groups []model.GroupRecipient, token, spendKey string) ([]model.Ghost, error)
		VerifyTransaction(ctx context.Context, raw, token string) ([]model.View, error)
		SignTransaction(built model.Transaction, views []model.View, spendKey string) (string, error)
		SubmitTransaction(ctx context.Context, signed, token string) (model.TransactionResult, error)
	}

	// FeeResolver resolves the fee-paying asset and amount for a withdrawal.
	FeeResolver interface {
		Resolve(ctx context.Context, assetID, destination string) (ResolvedFee, error)
	}

	// RecipientBuilder turns a request plus candidate outputs into selected
	// inputs, a finalized recipient list and aligned blinding material.
	RecipientBuilder interface {
		Build(ctx context.Context, req model.WithdrawalRequest, outputs []model.UnspentOutput, extra model.Recipient) (*BuiltRecipients, error)
	}

	// TransactionAssembler encodes, verifies, signs and submits one
	// transaction.
	TransactionAssembler interface {
		Assemble(ctx context.Context, built *BuiltRecipients, memo string, feeRef *model.TransactionResult) (model.TransactionResult, error)
	}

	// Journal persists withdrawal attempt progress.
	Journal interface {
		Begin(req model.WithdrawalRequest) (string, error)
		FeeSent(id, feeTxID string) error
		Sent(id, txID string) error
		Failed(id string, cause error) error
	}

	// WithdrawalMetrics observes orchestrator steps.
	WithdrawalMetrics interface {
		ObserveResolveFee(err error, started time.Time)
		ObserveTransaction(phase string, err error, started time.Time)
		ObserveWithdrawal(flow string, err error, started time.Time)
		FeeOrphaned()
	}

	// BalanceMetrics observes balance aggregation runs.
	BalanceMetrics interface {
		ObserveAggregate(err error, started time.Time)
	}
)
