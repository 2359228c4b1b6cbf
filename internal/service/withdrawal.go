package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/custodialabs/payout-backend/internal/model"
)

// State names the stations of one withdrawal attempt.
type State string

const (
	StateResolveFee  State = "resolve_fee"
	StateSinglePhase State = "single_phase"
	StateTwoPhase    State = "two_phase"
	StateAssembled   State = "assembled"
	StateSent        State = "sent"
)

const (
	phaseFee  = "fee"
	phaseMain = "main"
)

// WithdrawalService sequences fee resolution, recipient building and
// transaction assembly into a complete withdrawal. Fee-asset equality is the
// single branch point: same asset runs one transaction, a chain-asset fee
// runs a fee transaction first and a main transaction referencing it.
type WithdrawalService struct {
	ledger         LedgerAPI
	resolver       FeeResolver
	builder        RecipientBuilder
	assembler      TransactionAssembler
	journal        Journal
	metrics        WithdrawalMetrics
	feeDestination string
	logger         *zap.Logger
}

// NewWithdrawalService builds the orchestrator with its dependencies.
func NewWithdrawalService(
	ledger LedgerAPI,
	resolver FeeResolver,
	builder RecipientBuilder,
	assembler TransactionAssembler,
	journal Journal,
	metrics WithdrawalMetrics,
	feeDestination string,
	logger *zap.Logger,
) (*WithdrawalService, error) {
	if metrics == nil {
		return nil, errors.New("withdrawal metrics is required")
	}
	if feeDestination == "" {
		return nil, errors.New("platform fee destination is required")
	}
	return &WithdrawalService{
		ledger:         ledger,
		resolver:       resolver,
		builder:        builder,
		assembler:      assembler,
		journal:        journal,
		metrics:        metrics,
		feeDestination: feeDestination,
		logger:         logger.Named("withdrawal"),
	}, nil
}

// Create runs one withdrawal to completion and returns the ID of the sent
// transaction (the main transaction in the two-phase flow).
func (s *WithdrawalService) Create(ctx context.Context, req model.WithdrawalRequest) (string, error) {
	if !req.Amount.IsPositive() {
		return "", fmt.Errorf("withdrawal amount must be positive, got %s", req.Amount)
	}

	entryID, err := s.journal.Begin(req)
	if err != nil {
		return "", fmt.Errorf("journal withdrawal: %w", err)
	}

	logger := s.logger.With(
		zap.String("entry", entryID),
		zap.String("asset", req.AssetID),
		zap.String("amount", req.Amount.String()),
	)
	logger.Info("starting withdrawal", zap.String("state", string(StateResolveFee)))

	started := time.Now()
	resolved, err := s.resolver.Resolve(ctx, req.AssetID, req.Destination)
	s.metrics.ObserveResolveFee(err, started)
	if err != nil {
		return "", s.fail(entryID, err)
	}

	flow := StateSinglePhase
	if !resolved.SameAsset() {
		flow = StateTwoPhase
	}
	logger.Info("fee resolved",
		zap.String("state", string(flow)),
		zap.String("feeAsset", resolved.Fee.AssetID),
		zap.String("feeAmount", resolved.Fee.Amount.String()),
	)

	started = time.Now()
	var result model.TransactionResult
	if flow == StateSinglePhase {
		result, err = s.singlePhase(ctx, entryID, req, resolved)
	} else {
		result, err = s.twoPhase(ctx, entryID, req, resolved)
	}
	s.metrics.ObserveWithdrawal(string(flow), err, started)
	if err != nil {
		return "", err
	}

	if err := s.journal.Sent(entryID, result.TransactionID); err != nil {
		logger.Error("journal sent state failed", zap.Error(err))
	}
	logger.Info("withdrawal sent",
		zap.String("state", string(StateSent)),
		zap.String("transactionID", result.TransactionID),
	)
	return result.TransactionID, nil
}

// singlePhase pays the fee out of the withdrawn amount: the destination
// receives amount minus fee and the platform fee destination receives the
// fee, in one transaction.
func (s *WithdrawalService) singlePhase(ctx context.Context, entryID string, req model.WithdrawalRequest, resolved ResolvedFee) (model.TransactionResult, error) {
	adjusted := req.Amount.Sub(resolved.Fee.Amount)
	if adjusted.IsNegative() {
		return model.TransactionResult{}, s.fail(entryID,
			fmt.Errorf("%w: amount %s, fee %s", ErrAmountTooSmall, req.Amount, resolved.Fee.Amount))
	}

	outputs, err := s.ledger.ListUnspentOutputs(ctx, req.AssetID, model.OutputStateUnspent)
	if err != nil {
		return model.TransactionResult{}, s.fail(entryID, fmt.Errorf("list outputs: %w", err))
	}

	adjustedReq := req
	adjustedReq.Amount = adjusted
	feeRecipient := model.AddressRecipient{
		Destination: s.feeDestination,
		Amount:      resolved.Fee.Amount,
	}
	built, err := s.builder.Build(ctx, adjustedReq, outputs, feeRecipient)
	if err != nil {
		return model.TransactionResult{}, s.fail(entryID, err)
	}

	started := time.Now()
	result, err := s.assembler.Assemble(ctx, built, req.Memo, nil)
	s.metrics.ObserveTransaction(phaseMain, err, started)
	if err != nil {
		return model.TransactionResult{}, s.fail(entryID, err)
	}
	return result, nil
}

// twoPhase pays the fee in the chain asset: a fee transaction is sent first
// and the main transaction embeds its result as fee proof. A fee transaction
// that succeeds while the main transaction fails is journaled and counted,
// never reversed automatically.
func (s *WithdrawalService) twoPhase(ctx context.Context, entryID string, req model.WithdrawalRequest, resolved ResolvedFee) (model.TransactionResult, error) {
	outputs, err := s.ledger.ListUnspentOutputs(ctx, req.AssetID, model.OutputStateUnspent)
	if err != nil {
		return model.TransactionResult{}, s.fail(entryID, fmt.Errorf("list outputs: %w", err))
	}
	available := model.TotalAmount(outputs)
	if available.LessThan(req.Amount) {
		return model.TransactionResult{}, s.fail(entryID, &InsufficientBalanceError{
			AssetID:   req.AssetID,
			Available: available,
			Required:  req.Amount,
		})
	}

	feeOutputs, err := s.ledger.ListUnspentOutputs(ctx, resolved.Fee.AssetID, model.OutputStateUnspent)
	if err != nil {
		return model.TransactionResult{}, s.fail(entryID, fmt.Errorf("list fee outputs: %w", err))
	}
	feeAvailable := model.TotalAmount(feeOutputs)
	if feeAvailable.LessThan(resolved.Fee.Amount) {
		return model.TransactionResult{}, s.fail(entryID, &InsufficientBalanceError{
			AssetID:   resolved.Fee.AssetID,
			Available: feeAvailable,
			Required:  resolved.Fee.Amount,
		})
	}

	feeReq := model.WithdrawalRequest{
		AssetID:     resolved.Fee.AssetID,
		Amount:      resolved.Fee.Amount,
		Destination: s.feeDestination,
		Memo:        req.Memo,
	}
	feeBuilt, err := s.builder.Build(ctx, feeReq, feeOutputs, nil)
	if err != nil {
		return model.TransactionResult{}, s.fail(entryID, err)
	}

	started := time.Now()
	feeResult, err := s.assembler.Assemble(ctx, feeBuilt, feeReq.Memo, nil)
	s.metrics.ObserveTransaction(phaseFee, err, started)
	if err != nil {
		return model.TransactionResult{}, s.fail(entryID, err)
	}
	if err := s.journal.FeeSent(entryID, feeResult.TransactionID); err != nil {
		s.logger.Error("journal fee sent state failed", zap.Error(err))
	}

	mainBuilt, err := s.builder.Build(ctx, req, outputs, nil)
	if err != nil {
		s.metrics.FeeOrphaned()
		return model.TransactionResult{}, s.orphanFee(entryID, feeResult, err)
	}

	started = time.Now()
	result, err := s.assembler.Assemble(ctx, mainBuilt, req.Memo, &feeResult)
	s.metrics.ObserveTransaction(phaseMain, err, started)
	if err != nil {
		s.metrics.FeeOrphaned()
		return model.TransactionResult{}, s.orphanFee(entryID, feeResult, err)
	}
	return result, nil
}

func (s *WithdrawalService) fail(entryID string, cause error) error {
	if err := s.journal.Failed(entryID, cause); err != nil {
		s.logger.Error("journal failed state", zap.Error(err))
	}
	return cause
}

// orphanFee reports a main-transaction failure after the fee transaction was
// already sent. The journal entry stays in its fee-sent state so operators
// can reconcile the spent fee; there is no automatic reversal.
func (s *WithdrawalService) orphanFee(entryID string, feeResult model.TransactionResult, cause error) error {
	s.logger.Error("main transaction failed after fee transaction was sent",
		zap.String("entry", entryID),
		zap.String("feeTransactionID", feeResult.TransactionID),
		zap.Error(cause),
	)
	return cause
}
