package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/custodialabs/payout-backend/internal/model"
)

type txAssembler struct {
	ledger   LedgerAPI
	spendKey string
	logger   *zap.Logger
}

// NewTransactionAssembler constructs the encode/verify/sign/submit pipeline.
func NewTransactionAssembler(ledger LedgerAPI, spendKey string, logger *zap.Logger) TransactionAssembler {
	return &txAssembler{
		ledger:   ledger,
		spendKey: spendKey,
		logger:   logger.Named("assembler"),
	}
}

// Assemble runs one transaction through encode, verify, sign and submit.
// The steps are strictly sequential and non-retryable; a failure aborts the
// attempt and any caller-initiated retry must use fresh tokens. Verify and
// submit share one idempotency token.
func (a *txAssembler) Assemble(ctx context.Context, built *BuiltRecipients, memo string, feeRef *model.TransactionResult) (model.TransactionResult, error) {
	ghosts, err := expandGhosts(built.Recipients, built.Ghosts)
	if err != nil {
		return model.TransactionResult{}, err
	}

	tx := model.Transaction{
		Inputs:     built.Inputs,
		Recipients: built.Recipients,
		Ghosts:     ghosts,
		Memo:       memo,
		FeeRef:     feeRef,
	}
	raw, err := tx.Encode()
	if err != nil {
		return model.TransactionResult{}, fmt.Errorf("encode transaction: %w", err)
	}

	token := uuid.NewString()
	views, err := a.ledger.VerifyTransaction(ctx, raw, token)
	if err != nil {
		return model.TransactionResult{}, fmt.Errorf("verify transaction: %w", err)
	}

	signed, err := a.ledger.SignTransaction(tx, views, a.spendKey)
	if err != nil {
		return model.TransactionResult{}, fmt.Errorf("sign transaction: %w", err)
	}

	result, err := a.ledger.SubmitTransaction(ctx, signed, token)
	if err != nil {
		return model.TransactionResult{}, fmt.Errorf("submit transaction: %w", err)
	}

	a.logger.Info("transaction submitted",
		zap.String("transactionID", result.TransactionID),
		zap.String("state", result.State),
		zap.Int("inputs", len(tx.Inputs)),
		zap.Int("recipients", len(tx.Recipients)),
	)
	return result, nil
}

// expandGhosts spreads the group-aligned ghost list over the full recipient
// list. Address recipients keep an empty slot, so the primary external
// destination at position 0 never carries blinding material and the group
// ghosts land at their recipients' positions.
func expandGhosts(recipients []model.Recipient, ghosts []model.Ghost) ([]model.Ghost, error) {
	expanded := make([]model.Ghost, len(recipients))
	next := 0
	for i, r := range recipients {
		if _, ok := r.(model.GroupRecipient); !ok {
			continue
		}
		if next >= len(ghosts) {
			return nil, fmt.Errorf("missing blinding material for group recipient at position %d", i)
		}
		expanded[i] = ghosts[next]
		next++
	}
	if next != len(ghosts) {
		return nil, fmt.Errorf("%d unused ghosts for %d group recipients", len(ghosts)-next, next)
	}
	return expanded, nil
}
