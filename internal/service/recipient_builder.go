package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/custodialabs/payout-backend/internal/model"
)

// BuiltRecipients is the selection outcome handed to the assembler. Ghosts
// align 1:1 with the group recipients in Recipients, in order.
type BuiltRecipients struct {
	Inputs     []model.UnspentOutput
	Recipients []model.Recipient
	Ghosts     []model.Ghost
}

type recipientBuilder struct {
	ledger   LedgerAPI
	spendKey string
	logger   *zap.Logger
}

// NewRecipientBuilder constructs the recipient/change builder.
func NewRecipientBuilder(ledger LedgerAPI, spendKey string, logger *zap.Logger) RecipientBuilder {
	return &recipientBuilder{
		ledger:   ledger,
		spendKey: spendKey,
		logger:   logger.Named("recipientBuilder"),
	}
}

// Build finalizes the recipient list for one transaction: the primary
// request destination first, the optional extra recipient (a same-asset fee
// payment) second, and a change recipient back to the owning group of the
// largest selected input when change is positive. Blinding material is
// derived only for group recipients.
func (b *recipientBuilder) Build(ctx context.Context, req model.WithdrawalRequest, outputs []model.UnspentOutput, extra model.Recipient) (*BuiltRecipients, error) {
	recipients := []model.Recipient{
		model.AddressRecipient{Destination: req.Destination, Amount: req.Amount},
	}
	if extra != nil {
		recipients = append(recipients, extra)
	}

	inputs, change, err := SelectOutputs(outputs, recipients)
	if err != nil {
		return nil, err
	}

	if change.IsPositive() {
		owner := inputs[0]
		recipients = append(recipients, model.GroupRecipient{
			Members:   owner.Members,
			Threshold: owner.Threshold,
			Amount:    change,
		})
		b.logger.Debug("appended change recipient",
			zap.String("asset", req.AssetID),
			zap.String("change", change.String()),
		)
	}

	var ghosts []model.Ghost
	groups := model.GroupRecipients(recipients)
	if len(groups) > 0 {
		ghosts, err = b.ledger.DeriveBlindingMaterial(ctx, groups, uuid.NewString(), b.spendKey)
		if err != nil {
			return nil, fmt.Errorf("derive blinding material: %w", err)
		}
	}

	return &BuiltRecipients{
		Inputs:     inputs,
		Recipients: recipients,
		Ghosts:     ghosts,
	}, nil
}
