package model

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// Ghost is opaque blinding material concealing a group recipient. The zero
// value marks a slot that needs no blinding.
type Ghost struct {
	Mask string   `json:"mask,omitempty"`
	Keys []string `json:"keys,omitempty"`
}

// IsZero reports whether the ghost slot is empty.
func (g Ghost) IsZero() bool {
	return g.Mask == "" && len(g.Keys) == 0
}

// View is an opaque cryptographic view returned by transaction verification
// and consumed by signing.
type View string

// TransactionResult is the ledger's receipt for a submitted transaction.
type TransactionResult struct {
	TransactionID   string `json:"transaction_id"`
	TransactionHash string `json:"transaction_hash"`
	State           string `json:"state"`
}

// Transaction is a fully specified transfer ready for encoding. Ghosts align
// positionally with Recipients; slots for address recipients stay empty.
type Transaction struct {
	Inputs     []UnspentOutput
	Recipients []Recipient
	Ghosts     []Ghost
	Memo       string
	FeeRef     *TransactionResult
}

type encodedInput struct {
	OutputID string `json:"output_id"`
	Amount   string `json:"amount"`
}

type encodedRecipient struct {
	Destination string   `json:"destination,omitempty"`
	Members     []string `json:"members,omitempty"`
	Threshold   uint8    `json:"threshold,omitempty"`
	Amount      string   `json:"amount"`
}

type encodedTransaction struct {
	Inputs     []encodedInput     `json:"inputs"`
	Recipients []encodedRecipient `json:"recipients"`
	Ghosts     []Ghost            `json:"ghosts"`
	Memo       string             `json:"memo,omitempty"`
	FeeTxID    string             `json:"fee_transaction_id,omitempty"`
}

// Encode serializes the transaction into the hex raw form the ledger's
// verify endpoint accepts. Ghost count must match the recipient count.
func (t Transaction) Encode() (string, error) {
	if len(t.Ghosts) != len(t.Recipients) {
		return "", fmt.Errorf("ghost count %d does not match recipient count %d", len(t.Ghosts), len(t.Recipients))
	}

	enc := encodedTransaction{
		Inputs:     make([]encodedInput, 0, len(t.Inputs)),
		Recipients: make([]encodedRecipient, 0, len(t.Recipients)),
		Ghosts:     t.Ghosts,
		Memo:       t.Memo,
	}
	if t.FeeRef != nil {
		enc.FeeTxID = t.FeeRef.TransactionID
	}
	for _, in := range t.Inputs {
		enc.Inputs = append(enc.Inputs, encodedInput{
			OutputID: in.OutputID,
			Amount:   in.Amount.String(),
		})
	}
	for _, r := range t.Recipients {
		switch rec := r.(type) {
		case AddressRecipient:
			enc.Recipients = append(enc.Recipients, encodedRecipient{
				Destination: rec.Destination,
				Amount:      rec.Amount.String(),
			})
		case GroupRecipient:
			enc.Recipients = append(enc.Recipients, encodedRecipient{
				Members:   rec.Members,
				Threshold: rec.Threshold,
				Amount:    rec.Amount.String(),
			})
		default:
			return "", fmt.Errorf("unknown recipient type %T", r)
		}
	}

	payload, err := json.Marshal(enc)
	if err != nil {
		return "", fmt.Errorf("marshal transaction: %w", err)
	}
	return hex.EncodeToString(payload), nil
}
