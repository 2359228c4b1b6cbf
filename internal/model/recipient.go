package model

import "github.com/shopspring/decimal"

// Recipient is a tagged variant: either an external address or a multisig
// group. Consumers switch on the concrete type instead of probing fields.
type Recipient interface {
	// Value returns the amount paid to the recipient.
	Value() decimal.Decimal

	recipient()
}

// AddressRecipient pays an external address. Address recipients never
// receive blinding material.
type AddressRecipient struct {
	Destination string
	Amount      decimal.Decimal
}

func (r AddressRecipient) Value() decimal.Decimal { return r.Amount }
func (r AddressRecipient) recipient()             {}

// GroupRecipient pays a multisig group identified by its member keys and
// signing threshold. Change outputs are always group recipients.
type GroupRecipient struct {
	Members   []string
	Threshold uint8
	Amount    decimal.Decimal
}

func (r GroupRecipient) Value() decimal.Decimal { return r.Amount }
func (r GroupRecipient) recipient()             {}

// TotalValue sums the amounts of a recipient list.
func TotalValue(recipients []Recipient) decimal.Decimal {
	total := decimal.Zero
	for _, r := range recipients {
		total = total.Add(r.Value())
	}
	return total
}

// GroupRecipients returns the subset of recipients that are multisig groups,
// preserving order. Blinding material aligns 1:1 with this subset.
func GroupRecipients(recipients []Recipient) []GroupRecipient {
	var groups []GroupRecipient
	for _, r := range recipients {
		if g, ok := r.(GroupRecipient); ok {
			groups = append(groups, g)
		}
	}
	return groups
}
