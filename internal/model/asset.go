package model

import "github.com/shopspring/decimal"

// Asset describes a ledger asset together with its pricing snapshot.
type Asset struct {
	AssetID  string
	ChainID  string
	Symbol   string
	PriceUSD decimal.Decimal
	PriceBTC decimal.Decimal
}

// IsChainAsset reports whether the asset pays its own network fees.
func (a Asset) IsChainAsset() bool {
	return a.AssetID == a.ChainID
}

// Fee is a single fee quote returned by the ledger for a withdrawal target.
type Fee struct {
	AssetID string
	Amount  decimal.Decimal
}
