package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/custodialabs/payout-backend/internal/model"
	"github.com/custodialabs/payout-backend/pkg/workerpool"
)

const defaultBalanceWorkers = 8

// AssetBalance is one priced per-asset balance line. Amount is rounded to 8
// decimal places and ValueUSD to 2, half away from zero.
type AssetBalance struct {
	AssetID  string          `json:"asset_id"`
	Symbol   string          `json:"symbol"`
	Amount   decimal.Decimal `json:"amount"`
	ValueUSD decimal.Decimal `json:"value_usd"`
	ValueBTC decimal.Decimal `json:"value_btc"`
}

// BalanceSheet lists priced balances with presentation-rounded totals.
type BalanceSheet struct {
	Assets   []AssetBalance  `json:"assets"`
	TotalUSD decimal.Decimal `json:"total_usd"`
	TotalBTC decimal.Decimal `json:"total_btc"`
}

// BalanceService aggregates unspent outputs into priced per-asset balances.
type BalanceService struct {
	ledger  LedgerAPI
	metrics BalanceMetrics
	workers int
	logger  *zap.Logger
}

// NewBalanceService constructs the aggregator. workers bounds the concurrent
// per-asset price lookups.
func NewBalanceService(ledger LedgerAPI, metrics BalanceMetrics, workers int, logger *zap.Logger) *BalanceService {
	if workers <= 0 {
		workers = defaultBalanceWorkers
	}
	return &BalanceService{
		ledger:  ledger,
		metrics: metrics,
		workers: workers,
		logger:  logger.Named("balance"),
	}
}

type pricedBalance struct {
	line AssetBalance
	// raw values stay unrounded so totals do not compound rounding error
	rawUSD decimal.Decimal
	rawBTC decimal.Decimal
}

// Balances groups unspent outputs by asset, prices each group and returns
// the per-asset lines plus USD/BTC totals. Price lookups fan out across the
// worker pool; decimal addition keeps the totals order-independent.
func (s *BalanceService) Balances(ctx context.Context) (sheet *BalanceSheet, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveAggregate(err, started)
	}()

	outputs, err := s.ledger.ListUnspentOutputs(ctx, "", model.OutputStateUnspent)
	if err != nil {
		return nil, fmt.Errorf("list outputs: %w", err)
	}

	sums := make(map[string]decimal.Decimal)
	for _, o := range outputs {
		sums[o.AssetID] = sums[o.AssetID].Add(o.Amount)
	}
	assetIDs := make([]string, 0, len(sums))
	for id := range sums {
		assetIDs = append(assetIDs, id)
	}
	sort.Strings(assetIDs)

	priced, err := workerpool.Collect(ctx, s.workers, assetIDs, func(ctx context.Context, assetID string) (pricedBalance, error) {
		asset, fetchErr := s.ledger.FetchAsset(ctx, assetID)
		if fetchErr != nil {
			return pricedBalance{}, fmt.Errorf("fetch asset %s: %w", assetID, fetchErr)
		}
		amount := sums[assetID]
		rawUSD := amount.Mul(asset.PriceUSD)
		rawBTC := amount.Mul(asset.PriceBTC)
		return pricedBalance{
			line: AssetBalance{
				AssetID:  assetID,
				Symbol:   asset.Symbol,
				Amount:   amount.Round(8),
				ValueUSD: rawUSD.Round(2),
				ValueBTC: rawBTC.Round(8),
			},
			rawUSD: rawUSD,
			rawBTC: rawBTC,
		}, nil
	})
	if err != nil {
		return nil, err
	}

	sheet = &BalanceSheet{
		Assets:   make([]AssetBalance, 0, len(priced)),
		TotalUSD: decimal.Zero,
		TotalBTC: decimal.Zero,
	}
	totalUSD, totalBTC := decimal.Zero, decimal.Zero
	for _, p := range priced {
		sheet.Assets = append(sheet.Assets, p.line)
		totalUSD = totalUSD.Add(p.rawUSD)
		totalBTC = totalBTC.Add(p.rawBTC)
	}
	sheet.TotalUSD = totalUSD.Round(2)
	sheet.TotalBTC = totalBTC.Round(8)

	s.logger.Debug("aggregated balances",
		zap.Int("assets", len(sheet.Assets)),
		zap.String("totalUSD", sheet.TotalUSD.String()),
	)
	return sheet, nil
}
