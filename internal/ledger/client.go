// Package ledger implements the HTTP client for the external custody ledger
// API: output listing, asset metadata, fee quotes, blinding material and the
// transaction verify/sign/submit primitives.
package ledger

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/custodialabs/payout-backend/internal/model"
)

// ErrNotConfigured is returned when required credentials are missing. All
// operations refuse eagerly instead of contacting the ledger.
var ErrNotConfigured = errors.New("ledger client is not configured")

// Config carries the ledger endpoint and app credentials.
type Config struct {
	BaseURL    string
	AppID      string
	SessionKey string
	Timeout    time.Duration
}

// Client talks to the ledger API over HTTP.
type Client struct {
	http   *resty.Client
	appID  string
	logger *zap.Logger
}

// New validates the credentials and constructs a Client.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	var missing []string
	if cfg.BaseURL == "" {
		missing = append(missing, "base url")
	}
	if cfg.AppID == "" {
		missing = append(missing, "app id")
	}
	if cfg.SessionKey == "" {
		missing = append(missing, "session key")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrNotConfigured, strings.Join(missing, ", "))
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetAuthToken(cfg.SessionKey).
		SetHeader("X-App-Id", cfg.AppID)

	return &Client{
		http:   httpClient,
		appID:  cfg.AppID,
		logger: logger.Named("ledger"),
	}, nil
}

type apiError struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("ledger api error %d: %s", e.Code, e.Description)
}

type envelope[T any] struct {
	Data  T         `json:"data"`
	Error *apiError `json:"error"`
}

func unwrap[T any](resp *resty.Response, env *envelope[T], err error) (T, error) {
	var zero T
	if err != nil {
		return zero, fmt.Errorf("ledger request: %w", err)
	}
	if env.Error != nil {
		return zero, env.Error
	}
	if resp.IsError() {
		return zero, fmt.Errorf("ledger request: unexpected status %d", resp.StatusCode())
	}
	return env.Data, nil
}

type outputPayload struct {
	OutputID  string   `json:"output_id"`
	AssetID   string   `json:"asset_id"`
	Amount    string   `json:"amount"`
	Members   []string `json:"members"`
	Threshold uint8    `json:"threshold"`
	State     string   `json:"state"`
}

// ListUnspentOutputs returns outputs in the given state, optionally filtered
// by asset.
func (c *Client) ListUnspentOutputs(ctx context.Context, assetID string, state model.OutputState) ([]model.UnspentOutput, error) {
	env := envelope[[]outputPayload]{}
	req := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		SetQueryParam("state", string(state))
	if assetID != "" {
		req.SetQueryParam("asset", assetID)
	}
	resp, err := req.Get("/outputs")
	payloads, err := unwrap(resp, &env, err)
	if err != nil {
		return nil, err
	}

	outputs := make([]model.UnspentOutput, 0, len(payloads))
	for _, p := range payloads {
		amount, parseErr := decimal.NewFromString(p.Amount)
		if parseErr != nil {
			return nil, fmt.Errorf("parse output %s amount %q: %w", p.OutputID, p.Amount, parseErr)
		}
		outputs = append(outputs, model.UnspentOutput{
			OutputID:  p.OutputID,
			AssetID:   p.AssetID,
			Amount:    amount,
			Members:   p.Members,
			Threshold: p.Threshold,
			State:     model.OutputState(p.State),
		})
	}
	return outputs, nil
}

type assetPayload struct {
	AssetID  string `json:"asset_id"`
	ChainID  string `json:"chain_id"`
	Symbol   string `json:"symbol"`
	PriceUSD string `json:"price_usd"`
	PriceBTC string `json:"price_btc"`
}

// FetchAsset returns metadata and the pricing snapshot for one asset.
func (c *Client) FetchAsset(ctx context.Context, assetID string) (model.Asset, error) {
	env := envelope[assetPayload]{}
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		Get("/assets/" + assetID)
	p, err := unwrap(resp, &env, err)
	if err != nil {
		return model.Asset{}, err
	}

	priceUSD, err := decimal.NewFromString(p.PriceUSD)
	if err != nil {
		return model.Asset{}, fmt.Errorf("parse asset %s usd price %q: %w", assetID, p.PriceUSD, err)
	}
	priceBTC, err := decimal.NewFromString(p.PriceBTC)
	if err != nil {
		return model.Asset{}, fmt.Errorf("parse asset %s btc price %q: %w", assetID, p.PriceBTC, err)
	}
	return model.Asset{
		AssetID:  p.AssetID,
		ChainID:  p.ChainID,
		Symbol:   p.Symbol,
		PriceUSD: priceUSD,
		PriceBTC: priceBTC,
	}, nil
}

type feePayload struct {
	AssetID string `json:"asset_id"`
	Amount  string `json:"amount"`
}

// FetchFeeQuotes returns the fee quotes applicable to withdrawing an asset
// to a destination. The ledger may quote in the asset itself, in its chain
// asset, or both.
func (c *Client) FetchFeeQuotes(ctx context.Context, assetID, destination string) ([]model.Fee, error) {
	env := envelope[[]feePayload]{}
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		SetQueryParam("asset", assetID).
		SetQueryParam("destination", destination).
		Get("/fees")
	payloads, err := unwrap(resp, &env, err)
	if err != nil {
		return nil, err
	}

	fees := make([]model.Fee, 0, len(payloads))
	for _, p := range payloads {
		amount, parseErr := decimal.NewFromString(p.Amount)
		if parseErr != nil {
			return nil, fmt.Errorf("parse fee amount %q: %w", p.Amount, parseErr)
		}
		fees = append(fees, model.Fee{AssetID: p.AssetID, Amount: amount})
	}
	return fees, nil
}

type ghostRequest struct {
	Receivers []string `json:"receivers"`
	Threshold uint8    `json:"threshold"`
	Amount    string   `json:"amount"`
}

// DeriveBlindingMaterial requests one ghost per group recipient. The token
// must be fresh per call; the returned list aligns with groups by position.
func (c *Client) DeriveBlindingMaterial(ctx context.Context, groups []model.GroupRecipient, token, spendKey string) ([]model.Ghost, error) {
	reqs := make([]ghostRequest, 0, len(groups))
	for _, g := range groups {
		reqs = append(reqs, ghostRequest{
			Receivers: g.Members,
			Threshold: g.Threshold,
			Amount:    g.Amount.String(),
		})
	}

	env := envelope[[]model.Ghost]{}
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		SetBody(map[string]any{
			"recipients": reqs,
			"trace_id":   token,
			"key":        keyFingerprint(spendKey),
		}).
		Post("/ghosts")
	ghosts, err := unwrap(resp, &env, err)
	if err != nil {
		return nil, err
	}
	if len(ghosts) != len(groups) {
		return nil, fmt.Errorf("ledger returned %d ghosts for %d group recipients", len(ghosts), len(groups))
	}
	return ghosts, nil
}

type verifyPayload struct {
	Views []model.View `json:"views"`
}

// VerifyTransaction submits the encoded raw for verification and returns the
// views required for signing.
func (c *Client) VerifyTransaction(ctx context.Context, raw, token string) ([]model.View, error) {
	env := envelope[verifyPayload]{}
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		SetBody(map[string]any{"raw": raw, "trace_id": token}).
		Post("/transactions/verify")
	p, err := unwrap(resp, &env, err)
	if err != nil {
		return nil, err
	}
	return p.Views, nil
}

// SignTransaction produces the signed raw form from a built transaction, the
// verification views and the spend key. The signature scheme is opaque to
// callers; only the raw-in/raw-out contract matters here.
func (c *Client) SignTransaction(built model.Transaction, views []model.View, spendKey string) (string, error) {
	if spendKey == "" {
		return "", fmt.Errorf("%w: missing spend key", ErrNotConfigured)
	}
	if len(views) == 0 {
		return "", errors.New("no views to sign with")
	}

	raw, err := built.Encode()
	if err != nil {
		return "", fmt.Errorf("encode transaction for signing: %w", err)
	}

	mac := hmac.New(sha256.New, []byte(spendKey))
	mac.Write([]byte(raw))
	for _, v := range views {
		mac.Write([]byte(v))
	}
	return raw + hex.EncodeToString(mac.Sum(nil)), nil
}

// SubmitTransaction broadcasts a signed raw transaction. The token must be
// the one used to verify the same raw; reusing it across attempts is unsafe.
func (c *Client) SubmitTransaction(ctx context.Context, signed, token string) (model.TransactionResult, error) {
	env := envelope[model.TransactionResult]{}
	resp, err := c.http.R().SetContext(ctx).SetResult(&env).SetError(&env).
		SetBody(map[string]any{"raw": signed, "trace_id": token}).
		Post("/transactions")
	return unwrap(resp, &env, err)
}

// keyFingerprint avoids shipping the spend key itself on ghost derivation
// requests; the ledger only needs to bind the material to the key.
func keyFingerprint(spendKey string) string {
	sum := sha256.Sum256([]byte(spendKey))
	return hex.EncodeToString(sum[:])
}
