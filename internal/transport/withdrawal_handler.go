// Package transport exposes the HTTP JSON API.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/custodialabs/payout-backend/internal/journal"
	"github.com/custodialabs/payout-backend/internal/ledger"
	"github.com/custodialabs/payout-backend/internal/model"
	"github.com/custodialabs/payout-backend/internal/service"
)

type (
	// WithdrawalCreator runs one withdrawal to completion.
	WithdrawalCreator interface {
		Create(ctx context.Context, req model.WithdrawalRequest) (string, error)
	}
	// BalanceReader aggregates priced balances.
	BalanceReader interface {
		Balances(ctx context.Context) (*service.BalanceSheet, error)
	}
	// JournalReader lists unreconciled withdrawal attempts.
	JournalReader interface {
		Unreconciled() ([]journal.Entry, error)
	}
)

// Handler serves the withdrawal and balance endpoints.
type Handler struct {
	withdrawals WithdrawalCreator
	balances    BalanceReader
	journal     JournalReader
	logger      *zap.Logger
}

// NewHandler returns a Handler instance.
func NewHandler(withdrawals WithdrawalCreator, balances BalanceReader, journalReader JournalReader, logger *zap.Logger) *Handler {
	return &Handler{
		withdrawals: withdrawals,
		balances:    balances,
		journal:     journalReader,
		logger:      logger.Named("transport"),
	}
}

// Register mounts the handler's routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/withdrawals", h.createWithdrawal)
	mux.HandleFunc("GET /v1/balances", h.getBalances)
	mux.HandleFunc("GET /v1/withdrawals/unreconciled", h.getUnreconciled)
	mux.HandleFunc("GET /healthz", h.health)
}

type createWithdrawalRequest struct {
	AssetID     string `json:"asset_id"`
	Amount      string `json:"amount"`
	Destination string `json:"destination"`
	Memo        string `json:"memo"`
}

type createWithdrawalResponse struct {
	TransactionID string `json:"transaction_id"`
}

type errorResponse struct {
	Error     string `json:"error"`
	Available string `json:"available,omitempty"`
	Required  string `json:"required,omitempty"`
}

func (h *Handler) createWithdrawal(w http.ResponseWriter, r *http.Request) {
	var payload createWithdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.writeError(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	amount, err := decimal.NewFromString(payload.Amount)
	if err != nil || !amount.IsPositive() {
		h.writeError(w, http.StatusBadRequest, errorResponse{Error: "amount must be a positive decimal"})
		return
	}
	if payload.AssetID == "" || payload.Destination == "" {
		h.writeError(w, http.StatusBadRequest, errorResponse{Error: "asset_id and destination are required"})
		return
	}

	txID, err := h.withdrawals.Create(r.Context(), model.WithdrawalRequest{
		AssetID:     payload.AssetID,
		Amount:      amount,
		Destination: payload.Destination,
		Memo:        payload.Memo,
	})
	if err != nil {
		h.logger.Warn("withdrawal failed",
			zap.String("asset", payload.AssetID),
			zap.Error(err),
		)
		status, resp := mapWithdrawalError(err)
		h.writeError(w, status, resp)
		return
	}
	h.writeJSON(w, http.StatusCreated, createWithdrawalResponse{TransactionID: txID})
}

func (h *Handler) getBalances(w http.ResponseWriter, r *http.Request) {
	sheet, err := h.balances.Balances(r.Context())
	if err != nil {
		h.logger.Error("balance aggregation failed", zap.Error(err))
		h.writeError(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
		return
	}
	h.writeJSON(w, http.StatusOK, sheet)
}

func (h *Handler) getUnreconciled(w http.ResponseWriter, _ *http.Request) {
	entries, err := h.journal.Unreconciled()
	if err != nil {
		h.logger.Error("list unreconciled entries failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	if entries == nil {
		entries = []journal.Entry{}
	}
	h.writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func mapWithdrawalError(err error) (int, errorResponse) {
	var insufficientFunds *service.InsufficientFundsError
	if errors.As(err, &insufficientFunds) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:     err.Error(),
			Available: insufficientFunds.Available.String(),
			Required:  insufficientFunds.Required.String(),
		}
	}
	var insufficientBalance *service.InsufficientBalanceError
	if errors.As(err, &insufficientBalance) {
		return http.StatusUnprocessableEntity, errorResponse{
			Error:     err.Error(),
			Available: insufficientBalance.Available.String(),
			Required:  insufficientBalance.Required.String(),
		}
	}
	switch {
	case errors.Is(err, service.ErrAmountTooSmall):
		return http.StatusUnprocessableEntity, errorResponse{Error: err.Error()}
	case errors.Is(err, service.ErrNoFeeQuote):
		return http.StatusBadGateway, errorResponse{Error: err.Error()}
	case errors.Is(err, ledger.ErrNotConfigured):
		return http.StatusServiceUnavailable, errorResponse{Error: err.Error()}
	default:
		return http.StatusBadGateway, errorResponse{Error: err.Error()}
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response failed", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, resp errorResponse) {
	h.writeJSON(w, status, resp)
}
