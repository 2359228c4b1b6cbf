// Package journal persists withdrawal attempts in a local bbolt database so
// partial failures stay visible. A fee transaction whose dependent main
// transaction failed is never reversed automatically; it remains in the
// journal as an unreconciled entry for operators.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/custodialabs/payout-backend/internal/model"
)

var bucketWithdrawals = []byte("withdrawals")

// ErrNotFound is returned when an entry ID is unknown.
var ErrNotFound = errors.New("journal entry not found")

// State tracks how far a withdrawal attempt progressed.
type State string

const (
	StatePending State = "pending"
	StateFeeSent State = "fee_sent"
	StateSent    State = "sent"
	StateFailed  State = "failed"
)

// Entry is one journaled withdrawal attempt.
type Entry struct {
	ID               string          `json:"id"`
	AssetID          string          `json:"asset_id"`
	Amount           decimal.Decimal `json:"amount"`
	Destination      string          `json:"destination"`
	State            State           `json:"state"`
	FeeTransactionID string          `json:"fee_transaction_id,omitempty"`
	TransactionID    string          `json:"transaction_id,omitempty"`
	Cause            string          `json:"cause,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// Store wraps the bbolt database holding withdrawal entries.
type Store struct {
	db     *bbolt.DB
	logger *zap.Logger
}

// Open opens or creates the journal database at path.
func Open(path string, logger *zap.Logger) (*Store, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("journal: open db: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, createErr := tx.CreateBucketIfNotExists(bucketWithdrawals)
		return createErr
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("journal: create bucket: %w", err)
	}
	return &Store{db: db, logger: logger.Named("journal")}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Begin records a fresh withdrawal attempt and returns its entry ID.
func (s *Store) Begin(req model.WithdrawalRequest) (string, error) {
	now := time.Now().UTC()
	entry := Entry{
		ID:          uuid.NewString(),
		AssetID:     req.AssetID,
		Amount:      req.Amount,
		Destination: req.Destination,
		State:       StatePending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.put(entry); err != nil {
		return "", err
	}
	return entry.ID, nil
}

// FeeSent marks the fee transaction of a two-phase withdrawal as submitted.
func (s *Store) FeeSent(id, feeTxID string) error {
	return s.update(id, func(e *Entry) {
		e.State = StateFeeSent
		e.FeeTransactionID = feeTxID
	})
}

// Sent marks the withdrawal as complete with its final transaction ID.
func (s *Store) Sent(id, txID string) error {
	return s.update(id, func(e *Entry) {
		e.State = StateSent
		e.TransactionID = txID
	})
}

// Failed marks the attempt failed, keeping the cause text. An entry that
// already reached fee_sent keeps that state so the spent fee stays visible.
func (s *Store) Failed(id string, cause error) error {
	return s.update(id, func(e *Entry) {
		if e.State != StateFeeSent {
			e.State = StateFailed
		}
		if cause != nil {
			e.Cause = cause.Error()
		}
	})
}

// Get returns one entry by ID.
func (s *Store) Get(id string) (Entry, error) {
	var entry Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket(bucketWithdrawals).Get([]byte(id))
		if raw == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return json.Unmarshal(raw, &entry)
	})
	return entry, err
}

// Unreconciled lists entries whose fee transaction was sent but whose main
// transaction never completed.
func (s *Store) Unreconciled() ([]Entry, error) {
	var entries []Entry
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketWithdrawals).ForEach(func(_, raw []byte) error {
			var e Entry
			if err := json.Unmarshal(raw, &e); err != nil {
				return fmt.Errorf("decode journal entry: %w", err)
			}
			if e.State == StateFeeSent {
				entries = append(entries, e)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) put(entry Entry) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode journal entry: %w", err)
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketWithdrawals).Put([]byte(entry.ID), raw)
	})
}

func (s *Store) update(id string, apply func(*Entry)) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketWithdrawals)
		raw := bucket.Get([]byte(id))
		if raw == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		var entry Entry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return fmt.Errorf("decode journal entry: %w", err)
		}
		apply(&entry)
		entry.UpdatedAt = time.Now().UTC()
		updated, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("encode journal entry: %w", err)
		}
		return bucket.Put([]byte(id), updated)
	})
}
