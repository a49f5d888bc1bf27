// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"time"

	"github.com/remixshare/remixshare/ids"
	"github.com/remixshare/remixshare/models"
)

// TransactionInput carries the caller-owned fields of a transaction.
// Amount is expected to be non-negative.
type TransactionInput struct {
	FromWallet      string
	ToWallet        string
	Amount          float64
	ContentID       string
	TransactionType string
	Status          string
}

// CreateTransaction appends a transaction record. Transactions are
// never updated once written. A completed transaction moves the revenue
// aggregates in the same critical section: the referenced content's
// currentRevenue and its owning creator's totalRevenue. Pending and
// failed transactions move nothing, and unknown references are
// tolerated at each step.
func (s *Store) CreateTransaction(in TransactionInput) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &models.Transaction{
		TransactionID:   ids.New(ids.KindTransaction),
		FromWallet:      in.FromWallet,
		ToWallet:        in.ToWallet,
		Amount:          in.Amount,
		ContentID:       in.ContentID,
		TransactionType: in.TransactionType,
		Status:          in.Status,
		Timestamp:       time.Now(),
	}
	s.transactions[t.TransactionID] = t

	if t.Status == models.TxStatusCompleted {
		if c, ok := s.content[t.ContentID]; ok {
			c.CurrentRevenue += t.Amount
			if owner, ok := s.creators[c.CreatorID]; ok {
				owner.TotalRevenue += t.Amount
				owner.UpdatedAt = t.Timestamp
			}
		}
	}

	return *t
}

// GetTransactionsByContent returns every transaction referencing the
// content.
func (s *Store) GetTransactionsByContent(contentID string) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Transaction
	for _, t := range s.transactions {
		if t.ContentID == contentID {
			out = append(out, *t)
		}
	}
	return out
}

// GetTransactionsByWallet returns every transaction where the wallet is
// the sender or the receiver.
func (s *Store) GetTransactionsByWallet(walletAddress string) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Transaction
	for _, t := range s.transactions {
		if t.FromWallet == walletAddress || t.ToWallet == walletAddress {
			out = append(out, *t)
		}
	}
	return out
}
