// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"sync"

	"github.com/remixshare/remixshare/models"
)

// Store is the single owner of all entity state. Every collection lives
// behind one mutex so that a mutation and the counter updates it
// triggers are observed atomically; no caller ever sees a remix without
// the original's remixCount reflecting it.
//
// Stored records never escape by reference: getters return copies, and
// updates replace the stored value wholesale. Percentage ranges and
// enum membership are the caller's responsibility (validated at the
// HTTP boundary); the store documents but does not re-check them.
type Store struct {
	mu sync.RWMutex

	creators      map[string]*models.Creator
	content       map[string]*models.ContentPiece
	remixes       map[string]*models.Remix
	enhancements  map[string]*models.Enhancement
	transactions  map[string]*models.Transaction
	engagements   map[string]*models.Engagement
	polls         map[string]*models.CommunityPoll
	notifications map[string]*models.Notification
}

// New returns an empty store. Each test constructs its own instance;
// there is no package-level singleton.
func New() *Store {
	return &Store{
		creators:      make(map[string]*models.Creator),
		content:       make(map[string]*models.ContentPiece),
		remixes:       make(map[string]*models.Remix),
		enhancements:  make(map[string]*models.Enhancement),
		transactions:  make(map[string]*models.Transaction),
		engagements:   make(map[string]*models.Engagement),
		polls:         make(map[string]*models.CommunityPoll),
		notifications: make(map[string]*models.Notification),
	}
}

// Reset drops all entity state. Intended for tests and dev tooling.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creators = make(map[string]*models.Creator)
	s.content = make(map[string]*models.ContentPiece)
	s.remixes = make(map[string]*models.Remix)
	s.enhancements = make(map[string]*models.Enhancement)
	s.transactions = make(map[string]*models.Transaction)
	s.engagements = make(map[string]*models.Engagement)
	s.polls = make(map[string]*models.CommunityPoll)
	s.notifications = make(map[string]*models.Notification)
}
