// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"time"

	"github.com/remixshare/remixshare/ids"
	"github.com/remixshare/remixshare/models"
)

// EnhancementInput carries the caller-owned fields of an enhancement.
// Cost is expected to be non-negative.
type EnhancementInput struct {
	ContentID          string
	AppliedByCreatorID string
	EnhancementType    string
	EnhancementDetails string
	Cost               float64
}

// CreateEnhancement stores an enhancement record (approved=false) with
// the applied timestamp fixed at insert.
func (s *Store) CreateEnhancement(in EnhancementInput) models.Enhancement {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := &models.Enhancement{
		EnhancementID:      ids.New(ids.KindEnhancement),
		ContentID:          in.ContentID,
		AppliedByCreatorID: in.AppliedByCreatorID,
		EnhancementType:    in.EnhancementType,
		EnhancementDetails: in.EnhancementDetails,
		Cost:               in.Cost,
		AppliedTimestamp:   time.Now(),
	}
	s.enhancements[e.EnhancementID] = e
	return *e
}

// GetEnhancementsByContent returns every enhancement applied to the
// content.
func (s *Store) GetEnhancementsByContent(contentID string) []models.Enhancement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Enhancement
	for _, e := range s.enhancements {
		if e.ContentID == contentID {
			out = append(out, *e)
		}
	}
	return out
}
