// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"time"

	"github.com/remixshare/remixshare/ids"
	"github.com/remixshare/remixshare/models"
)

// RemixInput carries the caller-owned fields of a remix proposal.
// RevenueSharePercentage is expected in [0, 50].
type RemixInput struct {
	OriginalContentID      string
	RemixingCreatorID      string
	RemixContentURL        string
	Description            string
	RevenueSharePercentage float64
}

// CreateRemix stores a remix proposal (approved=false) and increments
// the original content's remixCount in the same critical section. A
// remix whose original is unknown is still created; the reference is
// allowed to dangle and no counter moves anywhere.
func (s *Store) CreateRemix(in RemixInput) models.Remix {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := &models.Remix{
		RemixID:                ids.New(ids.KindRemix),
		OriginalContentID:      in.OriginalContentID,
		RemixingCreatorID:      in.RemixingCreatorID,
		RemixContentURL:        in.RemixContentURL,
		Description:            in.Description,
		RevenueSharePercentage: in.RevenueSharePercentage,
		RemixTimestamp:         time.Now(),
	}
	s.remixes[r.RemixID] = r

	if original, ok := s.content[in.OriginalContentID]; ok {
		original.RemixCount++
	}

	return *r
}

// GetRemix returns the remix and whether it exists.
func (s *Store) GetRemix(remixID string) (models.Remix, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.remixes[remixID]
	if !ok {
		return models.Remix{}, false
	}
	return *r, true
}

// GetRemixesByContent returns every remix referencing the content.
func (s *Store) GetRemixesByContent(contentID string) []models.Remix {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Remix
	for _, r := range s.remixes {
		if r.OriginalContentID == contentID {
			out = append(out, *r)
		}
	}
	return out
}

// ApproveRemix flips a proposal to approved. Idempotent: approving an
// already-approved remix reports true. False only for an unknown ID.
func (s *Store) ApproveRemix(remixID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.remixes[remixID]
	if !ok {
		return false
	}
	r.Approved = true
	return true
}
