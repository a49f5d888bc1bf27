// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"time"

	"github.com/remixshare/remixshare/ids"
	"github.com/remixshare/remixshare/models"
)

// EngagementInput carries the caller-owned fields of an engagement.
type EngagementInput struct {
	ContentID      string
	UserID         string
	EngagementType string
}

// CreateEngagement records an interaction and increments the target
// content's engagementCount in the same critical section. Like
// remixes, an engagement referencing unknown content is still recorded
// and the dangling reference moves no counter.
func (s *Store) CreateEngagement(in EngagementInput) models.Engagement {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := &models.Engagement{
		EngagementID:   ids.New(ids.KindEngagement),
		ContentID:      in.ContentID,
		UserID:         in.UserID,
		EngagementType: in.EngagementType,
		Timestamp:      time.Now(),
	}
	s.engagements[e.EngagementID] = e

	if c, ok := s.content[in.ContentID]; ok {
		c.EngagementCount++
	}

	return *e
}

// GetEngagementsByContent returns every engagement recorded against the
// content.
func (s *Store) GetEngagementsByContent(contentID string) []models.Engagement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Engagement
	for _, e := range s.engagements {
		if e.ContentID == contentID {
			out = append(out, *e)
		}
	}
	return out
}
