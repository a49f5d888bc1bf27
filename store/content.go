// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"time"

	"github.com/remixshare/remixshare/ids"
	"github.com/remixshare/remixshare/models"
)

// ContentInput carries the caller-owned fields of a new content piece.
// RevenueSharePercentage is expected in [0, 100]; the HTTP boundary
// enforces it.
type ContentInput struct {
	CreatorID              string
	Title                  string
	Description            string
	MediaURL               string
	MediaType              string
	MonetizationEnabled    bool
	RevenueSharePercentage float64
	Tags                   []string
	Category               string
	Status                 string
	IsRemix                bool
	OriginalContentID      string
}

// ContentUpdate lists the mutable content fields. The identifier,
// creation timestamp, and the derived counters have no field here and
// therefore cannot be overwritten by any caller.
type ContentUpdate struct {
	Title                  *string
	Description            *string
	MediaURL               *string
	MediaType              *string
	MonetizationEnabled    *bool
	RevenueSharePercentage *float64
	Tags                   *[]string
	Category               *string
	Status                 *string
}

// CreateContent assigns an identifier, stamps the creation time, zeroes
// both derived counters, and stores the record. The owning creator's
// totalContent aggregate is advanced in the same critical section when
// the creator exists; an unknown creator is tolerated.
func (s *Store) CreateContent(in ContentInput) models.ContentPiece {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := &models.ContentPiece{
		ContentID:              ids.New(ids.KindContent),
		CreatorID:              in.CreatorID,
		Title:                  in.Title,
		Description:            in.Description,
		MediaURL:               in.MediaURL,
		MediaType:              in.MediaType,
		CreationTimestamp:      time.Now(),
		MonetizationEnabled:    in.MonetizationEnabled,
		RevenueSharePercentage: in.RevenueSharePercentage,
		Tags:                   copyStrings(in.Tags),
		Category:               in.Category,
		IsRemix:                in.IsRemix,
		OriginalContentID:      in.OriginalContentID,
		Status:                 in.Status,
	}
	s.content[c.ContentID] = c

	if owner, ok := s.creators[c.CreatorID]; ok {
		owner.TotalContent++
		owner.UpdatedAt = c.CreationTimestamp
	}

	return copyContent(c)
}

// GetContent returns the content piece and whether it exists.
func (s *Store) GetContent(contentID string) (models.ContentPiece, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.content[contentID]
	if !ok {
		return models.ContentPiece{}, false
	}
	return copyContent(c), true
}

// GetContentByCreator returns every piece owned by the creator. Order
// is unspecified; callers sort.
func (s *Store) GetContentByCreator(creatorID string) []models.ContentPiece {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.ContentPiece
	for _, c := range s.content {
		if c.CreatorID == creatorID {
			out = append(out, copyContent(c))
		}
	}
	return out
}

// ListContent returns every content piece, order unspecified.
func (s *Store) ListContent() []models.ContentPiece {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.ContentPiece, 0, len(s.content))
	for _, c := range s.content {
		out = append(out, copyContent(c))
	}
	return out
}

// UpdateContent merges the supplied fields over the stored record and
// returns the result. Returns false for an unknown identifier.
func (s *Store) UpdateContent(contentID string, up ContentUpdate) (models.ContentPiece, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.content[contentID]
	if !ok {
		return models.ContentPiece{}, false
	}
	if up.Title != nil {
		c.Title = *up.Title
	}
	if up.Description != nil {
		c.Description = *up.Description
	}
	if up.MediaURL != nil {
		c.MediaURL = *up.MediaURL
	}
	if up.MediaType != nil {
		c.MediaType = *up.MediaType
	}
	if up.MonetizationEnabled != nil {
		c.MonetizationEnabled = *up.MonetizationEnabled
	}
	if up.RevenueSharePercentage != nil {
		c.RevenueSharePercentage = *up.RevenueSharePercentage
	}
	if up.Tags != nil {
		c.Tags = copyStrings(*up.Tags)
	}
	if up.Category != nil {
		c.Category = *up.Category
	}
	if up.Status != nil {
		c.Status = *up.Status
	}
	return copyContent(c), true
}

func copyContent(c *models.ContentPiece) models.ContentPiece {
	out := *c
	out.Tags = copyStrings(c.Tags)
	return out
}

func copyStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
