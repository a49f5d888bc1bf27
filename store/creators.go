// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"time"

	"github.com/remixshare/remixshare/models"
)

// CreatorInput carries the caller-owned fields of a new creator record.
// Creator identifiers are supplied by the caller (derived from the
// trusted identity header or a frame fid), not generated.
type CreatorInput struct {
	CreatorID              string
	WalletAddress          string
	DisplayName            string
	Bio                    string
	RevenueSharePercentage float64
	SocialLinks            map[string]string
}

// CreatorUpdate lists the mutable creator fields. Identity and
// creation-time fields are structurally absent.
type CreatorUpdate struct {
	WalletAddress          *string
	DisplayName            *string
	Bio                    *string
	RevenueSharePercentage *float64
	SocialLinks            map[string]string
}

// CreateCreator stores a creator record, stamping created/updated
// times and zeroing the aggregate totals. Creating an ID that already
// exists replaces the record; callers guard against that by checking
// GetCreator first (first-interaction provisioning).
func (s *Store) CreateCreator(in CreatorInput) models.Creator {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	c := &models.Creator{
		CreatorID:              in.CreatorID,
		WalletAddress:          in.WalletAddress,
		DisplayName:            in.DisplayName,
		Bio:                    in.Bio,
		RevenueSharePercentage: in.RevenueSharePercentage,
		SocialLinks:            copyStringMap(in.SocialLinks),
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	s.creators[c.CreatorID] = c
	return copyCreator(c)
}

// GetCreator returns the creator and whether it exists. Absence is not
// an error.
func (s *Store) GetCreator(creatorID string) (models.Creator, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.creators[creatorID]
	if !ok {
		return models.Creator{}, false
	}
	return copyCreator(c), true
}

// UpdateCreator applies the supplied fields and restamps updatedAt.
// Returns false if the creator is unknown.
func (s *Store) UpdateCreator(creatorID string, up CreatorUpdate) (models.Creator, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.creators[creatorID]
	if !ok {
		return models.Creator{}, false
	}
	if up.WalletAddress != nil {
		c.WalletAddress = *up.WalletAddress
	}
	if up.DisplayName != nil {
		c.DisplayName = *up.DisplayName
	}
	if up.Bio != nil {
		c.Bio = *up.Bio
	}
	if up.RevenueSharePercentage != nil {
		c.RevenueSharePercentage = *up.RevenueSharePercentage
	}
	if up.SocialLinks != nil {
		c.SocialLinks = copyStringMap(up.SocialLinks)
	}
	c.UpdatedAt = time.Now()
	return copyCreator(c), true
}

// ListCreators returns every creator record, order unspecified.
func (s *Store) ListCreators() []models.Creator {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Creator, 0, len(s.creators))
	for _, c := range s.creators {
		out = append(out, copyCreator(c))
	}
	return out
}

func copyCreator(c *models.Creator) models.Creator {
	out := *c
	out.SocialLinks = copyStringMap(c.SocialLinks)
	return out
}

func copyStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
