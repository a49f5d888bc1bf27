// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "github.com/remixshare/remixshare/models"

// ContentAnalytics aggregates the records referencing one content
// piece: engagementCount as views, record counts for engagements,
// remixes, and enhancements, and the revenue sum over its transactions.
// Returns false for unknown content.
func (s *Store) ContentAnalytics(contentID string) (models.ContentAnalytics, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.content[contentID]
	if !ok {
		return models.ContentAnalytics{}, false
	}

	a := models.ContentAnalytics{
		ContentID: contentID,
		Views:     c.EngagementCount,
	}
	for _, e := range s.engagements {
		if e.ContentID == contentID {
			a.Engagement++
		}
	}
	for _, r := range s.remixes {
		if r.OriginalContentID == contentID {
			a.Remixes++
		}
	}
	for _, e := range s.enhancements {
		if e.ContentID == contentID {
			a.Enhancements++
		}
	}
	for _, t := range s.transactions {
		if t.ContentID == contentID {
			a.Revenue += t.Amount
		}
	}
	return a, true
}

// RevenueStats summarizes platform-wide activity: total revenue over
// completed transactions, creator and content counts, and the number of
// transactions recorded.
func (s *Store) RevenueStats() models.RevenueStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.RevenueStats{
		ActiveCreators:    len(s.creators),
		TotalContent:      len(s.content),
		TotalTransactions: len(s.transactions),
	}
	for _, t := range s.transactions {
		if t.Status == models.TxStatusCompleted {
			stats.TotalRevenue += t.Amount
		}
	}
	return stats
}
