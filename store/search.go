// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"sort"
	"strings"

	"github.com/remixshare/remixshare/models"
)

// SearchFilters narrows a content search. A nil/zero filter matches
// everything. Tags are OR'd together and AND'd with the other filters.
type SearchFilters struct {
	Category string
	Tags     []string
}

// SearchContent runs a case-insensitive substring match of query
// against title, description, and tags, then applies the filters. An
// empty query with empty filters returns every piece. This is a full
// scan over the live entity set; at demo data volumes that is fine, and
// a text index stays a future extension.
func (s *Store) SearchContent(query string, filters SearchFilters) []models.ContentPiece {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	var out []models.ContentPiece
	for _, c := range s.content {
		if q != "" && !matchesQuery(c, q) {
			continue
		}
		if filters.Category != "" && c.Category != filters.Category {
			continue
		}
		if len(filters.Tags) > 0 && !hasAnyTag(c.Tags, filters.Tags) {
			continue
		}
		out = append(out, copyContent(c))
	}
	return out
}

func matchesQuery(c *models.ContentPiece, q string) bool {
	if strings.Contains(strings.ToLower(c.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Description), q) {
		return true
	}
	for _, tag := range c.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func hasAnyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// ContentPage is one slice of a newest-first content listing.
type ContentPage struct {
	Items      []models.ContentPiece
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// PaginateContent sorts items newest-first and slices out the requested
// 1-based page. A page past the end yields an empty slice, not an
// error. Equal timestamps are tie-broken by identifier so the order is
// stable across calls.
func PaginateContent(items []models.ContentPiece, page, limit int) ContentPage {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	sort.SliceStable(items, func(i, j int) bool {
		ti, tj := items[i].CreationTimestamp, items[j].CreationTimestamp
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return items[i].ContentID > items[j].ContentID
	})

	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return ContentPage{
		Items:      items[start:end],
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
