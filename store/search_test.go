// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remixshare/remixshare/models"
)

func seedSearchFixture(s *Store) (neon, synth models.ContentPiece) {
	in := publishedContent("creator-1", "Neon Dreams")
	in.Tags = []string{"art"}
	in.Category = "visual"
	neon = s.CreateContent(in)

	in = publishedContent("creator-2", "Synth Sunset")
	in.Tags = []string{"music"}
	in.Category = "audio"
	synth = s.CreateContent(in)
	return neon, synth
}

func TestSearchContentByQuery(t *testing.T) {
	s := New()
	neon, _ := seedSearchFixture(s)

	results := s.SearchContent("neon", SearchFilters{})
	require.Len(t, results, 1)
	assert.Equal(t, neon.ContentID, results[0].ContentID)

	// Matching is case-insensitive and applies to descriptions too.
	results = s.SearchContent("NEON", SearchFilters{})
	assert.Len(t, results, 1)
	results = s.SearchContent("test piece", SearchFilters{})
	assert.Len(t, results, 2)
}

func TestSearchContentByTags(t *testing.T) {
	s := New()
	_, synth := seedSearchFixture(s)

	results := s.SearchContent("", SearchFilters{Tags: []string{"music"}})
	require.Len(t, results, 1)
	assert.Equal(t, synth.ContentID, results[0].ContentID)

	// Tags OR together.
	results = s.SearchContent("", SearchFilters{Tags: []string{"music", "art"}})
	assert.Len(t, results, 2)
}

func TestSearchContentByCategory(t *testing.T) {
	s := New()
	neon, _ := seedSearchFixture(s)

	results := s.SearchContent("", SearchFilters{Category: "visual"})
	require.Len(t, results, 1)
	assert.Equal(t, neon.ContentID, results[0].ContentID)

	assert.Empty(t, s.SearchContent("", SearchFilters{Category: "podcast"}))
}

func TestSearchContentFiltersCompose(t *testing.T) {
	s := New()
	seedSearchFixture(s)

	// Query matches Neon Dreams but the category filter excludes it.
	results := s.SearchContent("neon", SearchFilters{Category: "audio"})
	assert.Empty(t, results)
}

func TestSearchContentEmptyQueryReturnsAll(t *testing.T) {
	s := New()
	seedSearchFixture(s)

	assert.Len(t, s.SearchContent("", SearchFilters{}), 2)
}

func TestPaginateContent(t *testing.T) {
	s := New()
	for i := 0; i < 25; i++ {
		s.CreateContent(publishedContent("creator-1", fmt.Sprintf("Piece %02d", i)))
	}
	page1 := PaginateContent(s.ListContent(), 1, 10)
	assert.Len(t, page1.Items, 10)
	assert.Equal(t, 25, page1.Total)
	assert.Equal(t, 3, page1.TotalPages)
	for i := 1; i < len(page1.Items); i++ {
		assert.False(t, page1.Items[i].CreationTimestamp.After(page1.Items[i-1].CreationTimestamp),
			"items must be newest-first")
	}

	page3 := PaginateContent(s.ListContent(), 3, 10)
	assert.Len(t, page3.Items, 5)

	page4 := PaginateContent(s.ListContent(), 4, 10)
	assert.Empty(t, page4.Items)
	assert.Equal(t, 3, page4.TotalPages)
}

func TestPaginateContentStableOrder(t *testing.T) {
	s := New()
	for i := 0; i < 12; i++ {
		s.CreateContent(publishedContent("creator-1", fmt.Sprintf("Piece %02d", i)))
	}

	first := PaginateContent(s.ListContent(), 1, 5)
	second := PaginateContent(s.ListContent(), 1, 5)
	require.Len(t, second.Items, 5)
	for i := range first.Items {
		assert.Equal(t, first.Items[i].ContentID, second.Items[i].ContentID,
			"order must not depend on map iteration")
	}
}
