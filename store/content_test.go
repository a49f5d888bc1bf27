// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remixshare/remixshare/models"
)

func publishedContent(creatorID, title string) ContentInput {
	return ContentInput{
		CreatorID:              creatorID,
		Title:                  title,
		Description:            "a test piece",
		MediaURL:               "https://cdn.example.com/piece.png",
		MediaType:              models.MediaTypeImage,
		RevenueSharePercentage: 25,
		Tags:                   []string{"art"},
		Category:               "visual",
		Status:                 models.ContentStatusPublished,
	}
}

func TestCreateContentDefaults(t *testing.T) {
	s := New()

	c := s.CreateContent(publishedContent("creator-1", "First Light"))

	assert.NotEmpty(t, c.ContentID)
	assert.Equal(t, 0, c.RemixCount)
	assert.Equal(t, 0, c.EngagementCount)
	assert.False(t, c.CreationTimestamp.IsZero())
	assert.Equal(t, models.ContentStatusPublished, c.Status)

	got, ok := s.GetContent(c.ContentID)
	require.True(t, ok)
	assert.Equal(t, c.ContentID, got.ContentID)
	assert.Equal(t, "First Light", got.Title)
}

func TestGetContentAbsent(t *testing.T) {
	s := New()

	_, ok := s.GetContent("content_0_missing")
	assert.False(t, ok)
}

func TestCreateContentAdvancesCreatorTotal(t *testing.T) {
	s := New()
	s.CreateCreator(CreatorInput{CreatorID: "creator-1", DisplayName: "Ada"})

	s.CreateContent(publishedContent("creator-1", "One"))
	s.CreateContent(publishedContent("creator-1", "Two"))
	// Unknown creator is tolerated and no aggregate moves.
	s.CreateContent(publishedContent("creator-ghost", "Three"))

	c, ok := s.GetCreator("creator-1")
	require.True(t, ok)
	assert.Equal(t, 2, c.TotalContent)

	_, ok = s.GetCreator("creator-ghost")
	assert.False(t, ok)
}

func TestGetContentByCreator(t *testing.T) {
	s := New()
	s.CreateContent(publishedContent("creator-1", "Mine"))
	s.CreateContent(publishedContent("creator-1", "Also Mine"))
	s.CreateContent(publishedContent("creator-2", "Theirs"))

	mine := s.GetContentByCreator("creator-1")
	assert.Len(t, mine, 2)

	assert.Empty(t, s.GetContentByCreator("creator-3"))
}

func TestUpdateContentAppliesOnlySuppliedFields(t *testing.T) {
	s := New()
	c := s.CreateContent(publishedContent("creator-1", "Original Title"))

	title := "New Title"
	share := 40.0
	updated, ok := s.UpdateContent(c.ContentID, ContentUpdate{
		Title:                  &title,
		RevenueSharePercentage: &share,
	})
	require.True(t, ok)

	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, 40.0, updated.RevenueSharePercentage)
	// Untouched fields survive.
	assert.Equal(t, "a test piece", updated.Description)
	assert.Equal(t, "visual", updated.Category)
}

func TestUpdateContentPreservesIdentityFields(t *testing.T) {
	s := New()
	c := s.CreateContent(publishedContent("creator-1", "Pinned"))

	title := "Renamed"
	updated, ok := s.UpdateContent(c.ContentID, ContentUpdate{Title: &title})
	require.True(t, ok)

	assert.Equal(t, c.ContentID, updated.ContentID)
	assert.True(t, c.CreationTimestamp.Equal(updated.CreationTimestamp))
	assert.Equal(t, c.RemixCount, updated.RemixCount)
	assert.Equal(t, c.EngagementCount, updated.EngagementCount)
}

func TestUpdateContentAbsent(t *testing.T) {
	s := New()

	title := "Nope"
	_, ok := s.UpdateContent("content_0_missing", ContentUpdate{Title: &title})
	assert.False(t, ok)
}

func TestReturnedRecordsAreCopies(t *testing.T) {
	s := New()
	c := s.CreateContent(publishedContent("creator-1", "Guarded"))

	got, ok := s.GetContent(c.ContentID)
	require.True(t, ok)
	got.Tags[0] = "mutated"
	got.Title = "mutated"

	fresh, ok := s.GetContent(c.ContentID)
	require.True(t, ok)
	assert.Equal(t, "Guarded", fresh.Title)
	assert.Equal(t, []string{"art"}, fresh.Tags)
}

func TestResetClearsEverything(t *testing.T) {
	s := New()
	c := s.CreateContent(publishedContent("creator-1", "Ephemeral"))
	s.CreateCreator(CreatorInput{CreatorID: "creator-1", DisplayName: "Ada"})

	s.Reset()

	_, ok := s.GetContent(c.ContentID)
	assert.False(t, ok)
	_, ok = s.GetCreator("creator-1")
	assert.False(t, ok)
}
