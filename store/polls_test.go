// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/remixshare/remixshare/models"
)

func activePoll(s *Store) models.CommunityPoll {
	return s.CreatePoll(PollInput{
		CreatorID: "creator-1",
		Question:  "Which remix should ship?",
		Options:   []string{"Remix A", "Remix B", "Remix C"},
		EndTime:   time.Now().Add(time.Hour),
	})
}

func TestCreatePollStartsActive(t *testing.T) {
	s := New()
	p := activePoll(s)

	assert.NotEmpty(t, p.PollID)
	assert.Equal(t, models.PollStatusActive, p.Status)
	assert.Empty(t, p.Votes)

	got, ok := s.GetPoll(p.PollID)
	require.True(t, ok)
	assert.Equal(t, p.PollID, got.PollID)
}

func TestVoteOnPoll(t *testing.T) {
	s := New()
	p := activePoll(s)

	assert.True(t, s.VoteOnPoll(p.PollID, "voter-1", 1))

	got, ok := s.GetPoll(p.PollID)
	require.True(t, ok)
	assert.Equal(t, 1, got.Votes["voter-1"])
}

func TestVoteOnPollDuplicateRejected(t *testing.T) {
	s := New()
	p := activePoll(s)

	require.True(t, s.VoteOnPoll(p.PollID, "voter-1", 0))
	// A second attempt with any option index is rejected and the
	// original choice stands.
	assert.False(t, s.VoteOnPoll(p.PollID, "voter-1", 2))

	got, _ := s.GetPoll(p.PollID)
	assert.Equal(t, 0, got.Votes["voter-1"])
	assert.Len(t, got.Votes, 1)
}

func TestVoteOnPollOptionZeroIsRealVote(t *testing.T) {
	// Regression guard: option index 0 must count as a recorded vote,
	// not as "no entry".
	s := New()
	p := activePoll(s)

	require.True(t, s.VoteOnPoll(p.PollID, "voter-1", 0))
	assert.False(t, s.VoteOnPoll(p.PollID, "voter-1", 0))
}

func TestVoteOnPollExpired(t *testing.T) {
	s := New()
	p := s.CreatePoll(PollInput{
		CreatorID: "creator-1",
		Question:  "Too late?",
		Options:   []string{"Yes", "No"},
		EndTime:   time.Now().Add(-time.Minute),
	})

	// The stored status still reads active; the time bound wins.
	got, _ := s.GetPoll(p.PollID)
	require.Equal(t, models.PollStatusActive, got.Status)
	assert.False(t, s.VoteOnPoll(p.PollID, "voter-1", 0))
}

func TestVoteOnPollBounds(t *testing.T) {
	s := New()
	p := activePoll(s)

	assert.False(t, s.VoteOnPoll(p.PollID, "voter-1", -1))
	assert.False(t, s.VoteOnPoll(p.PollID, "voter-1", 3))
	assert.False(t, s.VoteOnPoll("poll_0_missing", "voter-1", 0))

	got, _ := s.GetPoll(p.PollID)
	assert.Empty(t, got.Votes)
}

func TestPollResults(t *testing.T) {
	s := New()
	p := activePoll(s)

	s.VoteOnPoll(p.PollID, "voter-1", 0)
	s.VoteOnPoll(p.PollID, "voter-2", 2)
	s.VoteOnPoll(p.PollID, "voter-3", 2)

	res, ok := s.PollResults(p.PollID)
	require.True(t, ok)
	assert.Equal(t, []int{1, 0, 2}, res.Tally)
	assert.Equal(t, 3, res.TotalVotes)
	assert.Equal(t, models.PollStatusActive, res.Status)

	_, ok = s.PollResults("poll_0_missing")
	assert.False(t, ok)
}

func TestPollResultsReportsExpiredAsEnded(t *testing.T) {
	s := New()
	p := s.CreatePoll(PollInput{
		CreatorID: "creator-1",
		Question:  "Done?",
		Options:   []string{"Yes", "No"},
		EndTime:   time.Now().Add(-time.Minute),
	})

	res, ok := s.PollResults(p.PollID)
	require.True(t, ok)
	assert.Equal(t, models.PollStatusEnded, res.Status)
}

func TestGetPollsByCreator(t *testing.T) {
	s := New()
	activePoll(s)
	activePoll(s)
	s.CreatePoll(PollInput{
		CreatorID: "creator-2",
		Question:  "Other?",
		Options:   []string{"A", "B"},
		EndTime:   time.Now().Add(time.Hour),
	})

	assert.Len(t, s.GetPollsByCreator("creator-1"), 2)
	assert.Len(t, s.GetPollsByCreator("creator-2"), 1)
	assert.Empty(t, s.GetPollsByCreator("creator-3"))
}

func TestPollVoteLedgerIsCopied(t *testing.T) {
	s := New()
	p := activePoll(s)
	s.VoteOnPoll(p.PollID, "voter-1", 1)

	got, _ := s.GetPoll(p.PollID)
	got.Votes["voter-2"] = 2

	fresh, _ := s.GetPoll(p.PollID)
	assert.Len(t, fresh.Votes, 1, "mutating a returned ledger must not touch the store")
}
