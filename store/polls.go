// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"time"

	"github.com/remixshare/remixshare/ids"
	"github.com/remixshare/remixshare/models"
)

// PollInput carries the caller-owned fields of a new poll.
type PollInput struct {
	CreatorID string
	ContentID string
	Question  string
	Options   []string
	EndTime   time.Time
}

// CreatePoll stores a poll in the active state with an empty vote
// ledger.
func (s *Store) CreatePoll(in PollInput) models.CommunityPoll {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := &models.CommunityPoll{
		PollID:    ids.New(ids.KindPoll),
		CreatorID: in.CreatorID,
		ContentID: in.ContentID,
		Question:  in.Question,
		Options:   copyStrings(in.Options),
		Votes:     make(map[string]int),
		EndTime:   in.EndTime,
		CreatedAt: time.Now(),
		Status:    models.PollStatusActive,
	}
	s.polls[p.PollID] = p
	return copyPoll(p)
}

// GetPoll returns the poll and whether it exists.
func (s *Store) GetPoll(pollID string) (models.CommunityPoll, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.polls[pollID]
	if !ok {
		return models.CommunityPoll{}, false
	}
	return copyPoll(p), true
}

// GetPollsByCreator returns every poll owned by the creator.
func (s *Store) GetPollsByCreator(creatorID string) []models.CommunityPoll {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.CommunityPoll
	for _, p := range s.polls {
		if p.CreatorID == creatorID {
			out = append(out, copyPoll(p))
		}
	}
	return out
}

// VoteOnPoll records one vote and reports whether it was applied.
//
// The vote is rejected (false) when the poll is unknown, its stored
// status is not active, the end time has passed (the time bound is
// authoritative even if the stored flag still reads active — expiry is
// checked lazily here, there is no background sweep), the option index
// is outside the poll's option list, or the voter already has an entry
// in the ledger. Votes are never changed once recorded.
func (s *Store) VoteOnPoll(pollID, voterID string, optionIndex int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.polls[pollID]
	if !ok {
		return false
	}
	if p.Status != models.PollStatusActive {
		return false
	}
	if time.Now().After(p.EndTime) {
		return false
	}
	if optionIndex < 0 || optionIndex >= len(p.Options) {
		return false
	}
	if _, voted := p.Votes[voterID]; voted {
		return false
	}
	p.Votes[voterID] = optionIndex
	return true
}

// PollResults tallies the vote ledger per option. Returns false for an
// unknown poll. The reported status reflects the end time, not just the
// stored flag, so an expired-but-unswept poll reads as ended.
func (s *Store) PollResults(pollID string) (models.PollResults, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.polls[pollID]
	if !ok {
		return models.PollResults{}, false
	}

	tally := make([]int, len(p.Options))
	for _, idx := range p.Votes {
		if idx >= 0 && idx < len(tally) {
			tally[idx]++
		}
	}

	status := p.Status
	if time.Now().After(p.EndTime) {
		status = models.PollStatusEnded
	}

	return models.PollResults{
		PollID:     p.PollID,
		Question:   p.Question,
		Options:    copyStrings(p.Options),
		Tally:      tally,
		TotalVotes: len(p.Votes),
		Status:     status,
	}, true
}

func copyPoll(p *models.CommunityPoll) models.CommunityPoll {
	out := *p
	out.Options = copyStrings(p.Options)
	out.Votes = make(map[string]int, len(p.Votes))
	for k, v := range p.Votes {
		out.Votes[k] = v
	}
	return out
}
