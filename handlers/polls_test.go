// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/remixshare/remixshare/models"
	"github.com/remixshare/remixshare/store"
	"github.com/remixshare/remixshare/testutil"
)

func TestCreatePollEndpoint(t *testing.T) {
	st := store.New()
	handler := NewPollHandler(st, testutil.GetTestConfig())

	future := time.Now().Add(time.Hour).UnixMilli()
	past := time.Now().Add(-time.Hour).UnixMilli()

	tests := []struct {
		name           string
		userID         string
		body           models.CreatePollRequest
		expectedStatus int
	}{
		{
			name:   "valid poll",
			userID: "alice",
			body: models.CreatePollRequest{
				Question: "Best remix?",
				Options:  []string{"First", "Second"},
				EndTime:  future,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "single option",
			userID: "alice",
			body: models.CreatePollRequest{
				Question: "Only one choice",
				Options:  []string{"First"},
				EndTime:  future,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "end time in the past",
			userID: "alice",
			body: models.CreatePollRequest{
				Question: "Too late",
				Options:  []string{"First", "Second"},
				EndTime:  past,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "anonymous",
			userID: "",
			body: models.CreatePollRequest{
				Question: "Who am I?",
				Options:  []string{"First", "Second"},
				EndTime:  future,
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.userID != "" {
				headers["X-User-ID"] = tt.userID
			}
			req := testutil.MakeRequest("POST", "/polls", tt.body, headers)
			w := httptest.NewRecorder()

			handler.CreatePoll(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus == http.StatusCreated {
				var poll models.CommunityPoll
				testutil.AssertJSON(t, w, &poll)
				if poll.Status != models.PollStatusActive {
					t.Errorf("expected active poll, got %q", poll.Status)
				}
				if len(poll.Votes) != 0 {
					t.Error("expected empty vote ledger")
				}
			}
		})
	}
}

func TestVoteEndpoint(t *testing.T) {
	st := store.New()
	handler := NewPollHandler(st, testutil.GetTestConfig())

	testutil.SeedCreator(t, st, "alice")
	poll := testutil.SeedPoll(t, st, "alice", []string{"First", "Second", "Third"})

	vote := func(userID, pollID string, option int) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("POST", "/polls/"+pollID+"/vote",
			models.VoteRequest{OptionIndex: option},
			map[string]string{"X-User-ID": userID})
		req.SetPathValue("id", pollID)
		w := httptest.NewRecorder()
		handler.Vote(w, req)
		return w
	}

	// First vote lands
	w := vote("bob", poll.PollID, 1)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.VoteResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.OptionIndex != 1 {
		t.Errorf("expected option 1, got %d", resp.OptionIndex)
	}

	// Second vote from the same voter conflicts
	w = vote("bob", poll.PollID, 2)
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Out-of-range option conflicts
	w = vote("carol", poll.PollID, 7)
	testutil.AssertStatus(t, w, http.StatusConflict)

	// Unknown poll is 404
	w = vote("carol", "poll_0_missing", 0)
	testutil.AssertStatus(t, w, http.StatusNotFound)

	// The original choice stands
	stored, _ := st.GetPoll(poll.PollID)
	if stored.Votes["bob"] != 1 {
		t.Errorf("expected bob's vote to stay 1, got %d", stored.Votes["bob"])
	}
}

func TestVoteOnExpiredPoll(t *testing.T) {
	st := store.New()
	handler := NewPollHandler(st, testutil.GetTestConfig())

	poll := st.CreatePoll(store.PollInput{
		CreatorID: "alice",
		Question:  "Too old",
		Options:   []string{"First", "Second"},
		EndTime:   time.Now().Add(-time.Minute),
	})

	req := testutil.MakeRequest("POST", "/polls/"+poll.PollID+"/vote",
		models.VoteRequest{OptionIndex: 0},
		map[string]string{"X-User-ID": "bob"})
	req.SetPathValue("id", poll.PollID)
	w := httptest.NewRecorder()
	handler.Vote(w, req)

	testutil.AssertStatus(t, w, http.StatusConflict)
}

func TestGetPollReportsEffectiveStatus(t *testing.T) {
	st := store.New()
	handler := NewPollHandler(st, testutil.GetTestConfig())

	poll := st.CreatePoll(store.PollInput{
		CreatorID: "alice",
		Question:  "Already over",
		Options:   []string{"First", "Second"},
		EndTime:   time.Now().Add(-time.Minute),
	})

	req := testutil.MakeRequest("GET", "/polls/"+poll.PollID, nil, nil)
	req.SetPathValue("id", poll.PollID)
	w := httptest.NewRecorder()
	handler.GetPoll(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var got models.CommunityPoll
	testutil.AssertJSON(t, w, &got)
	if got.Status != models.PollStatusEnded {
		t.Errorf("expected ended status, got %q", got.Status)
	}
}

func TestResultsEndpoint(t *testing.T) {
	st := store.New()
	handler := NewPollHandler(st, testutil.GetTestConfig())

	poll := testutil.SeedPoll(t, st, "alice", []string{"First", "Second"})
	st.VoteOnPoll(poll.PollID, "bob", 0)
	st.VoteOnPoll(poll.PollID, "carol", 1)
	st.VoteOnPoll(poll.PollID, "dave", 1)

	req := testutil.MakeRequest("GET", "/polls/"+poll.PollID+"/results", nil, nil)
	req.SetPathValue("id", poll.PollID)
	w := httptest.NewRecorder()
	handler.Results(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var results models.PollResults
	testutil.AssertJSON(t, w, &results)
	if results.TotalVotes != 3 {
		t.Errorf("expected 3 votes, got %d", results.TotalVotes)
	}
	if results.Tally[0] != 1 || results.Tally[1] != 2 {
		t.Errorf("unexpected tally %v", results.Tally)
	}
}
