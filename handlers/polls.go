// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/remixshare/remixshare/auth"
	"github.com/remixshare/remixshare/cliparse"
	"github.com/remixshare/remixshare/middleware"
	"github.com/remixshare/remixshare/models"
	"github.com/remixshare/remixshare/store"
)

type PollHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewPollHandler(st *store.Store, cfg cliparse.Config) *PollHandler {
	return &PollHandler{store: st, cfg: cfg}
}

// CreatePoll handles POST /polls
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r)
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreatePollRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	endTime := time.UnixMilli(req.EndTime)
	if !endTime.After(time.Now()) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "endTime must be in the future")
		return
	}

	if req.ContentID != "" {
		if _, ok := h.store.GetContent(req.ContentID); !ok {
			middleware.ErrorResponse(w, http.StatusNotFound, "Content not found")
			return
		}
	}

	ensureCreator(h.store, userID)

	poll := h.store.CreatePoll(store.PollInput{
		CreatorID: userID,
		ContentID: req.ContentID,
		Question:  req.Question,
		Options:   req.Options,
		EndTime:   endTime,
	})

	slog.Info("poll created", "poll_id", poll.PollID, "creator_id", userID)
	middleware.JSONResponse(w, http.StatusCreated, poll)
}

// GetPoll handles GET /polls/{id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")

	poll, ok := h.store.GetPoll(pollID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	// Expiry is lazy; report the effective status
	if poll.Status == models.PollStatusActive && time.Now().After(poll.EndTime) {
		poll.Status = models.PollStatusEnded
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// Results handles GET /polls/{id}/results
func (h *PollHandler) Results(w http.ResponseWriter, r *http.Request) {
	pollID := r.PathValue("id")

	results, ok := h.store.PollResults(pollID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// Vote handles POST /polls/{id}/vote
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r)
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	pollID := r.PathValue("id")

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if _, ok := h.store.GetPoll(pollID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	if !h.store.VoteOnPoll(pollID, userID, req.OptionIndex) {
		middleware.ErrorResponse(w, http.StatusConflict, "Vote rejected: poll ended, option invalid, or you already voted")
		return
	}

	slog.Info("vote recorded", "poll_id", pollID, "voter_id", userID, "option", req.OptionIndex)
	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		PollID:      pollID,
		OptionIndex: req.OptionIndex,
		Message:     "Vote recorded successfully",
	})
}
