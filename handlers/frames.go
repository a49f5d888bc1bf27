// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/remixshare/remixshare/auth"
	"github.com/remixshare/remixshare/cliparse"
	"github.com/remixshare/remixshare/middleware"
	"github.com/remixshare/remixshare/models"
	"github.com/remixshare/remixshare/store"
)

type FrameHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewFrameHandler(st *store.Store, cfg cliparse.Config) *FrameHandler {
	return &FrameHandler{store: st, cfg: cfg}
}

// contentIDPattern matches a content segment in frame URLs like
// https://host/content/content_1712345678901_ab34kqz0x
var contentIDPattern = regexp.MustCompile(`content/(content_[^/?]+)`)

// HandleFrame handles POST /frame, the frame webhook entrypoint.
//
// The message is accepted when fid, url and messageHash are present and
// the timestamp is within the configured maximum age (in either
// direction, to tolerate clock skew). Signature verification against the
// hub is out of scope; the payload is treated as attested by the
// gateway.
func (h *FrameHandler) HandleFrame(w http.ResponseWriter, r *http.Request) {
	var req models.FrameRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	data := req.UntrustedData
	if data.FID == 0 || data.URL == "" || data.MessageHash == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid frame message")
		return
	}

	age := time.Since(time.Unix(data.Timestamp, 0))
	if age < 0 {
		age = -age
	}
	if age > h.cfg.FrameMaxAge {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Frame message expired")
		return
	}

	userID := auth.FrameUserID(data.FID)

	slog.Info("frame action received",
		"fid", data.FID,
		"button", data.ButtonIndex,
		"user_id", userID,
	)

	switch data.ButtonIndex {
	case 1:
		h.configureRevenue(w, data)
	case 2:
		h.createRemix(w, data, userID)
	case 3:
		h.purchaseEnhancement(w, data, userID)
	case 4:
		h.voteOnPoll(w, data, userID)
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown action")
	}
}

// contentIDFrom resolves the target content from state or the frame URL
func contentIDFrom(data models.FrameData) string {
	if strings.HasPrefix(data.State, "content_") {
		return data.State
	}
	if m := contentIDPattern.FindStringSubmatch(data.URL); m != nil {
		return m[1]
	}
	return ""
}

func (h *FrameHandler) configureRevenue(w http.ResponseWriter, data models.FrameData) {
	contentID := contentIDFrom(data)
	if contentID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Content ID not found")
		return
	}

	content, ok := h.store.GetContent(contentID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Content not found")
		return
	}

	share := content.RevenueSharePercentage
	middleware.JSONResponse(w, http.StatusOK, models.FrameActionResponse{
		Message:      "Revenue share configuration initiated",
		ContentID:    contentID,
		CurrentShare: &share,
	})
}

func (h *FrameHandler) createRemix(w http.ResponseWriter, data models.FrameData, userID string) {
	contentID := contentIDFrom(data)
	if contentID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Content ID not found")
		return
	}

	original, ok := h.store.GetContent(contentID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Content not found")
		return
	}

	ensureCreator(h.store, userID)

	description := data.InputText
	if description == "" {
		description = "Remix created via frame"
	}

	// The remix media URL arrives in a follow-up interaction
	remix := h.store.CreateRemix(store.RemixInput{
		OriginalContentID:      contentID,
		RemixingCreatorID:      userID,
		RemixContentURL:        "",
		Description:            description,
		RevenueSharePercentage: 10,
	})

	h.store.CreateNotification(store.NotificationInput{
		UserID:    original.CreatorID,
		Type:      models.NotifContentRemixed,
		Title:     "Your content was remixed",
		Message:   "A remix of \"" + original.Title + "\" is awaiting your approval",
		ActionURL: h.cfg.BaseURL + "/content/" + original.ContentID,
	})

	middleware.JSONResponse(w, http.StatusOK, models.FrameActionResponse{
		Message:   "Remix request submitted",
		ContentID: contentID,
		RemixID:   remix.RemixID,
	})
}

func (h *FrameHandler) purchaseEnhancement(w http.ResponseWriter, data models.FrameData, userID string) {
	contentID := contentIDFrom(data)
	if contentID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Content ID not found")
		return
	}

	if _, ok := h.store.GetContent(contentID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Content not found")
		return
	}

	ensureCreator(h.store, userID)

	details := data.InputText
	if details == "" {
		details = "Enhancement requested via frame"
	}

	enhancement := h.store.CreateEnhancement(store.EnhancementInput{
		ContentID:          contentID,
		AppliedByCreatorID: userID,
		EnhancementType:    models.EnhancementCustom,
		EnhancementDetails: details,
		Cost:               0.01,
	})

	middleware.JSONResponse(w, http.StatusOK, models.FrameActionResponse{
		Message:       "Enhancement request submitted",
		ContentID:     contentID,
		EnhancementID: enhancement.EnhancementID,
	})
}

func (h *FrameHandler) voteOnPoll(w http.ResponseWriter, data models.FrameData, userID string) {
	pollID := data.State
	if !strings.HasPrefix(pollID, "poll_") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Poll ID not found")
		return
	}

	// Frame vote buttons map directly onto option slots
	optionIndex := data.ButtonIndex - 1

	if !h.store.VoteOnPoll(pollID, userID, optionIndex) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Failed to vote on poll")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.FrameActionResponse{
		Message:     "Vote recorded successfully",
		PollID:      pollID,
		OptionIndex: &optionIndex,
	})
}
