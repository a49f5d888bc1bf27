// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/remixshare/remixshare/auth"
	"github.com/remixshare/remixshare/cliparse"
	"github.com/remixshare/remixshare/middleware"
	"github.com/remixshare/remixshare/models"
	"github.com/remixshare/remixshare/store"
)

type RemixHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewRemixHandler(st *store.Store, cfg cliparse.Config) *RemixHandler {
	return &RemixHandler{store: st, cfg: cfg}
}

// CreateRemix handles POST /remixes
func (h *RemixHandler) CreateRemix(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r)
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreateRemixRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	original, ok := h.store.GetContent(req.OriginalContentID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Original content not found")
		return
	}

	ensureCreator(h.store, userID)

	remix := h.store.CreateRemix(store.RemixInput{
		OriginalContentID:      req.OriginalContentID,
		RemixingCreatorID:      userID,
		RemixContentURL:        req.RemixContentURL,
		Description:            req.Description,
		RevenueSharePercentage: req.RevenueSharePercentage,
	})

	h.store.CreateNotification(store.NotificationInput{
		UserID:    original.CreatorID,
		Type:      models.NotifContentRemixed,
		Title:     "Your content was remixed",
		Message:   "A remix of \"" + original.Title + "\" is awaiting your approval",
		ActionURL: h.cfg.BaseURL + "/content/" + original.ContentID,
	})

	slog.Info("remix created",
		"remix_id", remix.RemixID,
		"original_content_id", req.OriginalContentID,
		"creator_id", userID,
	)
	middleware.JSONResponse(w, http.StatusCreated, remix)
}

// ApproveRemix handles POST /remixes/{id}/approve
// Only the owner of the original content may approve.
func (h *RemixHandler) ApproveRemix(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r)
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	remixID := r.PathValue("id")

	remix, ok := h.store.GetRemix(remixID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Remix not found")
		return
	}

	original, ok := h.store.GetContent(remix.OriginalContentID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Original content not found")
		return
	}
	if original.CreatorID != userID {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only the original content owner can approve a remix")
		return
	}

	h.store.ApproveRemix(remixID)

	approved, _ := h.store.GetRemix(remixID)

	slog.Info("remix approved", "remix_id", remixID, "approved_by", userID)
	middleware.JSONResponse(w, http.StatusOK, approved)
}

// GetRemixesByContent handles GET /content/{id}/remixes
func (h *RemixHandler) GetRemixesByContent(w http.ResponseWriter, r *http.Request) {
	contentID := r.PathValue("id")

	if _, ok := h.store.GetContent(contentID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Content not found")
		return
	}

	remixes := h.store.GetRemixesByContent(contentID)
	middleware.JSONResponse(w, http.StatusOK, remixes)
}
