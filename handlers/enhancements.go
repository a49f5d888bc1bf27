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

type EnhancementHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewEnhancementHandler(st *store.Store, cfg cliparse.Config) *EnhancementHandler {
	return &EnhancementHandler{store: st, cfg: cfg}
}

// CreateEnhancement handles POST /enhancements
func (h *EnhancementHandler) CreateEnhancement(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r)
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreateEnhancementRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	content, ok := h.store.GetContent(req.ContentID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Content not found")
		return
	}

	ensureCreator(h.store, userID)

	enhancement := h.store.CreateEnhancement(store.EnhancementInput{
		ContentID:          req.ContentID,
		AppliedByCreatorID: userID,
		EnhancementType:    req.EnhancementType,
		EnhancementDetails: req.EnhancementDetails,
		Cost:               req.Cost,
	})

	h.store.CreateNotification(store.NotificationInput{
		UserID:    content.CreatorID,
		Type:      models.NotifEnhancementApplied,
		Title:     "Enhancement requested",
		Message:   "An enhancement was proposed for \"" + content.Title + "\"",
		ActionURL: h.cfg.BaseURL + "/content/" + content.ContentID,
	})

	slog.Info("enhancement created",
		"enhancement_id", enhancement.EnhancementID,
		"content_id", req.ContentID,
		"creator_id", userID,
	)
	middleware.JSONResponse(w, http.StatusCreated, enhancement)
}

// GetEnhancementsByContent handles GET /content/{id}/enhancements
func (h *EnhancementHandler) GetEnhancementsByContent(w http.ResponseWriter, r *http.Request) {
	contentID := r.PathValue("id")

	if _, ok := h.store.GetContent(contentID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Content not found")
		return
	}

	enhancements := h.store.GetEnhancementsByContent(contentID)
	middleware.JSONResponse(w, http.StatusOK, enhancements)
}
