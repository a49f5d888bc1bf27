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

type EngagementHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewEngagementHandler(st *store.Store, cfg cliparse.Config) *EngagementHandler {
	return &EngagementHandler{store: st, cfg: cfg}
}

// CreateEngagement handles POST /engagements
func (h *EngagementHandler) CreateEngagement(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r)
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreateEngagementRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if _, ok := h.store.GetContent(req.ContentID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Content not found")
		return
	}

	engagement := h.store.CreateEngagement(store.EngagementInput{
		ContentID:      req.ContentID,
		UserID:         userID,
		EngagementType: req.EngagementType,
	})

	slog.Info("engagement recorded",
		"engagement_id", engagement.EngagementID,
		"content_id", req.ContentID,
		"type", req.EngagementType,
	)
	middleware.JSONResponse(w, http.StatusCreated, engagement)
}

// GetEngagementsByContent handles GET /content/{id}/engagements
func (h *EngagementHandler) GetEngagementsByContent(w http.ResponseWriter, r *http.Request) {
	contentID := r.PathValue("id")

	if _, ok := h.store.GetContent(contentID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Content not found")
		return
	}

	engagements := h.store.GetEngagementsByContent(contentID)
	middleware.JSONResponse(w, http.StatusOK, engagements)
}
