// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/remixshare/remixshare/cliparse"
	"github.com/remixshare/remixshare/middleware"
	"github.com/remixshare/remixshare/models"
	"github.com/remixshare/remixshare/store"
)

type CreatorHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewCreatorHandler(st *store.Store, cfg cliparse.Config) *CreatorHandler {
	return &CreatorHandler{store: st, cfg: cfg}
}

// ensureCreator provisions a minimal creator profile the first time a
// user ID shows up. Frame identities (fc_*) arrive without any
// registration step, so every write path calls this.
func ensureCreator(st *store.Store, userID string) models.Creator {
	if c, ok := st.GetCreator(userID); ok {
		return c
	}
	c := st.CreateCreator(store.CreatorInput{
		CreatorID:   userID,
		DisplayName: userID,
	})
	slog.Info("creator provisioned", "creator_id", userID)
	return c
}

// CreateCreator handles POST /creators
func (h *CreatorHandler) CreateCreator(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCreatorRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	if _, ok := h.store.GetCreator(req.CreatorID); ok {
		middleware.ErrorResponse(w, http.StatusConflict, "Creator already exists")
		return
	}

	creator := h.store.CreateCreator(store.CreatorInput{
		CreatorID:              req.CreatorID,
		WalletAddress:          req.WalletAddress,
		DisplayName:            req.DisplayName,
		Bio:                    req.Bio,
		RevenueSharePercentage: req.RevenueSharePercentage,
	})

	slog.Info("creator registered", "creator_id", creator.CreatorID)
	middleware.JSONResponse(w, http.StatusCreated, creator)
}

// GetCreator handles GET /creators/{id}
func (h *CreatorHandler) GetCreator(w http.ResponseWriter, r *http.Request) {
	creatorID := r.PathValue("id")

	creator, ok := h.store.GetCreator(creatorID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Creator not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, creator)
}

// GetCreatorContent handles GET /creators/{id}/content
func (h *CreatorHandler) GetCreatorContent(w http.ResponseWriter, r *http.Request) {
	creatorID := r.PathValue("id")

	if _, ok := h.store.GetCreator(creatorID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Creator not found")
		return
	}

	content := h.store.GetContentByCreator(creatorID)
	middleware.JSONResponse(w, http.StatusOK, content)
}

// GetCreatorPolls handles GET /creators/{id}/polls
func (h *CreatorHandler) GetCreatorPolls(w http.ResponseWriter, r *http.Request) {
	creatorID := r.PathValue("id")

	if _, ok := h.store.GetCreator(creatorID); !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Creator not found")
		return
	}

	polls := h.store.GetPollsByCreator(creatorID)
	middleware.JSONResponse(w, http.StatusOK, polls)
}
