// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/remixshare/remixshare/auth"
	"github.com/remixshare/remixshare/cliparse"
	"github.com/remixshare/remixshare/middleware"
	"github.com/remixshare/remixshare/models"
	"github.com/remixshare/remixshare/store"
)

type ContentHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewContentHandler(st *store.Store, cfg cliparse.Config) *ContentHandler {
	return &ContentHandler{store: st, cfg: cfg}
}

// CreateContent handles POST /content
func (h *ContentHandler) CreateContent(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r)
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req models.CreateContentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	ensureCreator(h.store, userID)

	content := h.store.CreateContent(store.ContentInput{
		CreatorID:              userID,
		Title:                  req.Title,
		Description:            req.Description,
		MediaURL:               req.MediaURL,
		MediaType:              req.MediaType,
		MonetizationEnabled:    req.MonetizationEnabled,
		RevenueSharePercentage: req.RevenueSharePercentage,
		Tags:                   req.Tags,
		Category:               req.Category,
		Status:                 models.ContentStatusPublished,
	})

	slog.Info("content created", "content_id", content.ContentID, "creator_id", userID)
	middleware.JSONResponse(w, http.StatusCreated, content)
}

// Feed handles GET /content
// Query parameters: q, category, tags (csv), creatorId, page, limit.
func (h *ContentHandler) Feed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := q.Get("q")
	category := q.Get("category")
	var tags []string
	if raw := q.Get("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tags = append(tags, t)
			}
		}
	}

	var items []models.ContentPiece
	if query != "" || category != "" || len(tags) > 0 {
		items = h.store.SearchContent(query, store.SearchFilters{
			Category: category,
			Tags:     tags,
		})
	} else {
		items = h.store.ListContent()
	}

	if creatorID := q.Get("creatorId"); creatorID != "" {
		filtered := items[:0]
		for _, c := range items {
			if c.CreatorID == creatorID {
				filtered = append(filtered, c)
			}
		}
		items = filtered
	}

	page := queryInt(q.Get("page"), 1)
	limit := queryInt(q.Get("limit"), h.cfg.DefaultPageLimit)
	if limit > h.cfg.MaxPageLimit {
		limit = h.cfg.MaxPageLimit
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = h.cfg.DefaultPageLimit
	}

	pg := store.PaginateContent(items, page, limit)

	middleware.JSONResponse(w, http.StatusOK, models.FeedResponse{
		Content: pg.Items,
		Pagination: models.Pagination{
			Page:       pg.Page,
			Limit:      pg.Limit,
			Total:      pg.Total,
			TotalPages: pg.TotalPages,
		},
	})
}

// GetContent handles GET /content/{id}
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	contentID := r.PathValue("id")

	content, ok := h.store.GetContent(contentID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Content not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, content)
}

// UpdateContent handles PATCH /content/{id}
// Only the owner may update. Identity and derived fields in the payload
// have no request field to land in, so they are silently ignored.
func (h *ContentHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r)
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	contentID := r.PathValue("id")

	existing, ok := h.store.GetContent(contentID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Content not found")
		return
	}
	if existing.CreatorID != userID {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only the content owner can update it")
		return
	}

	var req models.UpdateContentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	updated, ok := h.store.UpdateContent(contentID, store.ContentUpdate{
		Title:                  req.Title,
		Description:            req.Description,
		MediaURL:               req.MediaURL,
		MediaType:              req.MediaType,
		MonetizationEnabled:    req.MonetizationEnabled,
		RevenueSharePercentage: req.RevenueSharePercentage,
		Tags:                   req.Tags,
		Category:               req.Category,
		Status:                 req.Status,
	})
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Content not found")
		return
	}

	slog.Info("content updated", "content_id", contentID, "creator_id", userID)
	middleware.JSONResponse(w, http.StatusOK, updated)
}

// UpdateRevenueShare handles PUT /content/{id}/revenue-share
func (h *ContentHandler) UpdateRevenueShare(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r)
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	contentID := r.PathValue("id")

	existing, ok := h.store.GetContent(contentID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Content not found")
		return
	}
	if existing.CreatorID != userID {
		middleware.ErrorResponse(w, http.StatusForbidden, "Only the content owner can update it")
		return
	}

	var req models.UpdateRevenueShareRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validate.Struct(req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	updated, _ := h.store.UpdateContent(contentID, store.ContentUpdate{
		RevenueSharePercentage: &req.RevenueSharePercentage,
	})

	slog.Info("revenue share updated",
		"content_id", contentID,
		"percentage", req.RevenueSharePercentage,
	)
	middleware.JSONResponse(w, http.StatusOK, updated)
}

// Analytics handles GET /content/{id}/analytics
func (h *ContentHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	contentID := r.PathValue("id")

	analytics, ok := h.store.ContentAnalytics(contentID)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Content not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, analytics)
}

func queryInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
