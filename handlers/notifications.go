// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/remixshare/remixshare/auth"
	"github.com/remixshare/remixshare/cliparse"
	"github.com/remixshare/remixshare/middleware"
	"github.com/remixshare/remixshare/store"
)

type NotificationHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewNotificationHandler(st *store.Store, cfg cliparse.Config) *NotificationHandler {
	return &NotificationHandler{store: st, cfg: cfg}
}

// ListNotifications handles GET /notifications
// Returns the caller's notifications, newest first.
func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r)
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	notifications := h.store.GetNotificationsByUser(userID)
	middleware.JSONResponse(w, http.StatusOK, notifications)
}

// MarkRead handles POST /notifications/{id}/read
// Marking an already-read notification succeeds again.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r)
	if userID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	notificationID := r.PathValue("id")

	if !h.store.MarkNotificationRead(notificationID) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Notification not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, map[string]bool{"read": true})
}
