// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"sort"
	"time"

	"github.com/remixshare/remixshare/ids"
	"github.com/remixshare/remixshare/models"
)

// NotificationInput carries the caller-owned fields of a notification.
type NotificationInput struct {
	UserID    string
	Type      string
	Title     string
	Message   string
	ActionURL string
}

// CreateNotification stores an unread notification.
func (s *Store) CreateNotification(in NotificationInput) models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := &models.Notification{
		NotificationID: ids.New(ids.KindNotification),
		UserID:         in.UserID,
		Type:           in.Type,
		Title:          in.Title,
		Message:        in.Message,
		ActionURL:      in.ActionURL,
		CreatedAt:      time.Now(),
	}
	s.notifications[n.NotificationID] = n
	return *n
}

// GetNotificationsByUser returns the user's notifications, newest
// first.
func (s *Store) GetNotificationsByUser(userID string) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Notification
	for _, n := range s.notifications {
		if n.UserID == userID {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].NotificationID > out[j].NotificationID
	})
	return out
}

// MarkNotificationRead flips the read flag and reports whether the
// notification was found. Idempotent: marking an already-read
// notification still returns true and read stays true.
func (s *Store) MarkNotificationRead(notificationID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[notificationID]
	if !ok {
		return false
	}
	n.Read = true
	return true
}
