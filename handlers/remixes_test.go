// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/remixshare/remixshare/models"
	"github.com/remixshare/remixshare/store"
	"github.com/remixshare/remixshare/testutil"
)

func TestCreateRemixEndpoint(t *testing.T) {
	st := store.New()
	handler := NewRemixHandler(st, testutil.GetTestConfig())

	testutil.SeedCreator(t, st, "alice")
	content := testutil.SeedContent(t, st, "alice", "Original")

	tests := []struct {
		name           string
		userID         string
		body           models.CreateRemixRequest
		expectedStatus int
	}{
		{
			name:   "valid remix",
			userID: "bob",
			body: models.CreateRemixRequest{
				OriginalContentID:      content.ContentID,
				RemixContentURL:        "https://cdn.example.com/remix.png",
				Description:            "remixed it",
				RevenueSharePercentage: 25,
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "share over remix cap",
			userID: "bob",
			body: models.CreateRemixRequest{
				OriginalContentID:      content.ContentID,
				RemixContentURL:        "https://cdn.example.com/remix.png",
				Description:            "too greedy",
				RevenueSharePercentage: 60,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "missing original",
			userID: "bob",
			body: models.CreateRemixRequest{
				OriginalContentID:      "content_0_missing",
				RemixContentURL:        "https://cdn.example.com/remix.png",
				Description:            "no source",
				RevenueSharePercentage: 10,
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "anonymous",
			userID: "",
			body: models.CreateRemixRequest{
				OriginalContentID:      content.ContentID,
				RemixContentURL:        "https://cdn.example.com/remix.png",
				Description:            "who",
				RevenueSharePercentage: 10,
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
			req := testutil.MakeRequest("POST", "/remixes", tt.body, headers)
			w := httptest.NewRecorder()

			handler.CreateRemix(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}

	// The valid remix bumped the original's counter and notified alice
	updated, _ := st.GetContent(content.ContentID)
	if updated.RemixCount != 1 {
		t.Errorf("expected remix count 1, got %d", updated.RemixCount)
	}
	notifs := st.GetNotificationsByUser("alice")
	if len(notifs) != 1 {
		t.Errorf("expected one notification for the owner, got %d", len(notifs))
	}
}

func TestApproveRemixEndpoint(t *testing.T) {
	st := store.New()
	handler := NewRemixHandler(st, testutil.GetTestConfig())

	testutil.SeedCreator(t, st, "alice")
	content := testutil.SeedContent(t, st, "alice", "Original")
	remix := st.CreateRemix(store.RemixInput{
		OriginalContentID:      content.ContentID,
		RemixingCreatorID:      "bob",
		RemixContentURL:        "https://cdn.example.com/remix.png",
		Description:            "pending approval",
		RevenueSharePercentage: 10,
	})

	approve := func(userID, remixID string) *httptest.ResponseRecorder {
		req := testutil.MakeRequest("POST", "/remixes/"+remixID+"/approve", nil,
			map[string]string{"X-User-ID": userID})
		req.SetPathValue("id", remixID)
		w := httptest.NewRecorder()
		handler.ApproveRemix(w, req)
		return w
	}

	// The remixer cannot approve their own remix
	w := approve("bob", remix.RemixID)
	testutil.AssertStatus(t, w, http.StatusForbidden)

	// The original owner can
	w = approve("alice", remix.RemixID)
	testutil.AssertStatus(t, w, http.StatusOK)

	var approved models.Remix
	testutil.AssertJSON(t, w, &approved)
	if !approved.Approved {
		t.Error("expected remix to be approved")
	}

	// Unknown remix
	w = approve("alice", "remix_0_missing")
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestTransactionEndpointNotifiesOwner(t *testing.T) {
	st := store.New()
	handler := NewTransactionHandler(st, testutil.GetTestConfig())

	testutil.SeedCreator(t, st, "alice")
	content := testutil.SeedContent(t, st, "alice", "Earning")

	req := testutil.MakeRequest("POST", "/transactions", models.CreateTransactionRequest{
		FromWallet:      "0xbob",
		ToWallet:        "0xalice",
		Amount:          2.5,
		ContentID:       content.ContentID,
		TransactionType: models.TxTypeRevenueShare,
		Status:          models.TxStatusCompleted,
	}, map[string]string{"X-User-ID": "bob"})
	w := httptest.NewRecorder()
	handler.CreateTransaction(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	updated, _ := st.GetContent(content.ContentID)
	if updated.CurrentRevenue != 2.5 {
		t.Errorf("expected revenue 2.5, got %v", updated.CurrentRevenue)
	}

	notifs := st.GetNotificationsByUser("alice")
	if len(notifs) != 1 || notifs[0].Type != models.NotifRevenueReceived {
		t.Errorf("expected a revenue notification, got %v", notifs)
	}
}

func TestNotificationEndpoints(t *testing.T) {
	st := store.New()
	handler := NewNotificationHandler(st, testutil.GetTestConfig())

	n := st.CreateNotification(store.NotificationInput{
		UserID: "alice", Type: models.NotifSystem, Title: "Welcome", Message: "hi",
	})

	// Listing requires auth
	req := testutil.MakeRequest("GET", "/notifications", nil, nil)
	w := httptest.NewRecorder()
	handler.ListNotifications(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	req = testutil.MakeRequest("GET", "/notifications", nil, map[string]string{"X-User-ID": "alice"})
	w = httptest.NewRecorder()
	handler.ListNotifications(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var notifs []models.Notification
	testutil.AssertJSON(t, w, &notifs)
	if len(notifs) != 1 || notifs[0].Read {
		t.Fatalf("expected one unread notification, got %v", notifs)
	}

	// Mark read, twice; both succeed
	for i := 0; i < 2; i++ {
		req = testutil.MakeRequest("POST", "/notifications/"+n.NotificationID+"/read", nil,
			map[string]string{"X-User-ID": "alice"})
		req.SetPathValue("id", n.NotificationID)
		w = httptest.NewRecorder()
		handler.MarkRead(w, req)
		testutil.AssertStatus(t, w, http.StatusOK)
	}

	// Unknown notification is 404
	req = testutil.MakeRequest("POST", "/notifications/notification_0_missing/read", nil,
		map[string]string{"X-User-ID": "alice"})
	req.SetPathValue("id", "notification_0_missing")
	w = httptest.NewRecorder()
	handler.MarkRead(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
