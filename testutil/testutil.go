// Copyright (c) 2025 Remixshare Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/remixshare/remixshare/cliparse"
	"github.com/remixshare/remixshare/models"
	"github.com/remixshare/remixshare/store"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             3318,
		BaseURL:          "http://localhost:3318",
		DefaultPageLimit: 20,
		MaxPageLimit:     50,
		RatePerSecond:    100,
		RateBurst:        100,
		FrameMaxAge:      5 * time.Minute,
	}
}

// SeedCreator registers a creator profile and returns it
func SeedCreator(t *testing.T, st *store.Store, creatorID string) models.Creator {
	t.Helper()
	return st.CreateCreator(store.CreatorInput{
		CreatorID:     creatorID,
		WalletAddress: "0x" + creatorID,
		DisplayName:   "Test " + creatorID,
	})
}

// SeedContent creates a published content piece owned by creatorID
func SeedContent(t *testing.T, st *store.Store, creatorID, title string) models.ContentPiece {
	t.Helper()
	return st.CreateContent(store.ContentInput{
		CreatorID:              creatorID,
		Title:                  title,
		Description:            "Seeded content",
		MediaURL:               "https://cdn.example.com/" + creatorID + "/media.png",
		MediaType:              models.MediaTypeImage,
		MonetizationEnabled:    true,
		RevenueSharePercentage: 15,
		Tags:                   []string{"test"},
		Category:               "art",
		Status:                 models.ContentStatusPublished,
	})
}

// SeedPoll creates an active poll owned by creatorID, ending an hour out
func SeedPoll(t *testing.T, st *store.Store, creatorID string, options []string) models.CommunityPoll {
	t.Helper()
	return st.CreatePoll(store.PollInput{
		CreatorID: creatorID,
		Question:  "Which direction next?",
		Options:   options,
		EndTime:   time.Now().Add(time.Hour),
	})
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
